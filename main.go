// walnutbook imports bank CSV exports into a local ledger.
package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"walnutbook/csv-import/cmd/accounts"
	"walnutbook/csv-import/cmd/categories"
	"walnutbook/csv-import/cmd/detect"
	"walnutbook/csv-import/cmd/importcmd"
	"walnutbook/csv-import/cmd/root"
)

func init() {
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(accounts.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

// loadEnvSilently loads environment variables before any logging is
// configured. A missing .env file is not an error.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatalf("Error executing command: %v", err)
	}
}
