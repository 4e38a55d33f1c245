// Package root contains the root command for the application.
package root

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"walnutbook/csv-import/internal/config"
	"walnutbook/csv-import/internal/logging"
	"walnutbook/csv-import/internal/store"
)

// CommonFlags represents the flags that are shared across commands.
type CommonFlags struct {
	DataDir string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds flag values common to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "walnutbook",
		Short: "Import bank CSV exports into a local ledger.",
		Long: `walnutbook imports bank-exported CSV files of uncertain shape into a
local ledger. It detects the delimiter and header row, infers column roles,
normalizes dates and amount signs per account, and skips transactions that
were already entered or previously imported.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Invalid configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)
		},
	}
)

// Init initializes the root command and its persistent flags.
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.DataDir, "data-dir", "", "Ledger data directory (overrides config)")
}

// DataDir resolves the ledger data directory: flag, then config, then a
// local default.
func DataDir() string {
	if SharedFlags.DataDir != "" {
		return SharedFlags.DataDir
	}
	if Cfg != nil && Cfg.Data.Directory != "" {
		return Cfg.Data.Directory
	}
	return filepath.Join(".", "data")
}

// Logger returns the shared logger wrapped in the logging abstraction.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// Store opens the ledger store at the resolved data directory.
func Store() *store.LedgerStore {
	return store.NewLedgerStore(DataDir(), Logger())
}
