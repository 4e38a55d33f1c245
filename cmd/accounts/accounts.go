// Package accounts handles the accounts command group: listing and
// maintaining the accounts CSV imports target.
package accounts

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"walnutbook/csv-import/cmd/root"
	"walnutbook/csv-import/internal/models"
)

var (
	accountType    string
	signConvention string
	description    string
)

// Cmd represents the accounts command group.
var Cmd = &cobra.Command{
	Use:   "accounts",
	Short: "List and maintain ledger accounts",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an account",
	Long: `Add creates an account. The account type decides how imported amount
signs are interpreted; credit accounts additionally honor the sign
convention when the bank exports inverted signs.`,
	Args: cobra.ExactArgs(1),
	Run:  addFunc,
}

var setSignCmd = &cobra.Command{
	Use:   "set-sign <id> <standard|reversed>",
	Short: "Set the sign convention of an account",
	Args:  cobra.ExactArgs(2),
	Run:   setSignFunc,
}

func init() {
	addCmd.Flags().StringVarP(&accountType, "type", "t", string(models.AccountTypeChecking),
		"Account type (checking, savings, credit, cash, investment)")
	addCmd.Flags().StringVar(&signConvention, "sign", string(models.SignStandard),
		"Sign convention of the bank's export (standard or reversed)")
	addCmd.Flags().StringVarP(&description, "description", "d", "", "Account description")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(setSignCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	accounts, err := root.Store().LoadAccounts()
	if err != nil {
		root.Log.Fatalf("Failed to load accounts: %v", err)
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts yet. Add one with: walnutbook accounts add <name>")
		return
	}
	for _, a := range accounts {
		fmt.Printf("%3d  %-24s %-12s sign=%s\n", a.ID, a.Name, a.Type, a.EffectiveSignConvention())
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	parsedType, ok := parseAccountType(accountType)
	if !ok {
		root.Log.Fatalf("Invalid account type: %s", accountType)
	}
	convention := models.SignConvention(strings.ToLower(signConvention))
	if !validSignConvention(convention) {
		root.Log.Fatalf("Invalid sign convention: %s", signConvention)
	}

	ledger := root.Store()
	accounts, err := ledger.LoadAccounts()
	if err != nil {
		root.Log.Fatalf("Failed to load accounts: %v", err)
	}

	nextID := int64(1)
	for _, a := range accounts {
		if a.ID >= nextID {
			nextID = a.ID + 1
		}
	}

	accounts = append(accounts, models.Account{
		ID:             nextID,
		Name:           args[0],
		Type:           parsedType,
		SignConvention: convention,
		Description:    description,
	})
	if err := ledger.SaveAccounts(accounts); err != nil {
		root.Log.Fatalf("Failed to save accounts: %v", err)
	}
	fmt.Printf("Added account %d (%s)\n", nextID, args[0])
}

func setSignFunc(cmd *cobra.Command, args []string) {
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		root.Log.Fatalf("Invalid account id: %s", args[0])
	}
	convention := models.SignConvention(strings.ToLower(args[1]))
	if !validSignConvention(convention) {
		root.Log.Fatalf("Invalid sign convention: %s", args[1])
	}

	ledger := root.Store()
	accounts, err := ledger.LoadAccounts()
	if err != nil {
		root.Log.Fatalf("Failed to load accounts: %v", err)
	}

	for i := range accounts {
		if accounts[i].ID == id {
			accounts[i].SignConvention = convention
			if err := ledger.SaveAccounts(accounts); err != nil {
				root.Log.Fatalf("Failed to save accounts: %v", err)
			}
			fmt.Printf("Account %d sign convention set to %s\n", id, convention)
			return
		}
	}
	root.Log.Fatalf("Account %d not found", id)
}

func parseAccountType(s string) (models.AccountType, bool) {
	for _, t := range []models.AccountType{
		models.AccountTypeChecking,
		models.AccountTypeSavings,
		models.AccountTypeCredit,
		models.AccountTypeCash,
		models.AccountTypeInvestment,
	} {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

func validSignConvention(c models.SignConvention) bool {
	return c == models.SignStandard || c == models.SignReversed
}
