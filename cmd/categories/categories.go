// Package categories handles the categories command group.
package categories

import (
	"fmt"

	"github.com/spf13/cobra"

	"walnutbook/csv-import/cmd/root"
	"walnutbook/csv-import/internal/models"
)

var categoryType string

// Cmd represents the categories command group.
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List and maintain transaction categories",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Run:   listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	Run:   addFunc,
}

func init() {
	addCmd.Flags().StringVarP(&categoryType, "type", "t", string(models.TypeExpense),
		"Category type (Income, Expense or Adjust)")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	categories, err := root.Store().LoadCategories()
	if err != nil {
		root.Log.Fatalf("Failed to load categories: %v", err)
	}
	for _, c := range categories {
		fmt.Printf("%3d  %-24s %s\n", c.ID, c.Name, c.Type)
	}
}

func addFunc(cmd *cobra.Command, args []string) {
	switch models.TransactionType(categoryType) {
	case models.TypeIncome, models.TypeExpense, models.TypeAdjust:
	default:
		root.Log.Fatalf("Invalid category type: %s", categoryType)
	}

	ledger := root.Store()
	categories, err := ledger.LoadCategories()
	if err != nil {
		root.Log.Fatalf("Failed to load categories: %v", err)
	}

	nextID := int64(1)
	for _, c := range categories {
		if c.ID >= nextID {
			nextID = c.ID + 1
		}
	}

	categories = append(categories, models.Category{
		ID:   nextID,
		Name: args[0],
		Type: categoryType,
	})
	if err := ledger.SaveCategories(categories); err != nil {
		root.Log.Fatalf("Failed to save categories: %v", err)
	}
	fmt.Printf("Added category %d (%s)\n", nextID, args[0])
}
