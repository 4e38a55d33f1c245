// Package store provides file-backed persistence for the ledger: accounts
// and categories as YAML, the transaction log as CSV.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"walnutbook/csv-import/internal/logging"
	"walnutbook/csv-import/internal/models"
)

const (
	accountsFile     = "accounts.yaml"
	categoriesFile   = "categories.yaml"
	transactionsFile = "transactions.csv"
)

// accountsDoc is the on-disk shape of the accounts file.
type accountsDoc struct {
	Accounts []models.Account `yaml:"accounts"`
}

// categoriesDoc is the on-disk shape of the categories file.
type categoriesDoc struct {
	Categories []models.Category `yaml:"categories"`
}

// LedgerStore manages loading and saving of ledger data in a data directory.
type LedgerStore struct {
	dir    string
	logger logging.Logger
}

// NewLedgerStore creates a store rooted at dir. The directory is created on
// first write, not here.
func NewLedgerStore(dir string, logger logging.Logger) *LedgerStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &LedgerStore{dir: dir, logger: logger}
}

// LoadAccounts loads all accounts. A missing file yields an empty slice,
// not an error.
func (s *LedgerStore) LoadAccounts() ([]models.Account, error) {
	path := filepath.Join(s.dir, accountsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, path).Debug("Accounts file not found")
			return []models.Account{}, nil
		}
		return nil, fmt.Errorf("error reading accounts file: %w", err)
	}

	var doc accountsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing accounts file: %w", err)
	}
	return doc.Accounts, nil
}

// GetAccount returns the account with the given id.
func (s *LedgerStore) GetAccount(id int64) (*models.Account, error) {
	accounts, err := s.LoadAccounts()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, fmt.Errorf("account %d not found", id)
}

// SaveAccounts writes the full account list back to disk.
func (s *LedgerStore) SaveAccounts(accounts []models.Account) error {
	data, err := yaml.Marshal(accountsDoc{Accounts: accounts})
	if err != nil {
		return fmt.Errorf("error marshaling accounts: %w", err)
	}
	return s.writeFile(accountsFile, data)
}

// LoadCategories loads all categories, seeding the default adjust
// categories when the file does not exist yet.
func (s *LedgerStore) LoadCategories() ([]models.Category, error) {
	path := filepath.Join(s.dir, categoriesFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultCategories(), nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var doc categoriesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return doc.Categories, nil
}

// SaveCategories writes the full category list back to disk.
func (s *LedgerStore) SaveCategories(categories []models.Category) error {
	data, err := yaml.Marshal(categoriesDoc{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}
	return s.writeFile(categoriesFile, data)
}

// ResolveCategory maps a free-text category name to its id,
// case-insensitively. Unknown names resolve to nil without error; the
// import keeps going and the transaction stays uncategorized.
func (s *LedgerStore) ResolveCategory(name string) (*int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	categories, err := s.LoadCategories()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			id := c.ID
			return &id, nil
		}
	}
	return nil, nil
}

// LoadTransactions loads the full transaction log. A missing file yields an
// empty slice.
func (s *LedgerStore) LoadTransactions() ([]models.Transaction, error) {
	path := filepath.Join(s.dir, transactionsFile)
	file, err := os.Open(path) // #nosec G304 -- data directory is user-configured
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error opening transactions file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close transactions file")
		}
	}()

	var transactions []models.Transaction
	if err := gocsv.UnmarshalFile(file, &transactions); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error parsing transactions file: %w", err)
	}
	return transactions, nil
}

// AppendTransactions assigns ids and creation timestamps to the batch and
// appends it to the transaction log. Duplicate filtering has already
// happened by the time a batch reaches the store.
func (s *LedgerStore) AppendTransactions(batch []models.Transaction) error {
	existing, err := s.LoadTransactions()
	if err != nil {
		return err
	}

	nextID := int64(1)
	for _, tx := range existing {
		if tx.ID >= nextID {
			nextID = tx.ID + 1
		}
	}

	now := time.Now().Format("2006-01-02 15:04:05")
	for i := range batch {
		batch[i].ID = nextID
		nextID++
		if batch[i].CreatedAt == "" {
			batch[i].CreatedAt = now
		}
	}

	all := append(existing, batch...)
	data, err := gocsv.MarshalString(&all)
	if err != nil {
		return fmt.Errorf("error marshaling transactions: %w", err)
	}
	if err := s.writeFile(transactionsFile, []byte(data)); err != nil {
		return err
	}

	s.logger.WithField(logging.FieldCount, len(batch)).Info("Appended transactions to ledger")
	return nil
}

// writeFile writes a data file inside the store directory, creating the
// directory on demand.
func (s *LedgerStore) writeFile(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return fmt.Errorf("error creating data directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}

// defaultCategories mirrors the seed data the ledger starts with: the two
// adjust categories used by balance corrections.
func defaultCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Add", Type: "Adjust"},
		{ID: 2, Name: "Subtract", Type: "Adjust"},
	}
}
