package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/domain/ledger"
	"github.com/finsight/finsight-backend/internal/infrastructure/config"
	"github.com/finsight/finsight-backend/internal/infrastructure/storage"
)

// Expected CSV columns:
// id,date,amount,charged_amount,description,memo,category,account_id,is_internal_transfer
func main() {
	var (
		dbPath     string
		configFile string
		filePath   string
		accountID  string
	)
	flag.StringVar(&dbPath, "db", "", "Path to database file (uses config if not specified)")
	flag.StringVar(&configFile, "config", "config.yaml", "Configuration file path")
	flag.StringVar(&filePath, "file", "", "CSV file to import (required)")
	flag.StringVar(&accountID, "account", "", "Account ID to assign to rows missing one")
	flag.Parse()

	if filePath == "" {
		log.Fatal("-file is required")
	}

	cfg, err := config.LoadOrEnvWithPath(configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if dbPath != "" {
		cfg.Storage.DatabasePath = dbPath
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = store.Close() }()

	txs, skipped, err := readCSV(filePath, accountID)
	if err != nil {
		log.Fatalf("failed to read %s: %v", filePath, err)
	}

	count, err := store.ImportTransactions(txs)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	if accountID != "" {
		if err := store.SaveAccount(ledger.Account{ID: accountID, Name: accountID}); err != nil {
			log.Printf("Warning: failed to save account %s: %v", accountID, err)
		}
	}

	fmt.Printf("Imported %d transactions (%d rows skipped)\n", count, skipped)
}

func readCSV(path, defaultAccount string) ([]ledger.Transaction, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "date", "amount", "description"} {
		if _, ok := cols[required]; !ok {
			return nil, 0, fmt.Errorf("missing required column %q", required)
		}
	}

	var txs []ledger.Transaction
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		tx, ok := parseRow(row, cols, defaultAccount)
		if !ok {
			skipped++
			continue
		}
		txs = append(txs, tx)
	}
	return txs, skipped, nil
}

func parseRow(row []string, cols map[string]int, defaultAccount string) (ledger.Transaction, bool) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	date, err := parseDate(field("date"))
	if err != nil {
		return ledger.Transaction{}, false
	}
	amount, err := strconv.ParseFloat(field("amount"), 64)
	if err != nil {
		return ledger.Transaction{}, false
	}
	charged := 0.0
	if v := field("charged_amount"); v != "" {
		charged, _ = strconv.ParseFloat(v, 64)
	}

	accountID := field("account_id")
	if accountID == "" {
		accountID = defaultAccount
	}

	tx := ledger.Transaction{
		ID:                 field("id"),
		Date:               date,
		Amount:             amount,
		ChargedAmount:      charged,
		Description:        field("description"),
		Memo:               field("memo"),
		Category:           field("category"),
		AccountID:          accountID,
		IsInternalTransfer: field("is_internal_transfer") == "true" || field("is_internal_transfer") == "1",
	}
	if tx.ID == "" || !tx.Valid() {
		return ledger.Transaction{}, false
	}
	return tx, true
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
