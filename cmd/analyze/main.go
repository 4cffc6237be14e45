package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/finsight/finsight-backend/internal/application/service"
	"github.com/finsight/finsight-backend/internal/domain/merchant"
	"github.com/finsight/finsight-backend/internal/domain/recurring"
	"github.com/finsight/finsight-backend/internal/infrastructure/config"
	"github.com/finsight/finsight-backend/internal/infrastructure/logging"
	"github.com/finsight/finsight-backend/internal/infrastructure/storage"
)

func main() {
	var (
		dbPath     string
		configFile string
		topN       int
	)
	flag.StringVar(&dbPath, "db", "", "Path to database file (uses config if not specified)")
	flag.StringVar(&configFile, "config", "", "Configuration file path")
	flag.IntVar(&topN, "top", 10, "Number of merchants to show in the spending breakdown")
	flag.Parse()

	cfg, err := config.LoadOrEnvWithPath(configPath(configFile))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if dbPath != "" {
		cfg.Storage.DatabasePath = dbPath
	}

	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "analyze")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = store.Close() }()

	svc := service.NewAnalysisService(store, cfg.Detection, logger)

	fmt.Println("📊 RECURRING PATTERN REPORT")
	fmt.Println("=" + strings.Repeat("=", 60))
	fmt.Printf("Database: %s\n", cfg.Storage.DatabasePath)
	fmt.Printf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	printCharges(svc)
	printIncome(svc)
	printSpending(svc, topN)
	printInsights(svc)
}

func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return "config.yaml"
}

func printCharges(svc *service.AnalysisService) {
	fmt.Println("💳 RECURRING CHARGES")
	fmt.Println(strings.Repeat("-", 40))

	patterns, err := svc.RecurringCharges(storage.TransactionFilters{})
	if err != nil {
		if errors.Is(err, recurring.ErrEmptyDataset) {
			fmt.Println("No transactions found.")
			fmt.Println()
			return
		}
		log.Printf("Error detecting recurring charges: %v", err)
		return
	}

	fmt.Printf("%-30s %-12s %10s %8s\n", "Series", "Frequency", "Average", "Count")
	fmt.Println(strings.Repeat("-", 64))
	for _, p := range patterns {
		fmt.Printf("%-30s %-12s %10.2f %8d\n",
			truncate(p.SeriesKey, 30), p.Frequency, p.AverageAmount, p.Occurrences)
	}
	fmt.Printf("\nProjected annual total: %.2f\n\n", recurring.AnnualizedTotal(patterns))
}

func printIncome(svc *service.AnalysisService) {
	fmt.Println("💰 RECURRING INCOME")
	fmt.Println(strings.Repeat("-", 40))

	patterns, err := svc.RecurringIncome(storage.TransactionFilters{})
	if err != nil {
		if errors.Is(err, recurring.ErrEmptyDataset) {
			fmt.Println("No transactions found.")
			fmt.Println()
			return
		}
		log.Printf("Error detecting recurring income: %v", err)
		return
	}

	for _, p := range patterns {
		next := ""
		if p.NextExpectedDate != nil {
			next = p.NextExpectedDate.Format("2006-01-02")
		}
		fmt.Printf("%-30s %-12s %10.2f next: %s\n",
			truncate(p.SeriesKey, 30), p.Frequency, p.AverageAmount, next)
	}
	fmt.Println()
}

func printSpending(svc *service.AnalysisService, topN int) {
	fmt.Println("🏪 TOP MERCHANTS BY SPENDING")
	fmt.Println(strings.Repeat("-", 40))

	spends, err := svc.SpendingByMerchant(merchant.SpendingOptions{TopN: topN})
	if err != nil {
		log.Printf("Error computing spending breakdown: %v", err)
		return
	}

	for i, s := range spends {
		fmt.Printf("%2d. %-30s %10.2f (%d transactions)\n",
			i+1, truncate(s.Merchant, 30), s.TotalAmount, s.TransactionCount)
	}
	fmt.Println()
}

func printInsights(svc *service.AnalysisService) {
	fmt.Println("💡 INSIGHTS")
	fmt.Println(strings.Repeat("-", 40))

	out, err := svc.Insights()
	if err != nil {
		if errors.Is(err, recurring.ErrEmptyDataset) {
			fmt.Println("No transactions found.")
			return
		}
		log.Printf("Error generating insights: %v", err)
		return
	}
	if len(out) == 0 {
		fmt.Println("Nothing noteworthy this period.")
		return
	}
	for _, insight := range out {
		fmt.Printf("- %s\n", insight)
	}
}

// truncate shortens a series key for column display. Operates on runes so
// Hebrew keys survive intact.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
