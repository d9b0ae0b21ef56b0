package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"dcasweep/internal/config"
	"dcasweep/internal/engine"
	"dcasweep/internal/repository"
	"dcasweep/types"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	configPath := flag.String("config", "dcasweep.yaml", "path to YAML config file")
	dataPath := flag.String("data", "", "path to a YYYY-MM,price file (overrides config)")
	dbURL := flag.String("db", "", "postgres URL for the price database (overrides config)")
	ticker := flag.String("ticker", "", "ticker to load from the database (overrides config)")
	csvOut := flag.String("csv-out", "", "write per-window results to this CSV file")
	xlsxOut := flag.String("xlsx-out", "", "write per-window results to this Excel file")
	verbose := flag.Bool("verbose", false, "log every simulated transaction")
	progress := flag.Bool("progress", true, "show a progress bar during the sweep")
	flag.Parse()

	// Optional .env bootstrap; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dataPath != "" {
		cfg.Data.CSVPath = *dataPath
	}
	if *dbURL != "" {
		cfg.Data.DatabaseURL = *dbURL
	}
	if *ticker != "" {
		cfg.Data.Ticker = *ticker
	}
	if *csvOut != "" {
		cfg.Report.CSVPath = *csvOut
	}
	if *xlsxOut != "" {
		cfg.Report.XLSXPath = *xlsxOut
	}
	if *verbose {
		cfg.Report.Verbose = true
	}

	source, cleanup, err := newPriceSource(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	var observer engine.TradeObserver = engine.NoopObserver{}
	if cfg.Report.Verbose {
		observer = engine.LogObserver{W: os.Stderr}
	}

	eng := engine.NewEngine(
		source,
		cfg.Data.Ticker,
		engine.NewStrategyConfig(
			decimal.NewFromFloat(cfg.Strategy.PurchaseAmount),
			cfg.Strategy.PurchasePeriod,
			cfg.Strategy.HoldPeriod,
			cfg.Strategy.SellPeriod,
		),
		engine.NewReportingConfig(cfg.Strategy.ExpectedAnnualizedReturn, *progress),
		observer,
	)

	report, err := eng.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	if err := report.WriteText(os.Stdout); err != nil {
		log.Fatal(err)
	}
	report.WriteSummaryTable(os.Stdout)

	if cfg.Report.CSVPath != "" {
		if err := report.WriteWindowsCSVFile(cfg.Report.CSVPath); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.Report.XLSXPath != "" {
		if err := report.WriteWindowsXLSXFile(cfg.Report.XLSXPath); err != nil {
			log.Fatal(err)
		}
	}
}

type priceSource interface {
	GetMonthlyPrices(ticker string, ctx context.Context) (types.PriceSeries, error)
}

// newPriceSource picks the configured data source: a flat price file when
// one is set, otherwise the Postgres price database.
func newPriceSource(cfg *config.Config) (priceSource, func(), error) {
	if cfg.Data.CSVPath != "" {
		return repository.NewCSVFile(cfg.Data.CSVPath), func() {}, nil
	}
	if cfg.Data.DatabaseURL == "" {
		return nil, nil, errNoDataSource
	}
	db, err := repository.NewDatabase(cfg.Data.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return &db, db.Close, nil
}

var errNoDataSource = errors.New("no data source configured: set a price file or a database URL")
