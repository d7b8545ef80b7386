package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"finance-ledger/internal/aggregation"
	"finance-ledger/internal/config"
	"finance-ledger/internal/domain"
	"finance-ledger/internal/gateway"
	"finance-ledger/internal/usecase"
)

const usageText = `Usage: ledger [-file path] <command> [flags]

Commands:
  list                                      show all transactions
  add    -date -category -amount -type      record a transaction
  delete -date -category -amount -type      remove a matching transaction
  import -from path                         replace all transactions with another file
  export -to path                           write transactions sorted by date
  chart  [-mode None|Monthly|Weekly]        show the income/expense breakdown
  summary [-mode Monthly|Weekly|None]       show income and expense totals per period
`

var errUsage = errors.New("invalid usage")

func main() {
	// Define command-line flags
	fileFlag := flag.String("file", "", "Path to the ledger CSV file (default from LEDGER_CSV_FILE or data.csv)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	if *fileFlag != "" {
		cfg.CSVFile = *fileFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, flag.Args(), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	logger := cfg.Logger()

	// --- Dependency Injection (Wiring the application) ---
	csvRepo := gateway.NewCSVTransactionRepository(logger, cfg.Currency)
	ledger := usecase.NewLedgerUseCase(csvRepo, usecase.Settings{
		Path:     cfg.CSVFile,
		Currency: cfg.Currency,
		Palette:  aggregation.DefaultPalette,
	}, logger)

	if err := ledger.Open(ctx); err != nil {
		return err
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		return listTransactions(ledger.Entries(), cfg.Currency, stdout)

	case "add", "delete":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		date := fs.String("date", "", "Date (YYYY-MM-DD)")
		category := fs.String("category", "", "Category")
		amount := fs.String("amount", "", "Amount")
		kind := fs.String("type", string(domain.Expense), "Type (Income or Expense)")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if *date == "" || *category == "" || *amount == "" || *kind == "" {
			return fmt.Errorf("%w: -date, -category, -amount and -type are required", errUsage)
		}

		tx, err := domain.NewTransaction(*date, *category, *amount, *kind)
		if err != nil {
			return err
		}
		if cmd == "add" {
			return ledger.Add(ctx, tx)
		}
		return ledger.Delete(ctx, tx)

	case "import":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		from := fs.String("from", "", "Path of the CSV file to import")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if *from == "" {
			return fmt.Errorf("%w: -from is required", errUsage)
		}
		return ledger.Import(ctx, *from)

	case "export":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		to := fs.String("to", "", "Path of the CSV file to write")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if *to == "" {
			return fmt.Errorf("%w: -to is required", errUsage)
		}
		return ledger.Export(ctx, *to)

	case "chart":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		modeStr := fs.String("mode", string(domain.PeriodNone), "Chart filter: None, Monthly or Weekly")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		mode, err := domain.ParsePeriodMode(*modeStr)
		if err != nil {
			return err
		}

		// --- Present the Output ---
		var writer gateway.ChartWriter = gateway.NewTextChartWriter(stdout)
		if cfg.Output == config.OutputJSON {
			writer = gateway.NewJSONChartWriter(stdout)
		}
		return writer.Render(ctx, ledger.Chart(mode))

	case "summary":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		modeStr := fs.String("mode", string(domain.PeriodMonthly), "Period: Monthly, Weekly or None")
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		mode, err := domain.ParsePeriodMode(*modeStr)
		if err != nil {
			return err
		}

		var writer gateway.SummaryWriter = gateway.NewTextChartWriter(stdout)
		if cfg.Output == config.OutputJSON {
			writer = gateway.NewJSONChartWriter(stdout)
		}
		return writer.RenderSummary(ctx, mode, ledger.Summary(mode))
	}

	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func listTransactions(txs []domain.Transaction, currency string, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tAMOUNT\tTYPE")
	for _, tx := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			tx.Date.Format(domain.DateLayout), tx.Category, domain.FormatAmount(currency, tx.Amount), tx.Kind)
	}
	return tw.Flush()
}
