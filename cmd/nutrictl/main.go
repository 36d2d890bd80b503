package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - totals: Per-meal kcal totals of a day, or of a week with -week
// - search: Search the ingredient catalogue
// - export: Store a workbook snapshot in the configured bucket

func main() {
	totalsCmd := flag.NewFlagSet("totals", flag.ExitOnError)
	searchCmd := flag.NewFlagSet("search", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	// totals parameters
	totalsDate := totalsCmd.String("date", "", "ISO date (YYYY-MM-DD), today when empty")
	totalsWeek := totalsCmd.Bool("week", false, "Report seven days starting at -date")

	// search parameters
	searchQuery := searchCmd.String("q", "", "Text matched against label and category")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Totals: totalsFlags{
			cmd:  totalsCmd,
			date: totalsDate,
			week: totalsWeek,
		},
		Search: searchFlags{
			cmd:   searchCmd,
			query: searchQuery,
		},
		Export: exportFlags{
			cmd: exportCmd,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Totals totalsFlags
	Search searchFlags
	Export exportFlags
}

type totalsFlags struct {
	cmd  *flag.FlagSet
	date *string
	week *bool
}

type searchFlags struct {
	cmd   *flag.FlagSet
	query *string
}

type exportFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "totals":
		return handleTotals(ctx, flags)
	case "search":
		return handleSearch(ctx, flags)
	case "export":
		return handleExport(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleTotals(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Totals.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse totals flags")
	}

	app, err := newApp(ctx)
	if err != nil {
		return err
	}

	return runTotals(ctx, app, *flags.Totals.date, *flags.Totals.week)
}

func handleSearch(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Search.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse search flags")
	}

	if *flags.Search.query == "" {
		return errors.New("-q flag is required for search command")
	}

	app, err := newApp(ctx)
	if err != nil {
		return err
	}

	return runSearch(ctx, app, *flags.Search.query)
}

func handleExport(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	app, err := newApp(ctx)
	if err != nil {
		return err
	}

	return runExport(ctx, app)
}

func printUsage() {
	fmt.Println("Usage: nutrictl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  totals    Print the kcal totals of a day or a week")
	fmt.Println("  search    Search the ingredient catalogue")
	fmt.Println("  export    Store a workbook snapshot in the configured bucket")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  nutrictl totals -date 2025-07-25")
	fmt.Println("  nutrictl totals -date 2025-07-21 -week")
	fmt.Println("  nutrictl search -q pomme")
	fmt.Println("  nutrictl export")
	fmt.Println()
	fmt.Println("Configuration is read from config/config.yaml and SHEETS_* environment variables.")
}
