package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mortcalc/mortcalc/internal/calculators"
	"github.com/mortcalc/mortcalc/internal/config"
	"github.com/mortcalc/mortcalc/internal/domain"
	"github.com/mortcalc/mortcalc/internal/explain"
	"github.com/mortcalc/mortcalc/internal/finance"
	"github.com/mortcalc/mortcalc/internal/logging"
	"github.com/mortcalc/mortcalc/internal/output"
	"github.com/mortcalc/mortcalc/internal/server"
	"github.com/mortcalc/mortcalc/internal/store"
	"github.com/mortcalc/mortcalc/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var registry = calculators.BuiltIn()

var rootCmd = &cobra.Command{
	Use:   "mortcalc",
	Short: "Mortgage Calculator CLI",
	Long:  "Mortgage and home-buying scenario calculators: payments, payoff strategies, qualification and rent-vs-buy analysis",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available calculators",
	Run: func(cmd *cobra.Command, args []string) {
		for _, desc := range registry.All() {
			fmt.Printf("%-22s %s\n", desc.Slug, desc.Description)
		}
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc [slug]",
	Short: "Run a single calculator with --set key=value inputs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		desc, ok := registry.Lookup(args[0])
		if !ok {
			log.Fatalf("unknown calculator %q, see 'mortcalc list'", args[0])
		}

		pairs, _ := cmd.Flags().GetStringArray("set")
		params, err := parseSetPairs(pairs)
		if err != nil {
			log.Fatal(err)
		}

		if missing := desc.MissingRequired(params); len(missing) > 0 {
			log.Fatalf("missing required inputs: %s", strings.Join(missing, ", "))
		}

		result := desc.Run(params)
		format, _ := cmd.Flags().GetString("format")
		if err := writeResult(desc, params, result, format); err != nil {
			log.Fatal(err)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [scenario-file]",
	Short: "Run every scenario in a YAML file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewScenarioParser(registry)
		file, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		for _, scenario := range file.Scenarios {
			desc, _ := registry.Lookup(scenario.Calculator)
			result := desc.Run(calculators.Params(scenario.Params))
			if err := writeNamedResult(scenario.Name, desc, scenario.Params, result, format); err != nil {
				log.Fatal(err)
			}
			fmt.Println()
		}
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print a full amortization schedule",
	Run: func(cmd *cobra.Command, args []string) {
		terms := domain.LoanTerms{
			Principal:         decimalFlag(cmd, "amount"),
			AnnualRatePercent: decimalFlag(cmd, "rate"),
			TermYears:         intFlag(cmd, "years"),
		}
		if !terms.Valid() {
			log.Fatal("schedule requires positive --amount, non-negative --rate and positive --years")
		}

		plan := &domain.ExtraPaymentPlan{
			ExtraMonthly: decimalFlag(cmd, "extra-monthly"),
			ExtraAnnual:  decimalFlag(cmd, "extra-annual"),
			LumpSum:      decimalFlag(cmd, "lump-sum"),
			LumpSumMonth: 1,
		}
		if plan.IsZero() {
			plan = nil
		}

		schedule := finance.BuildSchedule(terms, plan)
		cf := output.NewConsoleFormatter()
		if err := cf.WriteSchedule(os.Stdout, schedule); err != nil {
			log.Fatal(err)
		}
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain [slug]",
	Short: "Show the formulas behind a calculator",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		desc, ok := registry.Lookup(args[0])
		if !ok {
			log.Fatalf("unknown calculator %q, see 'mortcalc list'", args[0])
		}

		steps := explain.For(desc.Slug)
		if len(steps) == 0 {
			log.Fatalf("no formula walkthrough for %q", desc.Slug)
		}

		fmt.Printf("%s\n%s\n\n", desc.Name, strings.Repeat("=", len(desc.Name)))
		for _, step := range steps {
			fmt.Printf("%s\n    %s\n    %s\n\n", step.Field, step.Formula, step.Explanation)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewScenarioParser(registry)
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Scenario file %s is valid\n", args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculator JSON API",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadServerConfig()
		verbose, _ := cmd.Flags().GetBool("debug")
		logger := logging.NewStdLogger(verbose)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var st store.ScenarioStore
		if cfg.RedisAddr != "" {
			rs, err := store.NewRedisStore(ctx, cfg.RedisAddr)
			if err != nil {
				log.Fatalf("failed to connect to redis at %s: %v", cfg.RedisAddr, err)
			}
			defer rs.Close()
			st = rs
		} else {
			st = store.NewMemoryStore()
		}

		srv := server.NewServer(registry, st, logger, cfg)
		if err := srv.Run(ctx); err != nil {
			log.Fatal(err)
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.NewModel(registry), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.Fatalf("failed to run TUI: %v", err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "mortcalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// parseSetPairs turns repeated --set key=value flags into a parameter map.
func parseSetPairs(pairs []string) (calculators.Params, error) {
	params := make(calculators.Params, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", pair)
		}
		params[key] = value
	}
	return params, nil
}

func writeResult(desc *calculators.Descriptor, params calculators.Params, result *domain.Result, format string) error {
	return writeNamedResult(desc.Name, desc, params, result, format)
}

func writeNamedResult(name string, desc *calculators.Descriptor, params map[string]string, result *domain.Result, format string) error {
	switch format {
	case "console", "":
		if result == nil {
			fmt.Printf("%s: these inputs do not describe a workable scenario\n", name)
			return nil
		}
		return output.NewConsoleFormatter().Write(os.Stdout, name, result)
	case "json":
		return output.NewJSONFormatter().Write(os.Stdout, result)
	case "email":
		if result == nil {
			return fmt.Errorf("no result to export for %s", name)
		}
		return output.NewEmailFormatter().Write(os.Stdout, name, result, params)
	default:
		return fmt.Errorf("unknown format %q, expected console, json or email", format)
	}
}

func decimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	s, _ := cmd.Flags().GetString(name)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func intFlag(cmd *cobra.Command, name string) int {
	n, _ := cmd.Flags().GetInt(name)
	return n
}

func init() {
	calcCmd.Flags().StringArray("set", nil, "calculator input as key=value, repeatable")
	calcCmd.Flags().String("format", "console", "output format: console, json or email")

	runCmd.Flags().String("format", "console", "output format: console, json or email")

	scheduleCmd.Flags().String("amount", "0", "loan amount")
	scheduleCmd.Flags().String("rate", "0", "annual interest rate percent")
	scheduleCmd.Flags().Int("years", 30, "loan term in years")
	scheduleCmd.Flags().String("extra-monthly", "0", "extra principal each month")
	scheduleCmd.Flags().String("extra-annual", "0", "extra principal once a year")
	scheduleCmd.Flags().String("lump-sum", "0", "one-time extra principal at month 1")

	serveCmd.Flags().Bool("debug", false, "verbose request logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
