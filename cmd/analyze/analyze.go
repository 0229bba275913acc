// Package analyze implements the statement analysis command.
package analyze

import (
	"fmt"
	"os"

	"cardmatch/cmd/root"
	"cardmatch/internal/classifier"
	"cardmatch/internal/models"
	"cardmatch/internal/normalizer"
	"cardmatch/internal/profile"
	"cardmatch/internal/report"
	"cardmatch/internal/store"

	"github.com/spf13/cobra"
)

var (
	outputFile    string
	ambiguousFile string
)

// Cmd represents the analyze command.
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build a spend profile from a bank statement CSV",
	Long: `Analyze parses a statement CSV, categorizes each transaction, and
prints the per-category spend breakdown. Merchants that need manual
verification are listed; export them with --export-ambiguous, edit the
categories, and re-run with --corrections.`,
	Run: analyzeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write categorized transactions to a CSV file")
	Cmd.Flags().StringVar(&ambiguousFile, "export-ambiguous", "", "Write a corrections template for ambiguous merchants to a YAML file")
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Error("Input statement file is required (--input)")
		os.Exit(1)
	}

	st := store.NewStore(root.Cfg.Files.Rules, root.Cfg.Files.Cards, root.Cfg.Files.Corrections, root.Log)

	transactions, spendProfile, err := runPipeline(st)
	if err != nil {
		root.Log.WithError(err).Error("Analysis failed")
		os.Exit(1)
	}

	printSummary(spendProfile)

	ambiguous := profile.GroupAmbiguousMerchants(transactions)
	if len(ambiguous) > 0 {
		printAmbiguous(ambiguous)

		if ambiguousFile != "" {
			corrections := profile.DefaultCorrections(ambiguous)
			if err := st.SaveCorrections(corrections, ambiguousFile); err != nil {
				root.Log.WithError(err).Error("Failed to write corrections template")
				os.Exit(1)
			}
			fmt.Printf("\nCorrections template written to %s\n", ambiguousFile)
		}
	}

	if outputFile != "" {
		if err := report.WriteTransactionsCSV(transactions, outputFile, root.Delimiter(), root.Log); err != nil {
			root.Log.WithError(err).Error("Failed to write transactions CSV")
			os.Exit(1)
		}
	}
}

func runPipeline(st *store.Store) ([]models.Transaction, models.SpendProfile, error) {
	rows, headers, err := normalizer.LoadRows(root.SharedFlags.Input, root.Delimiter(), root.Log)
	if err != nil {
		return nil, models.SpendProfile{}, err
	}

	c := classifier.NewFromStore(st, root.Log)
	transactions := normalizer.New(c, root.Log).Normalize(rows, headers)

	if root.SharedFlags.Corrections != "" {
		st.CorrectionsFile = root.SharedFlags.Corrections
		corrections, err := st.LoadCorrections()
		if err != nil {
			return nil, models.SpendProfile{}, err
		}
		transactions = profile.ApplyCorrections(transactions, corrections)
	}

	return transactions, profile.Aggregate(transactions), nil
}

func printSummary(p models.SpendProfile) {
	fmt.Println("Spend profile:")
	for _, category := range models.AllCategories() {
		summary := p.Categories[category]
		if summary.Total.IsZero() {
			continue
		}
		fmt.Printf("  %-14s %12s  %5.1f%%\n", category, summary.Total.StringFixed(2), summary.Percentage)
	}
	fmt.Printf("  %-14s %12s\n", "total", p.GrandTotal.StringFixed(2))
}

func printAmbiguous(merchants []profile.AmbiguousMerchant) {
	fmt.Println("\nMerchants needing verification:")
	for _, m := range merchants {
		fmt.Printf("  %-30s %10s  guess=%s  options=%v\n",
			m.Description, m.Total.StringFixed(2), m.DefaultCategory, m.PossibleCategories)
	}
}
