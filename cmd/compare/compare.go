// Package compare implements the card comparison command.
package compare

import (
	"fmt"
	"os"

	"cardmatch/cmd/root"
	"cardmatch/internal/classifier"
	"cardmatch/internal/models"
	"cardmatch/internal/normalizer"
	"cardmatch/internal/profile"
	"cardmatch/internal/scorer"
	"cardmatch/internal/store"

	"github.com/spf13/cobra"
)

var (
	currentID  string
	proposedID string
)

// Cmd represents the compare command.
var Cmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two cards against a statement's spend profile",
	Long: `Compare scores two named cards from the catalog under identical
options and reports how much more the proposed card would earn than the
current one.`,
	Run: compareFunc,
}

func init() {
	Cmd.Flags().StringVar(&currentID, "current", "", "Card ID of the current card (required)")
	Cmd.Flags().StringVar(&proposedID, "new", "", "Card ID of the proposed card (required)")
	_ = Cmd.MarkFlagRequired("current")
	_ = Cmd.MarkFlagRequired("new")
}

func compareFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Error("Input statement file is required (--input)")
		os.Exit(1)
	}

	st := store.NewStore(root.Cfg.Files.Rules, root.Cfg.Files.Cards, root.Cfg.Files.Corrections, root.Log)

	rows, headers, err := normalizer.LoadRows(root.SharedFlags.Input, root.Delimiter(), root.Log)
	if err != nil {
		root.Log.WithError(err).Error("Failed to read statement")
		os.Exit(1)
	}

	c := classifier.NewFromStore(st, root.Log)
	transactions := normalizer.New(c, root.Log).Normalize(rows, headers)

	if root.SharedFlags.Corrections != "" {
		st.CorrectionsFile = root.SharedFlags.Corrections
		corrections, err := st.LoadCorrections()
		if err != nil {
			root.Log.WithError(err).Error("Failed to load corrections")
			os.Exit(1)
		}
		transactions = profile.ApplyCorrections(transactions, corrections)
	}

	spendProfile := profile.Aggregate(transactions)

	catalog, err := st.LoadCards()
	if err != nil {
		root.Log.WithError(err).Error("Failed to load card catalog")
		os.Exit(1)
	}

	years := root.Years()
	comparison, err := scorer.Compare(catalog, spendProfile, currentID, proposedID, scorer.ScoreOptions{
		IncludeWelcomeBonus: root.IncludeWelcomeBonus(),
		Years:               years,
	})
	if err != nil {
		root.Log.WithError(err).Error("Comparison failed")
		os.Exit(1)
	}

	printComparison(comparison, years)
}

func printComparison(c scorer.Comparison, years int) {
	fmt.Printf("Over %d year(s):\n", years)
	printSide("current", c.Current)
	printSide("proposed", c.Proposed)

	switch {
	case c.Difference.IsPositive():
		fmt.Printf("\n%s would earn %s more (%s per year)\n",
			c.Proposed.CardName, c.Difference.StringFixed(2), c.DifferencePerYear.StringFixed(2))
	case c.Difference.IsNegative():
		fmt.Printf("\n%s would earn %s less (%s per year)\n",
			c.Proposed.CardName, c.Difference.Abs().StringFixed(2), c.DifferencePerYear.Abs().StringFixed(2))
	default:
		fmt.Println("\nBoth cards project the same net value")
	}
}

func printSide(label string, r models.ScoredResult) {
	fmt.Printf("  %-9s %-40s net %10s\n", label, r.CardName, r.NetValue.StringFixed(2))
}
