// Package recommend implements the card ranking command.
package recommend

import (
	"fmt"
	"os"

	"cardmatch/cmd/root"
	"cardmatch/internal/classifier"
	"cardmatch/internal/models"
	"cardmatch/internal/normalizer"
	"cardmatch/internal/profile"
	"cardmatch/internal/report"
	"cardmatch/internal/scorer"
	"cardmatch/internal/store"

	"github.com/spf13/cobra"
)

var (
	limit      int
	format     string
	outputFile string
)

// Cmd represents the recommend command.
var Cmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank the card catalog against a statement's spend profile",
	Long: `Recommend runs the full pipeline: it parses the statement, builds the
spend profile, scores every card in the catalog, and prints the cards
ranked by projected net value over the chosen horizon.`,
	Run: recommendFunc,
}

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of cards to report (defaults from config)")
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or csv")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
}

func recommendFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Error("Input statement file is required (--input)")
		os.Exit(1)
	}

	st := store.NewStore(root.Cfg.Files.Rules, root.Cfg.Files.Cards, root.Cfg.Files.Corrections, root.Log)

	spendProfile, err := buildProfile(st)
	if err != nil {
		root.Log.WithError(err).Error("Failed to build spend profile")
		os.Exit(1)
	}

	catalog, err := st.LoadCards()
	if err != nil {
		root.Log.WithError(err).Error("Failed to load card catalog")
		os.Exit(1)
	}

	years := root.Years()
	bonus := root.IncludeWelcomeBonus()

	results := scorer.Rank(catalog, spendProfile, scorer.RankOptions{
		Limit:               resolveLimit(),
		IncludeWelcomeBonus: bonus,
		Years:               years,
	})

	if format == "text" {
		printResults(results, years)
		return
	}

	rec := report.NewRecommendation(spendProfile, results, years, bonus)
	data, err := report.NewGenerator(root.Log).Generate(rec, format)
	if err != nil {
		root.Log.WithError(err).Error("Failed to generate report")
		os.Exit(1)
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		root.Log.WithError(err).Error("Failed to write report file")
		os.Exit(1)
	}
	root.Log.WithField("file", outputFile).Info("Report written")
}

func resolveLimit() int {
	if limit > 0 {
		return limit
	}
	if root.Cfg != nil && root.Cfg.Scoring.Limit > 0 {
		return root.Cfg.Scoring.Limit
	}
	return scorer.DefaultLimit
}

func buildProfile(st *store.Store) (models.SpendProfile, error) {
	rows, headers, err := normalizer.LoadRows(root.SharedFlags.Input, root.Delimiter(), root.Log)
	if err != nil {
		return models.SpendProfile{}, err
	}

	c := classifier.NewFromStore(st, root.Log)
	transactions := normalizer.New(c, root.Log).Normalize(rows, headers)

	if root.SharedFlags.Corrections != "" {
		st.CorrectionsFile = root.SharedFlags.Corrections
		corrections, err := st.LoadCorrections()
		if err != nil {
			return models.SpendProfile{}, err
		}
		transactions = profile.ApplyCorrections(transactions, corrections)
	}

	return profile.Aggregate(transactions), nil
}

func printResults(results []models.ScoredResult, years int) {
	fmt.Printf("Top cards over %d year(s):\n", years)
	for i, r := range results {
		fmt.Printf("%2d. %-40s net %10s  (rewards %s/yr, bonus %s, fee %s/yr)\n",
			i+1, r.CardName, r.NetValue.StringFixed(2),
			r.AnnualRewards.StringFixed(2), r.WelcomeBonusValue.StringFixed(2),
			r.AnnualFee.StringFixed(2))
		if r.Notes != "" {
			fmt.Printf("    %s\n", r.Notes)
		}
	}
}
