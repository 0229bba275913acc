// Package classify implements the single-merchant classification command.
package classify

import (
	"fmt"

	"cardmatch/cmd/root"
	"cardmatch/internal/classifier"
	"cardmatch/internal/store"

	"github.com/spf13/cobra"
)

var description string

// Cmd represents the classify command.
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single merchant description",
	Long:  `Classify maps one merchant description to a spending category, reporting ambiguity and candidate categories.`,
	Run:   classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Merchant description to classify (required)")
	_ = Cmd.MarkFlagRequired("description")
}

func classifyFunc(cmd *cobra.Command, args []string) {
	st := store.NewStore(root.Cfg.Files.Rules, root.Cfg.Files.Cards, root.Cfg.Files.Corrections, root.Log)

	result := classifier.NewFromStore(st, root.Log).Classify(description)

	fmt.Printf("Category: %s\n", result.Category)
	if result.IsAmbiguous {
		fmt.Printf("Ambiguous: yes, candidates %v (first is the default guess)\n", result.PossibleCategories)
	}
}
