package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/vocabsrs/internal/picker"
	"github.com/example/vocabsrs/pkg/models"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the vocabulary, optionally filtered",
		Run:   runList,
	}
	cmd.Flags().Int("max-reps", -1, "Only words with at most this many repetitions")
	cmd.Flags().Float64("max-ef", 0, "Only words with EF at or below this value")
	cmd.Flags().Float64("max-accuracy", -1, "Only words with usage accuracy at or below this value")
	cmd.Flags().IntP("limit", "l", -1, "Max words")
	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	maxReps, _ := cmd.Flags().GetInt("max-reps")
	maxEF, _ := cmd.Flags().GetFloat64("max-ef")
	maxAcc, _ := cmd.Flags().GetFloat64("max-accuracy")
	limit, _ := cmd.Flags().GetInt("limit")

	eng, _, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	items, err := eng.Words()
	if err != nil {
		exitErr("list words", err)
	}
	switch {
	case maxReps >= 0:
		items = picker.ByRepetitions(items, 0, maxReps, limit)
	case maxEF > 0:
		items = picker.ByEaseFactor(items, 0, maxEF, limit)
	case maxAcc >= 0:
		items = picker.ByUsageRatio(items, 0, maxAcc, limit)
	default:
		if limit >= 0 && len(items) > limit {
			items = items[:limit]
		}
	}
	printItems(items)
}

// printItems renders records as a table on stdout.
func printItems(items []models.ItemRecord) {
	if len(items) == 0 {
		fmt.Println("no words")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WORD\tDUE\tEF\tINTERVAL\tREPS\tUSES")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d/%d\n",
			it.Word,
			formatDue(it.NextDue),
			models.FormatEF(it.EaseFactor),
			it.Interval,
			it.Repetitions,
			it.CorrectUses, it.TotalUses,
		)
	}
	w.Flush()
}

func formatDue(nextDue int64) string {
	if nextDue == 0 {
		return "now"
	}
	return time.Unix(nextDue, 0).Format("2006-01-02 15:04")
}
