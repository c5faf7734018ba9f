package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vocabsrs/internal/srs"
	"github.com/example/vocabsrs/pkg/models"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review WORD [QUALITY]",
		Short: "Apply a review to a word",
		Long: "Apply one review of the given quality (0-5) to a word. Without " +
			"a quality argument the grade is derived from the word's usage " +
			"counters.",
		Args: cobra.RangeArgs(1, 2),
		Run:  runReview,
	}
	cmd.Flags().StringP("algorithm", "a", "", "Scheduling algorithm: classic, session or expanding (default: review.algorithm from config)")
	RootCmd.AddCommand(cmd)
}

func runReview(cmd *cobra.Command, args []string) {
	algoName, _ := cmd.Flags().GetString("algorithm")

	eng, cfg, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	if algoName == "" {
		algoName = cfg.Review.Algorithm
	}
	algo, err := srs.ParseAlgorithm(algoName)
	if err != nil {
		exitErr("parse algorithm", err)
	}

	word := args[0]
	if len(args) == 1 {
		rec, err := eng.ReviewFromUsage(word, algo)
		if err != nil {
			exitErr(fmt.Sprintf("review %q", word), err)
		}
		printItems([]models.ItemRecord{rec})
		return
	}

	quality, err := srs.ParseQuality(args[1])
	if err != nil {
		exitErr("parse quality", err)
	}
	rec, err := eng.Update(word, quality, algo)
	if err != nil {
		exitErr(fmt.Sprintf("review %q", word), err)
	}
	printItems([]models.ItemRecord{rec})
}
