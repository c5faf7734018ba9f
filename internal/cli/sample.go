package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Pick random words from the vocabulary",
		Run:   runSample,
	}
	cmd.Flags().IntP("limit", "l", 0, "Max words (default: review.limit from config)")
	RootCmd.AddCommand(cmd)
}

func runSample(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	eng, cfg, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	if limit <= 0 {
		limit = cfg.Review.Limit
	}
	items, err := eng.RandomSample(limit)
	if err != nil {
		exitErr("sample words", err)
	}
	printItems(items)
}
