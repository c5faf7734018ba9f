package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "List words by session priority, most urgent first",
		Run:   runRank,
	}
	cmd.Flags().IntP("limit", "l", 0, "Max words (default: review.limit from config)")
	RootCmd.AddCommand(cmd)
}

func runRank(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	eng, cfg, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	if limit <= 0 {
		limit = cfg.Review.Limit
	}
	items, err := eng.PriorityRanked(time.Now(), limit)
	if err != nil {
		exitErr("rank words", err)
	}
	printItems(items)
}
