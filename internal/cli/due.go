package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List words due for review, oldest overdue first",
		Run:   runDue,
	}
	cmd.Flags().IntP("limit", "l", 0, "Max words (default: review.limit from config)")
	RootCmd.AddCommand(cmd)
}

func runDue(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	eng, cfg, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	if limit <= 0 {
		limit = cfg.Review.Limit
	}
	items, err := eng.DueWords(limit)
	if err != nil {
		exitErr("list due words", err)
	}
	printItems(items)
}
