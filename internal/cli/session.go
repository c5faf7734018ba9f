package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "List words reviewable in the current session",
		Long: "List the words a session started --since ago may review: due " +
			"words, near-due words, and words not yet touched this session.",
		Run: runSession,
	}
	cmd.Flags().Duration("since", 30*time.Minute, "How long ago the session started")
	RootCmd.AddCommand(cmd)
}

func runSession(cmd *cobra.Command, args []string) {
	since, _ := cmd.Flags().GetDuration("since")

	eng, _, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	now := time.Now()
	items, err := eng.SessionReviewable(now, now.Add(-since))
	if err != nil {
		exitErr("list session words", err)
	}
	printItems(items)
}
