package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "use WORD...",
		Short: "Record a usage of one or more words",
		Long: "Record that a word was used, incrementing its usage counters. " +
			"By default the usage counts as correct; pass --wrong to record a miss.",
		Args: cobra.MinimumNArgs(1),
		Run:  runUse,
	}
	cmd.Flags().Bool("wrong", false, "Record the usage as incorrect")
	RootCmd.AddCommand(cmd)
}

func runUse(cmd *cobra.Command, args []string) {
	wrong, _ := cmd.Flags().GetBool("wrong")

	eng, _, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	for _, word := range args {
		rec, err := eng.RecordUsage(word, !wrong)
		if err != nil {
			exitErr(fmt.Sprintf("record usage for %q", word), err)
		}
		fmt.Printf("%s: %d/%d correct\n", rec.Word, rec.CorrectUses, rec.TotalUses)
	}
}
