package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add WORD...",
		Short: "Add words to the vocabulary",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}
	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	eng, _, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	for _, word := range args {
		if err := eng.AddWord(word); err != nil {
			exitErr(fmt.Sprintf("add %q", word), err)
		}
	}
	fmt.Printf("added %d word(s)\n", len(args))
}
