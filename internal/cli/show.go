package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vocabsrs/pkg/models"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show WORD",
		Short: "Show one word's scheduling state",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}
	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	eng, _, closer, err := openEngine()
	if err != nil {
		exitErr("open engine", err)
	}
	defer closer()

	rec, err := eng.Word(args[0])
	if err != nil {
		exitErr(fmt.Sprintf("show %q", args[0]), err)
	}
	printItems([]models.ItemRecord{rec})
}
