package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/vocabsrs/internal/config"
)

func init() {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print an example configuration file",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(config.ExampleConfig())
		},
	}
	RootCmd.AddCommand(cmd)
}
