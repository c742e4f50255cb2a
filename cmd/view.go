package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"heurun.dev/pkg/heurun/internal/adapter"
	"heurun.dev/pkg/heurun/internal/controller"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the summary of the previous run",
		Long:  "Render the persisted summary of the previous run as a table.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := adapter.NewYAMLReportStore()

			summary, err := store.Load(viper.GetString(reportStoreKey))
			if err != nil {
				return err
			}

			cmd.Print(controller.RenderSummaryTable(summary))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
