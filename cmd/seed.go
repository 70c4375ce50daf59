package cmd

import (
	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace the catalog with the fixture products",
	Long: `Deletes every product and loads the fixture catalog. Products written
before a failure are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.seed.RunSeed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
