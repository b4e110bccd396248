package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abundis28/mintern/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize mintern configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the front end and writes a .mintern.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
