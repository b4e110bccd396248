package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mintern",
	Short: "Server-rendered front end for the Mintern mentorship forum",
	Long: `Mintern serves the web front end of the Mintern Q&A and mentorship
forum. It renders the forum pages from the backend JSON API, handles
signup and mentor approval flows, and can export the forum as a static
HTML archive.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".mintern.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
