package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"artist-mgmt/internal/app"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server. Usage:

	artist-mgmt server
`,
	Run: func(cmd *cobra.Command, args []string) {
		application, err := app.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start server: %v\n", err)
			os.Exit(1)
		}
		if err := application.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
