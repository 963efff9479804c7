// Package cli implements the biomine command-line client.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "dev"

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", apiErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var host string

	rootCmd := &cobra.Command{
		Use:           "biomine",
		Short:         "Query and browse paged biological result tables",
		Long:          "Command-line client for the biomine result-table API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Precedence: flag > env > default.
			if !cmd.Flags().Changed("host") {
				if v := os.Getenv("BIOMINE_HOST"); v != "" {
					host = v
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&host, "host", "http://localhost:8080", "API server base URL")
	addOutputFlag(rootCmd.PersistentFlags())

	client := func() *Client { return NewClient(host) }

	rootCmd.AddCommand(newQueryCmd(client))
	rootCmd.AddCommand(newTableCmd(client))
	rootCmd.AddCommand(newTemplatesCmd(client))
	rootCmd.AddCommand(newBeginCmd(client))
	rootCmd.AddCommand(newHistoryCmd(client))
	rootCmd.AddCommand(newExportCmd(client))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func addOutputFlag(fs *pflag.FlagSet) {
	fs.String("output", "table", "Output format: table or json")
}

func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Flags().GetString("output")
	return v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
