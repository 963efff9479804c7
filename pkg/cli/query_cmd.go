package cli

import (
	"github.com/spf13/cobra"
)

func newQueryCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql>",
		Short: "Run a SQL query and show the first page of results",
		Example: `  biomine query "SELECT symbol, organism FROM genes ORDER BY symbol"
  biomine query "SELECT * FROM proteins" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client().ExecuteQuery(args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(cmd.OutOrStdout(), view)
			}
			printView(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newHistoryCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List past query executions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := client().History()
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(cmd.OutOrStdout(), entries)
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.CreatedAt, e.Status, e.SQL})
			}
			PrintTable(cmd.OutOrStdout(), []string{"created", "status", "sql"}, rows)
			return nil
		},
	}
}
