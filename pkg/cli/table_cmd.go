package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newTableCmd(client func() *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Inspect and navigate a result table",
	}
	cmd.AddCommand(newTableShowCmd(client))
	cmd.AddCommand(newTablePageCmd(client))
	cmd.AddCommand(newTablePageSizeCmd(client))
	cmd.AddCommand(newTableMoveColumnCmd(client))
	cmd.AddCommand(newTableColumnVisibilityCmd(client))
	return cmd
}

func newTableShowCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "show <table-id>",
		Short: "Show the current page of a result table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client().GetTable(args[0])
			if err != nil {
				return err
			}
			return writeView(cmd, view)
		},
	}
}

func newTablePageCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "page <table-id> <first|previous|next|last>",
		Short: "Move the table window and show the new page",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client().ChangePage(args[0], args[1])
			if err != nil {
				return err
			}
			return writeView(cmd, view)
		},
	}
}

func newTablePageSizeCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "page-size <table-id> <n>",
		Short: "Change the rows-per-page of a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			view, err := client().ChangePageSize(args[0], n)
			if err != nil {
				return err
			}
			return writeView(cmd, view)
		},
	}
}

func newTableMoveColumnCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "move-column <table-id> <display-index> <left|right>",
		Short: "Swap a column with its neighbour in display order",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			view, err := client().MoveColumn(args[0], index, args[2])
			if err != nil {
				return err
			}
			return writeView(cmd, view)
		},
	}
}

func newTableColumnVisibilityCmd(client func() *Client) *cobra.Command {
	var hide bool

	cmd := &cobra.Command{
		Use:   "column-visibility <table-id> <display-index>",
		Short: "Show or hide a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			view, err := client().SetColumnVisibility(args[0], index, !hide)
			if err != nil {
				return err
			}
			return writeView(cmd, view)
		},
	}
	cmd.Flags().BoolVar(&hide, "hide", false, "Hide the column instead of showing it")
	return cmd
}

func writeView(cmd *cobra.Command, view *TableView) error {
	if getOutputFormat(cmd) == "json" {
		return PrintJSON(cmd.OutOrStdout(), view)
	}
	printView(cmd.OutOrStdout(), view)
	return nil
}
