package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(client func() *Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse and run saved query templates",
	}
	cmd.AddCommand(newTemplatesListCmd(client))
	cmd.AddCommand(newTemplatesShowCmd(client))
	cmd.AddCommand(newTemplatesRunCmd(client))
	return cmd
}

func newTemplatesListCmd(client func() *Client) *cobra.Command {
	var aspect string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates, optionally filtered by aspect",
		Example: `  biomine templates list
  biomine templates list --aspect Genomics`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			templates, err := client().ListTemplates(aspect)
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(cmd.OutOrStdout(), templates)
			}
			rows := make([][]string, 0, len(templates))
			for _, t := range templates {
				rows = append(rows, []string{t.Name, t.Aspect, t.Title})
			}
			PrintTable(cmd.OutOrStdout(), []string{"name", "aspect", "title"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&aspect, "aspect", "", "Filter by aspect")
	return cmd
}

func newTemplatesShowCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one template including its SQL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := client().GetTemplate(args[0])
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(cmd.OutOrStdout(), tmpl)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:    %s\n", tmpl.Name)
			fmt.Fprintf(out, "Title:   %s\n", tmpl.Title)
			fmt.Fprintf(out, "Aspect:  %s\n", tmpl.Aspect)
			if tmpl.Comment != "" {
				fmt.Fprintf(out, "Comment: %s\n", tmpl.Comment)
			}
			fmt.Fprintf(out, "\n%s\n", tmpl.SQL)
			return nil
		},
	}
}

func newTemplatesRunCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "run <name>",
		Short: "Execute a template and show the first page of results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := client().RunTemplate(args[0])
			if err != nil {
				return err
			}
			return writeView(cmd, view)
		},
	}
}

func newBeginCmd(client func() *Client) *cobra.Command {
	return &cobra.Command{
		Use:   "begin",
		Short: "Show the landing summary of template aspects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			aspects, err := client().BeginPage()
			if err != nil {
				return err
			}
			if getOutputFormat(cmd) == "json" {
				return PrintJSON(cmd.OutOrStdout(), aspects)
			}
			out := cmd.OutOrStdout()
			for _, a := range aspects {
				fmt.Fprintf(out, "%s (%d templates)\n", a.Aspect, a.Total)
				for _, t := range a.Templates {
					fmt.Fprintf(out, "  %-24s %s\n", t.Name, t.Title)
				}
			}
			return nil
		},
	}
}
