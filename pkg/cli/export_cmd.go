package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(client func() *Client) *cobra.Command {
	var (
		format       string
		outFile      string
		sourceColumn int
		targetColumn int
		typeColumn   int
	)

	cmd := &cobra.Command{
		Use:   "export <table-id>",
		Short: "Export a full result table to a file format",
		Long: `Exports every row of a result table, not just the current page.
The sif format writes a cytoscape interaction network; source/target/type
columns are schema indices into the table.`,
		Example: `  biomine export 2f9c... --format tsv -o results.tsv
  biomine export 2f9c... --format sif --source-column 0 --type-column 1 --target-column 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := fmt.Sprintf("source_column=%d&target_column=%d&type_column=%d",
				sourceColumn, targetColumn, typeColumn)
			data, notice, err := client().Export(args[0], format, extra)
			if err != nil {
				return err
			}
			if notice != "" {
				fmt.Fprintln(cmd.OutOrStdout(), notice)
				return nil
			}
			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outFile, data, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(data), outFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "tsv", "Export format: tsv or sif")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write to file instead of stdout")
	cmd.Flags().IntVar(&sourceColumn, "source-column", 0, "Interaction source column (sif)")
	cmd.Flags().IntVar(&targetColumn, "target-column", 2, "Interaction target column (sif)")
	cmd.Flags().IntVar(&typeColumn, "type-column", -1, "Interaction type column (sif), -1 for default")
	return cmd
}
