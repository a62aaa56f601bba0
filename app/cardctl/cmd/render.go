package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftcard/domain/card"
	"github.com/x-xyz/nftcard/stores/card/view"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a token record to an html card",
	Long: `Render writes the html card of a token record.

Examples:
  cardctl render -f record.json
  cardctl render -f record.json -o card.html
  cat record.json | cardctl render`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := readRecord(cmd)
		if err != nil {
			return err
		}

		renderer, err := view.New()
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" || out == "-" {
			return renderer.Write(cmd.OutOrStdout(), card.NewView(record))
		}

		f, err := os.Create(out)
		if err != nil {
			return xerrors.Errorf("create output: %w", err)
		}
		defer f.Close()
		return renderer.Write(f, card.NewView(record))
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "", "output file, stdout when empty")
}
