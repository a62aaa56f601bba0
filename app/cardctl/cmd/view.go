package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/x-xyz/nftcard/domain/card"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print a token record as a text card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := readRecord(cmd)
		if err != nil {
			return err
		}
		printView(cmd.OutOrStdout(), card.NewView(record))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(viewCmd)
}

func printView(w io.Writer, v card.View) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Faint)
	owner := color.New(color.FgYellow)

	title.Fprintln(w, v.Title)
	fmt.Fprintln(w, v.Image.Src)
	label.Fprintln(w, v.OwnerLabel)
	owner.Fprintln(w, v.OwnerLine)
}
