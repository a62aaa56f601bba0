package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x-xyz/nftcard/domain/card"
)

var ownerCmd = &cobra.Command{
	Use:   "owner [address]",
	Short: "Print the shortened owner line of an address",
	Long: `Owner prints the address the way a card shows it.

Examples:
  cardctl owner 0xABCDEF1234567890   # 0xAB...7890`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), card.ShortenOwner(args[0]))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(ownerCmd)
}
