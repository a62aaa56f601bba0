package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftcard/domain/card"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardctl",
	Short: "Render NFT cards from token records",
	Long: `cardctl renders the card of a single token from a token record file.
A token record looks like:

  {"metadata":{"image":"https://x/y.png","name":"Ape #1"},"owner":"0xABCDEF1234567890"}

Use "-" or omit --file to read the record from stdin.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringP("file", "f", "-", "token record json file, - for stdin")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func readRecord(cmd *cobra.Command) (card.TokenRecord, error) {
	path, _ := cmd.Flags().GetString("file")

	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return card.TokenRecord{}, xerrors.Errorf("open record: %w", err)
		}
		defer f.Close()
		r = f
	}
	return decodeRecord(r)
}

func decodeRecord(r io.Reader) (card.TokenRecord, error) {
	record := card.TokenRecord{}
	if err := json.NewDecoder(r).Decode(&record); err != nil {
		return card.TokenRecord{}, xerrors.Errorf("decode record: %w", err)
	}
	return record, nil
}
