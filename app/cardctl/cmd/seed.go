package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftcard/base/ctx"
	"github.com/x-xyz/nftcard/base/database/mongoclient"
	"github.com/x-xyz/nftcard/base/validator"
	"github.com/x-xyz/nftcard/domain"
	"github.com/x-xyz/nftcard/domain/card"
	"github.com/x-xyz/nftcard/stores/card/repository"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write a token record into the token store",
	Long: `Seed upserts a token record into the nftitems collection configured in
the api config file, so the api can render it by id.

Examples:
  cardctl seed -f record.json --chain 1 --contract 0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d --token 1`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := seedId(cmd)
		if err != nil {
			return err
		}
		record, err := readRecord(cmd)
		if err != nil {
			return err
		}

		configPath, _ := cmd.Flags().GetString("config")
		viper.SetConfigType("yaml")
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}

		client, err := mongoclient.ConnectMongoClient(mongoclient.Config{
			URI:                viper.GetString("mongo.uri"),
			AuthDBName:         viper.GetString("mongo.authDBName"),
			DBName:             viper.GetString("mongo.dbName"),
			EnableSSL:          viper.GetBool("mongo.enableSSL"),
			PoolSizeMultiplier: 1,
		})
		if err != nil {
			return err
		}

		c := ctx.Background()
		defer client.Disconnect(c)

		if err := repository.NewTokenRecordRepo(client).Upsert(c, id, record); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", id.Components())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(seedCmd)

	seedCmd.Flags().String("config", "infra/configs/config.yaml", "api config file")
	seedCmd.Flags().Int32("chain", 1, "chain id")
	seedCmd.Flags().String("contract", "", "contract address")
	seedCmd.Flags().String("token", "", "token id")
	_ = seedCmd.MarkFlagRequired("contract")
	_ = seedCmd.MarkFlagRequired("token")
}

func seedId(cmd *cobra.Command) (card.Id, error) {
	chainId, _ := cmd.Flags().GetInt32("chain")
	contract, _ := cmd.Flags().GetString("contract")
	tokenId, _ := cmd.Flags().GetString("token")

	if chainId <= 0 {
		return card.Id{}, domain.ErrInvalidChainId
	}
	if !validator.IsValidAddress(contract) {
		return card.Id{}, domain.ErrInvalidAddress
	}
	return card.Id{
		ChainId:         domain.ChainId(chainId),
		ContractAddress: domain.Address(contract),
		TokenId:         domain.TokenId(tokenId),
	}, nil
}
