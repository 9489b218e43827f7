package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "vybevigil",
	Short: "Telegram bot for Solana on-chain analytics via Vybe Network",
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
