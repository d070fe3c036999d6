package cmd

import (
	"fmt"

	"github.com/chinmay1088/qbtc/api"
	"github.com/chinmay1088/qbtc/chains/qbitcoin"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Check an address balance",
	Long: `Check the balance of an address: the sum of its unspent outputs with at
least --conf confirmations.

Examples:
  qbtc balance qAddr1             # Include unconfirmed outputs
  qbtc balance qAddr1 --conf 6    # Only outputs with 6 or more confirmations
  qbtc balance qAddr1 --utxos     # Also list the unspent outputs`,
	Args: cobra.ExactArgs(1),
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	address := args[0]
	conf, _ := cmd.Flags().GetInt64("conf")
	utxosFlag, _ := cmd.Flags().GetBool("utxos")

	client := newClient()

	fmt.Println("💰 Address Balance")
	fmt.Printf("🌐 Node: %s\n", client.Conn().URL)
	fmt.Println()

	var balance float64
	if utxosFlag {
		// One listunspent call so the listed outputs and the sum agree
		utxos, err := client.ListUnspent(cmd.Context(), address, conf)
		if err != nil {
			return fmt.Errorf("failed to fetch unspent outputs: %w", err)
		}
		displayUnspentOutputs(utxos)
		balance = sumUnspent(utxos)
	} else {
		var err error
		balance, err = client.GetBalance(cmd.Context(), address, conf)
		if err != nil {
			return fmt.Errorf("failed to fetch balance: %w", err)
		}
	}

	fmt.Printf("🪙 Balance: %s\n", color.GreenString(formatBalance(balance)))
	fmt.Printf("   %s\n", qbitcoin.FormatAmount(balance))
	fmt.Printf("   📍 Address: %s\n", address)
	fmt.Printf("   ✔️  Minimum confirmations: %d\n", conf)
	fmt.Println()
	return nil
}

func displayUnspentOutputs(utxos []api.UnspentOutput) {
	fmt.Printf("📦 Unspent outputs: %d\n", len(utxos))
	for _, utxo := range utxos {
		fmt.Printf("   %s:%d  %s\n", truncateTxID(utxo.TxID), utxo.Vout, formatBalance(utxo.Amount))
	}
	fmt.Println()
}

// sumUnspent adds the output amounts in order, as GetBalance does
func sumUnspent(utxos []api.UnspentOutput) float64 {
	total := 0.0
	for _, utxo := range utxos {
		total += utxo.Amount
	}
	return total
}

// formatBalance formats an amount with 8 decimal places
func formatBalance(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(8) + " QBTC"
}

func truncateTxID(txid string) string {
	if len(txid) <= 20 {
		return txid
	}
	return txid[:10] + "..." + txid[len(txid)-8:]
}

func init() {
	balanceCmd.Flags().Int64("conf", 0, "minimum confirmations of counted outputs")
	balanceCmd.Flags().Bool("utxos", false, "list unspent outputs")
}
