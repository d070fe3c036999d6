package cmd

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// confirmations after which a transaction is shown as final
const finalConfirmations = 6

var confCmd = &cobra.Command{
	Use:   "conf [txid]",
	Short: "Show transaction confirmations",
	Long: `Show how many blocks confirm a transaction.

Example:
  qbtc conf 4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b`,
	Args: cobra.ExactArgs(1),
	RunE: runConf,
}

func runConf(cmd *cobra.Command, args []string) error {
	trxID := args[0]
	if err := validateTxID(trxID); err != nil {
		return err
	}

	client := newClient()

	conf, err := client.GetTrxConf(cmd.Context(), trxID)
	if err != nil {
		return fmt.Errorf("failed to fetch confirmations: %w", err)
	}

	fmt.Printf("📝 Transaction: %s\n", trxID)
	switch {
	case conf <= 0:
		fmt.Printf("⏳ Confirmations: %s\n", color.YellowString("%d (unconfirmed)", conf))
	case conf < finalConfirmations:
		fmt.Printf("⏳ Confirmations: %s\n", color.YellowString("%d", conf))
	default:
		fmt.Printf("✅ Confirmations: %s\n", color.GreenString("%d", conf))
	}

	return nil
}

// validateTxID checks a transaction id is a 32-byte hex hash
func validateTxID(trxID string) error {
	if len(trxID) != chainhash.MaxHashStringSize {
		return fmt.Errorf("invalid transaction id: expected %d hex characters, got %d", chainhash.MaxHashStringSize, len(trxID))
	}
	if _, err := chainhash.NewHashFromStr(trxID); err != nil {
		return fmt.Errorf("invalid transaction id: %w", err)
	}
	return nil
}
