package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Create a new address",
	Long: `Ask the node for a new address and its private key.

The private key is printed once and not stored anywhere. Keep it safe:
it is needed to spend funds sent to the address.

Example:
  qbtc address`,
	Args: cobra.NoArgs,
	RunE: runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	client := newClient()

	pair, err := client.NewAddressPair(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to create address: %w", err)
	}

	fmt.Println("🔑 New address created")
	fmt.Println()
	fmt.Printf("📍 Address:     %s\n", color.GreenString(pair.Address))
	fmt.Printf("🔐 Private key: %s\n", pair.PrivateKey)
	fmt.Println()
	fmt.Println(color.RedString("⚠️  Anyone with the private key can spend the funds of this address."))
	fmt.Println(color.RedString("⚠️  qbtc does not store it. Write it down and keep it offline."))

	return nil
}
