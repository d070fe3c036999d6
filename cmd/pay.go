package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/chinmay1088/qbtc/api"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var payCmd = &cobra.Command{
	Use:   "pay",
	Short: "Send funds",
	Long: `Spend every unspent output of the source addresses, pay the destinations
and return the rest, minus the fee, to the change address.

Source addresses are given as address=privatekey. When the key is left out
it is read from the terminal without echo. The first source address receives
the change unless --change is given. Signing keys are passed to the node in
the order the sources are given.

Examples:
  qbtc pay --from qAddr1 --to qDest=0.5 --fee 0.0001
  qbtc pay --from qAddr1=KEY1 --from qAddr2=KEY2 --to qDest=1.2 --to qOther=0.3 --change qAddr3
  qbtc pay --from qAddr1 --to qDest=0.5 --conf 6 --yes`,
	Args: cobra.NoArgs,
	RunE: runPay,
}

func runPay(cmd *cobra.Command, args []string) error {
	fromFlags, _ := cmd.Flags().GetStringArray("from")
	toFlags, _ := cmd.Flags().GetStringArray("to")
	changeAddress, _ := cmd.Flags().GetString("change")
	feeStr, _ := cmd.Flags().GetString("fee")
	conf, _ := cmd.Flags().GetInt64("conf")
	yesFlag, _ := cmd.Flags().GetBool("yes")

	payments, err := parsePayments(toFlags)
	if err != nil {
		return err
	}

	fee, err := parseAmount(feeStr)
	if err != nil {
		return fmt.Errorf("invalid fee: %w", err)
	}

	sources, err := parseSources(fromFlags, readPrivateKey)
	if err != nil {
		return err
	}

	req := api.SendRequest{
		From:          sources,
		To:            payments,
		ChangeAddress: changeAddress,
		Fee:           fee.InexactFloat64(),
		Conf:          conf,
	}

	client := newClient()
	displaySendRequest(client.Conn().URL, req, fee)

	// Get confirmation before proceeding with any transaction
	if !yesFlag && !getTransactionConfirmation(os.Stdin) {
		fmt.Println("❌ Transaction cancelled by user")
		return nil
	}

	trxID, err := sendWithSpinner(func() (string, error) {
		return client.SendBalance(cmd.Context(), req)
	})
	if err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	fmt.Printf("✅ Transaction sent successfully!\n")
	fmt.Printf("📝 Transaction ID: %s\n", trxID)
	fmt.Printf("💡 Run 'qbtc conf %s' to follow its confirmations\n", trxID)

	return nil
}

func displaySendRequest(nodeURL string, req api.SendRequest, fee decimal.Decimal) {
	changeAddress := req.ChangeAddress
	if changeAddress == "" && len(req.From) > 0 {
		changeAddress = req.From[0].Address
	}

	total := decimal.Zero
	fmt.Printf("📊 Transaction Details:\n")
	for _, from := range req.From {
		fmt.Printf("   From:    %s\n", from.Address)
	}
	for _, to := range req.To {
		amount := decimal.NewFromFloat(to.Amount)
		total = total.Add(amount)
		fmt.Printf("   To:      %s  %s QBTC\n", to.Address, amount.StringFixed(8))
	}
	fmt.Printf("   Total:   %s QBTC\n", total.StringFixed(8))
	fmt.Printf("   Fee:     %s QBTC\n", fee.StringFixed(8))
	fmt.Printf("   Change:  %s (everything else)\n", changeAddress)
	fmt.Printf("   Node:    %s\n", nodeURL)
	fmt.Println()
}

func getTransactionConfirmation(in io.Reader) bool {
	fmt.Printf("🚨 All unspent outputs of the source addresses will be spent. Change goes to the change address.\n")
	fmt.Printf("Press y to confirm or n to stop (y/n): ")

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}

// sendWithSpinner runs send while a spinner shows on stderr
func sendWithSpinner(send func() (string, error)) (string, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]Building, signing and broadcasting transaction...[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	type result struct {
		trxID string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		trxID, err := send()
		done <- result{trxID, err}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case res := <-done:
			_ = bar.Finish()
			return res.trxID, res.err
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}

// parsePayments parses address=amount destinations, keeping their order
func parsePayments(values []string) ([]api.Payment, error) {
	payments := make([]api.Payment, 0, len(values))
	for _, value := range values {
		address, amountStr, ok := strings.Cut(value, "=")
		address = strings.TrimSpace(address)
		if !ok || address == "" {
			return nil, fmt.Errorf("invalid destination %q. Use address=amount", value)
		}

		amount, err := parseAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("invalid amount for %s: %w", address, err)
		}
		if amount.IsZero() {
			return nil, fmt.Errorf("invalid amount for %s: must be greater than zero", address)
		}

		payments = append(payments, api.Payment{Address: address, Amount: amount.InexactFloat64()})
	}
	return payments, nil
}

// parseSources parses address[=key] sources, keeping their order. Missing keys
// are asked for with readKey.
func parseSources(values []string, readKey func(address string) (string, error)) ([]api.AddressKeyPair, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("at least one --from address is required")
	}

	sources := make([]api.AddressKeyPair, 0, len(values))
	for _, value := range values {
		address, key, _ := strings.Cut(value, "=")
		address = strings.TrimSpace(address)
		if address == "" {
			return nil, fmt.Errorf("invalid source %q. Use address or address=privatekey", value)
		}

		if key == "" {
			var err error
			key, err = readKey(address)
			if err != nil {
				return nil, fmt.Errorf("failed to read private key for %s: %w", address, err)
			}
			if key == "" {
				return nil, fmt.Errorf("no private key given for %s", address)
			}
		}

		sources = append(sources, api.AddressKeyPair{Address: address, PrivateKey: key})
	}
	return sources, nil
}

// parseAmount parses a non-negative decimal amount
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s is negative", s)
	}
	return amount, nil
}

func readPrivateKey(address string) (string, error) {
	fmt.Printf("Enter the private key of %s: ", color.CyanString(address))
	key, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println() // New line after key input
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(key)), nil
}

func init() {
	payCmd.Flags().StringArray("from", nil, "source address, as address or address=privatekey (repeatable, ordered)")
	payCmd.Flags().StringArray("to", nil, "destination, as address=amount (repeatable, ordered)")
	payCmd.Flags().String("change", "", "change address (default: first source address)")
	payCmd.Flags().String("fee", "0", "transaction fee")
	payCmd.Flags().Int64("conf", 0, "minimum confirmations of spent outputs")
	payCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
