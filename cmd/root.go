package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qbtc",
	Short: "A command-line client for qbitcoin nodes",
	Long: `qbtc talks to a qbitcoin node over its JSON-RPC interface. It checks the
node, queries confirmations and balances, creates addresses and sends funds.
Keys are signed into transactions by the node; qbtc stores nothing.

Configuration is read from flags, QBTC_* environment variables and
~/.qbtc/config.yaml, in that order of precedence.

Examples:
  qbtc ping                                   # Check the node is reachable
  qbtc node http://172.17.0.1:9556/           # Save the node URL
  qbtc conf <txid>                            # Show confirmations
  qbtc address                                # Create a new address
  qbtc balance <address> --conf 6             # Check a balance
  qbtc pay --from <addr> --to <addr>=0.5      # Send funds`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd.Root().PersistentFlags())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress log output")
	rootCmd.PersistentFlags().String("url", DefaultNodeURL, "node JSON-RPC URL")
	rootCmd.PersistentFlags().Duration("timeout", DefaultTimeout, "request timeout, with a unit (e.g. 30s, 2m)")
	rootCmd.PersistentFlags().Int64("max-read-bytes", DefaultMaxReadBytes, "maximum response size in bytes")

	// Add subcommands
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(confCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(payCmd)
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("qbtc v%s\n", version)
	},
}
