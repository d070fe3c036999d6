package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the node is reachable",
	Long: `Send a ping to the configured node and report the round trip time.

Example:
  qbtc ping`,
	Args: cobra.NoArgs,
	RunE: runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	client := newClient()

	start := time.Now()
	if err := client.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("node %s did not answer: %w", client.Conn().URL, err)
	}

	fmt.Printf("✅ Node %s is reachable (%s)\n", color.CyanString(client.Conn().URL), time.Since(start).Round(time.Millisecond))
	return nil
}
