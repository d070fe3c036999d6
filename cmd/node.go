package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var nodeCmd = &cobra.Command{
	Use:   "node [url]",
	Short: "Show or change the node",
	Long: `Show the node qbtc talks to, or save a new node URL to ~/.qbtc/config.yaml.

Examples:
  qbtc node                              # Show current node settings
  qbtc node http://172.17.0.1:9556/      # Use this node from now on`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNode,
}

func runNode(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current node
	if len(args) == 0 {
		return showCurrentNode()
	}

	nodeURL, err := validateNodeURL(args[0])
	if err != nil {
		return err
	}

	return setNode(nodeURL)
}

func showCurrentNode() error {
	conn := getConn()

	fmt.Printf("🌐 Current node: %s\n", color.CyanString(conn.URL))
	fmt.Println()
	fmt.Println("Connection details:")
	fmt.Printf("   - Timeout: %s\n", conn.Timeout)
	fmt.Printf("   - Max response size: %d bytes\n", conn.MaxReadBytes)
	if used := cfg.ConfigFileUsed(); used != "" {
		fmt.Printf("   - Config file: %s\n", used)
	} else {
		fmt.Printf("   - Config file: %s\n", color.YellowString("none"))
	}
	fmt.Println("💡 Flags and QBTC_* environment variables override the config file")

	return nil
}

func setNode(nodeURL string) error {
	configDir, err := getConfigDir()
	if err != nil {
		return err
	}

	// Create .qbtc directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	cfg.Set(keyURL, nodeURL)

	configPath := filepath.Join(configDir, configFileName+"."+configFileType)
	if err := writeNodeConfig(configPath, nodeURL); err != nil {
		return err
	}

	fmt.Printf("🌐 Switched to node %s\n", color.GreenString(nodeURL))
	fmt.Printf("📁 Saved to %s\n", configPath)
	fmt.Println("💡 Run 'qbtc ping' to check the node is reachable")

	return nil
}

// writeNodeConfig stores the node URL, keeping other settings already in the file
func writeNodeConfig(configPath, nodeURL string) error {
	file := viper.New()
	file.SetConfigFile(configPath)
	if _, err := os.Stat(configPath); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	file.Set(keyURL, nodeURL)
	if err := file.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Chmod(configPath, 0600)
}

func validateNodeURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid node URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid node URL: %s. Use an http:// or https:// URL", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid node URL: %s. Missing host", raw)
	}
	return u.String(), nil
}
