package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/iofinance-io/iof-client/pkg/iof"
	"github.com/iofinance-io/iof-client/pkg/iofclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		apiKey      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the IOF platform",
		Long:  "Store an API endpoint and key for subsequent commands. The key is verified against the platform before saving.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API endpoint: ")
				apiEndpoint, _ = reader.ReadString('\n')
				apiEndpoint = strings.TrimSpace(apiEndpoint)
			}

			if apiEndpoint == "" {
				return iof.ErrBaseURLRequired
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("reading API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			if apiKey == "" {
				return iof.ErrCredentialsRequired
			}

			client, err := iofclient.NewWithAPIKey(apiEndpoint, apiKey)
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			health, err := client.Observability().GetHealth(context.Background())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			config := &cliConfig{
				API:    apiEndpoint,
				APIKey: apiKey,
				Tenant: viper.GetString("tenant"),
			}
			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Successfully logged in to %s (platform status: %s)\n", apiEndpoint, health.Status)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key (prompted without echo when omitted)")

	return cmd
}
