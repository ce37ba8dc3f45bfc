package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/iofinance-io/iof-client/internal/constants"
	"github.com/iofinance-io/iof-client/pkg/iof"
)

// NewDeveloperCommand creates the developer command group.
func NewDeveloperCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "developer",
		Short: "Manage developer resources",
	}

	apiKeys := &cobra.Command{
		Use:   "api-keys",
		Short: "Manage API keys",
	}
	apiKeys.AddCommand(newAPIKeysListCommand())
	apiKeys.AddCommand(newAPIKeysCreateCommand())
	apiKeys.AddCommand(newAPIKeysDeleteCommand())

	cmd.AddCommand(apiKeys)

	return cmd
}

func newAPIKeysListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List API keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			keys, err := client.Developer().ListAPIKeys(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("listing api keys: %w", err)
			}

			return renderOutput(keys, func() error {
				if len(keys.Data) == 0 {
					fmt.Fprintln(os.Stdout, "No API keys found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Prefix", "Scopes", "Expires", "Last Used")

				for _, key := range keys.Data {
					expires := key.ExpiresAt
					if expires == "" {
						expires = constants.NotAvailable
					}

					lastUsed := key.LastUsedAt
					if lastUsed == "" {
						lastUsed = constants.NotAvailable
					}

					_ = table.Append(key.ID, key.Name, key.Prefix,
						strings.Join(key.Scopes, ","), expires, lastUsed)
				}

				_ = table.Render()

				return nil
			})
		},
	}
}

func newAPIKeysCreateCommand() *cobra.Command {
	var (
		name      string
		scopes    []string
		expiresAt string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an API key",
		Long:  "Create an API key. The full key value is only shown once, in this command's output.",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			req := &iof.CreateAPIKeyRequest{
				Name:      name,
				Scopes:    scopes,
				ExpiresAt: expiresAt,
			}

			key, err := client.Developer().CreateAPIKey(context.Background(), req)
			if err != nil {
				return fmt.Errorf("creating api key: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created API key '%s' (%s)\n", key.Name, key.ID)
			fmt.Fprintf(os.Stdout, "Key: %s\n", key.Key)
			fmt.Fprintln(os.Stdout, "Store this key now. It cannot be retrieved again.")

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "key name (required)")
	cmd.Flags().StringSliceVar(&scopes, "scopes", nil, "scopes to grant")
	cmd.Flags().StringVar(&expiresAt, "expires-at", "", "expiry timestamp (RFC3339)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newAPIKeysDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete KEY_ID",
		Short: "Delete an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyID := args[0]

			if !force {
				fmt.Fprintf(os.Stdout, "Really delete API key '%s'? (y/N): ", keyID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Fprintln(os.Stdout, "Cancelled")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Developer().DeleteAPIKey(context.Background(), keyID); err != nil {
				return fmt.Errorf("deleting api key: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Successfully deleted API key '%s'\n", keyID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
