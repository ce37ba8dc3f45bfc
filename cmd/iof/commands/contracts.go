package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/iofinance-io/iof-client/pkg/iof"
)

// NewContractsCommand creates the contracts command group.
func NewContractsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Manage financing contracts",
		Long:  "List, inspect and transition financing contracts",
	}

	cmd.AddCommand(newContractsListCommand())
	cmd.AddCommand(newContractsGetCommand())
	cmd.AddCommand(newContractsExecuteCommand())
	cmd.AddCommand(newContractsTerminateCommand())

	return cmd
}

func newContractsListCommand() *cobra.Command {
	var (
		status   string
		ctype    string
		currency string
		page     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &iof.ContractListOptions{
				ListOptions: iof.ListOptions{Page: page, Limit: limit},
				Status:      status,
				Type:        ctype,
				Currency:    currency,
			}

			contracts, err := client.Contracts().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("listing contracts: %w", err)
			}

			return renderOutput(contracts, func() error {
				if len(contracts.Data) == 0 {
					fmt.Fprintln(os.Stdout, "No contracts found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Status", "Principal", "Currency", "Created")

				for _, contract := range contracts.Data {
					_ = table.Append(contract.ID, contract.Type, contract.Status,
						strconv.FormatFloat(contract.Principal, 'f', 2, 64),
						contract.Currency, contract.CreatedAt)
				}

				_ = table.Render()

				fmt.Fprintf(os.Stdout, "\nPage %d of %d (%d total)\n",
					contracts.Pagination.Page, contracts.Pagination.Pages, contracts.Pagination.Total)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&ctype, "type", "", "filter by contract type")
	cmd.Flags().StringVar(&currency, "currency", "", "filter by currency")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "items per page")

	return cmd
}

func newContractsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CONTRACT_ID",
		Short: "Show a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			contract, err := client.Contracts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting contract: %w", err)
			}

			return renderOutput(contract, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", contract.ID)
				_ = table.Append("Type", contract.Type)
				_ = table.Append("Status", contract.Status)
				_ = table.Append("Principal", strconv.FormatFloat(contract.Principal, 'f', 2, 64))
				_ = table.Append("Currency", contract.Currency)
				_ = table.Append("Created", contract.CreatedAt)
				_ = table.Append("Updated", contract.UpdatedAt)
				_ = table.Render()

				return nil
			})
		},
	}
}

func newContractsExecuteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "execute CONTRACT_ID",
		Short: "Execute a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			contract, err := client.Contracts().Execute(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("executing contract: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Contract %s is now %s\n", contract.ID, contract.Status)

			return nil
		},
	}
}

func newContractsTerminateCommand() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "terminate CONTRACT_ID",
		Short: "Terminate a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			contract, err := client.Contracts().Terminate(context.Background(), args[0], reason)
			if err != nil {
				return fmt.Errorf("terminating contract: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Contract %s is now %s\n", contract.ID, contract.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "termination reason")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}
