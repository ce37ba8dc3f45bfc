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

// NewPartnersCommand creates the partners command group.
func NewPartnersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partners",
		Short: "Inspect distribution partners",
	}

	cmd.AddCommand(newPartnersListCommand())
	cmd.AddCommand(newPartnersGetCommand())

	return cmd
}

func newPartnersListCommand() *cobra.Command {
	var (
		status string
		ptype  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List partners",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &iof.PartnerListOptions{
				Status: status,
				Type:   ptype,
			}

			partners, err := client.Partners().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("listing partners: %w", err)
			}

			return renderOutput(partners, func() error {
				if len(partners.Data) == 0 {
					fmt.Fprintln(os.Stdout, "No partners found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Type", "Status", "Revenue Share %")

				for _, partner := range partners.Data {
					_ = table.Append(partner.ID, partner.Name, partner.Type, partner.Status,
						strconv.FormatFloat(partner.RevenueSharePercentage, 'f', 2, 64))
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&ptype, "type", "", "filter by partner type")

	return cmd
}

func newPartnersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PARTNER_ID",
		Short: "Show a partner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			partner, err := client.Partners().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("getting partner: %w", err)
			}

			return renderOutput(partner, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", partner.ID)
				_ = table.Append("Name", partner.Name)
				_ = table.Append("Type", partner.Type)
				_ = table.Append("Status", partner.Status)
				_ = table.Append("Revenue Share %", strconv.FormatFloat(partner.RevenueSharePercentage, 'f', 2, 64))
				_ = table.Append("Created", partner.CreatedAt)
				_ = table.Render()

				return nil
			})
		},
	}
}
