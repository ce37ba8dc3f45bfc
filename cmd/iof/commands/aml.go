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

// NewAMLCommand creates the aml command group.
func NewAMLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aml",
		Short: "Inspect AML alerts and screenings",
	}

	cmd.AddCommand(newAMLAlertsCommand())
	cmd.AddCommand(newAMLScreeningsCommand())

	return cmd
}

func newAMLAlertsCommand() *cobra.Command {
	var (
		status   string
		severity string
	)

	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List AML alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &iof.AlertListOptions{
				Status:   status,
				Severity: severity,
			}

			alerts, err := client.AML().ListAlerts(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("listing aml alerts: %w", err)
			}

			return renderOutput(alerts, func() error {
				if len(alerts.Data) == 0 {
					fmt.Fprintln(os.Stdout, "No alerts found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Type", "Severity", "Status", "Entity", "Created")

				for _, alert := range alerts.Data {
					_ = table.Append(alert.ID, alert.Type, alert.Severity, alert.Status,
						alert.EntityID, alert.CreatedAt)
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&severity, "severity", "", "filter by severity")

	return cmd
}

func newAMLScreeningsCommand() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "screenings",
		Short: "List AML screenings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &iof.StatusListOptions{Status: status}

			screenings, err := client.AML().ListScreenings(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("listing aml screenings: %w", err)
			}

			return renderOutput(screenings, func() error {
				if len(screenings.Data) == 0 {
					fmt.Fprintln(os.Stdout, "No screenings found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Entity", "Entity Type", "Status", "Risk Score")

				for _, screening := range screenings.Data {
					_ = table.Append(screening.ID, screening.EntityID, screening.EntityType,
						screening.Status, strconv.FormatFloat(screening.RiskScore, 'f', 1, 64))
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}
