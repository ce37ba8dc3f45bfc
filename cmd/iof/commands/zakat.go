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

// NewZakatCommand creates the zakat command group.
func NewZakatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zakat",
		Short: "Manage zakat calculations and payments",
	}

	cmd.AddCommand(newZakatCalculationsCommand())
	cmd.AddCommand(newZakatCalculateCommand())
	cmd.AddCommand(newZakatNisabCommand())

	return cmd
}

func newZakatCalculationsCommand() *cobra.Command {
	var (
		year   int
		status string
	)

	cmd := &cobra.Command{
		Use:   "calculations",
		Short: "List zakat calculations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &iof.ZakatCalculationListOptions{
				Year:   year,
				Status: status,
			}

			calculations, err := client.Zakat().ListCalculations(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("listing zakat calculations: %w", err)
			}

			return renderOutput(calculations, func() error {
				if len(calculations.Data) == 0 {
					fmt.Fprintln(os.Stdout, "No zakat calculations found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Account", "Year", "Wealth", "Zakat Due", "Currency", "Status")

				for _, calc := range calculations.Data {
					_ = table.Append(calc.ID, calc.AccountID, strconv.Itoa(calc.Year),
						strconv.FormatFloat(calc.TotalWealth, 'f', 2, 64),
						strconv.FormatFloat(calc.ZakatDue, 'f', 2, 64),
						calc.Currency, calc.Status)
				}

				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "filter by year")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")

	return cmd
}

func newZakatCalculateCommand() *cobra.Command {
	var (
		accountID string
		year      int
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run a zakat assessment for an account year",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			calc, err := client.Zakat().Calculate(context.Background(), accountID, year)
			if err != nil {
				return fmt.Errorf("calculating zakat: %w", err)
			}

			return renderOutput(calc, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", calc.ID)
				_ = table.Append("Account", calc.AccountID)
				_ = table.Append("Year", strconv.Itoa(calc.Year))
				_ = table.Append("Total Wealth", strconv.FormatFloat(calc.TotalWealth, 'f', 2, 64))
				_ = table.Append("Nisab", strconv.FormatFloat(calc.Nisab, 'f', 2, 64))
				_ = table.Append("Zakat Due", strconv.FormatFloat(calc.ZakatDue, 'f', 2, 64))
				_ = table.Append("Currency", calc.Currency)
				_ = table.Append("Status", calc.Status)
				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "account identifier (required)")
	cmd.Flags().IntVar(&year, "year", 0, "assessment year (required)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newZakatNisabCommand() *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "nisab",
		Short: "Show current nisab thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			rates, err := client.Zakat().GetNisabRates(context.Background(), currency)
			if err != nil {
				return fmt.Errorf("getting nisab rates: %w", err)
			}

			return renderOutput(rates, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Currency", rates.Currency)
				_ = table.Append("Gold Nisab", strconv.FormatFloat(rates.GoldNisab, 'f', 2, 64))
				_ = table.Append("Silver Nisab", strconv.FormatFloat(rates.SilverNisab, 'f', 2, 64))
				_ = table.Append("Updated", rates.UpdatedAt)
				_ = table.Render()

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "USD", "currency for thresholds")

	return cmd
}
