// Package cli is the cobra front end. Commands do no domain work themselves:
// they parse flags, call a service, and print the outcome.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/invoicehq/invoicer-client/internal/app"
	"github.com/invoicehq/invoicer-client/internal/validation"
)

var application *app.App

var rootCmd = &cobra.Command{
	Use:   "invoicer",
	Short: "Invoicing client for the InvoiceHQ backend",
	Long: `invoicer manages invoices, clients, and providers against the InvoiceHQ
backend, keeps a local working copy for offline reads, and sends invoices by
email through the signed-in mailer session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New()
		if err != nil {
			return fmt.Errorf("failed to initialize: %w", err)
		}
		application = a
		application.Bootstrap(cmd.Context())
		return nil
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// printValidation writes accumulated validation messages the way the backend
// reports them, one per line
func printValidation(cmd *cobra.Command, result validation.Result) {
	fmt.Fprintln(cmd.ErrOrStderr(), "Validation failed:")
	for _, msg := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", msg)
	}
}
