package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/enum"
	"github.com/invoicehq/invoicer-client/internal/store"
	"github.com/invoicehq/invoicer-client/pkg/format"
)

var listFlags struct {
	status string
	search string
	sortBy string
	order  string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := store.DefaultFilter()
		if listFlags.status != "" {
			filter.Status = enum.StatusFilter(listFlags.status)
		}
		filter.Query = listFlags.search
		if listFlags.sortBy != "" {
			filter.SortBy = enum.SortKey(listFlags.sortBy)
		}
		if listFlags.order != "" {
			filter.SortOrder = enum.SortOrder(listFlags.order)
		}
		application.Invoices.SetFilter(filter)

		invoices := application.Invoices.Filtered()
		if len(invoices) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No invoices found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tDUE\tCLIENT\tSTATUS\tTOTAL")
		for _, inv := range invoices {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				inv.ID, inv.Date, inv.Due, inv.Client.Name, inv.Status,
				format.Currency(inv.Pricing.Total))
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <invoice-id>",
	Short: "Show one invoice in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := application.Invoices.GetInvoice(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Invoice %s (%s)\n", inv.ID, inv.Status)
		fmt.Fprintf(out, "Issued %s, due %s\n\n", inv.Date, inv.Due)
		fmt.Fprintf(out, "From: %s <%s>\n", inv.Provider.Name, inv.Provider.Email)
		fmt.Fprintf(out, "To:   %s <%s>\n\n", inv.Client.Name, inv.Client.Email)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tDESCRIPTION\tQTY\tUNIT\tTOTAL")
		for _, item := range inv.Items {
			fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\n",
				item.Date, item.Description, item.Quantity,
				format.Currency(item.UnitPrice), format.Currency(item.TotalPrice))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\nSubtotal: %s\n", format.Currency(inv.Pricing.Subtotal))
		fmt.Fprintf(out, "Tax (%s): %s\n", format.Percentage(inv.Pricing.TaxRate, 0), format.Currency(inv.Pricing.Tax))
		fmt.Fprintf(out, "Total:    %s\n", format.Currency(inv.Pricing.Total))
		return nil
	},
}

var createFlags struct {
	file string
}

var createCmd = &cobra.Command{
	Use:   "create --file <invoice.json>",
	Short: "Create an invoice from a JSON document",
	Long: `Creates an invoice from a JSON document. Line totals and the pricing
breakdown are recomputed from quantity, unit price, and tax rate; any totals in
the document are ignored. A missing id is assigned from today's date.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(createFlags.file)
		if err != nil {
			return err
		}
		var inv entity.Invoice
		if err := json.Unmarshal(data, &inv); err != nil {
			return fmt.Errorf("failed to parse invoice document: %w", err)
		}

		created, result, err := application.Invoices.CreateInvoice(cmd.Context(), inv)
		if err != nil {
			return err
		}
		if !result.IsValid {
			printValidation(cmd, result)
			return fmt.Errorf("invoice not created")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created invoice %s (%s)\n", created.ID, format.Currency(created.Pricing.Total))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <invoice-id>",
	Short: "Delete an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Invoices.DeleteInvoice(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted invoice %s\n", args[0])
		return nil
	},
}

var pdfFlags struct {
	output string
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <invoice-id>",
	Short: "Download the rendered invoice PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := application.Invoices.DownloadPDF(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		path := pdfFlags.output
		if path == "" {
			path = args[0] + ".pdf"
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", path, len(data))
		return nil
	},
}

var sendFlags struct {
	to      string
	subject string
	body    string
}

var sendCmd = &cobra.Command{
	Use:   "send <invoice-id>",
	Short: "Send an invoice by email",
	Long: `Sends the invoice through the signed-in mailer session. The message is
built from the invoice's email template with flag overrides, and the invoice
moves from draft to send once dispatch succeeds.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		inv, err := application.Invoices.GetInvoice(ctx, args[0])
		if err != nil {
			return err
		}

		cfg, err := application.Invoices.BuildEmailConfig(ctx, inv)
		if err != nil {
			return err
		}
		if sendFlags.to != "" {
			cfg.To = []string{sendFlags.to}
		}
		if sendFlags.subject != "" {
			cfg.Subject = sendFlags.subject
		}
		if sendFlags.body != "" {
			cfg.Body = sendFlags.body
		}

		result, err := application.Invoices.SendEmail(ctx, inv.ID, *cfg)
		if err != nil {
			return err
		}
		if !result.IsValid {
			printValidation(cmd, result)
			return fmt.Errorf("invoice not sent")
		}

		if _, err := application.Invoices.MarkSent(ctx, inv.ID); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: email sent but status update failed: %v\n", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sent invoice %s to %s\n", inv.ID, cfg.To)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFlags.status, "status", "", "filter by status (all, draft, send)")
	listCmd.Flags().StringVar(&listFlags.search, "search", "", "search id, client name, and client email")
	listCmd.Flags().StringVar(&listFlags.sortBy, "sort", "", "sort key (date, amount, client)")
	listCmd.Flags().StringVar(&listFlags.order, "order", "", "sort order (asc, desc)")

	createCmd.Flags().StringVarP(&createFlags.file, "file", "f", "", "invoice JSON document")
	_ = createCmd.MarkFlagRequired("file")

	pdfCmd.Flags().StringVarP(&pdfFlags.output, "output", "o", "", "output path (defaults to <id>.pdf)")

	sendCmd.Flags().StringVar(&sendFlags.to, "to", "", "override the recipient")
	sendCmd.Flags().StringVar(&sendFlags.subject, "subject", "", "override the subject")
	sendCmd.Flags().StringVar(&sendFlags.body, "body", "", "override the body")

	rootCmd.AddCommand(listCmd, showCmd, createCmd, deleteCmd, pdfCmd, sendCmd)
}
