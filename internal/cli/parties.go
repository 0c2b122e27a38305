package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/pkg/format"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage client records",
}

var clientsListFlags struct {
	search string
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		clients := application.Clients.SearchClients(clientsListFlags.search)
		if len(clients) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No clients found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tABN\tTAX")
		for _, c := range clients {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				c.ID, c.Name, c.Email, format.ABN(c.ABN), format.Percentage(c.TaxRate, 0))
		}
		return w.Flush()
	},
}

var clientsSaveFlags struct {
	file string
}

var clientsSaveCmd = &cobra.Command{
	Use:   "save --file <client.json>",
	Short: "Create or update a client from a JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(clientsSaveFlags.file)
		if err != nil {
			return err
		}
		var client entity.ClientData
		if err := json.Unmarshal(data, &client); err != nil {
			return fmt.Errorf("failed to parse client document: %w", err)
		}

		saved, result, err := application.Clients.SaveClient(cmd.Context(), client)
		if err != nil {
			return err
		}
		if !result.IsValid {
			printValidation(cmd, result)
			return fmt.Errorf("client not saved")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved client %s (%s)\n", saved.Name, saved.ID)
		return nil
	},
}

var clientsDeleteCmd = &cobra.Command{
	Use:   "delete <client-id>",
	Short: "Delete a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Clients.DeleteClient(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted client %s\n", args[0])
		return nil
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage provider records and the active provider",
}

var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List providers",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		providers := application.Providers.Collection().Snapshot()
		if len(providers) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No providers found")
			return nil
		}

		active, err := application.Providers.ActiveProvider(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tABN\tACTIVE")
		for _, p := range providers {
			mark := ""
			if active != nil && active.ID == p.ID {
				mark = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Email, format.ABN(p.ABN), mark)
		}
		return w.Flush()
	},
}

var providersSaveFlags struct {
	file string
}

var providersSaveCmd = &cobra.Command{
	Use:   "save --file <provider.json>",
	Short: "Create or update a provider from a JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(providersSaveFlags.file)
		if err != nil {
			return err
		}
		var provider entity.ProviderData
		if err := json.Unmarshal(data, &provider); err != nil {
			return fmt.Errorf("failed to parse provider document: %w", err)
		}

		saved, result, err := application.Providers.SaveProvider(cmd.Context(), provider)
		if err != nil {
			return err
		}
		if !result.IsValid {
			printValidation(cmd, result)
			return fmt.Errorf("provider not saved")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved provider %s (%s)\n", saved.Name, saved.ID)
		return nil
	},
}

var providersUseCmd = &cobra.Command{
	Use:   "use <provider-id>",
	Short: "Select the active provider for new invoices",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := application.Providers.SetActiveProvider(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Active provider: %s (%s)\n", provider.Name, provider.ID)
		return nil
	},
}

var providersDeleteCmd = &cobra.Command{
	Use:   "delete <provider-id>",
	Short: "Delete a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Providers.DeleteProvider(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted provider %s\n", args[0])
		return nil
	},
}

func init() {
	clientsListCmd.Flags().StringVar(&clientsListFlags.search, "search", "", "search name, email, and ABN")
	clientsSaveCmd.Flags().StringVarP(&clientsSaveFlags.file, "file", "f", "", "client JSON document")
	_ = clientsSaveCmd.MarkFlagRequired("file")
	clientsCmd.AddCommand(clientsListCmd, clientsSaveCmd, clientsDeleteCmd)

	providersSaveCmd.Flags().StringVarP(&providersSaveFlags.file, "file", "f", "", "provider JSON document")
	_ = providersSaveCmd.MarkFlagRequired("file")
	providersCmd.AddCommand(providersListCmd, providersSaveCmd, providersUseCmd, providersDeleteCmd)

	rootCmd.AddCommand(clientsCmd, providersCmd)
}
