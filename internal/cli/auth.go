package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the mailer with Google",
	Long: `Opens the authorization page in the browser and waits for the handshake
to settle. Closing the browser tab before finishing cancels the login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := application.Auth.LoginWithGoogle(cmd.Context())
		switch {
		case errors.Is(err, apperror.ErrPopupBlocked):
			return fmt.Errorf("could not open the browser for sign-in")
		case errors.Is(err, apperror.ErrAuthCancelled):
			return fmt.Errorf("login cancelled")
		case err != nil:
			return err
		}

		session := application.Auth.Session()
		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", session.UserName, session.UserEmail)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the mailer",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.Auth.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current mailer session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := application.Auth.CheckSession(cmd.Context()); err != nil {
			return err
		}

		session := application.Auth.Session()
		if !session.IsAuthenticated {
			fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> via %s\n", session.UserName, session.UserEmail, session.AuthMethod)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}
