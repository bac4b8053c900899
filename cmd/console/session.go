package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/weathertrigger-console/internal/app"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/authenticating"
)

var (
	loginEmail    string
	loginPassword string
)

// passwordEnv evita expor a senha no histórico do shell
const passwordEnv = "CONSOLE_PASSWORD"

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session tokens",
	Long: `Signs in against the backend and stores the session tokens in the local
database, sealed with SECRET_KEY. The password is read from --password or
from the CONSOLE_PASSWORD environment variable.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored tokens",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (required)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (or set "+passwordEnv+")")
	_ = loginCmd.MarkFlagRequired("email")
}

func runLogin(cmd *cobra.Command, args []string) error {
	password := loginPassword
	if password == "" {
		password = os.Getenv(passwordEnv)
	}
	if password == "" {
		return errors.New("password is required")
	}

	return withApp(func(ctx context.Context, a *app.App) error {
		user, err := a.Auth.Login(ctx, authenticating.LoginInput{Email: loginEmail, Password: password})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Email)
		return nil
	})
}

func runLogout(cmd *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app.App) error {
		if err := a.Auth.Logout(ctx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
		return nil
	})
}
