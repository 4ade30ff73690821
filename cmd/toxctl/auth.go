package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/toxctl/toxctl/internal/common"
	"github.com/toxctl/toxctl/internal/render"
	"github.com/toxctl/toxctl/internal/session"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage your account and session",
		Long:  `Log in or out of the toxicity detection service and inspect the active session.`,
	}

	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authRegisterCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authStatusCmd())

	return cmd
}

func authLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login [email]",
		Short: "Log in and persist the session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAuthLogin,
	}

	return cmd
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var email string
	if len(args) == 1 {
		email = strings.TrimSpace(args[0])
	} else {
		var err error
		email, err = prompter.Line("Email")
		if err != nil {
			return err
		}
	}
	if email == "" {
		return common.NewUserError("Email is required.", common.ErrMissingConfig)
	}

	password, err := prompter.Password("Password")
	if err != nil {
		return err
	}
	if password == "" {
		return common.NewUserError("Password is required.", common.ErrMissingConfig)
	}

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	token, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := mgr.Login(token, email); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	fmt.Fprintln(os.Stdout, render.FormatSuccess(fmt.Sprintf("Logged in as %s", email)))
	return nil
}

func authRegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register [email]",
		Short: "Create a new account",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAuthRegister,
	}

	return cmd
}

func runAuthRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var email string
	if len(args) == 1 {
		email = strings.TrimSpace(args[0])
	} else {
		var err error
		email, err = prompter.Line("Email")
		if err != nil {
			return err
		}
	}
	if email == "" {
		return common.NewUserError("Email is required.", common.ErrMissingConfig)
	}

	password, err := prompter.Password("Password")
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return common.NewUserError("Password must be at least 8 characters.", common.ErrInvalidConfig)
	}

	confirmPassword, err := prompter.Password("Confirm password")
	if err != nil {
		return err
	}
	if password != confirmPassword {
		return common.NewUserError("Passwords do not match.", common.ErrInvalidConfig)
	}

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	if err := client.Register(ctx, email, password); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, render.FormatSuccess("Account created. Run 'toxctl auth login' to sign in."))
	return nil
}

func authLogoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the saved session",
		RunE:  runAuthLogout,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	mgr, err := newSessionManager()
	if err != nil {
		return err
	}

	current := mgr.Current()
	if current == nil {
		fmt.Fprintln(os.Stdout, "Not logged in.")
		return nil
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !prompter.Confirm(fmt.Sprintf("Log out %s?", current.Email)) {
		fmt.Fprintln(os.Stdout, "Logout canceled.")
		return nil
	}

	if err := mgr.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Fprintln(os.Stdout, render.FormatSuccess("Logged out."))
	return nil
}

func authStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active session and server health",
		RunE:  runAuthStatus,
	}

	return cmd
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}

	current := mgr.Current()
	if current == nil {
		fmt.Fprintln(os.Stdout, "Session: guest (not logged in)")
	} else {
		fmt.Fprintf(os.Stdout, "Session: %s\n", current.Email)

		if info, inspectErr := session.InspectToken(current.Token); inspectErr == nil {
			if !info.ExpiresAt.IsZero() {
				if info.Expired(time.Now()) {
					fmt.Fprintf(os.Stdout, "Token:   expired %s\n", info.ExpiresAt.Format(time.RFC1123))
				} else {
					fmt.Fprintf(os.Stdout, "Token:   valid until %s\n", info.ExpiresAt.Format(time.RFC1123))
				}
			}
		}
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	status, err := client.Health(ctx)
	if err != nil {
		fmt.Fprintf(os.Stdout, "Server:  %s (unreachable: %v)\n", client.BaseURL(), err)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Server:  %s (%s)\n", client.BaseURL(), status.Status)
	return nil
}
