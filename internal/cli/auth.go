package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eventifyseu/eventify-web/internal/session"
	"github.com/eventifyseu/eventify-web/pkg/eventify"
)

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to Eventify SEU",
		Long:  "Authenticate with email and password and store the auth token for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			user, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %s", eventify.Message(err, err.Error()))
			}

			if err := eventify.SaveToken(client.Token()); err != nil {
				return fmt.Errorf("save token: %w", err)
			}

			fmt.Printf("Signed in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted if omitted)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and discard the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Best effort remotely; the local token goes regardless.
			if err := client.Logout(cmd.Context()); err != nil {
				logger.Debug("remote logout failed", "error", err)
			}
			if err := eventify.ClearToken(); err != nil {
				return fmt.Errorf("clear token: %w", err)
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	var username, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an Eventify SEU account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = prompt("Username: "); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = prompt("Email: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt("Password: "); err != nil {
					return err
				}
			}

			user, err := client.Register(cmd.Context(), username, email, password)
			if err != nil {
				return fmt.Errorf("register: %s", eventify.Message(err, err.Error()))
			}

			if err := eventify.SaveToken(client.Token()); err != nil {
				return fmt.Errorf("save token: %w", err)
			}

			fmt.Printf("Account created. Signed in as %s (%s)\n", user.Username, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username (prompted if omitted)")
	cmd.Flags().StringVar(&email, "email", "", "Email (prompted if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted if omitted)")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("not signed in: %s", eventify.Message(err, err.Error()))
			}
			fmt.Printf("%s <%s> role=%s\n", user.Username, user.Email, user.Role)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			gate := session.NewGate(client, logger)
			snap := gate.Initialize(cmd.Context())

			switch snap.Status {
			case session.StatusAuthenticated:
				fmt.Printf("authenticated as %s (%s)\n", snap.User.Username, snap.User.Role)
			default:
				fmt.Println("anonymous")
			}
			return nil
		},
	}
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
