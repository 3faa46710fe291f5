package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eventifyseu/eventify-web/pkg/eventify"
	"github.com/eventifyseu/eventify-web/pkg/model"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage accounts (super-admin)",
	}
	cmd.AddCommand(
		newUsersListCmd(),
		newUsersCreateCmd(),
		newUsersRoleCmd(),
		newUsersDeleteCmd(),
	)
	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := client.ListUsers(cmd.Context())
			if err != nil {
				return fmt.Errorf("list users: %s", eventify.Message(err, err.Error()))
			}

			if len(users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			fmt.Printf("%-26s  %-20s  %-28s  %s\n", "ID", "USERNAME", "EMAIL", "ROLE")
			fmt.Printf("%-26s  %-20s  %-28s  %s\n", "--", "--------", "-----", "----")
			for _, u := range users {
				fmt.Printf("%-26s  %-20s  %-28s  %s\n", u.ID, clip(u.Username, 20), clip(u.Email, 28), u.Role)
			}
			return nil
		},
	}
}

func newUsersCreateCmd() *cobra.Command {
	var username, email, password, role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account with an explicit role",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := model.Role(role)
			if !r.Valid() {
				return fmt.Errorf("unknown role %q (want one of %v)", role, model.Roles())
			}

			u := eventify.NewUser{
				Username: username,
				Email:    email,
				Password: password,
				Role:     r,
			}
			if err := client.CreateUser(cmd.Context(), u); err != nil {
				return fmt.Errorf("create user: %s", eventify.Message(err, err.Error()))
			}

			fmt.Printf("User created: %s (%s)\n", username, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username")
	cmd.Flags().StringVar(&email, "email", "", "Email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	cmd.Flags().StringVar(&role, "role", string(model.RoleUser), "Role: user, admin, super-admin")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	return cmd
}

func newUsersRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <user-id> <role>",
		Short: "Change an account's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := model.Role(args[1])
			if !role.Valid() {
				return fmt.Errorf("unknown role %q (want one of %v)", args[1], model.Roles())
			}

			if err := client.UpdateUserRole(cmd.Context(), args[0], role); err != nil {
				return fmt.Errorf("change role: %s", eventify.Message(err, err.Error()))
			}

			fmt.Printf("Role changed: %s is now %s\n", args[0], role)
			return nil
		},
	}
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete user: %s", eventify.Message(err, err.Error()))
			}
			fmt.Printf("User deleted: %s\n", args[0])
			return nil
		},
	}
}
