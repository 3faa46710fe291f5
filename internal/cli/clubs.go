package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eventifyseu/eventify-web/pkg/eventify"
)

func newClubsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clubs",
		Short: "Browse and manage clubs",
	}
	cmd.AddCommand(
		newClubsListCmd(),
		newClubsCreateCmd(),
		newClubsDeleteCmd(),
	)
	return cmd
}

func newClubsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List clubs",
		RunE: func(cmd *cobra.Command, args []string) error {
			clubs, err := client.ListClubs(cmd.Context())
			if err != nil {
				return fmt.Errorf("list clubs: %s", eventify.Message(err, err.Error()))
			}

			if len(clubs) == 0 {
				fmt.Println("No clubs found.")
				return nil
			}

			fmt.Printf("%-26s  %-26s  %s\n", "ID", "NAME", "DESCRIPTION")
			fmt.Printf("%-26s  %-26s  %s\n", "--", "----", "-----------")
			for _, c := range clubs {
				fmt.Printf("%-26s  %-26s  %s\n", c.ID, clip(c.Name, 26), clip(c.Description, 48))
			}
			return nil
		},
	}
}

func newClubsCreateCmd() *cobra.Command {
	var name, description, fbLink, imagePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a club",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := eventify.ClubForm{
				Name:        name,
				Description: description,
				FBLink:      fbLink,
			}

			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				form.Image = data
				form.ImageName = filepath.Base(imagePath)
			}

			if err := client.CreateClub(cmd.Context(), form); err != nil {
				return fmt.Errorf("create club: %s", eventify.Message(err, err.Error()))
			}

			fmt.Printf("Club created: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Club name")
	cmd.Flags().StringVar(&description, "description", "", "Club description")
	cmd.Flags().StringVar(&fbLink, "fb-link", "", "Facebook page URL")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a logo image")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newClubsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <club-id>",
		Short: "Delete a club",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteClub(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete club: %s", eventify.Message(err, err.Error()))
			}
			fmt.Printf("Club deleted: %s\n", args[0])
			return nil
		},
	}
}
