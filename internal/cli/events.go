package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eventifyseu/eventify-web/internal/filter"
	"github.com/eventifyseu/eventify-web/pkg/eventify"
	"github.com/eventifyseu/eventify-web/pkg/model"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Browse and manage events",
	}
	cmd.AddCommand(
		newEventsListCmd(),
		newEventsMineCmd(),
		newEventsCreateCmd(),
		newEventsDeleteCmd(),
	)
	return cmd
}

func newEventsListCmd() *cobra.Command {
	var search, club, sortKey string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := client.ListEvents(cmd.Context())
			if err != nil {
				return fmt.Errorf("list events: %s", eventify.Message(err, err.Error()))
			}

			state := filter.Normalize(filter.State{
				Search: search,
				Club:   club,
				Sort:   filter.Sort(sortKey),
			})
			events = filter.Apply(events, state)

			printEvents(events)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Match events, descriptions, and club names")
	cmd.Flags().StringVar(&club, "club", filter.AllClubs, "Show only this club's events")
	cmd.Flags().StringVar(&sortKey, "sort", string(filter.SortDate), "Sort order: date, name, club")
	return cmd
}

func newEventsMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List events you created",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("not signed in: %s", eventify.Message(err, err.Error()))
			}

			events, err := client.ListEventsByCreator(cmd.Context(), user.ID)
			if err != nil {
				return fmt.Errorf("list events: %s", eventify.Message(err, err.Error()))
			}

			printEvents(events)
			return nil
		},
	}
}

func newEventsCreateCmd() *cobra.Command {
	var name, description, date, clubID, imagePath string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := client.Me(cmd.Context())
			if err != nil {
				return fmt.Errorf("not signed in: %s", eventify.Message(err, err.Error()))
			}

			form := eventify.EventForm{
				Name:        name,
				Description: description,
				Date:        date,
				ClubID:      clubID,
				CreatedBy:   user.ID,
			}

			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				form.Image = data
				form.ImageName = filepath.Base(imagePath)
			}

			if err := client.CreateEvent(cmd.Context(), form); err != nil {
				return fmt.Errorf("create event: %s", eventify.Message(err, err.Error()))
			}

			fmt.Printf("Event created: %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Event name")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&date, "date", "", "Event date (e.g. 2026-03-14T18:00)")
	cmd.Flags().StringVar(&clubID, "club", "", "Hosting club ID")
	cmd.Flags().StringVar(&imagePath, "image", "", "Path to a poster image")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("club")
	return cmd
}

func newEventsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteEvent(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete event: %s", eventify.Message(err, err.Error()))
			}
			fmt.Printf("Event deleted: %s\n", args[0])
			return nil
		},
	}
}

func printEvents(events []model.Event) {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}

	fmt.Printf("%-26s  %-28s  %-22s  %s\n", "ID", "NAME", "CLUB", "DATE")
	fmt.Printf("%-26s  %-28s  %-22s  %s\n", "--", "----", "----", "----")
	for _, e := range events {
		fmt.Printf("%-26s  %-28s  %-22s  %s\n", e.ID, clip(e.Name, 28), clip(e.Club.Name, 22), e.Date)
	}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
