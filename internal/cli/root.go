// Package cli implements the eventify command line client.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eventifyseu/eventify-web/internal/logging"
	"github.com/eventifyseu/eventify-web/pkg/eventify"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *eventify.Client
)

// defaultServer returns the default API URL, checking EVENTIFY_API_URL first.
func defaultServer() string {
	if s := os.Getenv("EVENTIFY_API_URL"); s != "" {
		return s
	}
	return eventify.DefaultBaseURL
}

// NewRootCmd creates the root cobra command for the eventify CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eventify",
		Short: "Eventify SEU command line client",
		Long:  "Browse, create, and manage Eventify SEU events, clubs, and users from the terminal.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.New(flagLogLevel, flagLogFormat)

			cfg := eventify.DefaultConfig()
			cfg.BaseURL = flagServer
			if token, err := eventify.LoadToken(); err == nil {
				cfg.Token = token
			}
			client = eventify.New(cfg, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "Eventify API URL (or EVENTIFY_API_URL env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newRegisterCmd(),
		newWhoamiCmd(),
		newStatusCmd(),
		newEventsCmd(),
		newClubsCmd(),
		newUsersCmd(),
	)

	return root
}
