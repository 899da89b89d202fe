package cli

import (
	"os"

	"github.com/spf13/cobra"

	"awards-cms-go/internal/client"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL string
	Token  string
}

// Client builds an API client from the global flags.
func (o *RootOptions) Client() *client.Client {
	return client.NewClient(client.ClientConfig{
		BaseURL:    o.APIURL,
		WriteToken: o.Token,
	})
}

// NewRootCommand creates the root command for the awardsctl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "awardsctl",
		Short: "awardsctl manages awards CMS regions over the HTTP API",
	}

	// Global flags, defaulting from the same env vars the server reads
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api", envOr("AWARDS_API_URL", "http://localhost:8080"), "base URL of the awards API")
	cmd.PersistentFlags().StringVar(&opts.Token, "token", os.Getenv("AWARDS_API_TOKEN"), "bearer token for write operations")

	cmd.AddCommand(NewRegionsCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewPushCommand(opts))
	cmd.AddCommand(NewTagsCommand(opts))
	cmd.AddCommand(NewTOTPSecretCommand())

	return cmd
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
