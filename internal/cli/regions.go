package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"awards-cms-go/pkg/model"
)

// NewRegionsCommand groups the region lifecycle subcommands.
func NewRegionsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List, create and delete regions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all region identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := opts.Client().ListRegions(cmd.Context())
			if err != nil {
				return err
			}
			for _, region := range regions {
				fmt.Fprintln(cmd.OutOrStdout(), region)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create REGION",
		Short: "Create a region seeded from the default template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.Client().CreateRegion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created region %s\n", doc.Region)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete REGION",
		Short: "Delete a region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Client().DeleteRegion(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted region %s\n", args[0])
			return nil
		},
	})

	return cmd
}

// NewGetCommand fetches one region document as pretty-printed JSON.
func NewGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get REGION",
		Short: "Fetch a region document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.Client().GetRegion(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}
}

// NewPushCommand uploads a content file as a full-replace update.
func NewPushCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push REGION FILE",
		Short: "Replace a region's content from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			var content model.RegionContent
			if err := json.Unmarshal(raw, &content); err != nil {
				return fmt.Errorf("parse %s: %w", args[1], err)
			}
			doc, err := opts.Client().UpdateRegion(cmd.Context(), args[0], content)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated region %s (%d awards)\n", doc.Region, len(doc.Awards))
			return nil
		},
	}
}
