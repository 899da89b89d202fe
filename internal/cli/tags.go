package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"awards-cms-go/internal/auth"
	"awards-cms-go/internal/editor"
)

// NewTagsCommand renames or deletes top-level tag names with the
// editor's cascade rules: fetch, apply locally, save back.
func NewTagsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Edit a region's industry and recognition lists",
	}

	run := func(cmd *cobra.Command, regionName string, apply func(*editor.Editor) error) error {
		api := opts.Client()
		doc, err := api.GetRegion(cmd.Context(), regionName)
		if err != nil {
			return err
		}

		ed := editor.New(doc.Region, doc.RegionContent, api)
		if err := apply(ed); err != nil {
			return err
		}

		saved, err := ed.Save(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved region %s\n", saved.Region)
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rename-industry REGION OLD NEW",
		Short: "Rename an industry, cascading into every award",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], func(ed *editor.Editor) error {
				return ed.RenameIndustry(args[1], args[2])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename-recognition REGION OLD NEW",
		Short: "Rename a recognition, cascading into every award",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], func(ed *editor.Editor) error {
				return ed.RenameRecognition(args[1], args[2])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-industry REGION NAME",
		Short: "Delete an industry, removing it from every award",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], func(ed *editor.Editor) error {
				return ed.DeleteIndustry(args[1])
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-recognition REGION NAME",
		Short: "Delete a recognition, removing it from every award",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], func(ed *editor.Editor) error {
				return ed.DeleteRecognition(args[1])
			})
		},
	})

	return cmd
}

// NewTOTPSecretCommand generates a TOTP secret for the admin login.
func NewTOTPSecretCommand() *cobra.Command {
	var account, issuer string

	cmd := &cobra.Command{
		Use:   "totp-secret",
		Short: "Generate an ADMIN_TOTP_SECRET and its provisioning URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := auth.GenerateTOTPSecret()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ADMIN_TOTP_SECRET=%s\n", secret)
			fmt.Fprintln(cmd.OutOrStdout(), auth.GenerateTOTPQRCodeURL(secret, account, issuer))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "admin", "account name shown in the authenticator")
	cmd.Flags().StringVar(&issuer, "issuer", "AwardsCMS", "issuer shown in the authenticator")

	return cmd
}
