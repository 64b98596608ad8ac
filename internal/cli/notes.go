package cli

import (
	"maddyverse/internal/repo"

	"github.com/spf13/cobra"
)

// newNotesCmd builds the poems/paragraphs command family; the two
// differ only in entity type and table.
func newNotesCmd[E any](app *App, use, short string, sel func(*App) *repo.Repo[E]) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short + " (remote " + use + " table)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.wire(false); err != nil {
				return err
			}
			entries, err := sel(app).List(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), entries, app.PrettyJSON)
		},
	}

	var title, content string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.wire(false); err != nil {
				return err
			}
			entry, err := sel(app).Create(cmd.Context(), repo.NoteDraft{Title: title, Content: content})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), entry, app.PrettyJSON)
		},
	}
	add.Flags().StringVar(&title, "title", "", "Entry title")
	add.Flags().StringVar(&content, "content", "", "Entry content")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.wire(false); err != nil {
				return err
			}
			return sel(app).Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}
