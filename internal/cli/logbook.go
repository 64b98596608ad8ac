package cli

import (
	"fmt"

	"maddyverse/internal/model"
	"maddyverse/internal/repo"

	"github.com/spf13/cobra"
)

func newLogbookCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logbook",
		Short: "The Lifephile Logbook (remote todos table)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all logbook items, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.wire(false); err != nil {
				return err
			}
			items, err := app.Logbook.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), items, app.PrettyJSON)
		},
	}

	var category string
	add := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a logbook item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.wire(false); err != nil {
				return err
			}
			item, err := app.Logbook.Create(cmd.Context(), repo.LogbookDraft{
				Text:     args[0],
				Category: model.Category(category),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), item, app.PrettyJSON)
		},
	}
	add.Flags().StringVar(&category, "category", string(model.CategoryAdventures),
		"Category (adventures|home|trips|memories|dreams)")

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip an item's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.wire(false); err != nil {
				return err
			}
			items, err := app.Logbook.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, it := range items {
				if it.ID != args[0] {
					continue
				}
				patch := struct {
					Completed bool `json:"completed"`
				}{Completed: !it.Completed}
				if err := app.Logbook.Update(cmd.Context(), it.ID, patch); err != nil {
					return err
				}
				it.Completed = patch.Completed
				return writeJSON(cmd.OutOrStdout(), it, app.PrettyJSON)
			}
			return fmt.Errorf("logbook item not found: %s", args[0])
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a logbook item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.wire(false); err != nil {
				return err
			}
			return app.Logbook.Delete(cmd.Context(), args[0])
		},
	}

	cmd.AddCommand(list, add, toggle, del)
	return cmd
}
