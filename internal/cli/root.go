package cli

import (
	"io"
	"os"

	"maddyverse/internal/config"
	"maddyverse/internal/model"
	"maddyverse/internal/recordstore"
	"maddyverse/internal/repo"
	"maddyverse/internal/tui"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App carries the wired dependencies for a single invocation. The
// record store client is constructed here, once, and injected into each
// repository; nothing holds a package-level handle.
type App struct {
	PrettyJSON bool

	Config     config.Config
	Log        zerolog.Logger
	Logbook    *repo.Repo[model.LogbookItem]
	Poems      *repo.Repo[model.Poem]
	Paragraphs *repo.Repo[model.Paragraph]
}

// wire loads configuration and builds the client + repositories.
// forTUI routes logs to a file (or nowhere) so recurring remote
// failures never write over the alt-screen.
func (app *App) wire(forTUI bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	app.Config = cfg

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if forTUI {
		w = io.Discard
		if cfg.LogFile != "" {
			if f, ferr := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); ferr == nil {
				w = f
			}
		}
	}
	app.Log = zerolog.New(w).With().Timestamp().Logger()

	// An unconfigured record store is not a startup error: calls will
	// fail and be logged, and the UI stays usable.
	client := recordstore.New(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	app.Logbook = repo.NewLogbook(client, app.Log)
	app.Poems = repo.NewPoems(client, app.Log)
	app.Paragraphs = repo.NewParagraphs(client, app.Log)
	return nil
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "maddyverse",
		Short:        "A tiny universe: journal, arcade, logbook, poems, paragraphs",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if err := app.wire(true); err != nil {
				return err
			}
			return tui.Run(tui.Deps{
				Logbook:    app.Logbook,
				Poems:      app.Poems,
				Paragraphs: app.Paragraphs,
				Log:        app.Log,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLogbookCmd(app))
	cmd.AddCommand(newNotesCmd(app, "poems", "Poems", func(a *App) *repo.Repo[model.Poem] { return a.Poems }))
	cmd.AddCommand(newNotesCmd(app, "paragraphs", "Paragraphs", func(a *App) *repo.Repo[model.Paragraph] { return a.Paragraphs }))
	return cmd
}
