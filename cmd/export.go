package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/internal/domain/deck"
	"github.com/ygoproxy/ygoproxy/internal/domain/layout"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/utils"
)

var exportCmd = &cobra.Command{
	Use:   "export [deck-file]",
	Short: "Print a deck as a PDF or Word proxy sheet",
	Long: "Exports a deck file, or a saved deck with --deck. Layout flags override " +
		"the [export] section of the config; dimensions are in centimetres.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID, _ := cmd.Flags().GetString("deck")
		if (deckID == "") == (len(args) == 0) {
			return fmt.Errorf("pass either a deck file or --deck")
		}

		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			settings, err := exportSettings(cmd, app.Cfg.Export.Settings)
			if err != nil {
				return err
			}
			outputDir, _ := cmd.Flags().GetString("output")
			if outputDir == "" {
				outputDir = app.Cfg.Export.OutputDir
			}

			d, err := exportDeck(ctx, cmd, app, deckID, args)
			if err != nil {
				return err
			}

			result, err := app.ExportService.Export(ctx, d, settings, outputDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d cards on %d pages)\n", result.Path, result.Cards, result.Pages)
			return nil
		})
	},
}

func exportDeck(ctx context.Context, cmd *cobra.Command, app *printer.App, deckID string, args []string) (*deck.Deck, error) {
	if deckID != "" {
		if app.DeckService == nil {
			return nil, errNoStore
		}
		return app.DeckService.Open(ctx, deckID)
	}

	result, err := app.DeckImportService.ImportFile(ctx, args[0])
	if err != nil {
		return nil, err
	}
	if result.Partial() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Skipping cards not found: %s\n", utils.FormatNotFound(result.NotFound))
	}
	return result.Deck, nil
}

// exportSettings applies the changed layout flags on top of base.
func exportSettings(cmd *cobra.Command, base layout.Settings) (layout.Settings, error) {
	f := cmd.Flags()
	s := base

	if f.Changed("format") {
		v, _ := f.GetString("format")
		format, err := layout.ParseFormat(v)
		if err != nil {
			return s, err
		}
		s.Format = format
	}

	dims := []struct {
		flag string
		dst  *float64
	}{
		{"card-width", &s.CardWidth},
		{"card-height", &s.CardHeight},
		{"page-width", &s.PageWidth},
		{"page-height", &s.PageHeight},
		{"margin-top", &s.MarginTop},
		{"margin-bottom", &s.MarginBottom},
		{"margin-left", &s.MarginLeft},
		{"margin-right", &s.MarginRight},
		{"gap", &s.Gap},
	}
	for _, d := range dims {
		if f.Changed(d.flag) {
			*d.dst, _ = f.GetFloat64(d.flag)
		}
	}
	return s, s.Validate()
}

func init() {
	addExportFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func addExportFlags(c *cobra.Command) {
	f := c.Flags()
	f.String("deck", "", "id of a saved deck")
	f.StringP("output", "o", "", "output directory")
	f.StringP("format", "f", "pdf", "pdf or docx")
	defaults := layout.DefaultSettings()
	f.Float64("card-width", defaults.CardWidth, "card width")
	f.Float64("card-height", defaults.CardHeight, "card height")
	f.Float64("page-width", defaults.PageWidth, "page width")
	f.Float64("page-height", defaults.PageHeight, "page height")
	f.Float64("margin-top", defaults.MarginTop, "top margin")
	f.Float64("margin-bottom", defaults.MarginBottom, "bottom margin")
	f.Float64("margin-left", defaults.MarginLeft, "left margin")
	f.Float64("margin-right", defaults.MarginRight, "right margin")
	f.Float64("gap", defaults.Gap, "space between cards")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			entries, err := app.ExportService.History(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No exports yet.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %-4s %3d cards  %s\n",
					e.CreatedAt.Local().Format("2006-01-02 15:04"), e.ExportFormat, e.CardCount, e.DeckName)
			}
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum entries (default 50)")
	rootCmd.AddCommand(historyCmd)
}
