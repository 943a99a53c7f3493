package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/internal/domain/deck"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/utils"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Import, save and inspect decks",
}

var deckImportCmd = &cobra.Command{
	Use:   "import <file.ydk|file.json>",
	Short: "Resolve a deck file against the card database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")
		name, _ := cmd.Flags().GetString("name")

		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			result, err := app.DeckImportService.ImportFile(ctx, args[0])
			if err != nil {
				return err
			}
			if name != "" {
				result.Deck.SetName(name)
			}

			out := cmd.OutOrStdout()
			printDeck(out, result.Deck)
			fmt.Fprintf(out, "\nImported %d of %d cards.\n", result.Found(), result.Requested)
			if result.Partial() {
				fmt.Fprintf(out, "Not found: %s\n", utils.FormatNotFound(result.NotFound))
			}

			if !save {
				return nil
			}
			if app.DeckService == nil {
				return errNoStore
			}
			saved, err := app.DeckService.Save(ctx, result.Deck)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved as %s\n", saved.ID)
			return nil
		})
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			if app.DeckService == nil {
				return errNoStore
			}
			decks, err := app.DeckService.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(decks) == 0 {
				fmt.Fprintln(out, "No saved decks.")
				return nil
			}
			for _, d := range decks {
				fmt.Fprintf(out, "%s  %-30s %3d cards  updated %s\n",
					d.ID, d.Name, d.CardCount(), d.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var deckShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			if app.DeckService == nil {
				return errNoStore
			}
			d, err := app.DeckService.Open(ctx, args[0])
			if err != nil {
				return err
			}
			printDeck(cmd.OutOrStdout(), d)
			return nil
		})
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			if app.DeckService == nil {
				return errNoStore
			}
			if err := app.DeckService.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		})
	},
}

func init() {
	deckImportCmd.Flags().Bool("save", false, "save the imported deck")
	deckImportCmd.Flags().String("name", "", "deck name (defaults to the file name)")

	deckCmd.AddCommand(deckImportCmd, deckListCmd, deckShowCmd, deckDeleteCmd)
	rootCmd.AddCommand(deckCmd)
}

func printDeck(out io.Writer, d *deck.Deck) {
	fmt.Fprintf(out, "%s (%d cards)\n", d.Name(), d.TotalCount())
	for _, section := range deck.Sections {
		items := d.Cards(section)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s Deck %d/%d\n", sectionTitle(section), d.SectionCount(section), deck.Capacity(section))
		for _, item := range items {
			fmt.Fprintf(out, "  %dx %s\n", item.Quantity, utils.FormatCardLine(item.Card))
		}
	}
}

func sectionTitle(section deck.Section) string {
	s := string(section)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
