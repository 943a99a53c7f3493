package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/internal/domain/deck"
	"github.com/ygoproxy/ygoproxy/internal/domain/layout"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/services"
	"github.com/ygoproxy/ygoproxy/printer/utils"
)

const shellHelp = `Commands:
  search <keyword>       search cards (also: s)
  next, prev             page through the last search
  add <n|id>             quick add result n or card id
  drop <n|id> <section>  put a card in main, extra or side
  remove <n|id> <section>
  show                   print the deck
  name <name>            rename the deck
  clear                  start a new deck
  import <file>          load a .ydk or .json deck file
  open <id>, save        saved decks
  export [pdf|docx]      write a proxy sheet
  format <tcg|ocg>       ban list shown by show
  cache [clear]          response cache stats
  quit`

// shell keeps one working deck and the last search across commands, the
// way the desktop editor does.
type shell struct {
	app     *printer.App
	session *services.SearchSession
	out     io.Writer

	deck    *deck.Deck
	filters utils.CardSearchFilters
	page    int
	results []cards.Card
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive deck editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			sh := &shell{
				app:     app,
				session: services.NewSearchSession(app.SearchService, 0),
				out:     cmd.OutOrStdout(),
				deck:    deck.New(""),
				page:    1,
			}
			return sh.run(ctx, cmd.InOrStdin())
		})
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func (sh *shell) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(sh.out, `ygoproxy shell, type "help" for commands`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}

		name, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		rest = strings.TrimSpace(rest)
		if name == "quit" || name == "exit" {
			return nil
		}
		if name == "" {
			continue
		}

		if err := sh.exec(ctx, strings.ToLower(name), rest); err != nil {
			fmt.Fprintln(sh.out, "error:", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (sh *shell) exec(ctx context.Context, name, rest string) error {
	switch name {
	case "help", "?":
		fmt.Fprintln(sh.out, shellHelp)
	case "search", "s":
		sh.filters = utils.CardSearchFilters{Name: rest}
		sh.page = 1
		sh.search(ctx)
	case "next":
		sh.page++
		sh.search(ctx)
	case "prev":
		if sh.page > 1 {
			sh.page--
		}
		sh.search(ctx)
	case "add":
		card, err := sh.resolve(ctx, rest)
		if err != nil {
			return err
		}
		placement, err := deck.QuickAdd(sh.deck, card)
		if err != nil {
			return err
		}
		sh.reportPlacement(card, placement)
	case "drop", "remove":
		arg, sectionName, _ := strings.Cut(rest, " ")
		section, ok := deck.ParseSection(sectionName)
		if !ok {
			return fmt.Errorf("unknown section %q", sectionName)
		}
		card, err := sh.resolve(ctx, arg)
		if err != nil {
			return err
		}
		if name == "remove" {
			sh.deck.RemoveCard(card.ID, section)
			fmt.Fprintf(sh.out, "Removed %s from %s.\n", card.Name, section)
			return nil
		}
		sh.reportPlacement(card, deck.Drop(sh.deck, card, section))
	case "show":
		sh.show(ctx)
	case "name":
		if rest == "" {
			return errors.New("usage: name <name>")
		}
		sh.deck.SetName(rest)
	case "clear":
		sh.deck.Clear()
	case "import":
		result, err := sh.app.DeckImportService.ImportFile(ctx, rest)
		if err != nil {
			return err
		}
		sh.deck = result.Deck
		fmt.Fprintf(sh.out, "Imported %d of %d cards.\n", result.Found(), result.Requested)
		if result.Partial() {
			fmt.Fprintf(sh.out, "Not found: %s\n", utils.FormatNotFound(result.NotFound))
		}
	case "open":
		if sh.app.DeckService == nil {
			return errNoStore
		}
		d, err := sh.app.DeckService.Open(ctx, rest)
		if err != nil {
			return err
		}
		sh.deck = d
		printDeck(sh.out, d)
	case "save":
		if sh.app.DeckService == nil {
			return errNoStore
		}
		saved, err := sh.app.DeckService.Save(ctx, sh.deck)
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Saved %s (%s).\n", saved.Name, saved.ID)
	case "export":
		settings := sh.app.Cfg.Export.Settings
		if rest != "" {
			format, err := layout.ParseFormat(rest)
			if err != nil {
				return err
			}
			settings.Format = format
		}
		result, err := sh.app.ExportService.Export(ctx, sh.deck, settings, sh.app.Cfg.Export.OutputDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "Wrote %s (%d pages).\n", result.Path, result.Pages)
	case "format":
		format, ok := cards.ParseFormat(rest)
		if !ok {
			return fmt.Errorf("unknown ban list format %q", rest)
		}
		return sh.app.BanListService.SetFormat(ctx, format)
	case "cache":
		if rest == "clear" {
			sh.app.API.ClearCache()
			fmt.Fprintln(sh.out, "Cache cleared.")
			return nil
		}
		stats := sh.app.API.CacheStats()
		fmt.Fprintf(sh.out, "%d cached responses\n", stats.Size)
		for _, key := range stats.Keys {
			fmt.Fprintln(sh.out, "  "+key)
		}
	default:
		return fmt.Errorf("unknown command %q, try help", name)
	}
	return nil
}

func (sh *shell) search(ctx context.Context) {
	result, ok := sh.session.Search(ctx, sh.filters, sh.page, config.DefaultPageSize)
	if !ok {
		return
	}
	sh.results = result.Cards
	for i, card := range result.Cards {
		fmt.Fprintf(sh.out, "%3d. %s\n", i+1, utils.FormatCardLine(card))
	}
	fmt.Fprintf(sh.out, "Page %d of %s results", result.Page, utils.FormatNumber(int64(result.TotalCount)))
	if result.HasMore {
		fmt.Fprint(sh.out, `, "next" for more`)
	}
	fmt.Fprintln(sh.out)
}

// resolve reads arg as a result number when it is within the last result
// list, otherwise as a card id.
func (sh *shell) resolve(ctx context.Context, arg string) (cards.Card, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return cards.Card{}, fmt.Errorf("expected a result number or card id, got %q", arg)
	}
	if n >= 1 && n <= int64(len(sh.results)) {
		return sh.results[n-1], nil
	}
	for _, item := range sh.deck.Items() {
		if item.Card.ID == n {
			return item.Card, nil
		}
	}

	card, err := sh.app.API.GetCardByID(ctx, n)
	if err != nil {
		return cards.Card{}, err
	}
	if card == nil {
		return cards.Card{}, fmt.Errorf("no card with id %d", n)
	}
	return *card, nil
}

func (sh *shell) reportPlacement(card cards.Card, p deck.Placement) {
	switch {
	case !p.Added:
		fmt.Fprintf(sh.out, "%s is already at %d copies in %s.\n", card.Name, deck.MaxCopies, p.Section)
	case p.Overflow:
		fmt.Fprintf(sh.out, "Added %s to side (%s is full).\n", card.Name, deck.DefaultSection(card))
	case p.OverCapacity:
		fmt.Fprintf(sh.out, "Added %s to %s, which is now over %d cards.\n", card.Name, p.Section, deck.Capacity(p.Section))
	default:
		fmt.Fprintf(sh.out, "Added %s to %s.\n", card.Name, p.Section)
	}
}

func (sh *shell) show(ctx context.Context) {
	printDeck(sh.out, sh.deck)

	var restricted []string
	for _, item := range sh.deck.Items() {
		if item.Card.IsCustom() {
			continue
		}
		status := sh.app.BanListService.Status(ctx, item.Card.ID)
		if status != "" && item.Quantity > status.MaxCopies() {
			restricted = append(restricted, fmt.Sprintf("%s: %dx, %s", item.Card.Name, item.Quantity, utils.FormatBanStatus(status)))
		}
	}
	if len(restricted) > 0 {
		fmt.Fprintf(sh.out, "\nOver the %s ban list:\n", sh.app.BanListService.Format())
		for _, line := range restricted {
			fmt.Fprintln(sh.out, "  "+line)
		}
	}
}
