package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/services"
	"github.com/ygoproxy/ygoproxy/printer/utils"
)

type searchFlags struct {
	cardType  string
	attribute string
	race      string
	archetype string
	level     int
	levelMax  int
	scaleMin  int
	scaleMax  int
	link      int
	atkMin    int
	atkMax    int
	defMin    int
	defMax    int
	page      int
	pageSize  int
	noCustom  bool
}

var searchOpts searchFlags

var searchCmd = &cobra.Command{
	Use:   "search [keyword...]",
	Short: "Search the card database and custom cards",
	Long: "Keywords of two or more characters match both card names and card text; " +
		"name matches are listed first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		filters := searchOpts.filters(cmd, strings.Join(args, " "))
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			var result *services.SearchResult
			if searchOpts.noCustom {
				result = app.SearchService.Search(ctx, filters, searchOpts.page, searchOpts.pageSize)
			} else {
				result = app.SearchService.SearchAll(ctx, filters, searchOpts.page, searchOpts.pageSize)
			}
			printSearchResult(cmd, result)
			return nil
		})
	},
}

func init() {
	addSearchFlags(searchCmd, &searchOpts)
	rootCmd.AddCommand(searchCmd)
}

func addSearchFlags(c *cobra.Command, o *searchFlags) {
	f := c.Flags()
	f.StringVar(&o.cardType, "type", "", `card type, e.g. "Effect Monster"`)
	f.StringVar(&o.attribute, "attribute", "", "monster attribute")
	f.StringVar(&o.race, "race", "", "monster type or spell/trap property")
	f.StringVar(&o.archetype, "archetype", "", "archetype name")
	f.IntVar(&o.level, "level", 0, "level or rank, the minimum when --level-max is set")
	f.IntVar(&o.levelMax, "level-max", 0, "maximum level or rank")
	f.IntVar(&o.scaleMin, "scale-min", 0, "minimum pendulum scale")
	f.IntVar(&o.scaleMax, "scale-max", 0, "maximum pendulum scale")
	f.IntVar(&o.link, "link", 0, "link rating")
	f.IntVar(&o.atkMin, "atk-min", 0, "minimum ATK")
	f.IntVar(&o.atkMax, "atk-max", 0, "maximum ATK")
	f.IntVar(&o.defMin, "def-min", 0, "minimum DEF")
	f.IntVar(&o.defMax, "def-max", 0, "maximum DEF")
	f.IntVar(&o.page, "page", 1, "result page")
	f.IntVar(&o.pageSize, "page-size", config.DefaultPageSize, "results per page")
	f.BoolVar(&o.noCustom, "no-custom", false, "leave custom cards out")
}

// filters converts the flags, treating unchanged numeric flags as unset.
func (o searchFlags) filters(cmd *cobra.Command, keyword string) utils.CardSearchFilters {
	optional := func(name string, v int) *int {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		return &v
	}
	return utils.CardSearchFilters{
		Name:      keyword,
		Type:      o.cardType,
		Attribute: o.attribute,
		Race:      o.race,
		Archetype: o.archetype,
		Level:     optional("level", o.level),
		LevelMax:  optional("level-max", o.levelMax),
		ScaleMin:  optional("scale-min", o.scaleMin),
		ScaleMax:  optional("scale-max", o.scaleMax),
		LinkValue: optional("link", o.link),
		AtkMin:    optional("atk-min", o.atkMin),
		AtkMax:    optional("atk-max", o.atkMax),
		DefMin:    optional("def-min", o.defMin),
		DefMax:    optional("def-max", o.defMax),
	}
}

func printSearchResult(cmd *cobra.Command, result *services.SearchResult) {
	out := cmd.OutOrStdout()
	if len(result.Cards) == 0 {
		fmt.Fprintln(out, "No cards found.")
		return
	}
	for _, card := range result.Cards {
		fmt.Fprintln(out, utils.FormatCardLine(card))
	}
	fmt.Fprintf(out, "\nPage %d, %d of %s results", result.Page, len(result.Cards), utils.FormatNumber(int64(result.TotalCount)))
	if result.HasMore {
		fmt.Fprint(out, " (more available)")
	}
	fmt.Fprintln(out)
}

var archetypesCmd = &cobra.Command{
	Use:   "archetypes [partial]",
	Short: "Suggest archetype names",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		partial := ""
		if len(args) == 1 {
			partial = args[0]
		}
		limit, _ := cmd.Flags().GetInt("limit")
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			for _, name := range app.SearchService.SuggestArchetypes(ctx, partial, limit) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		})
	},
}

func init() {
	archetypesCmd.Flags().Int("limit", config.ArchetypeSuggestMax, "maximum suggestions")
	rootCmd.AddCommand(archetypesCmd)
}
