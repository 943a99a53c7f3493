package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/services"
	"github.com/ygoproxy/ygoproxy/printer/utils"
)

var customCmd = &cobra.Command{
	Use:   "custom",
	Short: "Manage custom cards",
}

var customCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a custom card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		in := services.CustomCardInput{Name: args[0]}
		in.Type, _ = f.GetString("type")
		in.Description, _ = f.GetString("desc")
		in.Attribute, _ = f.GetString("attribute")
		in.Race, _ = f.GetString("race")
		in.Archetype, _ = f.GetString("archetype")

		ints := []struct {
			flag string
			dst  **int
		}{
			{"level", &in.Level},
			{"atk", &in.Atk},
			{"def", &in.Def},
			{"link", &in.LinkVal},
			{"scale", &in.Scale},
		}
		for _, i := range ints {
			if f.Changed(i.flag) {
				v, _ := f.GetInt(i.flag)
				*i.dst = cards.Int(v)
			}
		}

		if path, _ := f.GetString("image"); path != "" {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read image: %w", err)
			}
			in.Image = data
			in.ImageExt = strings.TrimPrefix(filepath.Ext(path), ".")
		}

		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			if app.CustomCardService == nil {
				return errNoStore
			}
			row := app.CustomCardService.Create(ctx, app.Cfg.User.ID, in)
			if row == nil {
				return fmt.Errorf("custom card was not created, see log for details")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", row.Name, row.ID)
			return nil
		})
	},
}

var customListCmd = &cobra.Command{
	Use:   "list [keyword]",
	Short: "List or search custom cards",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			if app.CustomCardService == nil {
				return errNoStore
			}

			var list []cards.Card
			if len(args) == 1 {
				list = app.CustomCardService.Search(ctx, args[0])
			} else {
				list = app.CustomCardService.List(ctx)
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No custom cards.")
				return nil
			}
			for _, card := range list {
				fmt.Fprintf(out, "%s  %s\n", card.CustomID, utils.FormatCardLine(card))
			}
			return nil
		})
	},
}

var customDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a custom card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			if app.CustomCardService == nil {
				return errNoStore
			}
			if !app.CustomCardService.Delete(ctx, args[0]) {
				return fmt.Errorf("failed to delete custom card %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		})
	},
}

func init() {
	f := customCreateCmd.Flags()
	f.String("type", "Normal Monster", "card type")
	f.String("desc", "", "card text")
	f.String("attribute", "", "monster attribute")
	f.String("race", "", "monster type or spell/trap property")
	f.String("archetype", "", "archetype")
	f.Int("level", 0, "level or rank")
	f.Int("atk", 0, "ATK")
	f.Int("def", 0, "DEF")
	f.Int("link", 0, "link rating")
	f.Int("scale", 0, "pendulum scale")
	f.String("image", "", "artwork file to upload")

	customCmd.AddCommand(customCreateCmd, customListCmd, customDeleteCmd)
	rootCmd.AddCommand(customCmd)
}
