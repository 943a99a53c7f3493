package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/ygoproxy/ygoproxy/internal/domain/cards"
	"github.com/ygoproxy/ygoproxy/printer"
	"github.com/ygoproxy/ygoproxy/printer/utils"
)

var banlistCmd = &cobra.Command{
	Use:   "banlist [card-id...]",
	Short: "Show ban list status",
	Long:  "Without ids, lists every restricted card of the format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("format")
		format, ok := cards.ParseFormat(name)
		if !ok {
			return fmt.Errorf("unknown ban list format %q", name)
		}

		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid card id %q", arg)
			}
			ids = append(ids, id)
		}

		return withApp(cmd, func(ctx context.Context, app *printer.App) error {
			out := cmd.OutOrStdout()
			svc := app.BanListService
			if err := svc.SetFormat(ctx, format); err != nil {
				return err
			}

			if len(ids) > 0 {
				for _, id := range ids {
					status := utils.FormatBanStatus(svc.Status(ctx, id))
					if status == "" {
						status = "Unlimited"
					}
					fmt.Fprintf(out, "%d  %s\n", id, status)
				}
				return nil
			}

			entries, err := svc.Entries(ctx, format)
			if err != nil {
				return err
			}
			sort.Slice(entries, func(i, j int) bool {
				a, b := entries[i].Status(format).MaxCopies(), entries[j].Status(format).MaxCopies()
				if a != b {
					return a < b
				}
				return entries[i].CardID < entries[j].CardID
			})
			for _, e := range entries {
				fmt.Fprintf(out, "%d  %s\n", e.CardID, utils.FormatBanStatus(e.Status(format)))
			}
			return nil
		})
	},
}

func init() {
	banlistCmd.Flags().String("format", "tcg", "tcg or ocg")
	rootCmd.AddCommand(banlistCmd)
}
