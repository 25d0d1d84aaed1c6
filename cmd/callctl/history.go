package main

import (
	"call-lab/domain"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func init() {
	var owner string
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List the call history of an owner, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.List(ownerOrSelf(owner))
			if err != nil {
				return err
			}
			renderRecords(os.Stdout, records)
			return nil
		},
	}
	historyCmd.Flags().StringVarP(&owner, "owner", "o", "", "Owner user id (defaults to the signed-in user)")
	rootCmd.AddCommand(historyCmd)

	searchCmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search the call history by participant name or label",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.History.Search(cmd.Context(), ownerOrSelf(owner), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			renderRecords(os.Stdout, records)
			return nil
		},
	}
	searchCmd.Flags().StringVarP(&owner, "owner", "o", "", "Owner user id (defaults to the signed-in user)")
	searchCmd.Flags().IntVarP(&limit, "limit", "k", 20, "Maximum number of results")
	rootCmd.AddCommand(searchCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the call history every time it changes, until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			unsubscribe, err := app.History.Watch(ctx, ownerOrSelf(owner), func(records []domain.CallLogRecord) {
				fmt.Println(color.Cyan.Sprintf("── %s · %d calls", time.Now().Format(time.TimeOnly), len(records)))
				renderRecords(os.Stdout, records)
			})
			if err != nil {
				return err
			}
			defer unsubscribe()
			<-ctx.Done()
			return nil
		},
	}
	watchCmd.Flags().StringVarP(&owner, "owner", "o", "", "Owner user id (defaults to the signed-in user)")
	rootCmd.AddCommand(watchCmd)
}

func ownerOrSelf(owner string) string {
	if owner != "" {
		return owner
	}
	user, err := app.Local.CurrentUser()
	if err != nil {
		return ""
	}
	return user.UserID
}

func renderRecords(w io.Writer, records []domain.CallLogRecord) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"When", "Call", "With", "Room", "ID"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, r := range records {
		label := color.Green.Sprint(r.Label)
		if r.Incoming {
			label = color.Yellow.Sprint(r.Label)
		}
		if r.Missed {
			label = color.Red.Sprint(r.Label + " (missed)")
		}
		table.Append([]string{
			r.CreatedAt.Local().Format(time.DateTime),
			label,
			strings.Join(r.Names, ", "),
			r.RoomID,
			r.ID,
		})
	}
	table.Render()
}
