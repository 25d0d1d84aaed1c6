package main

import (
	"call-lab/domain"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func init() {
	var user domain.CurrentUser
	signInCmd := &cobra.Command{
		Use:   "signin",
		Short: "Store the current user in device-local storage, as the chat client does after login",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Local.SignIn(user); err != nil {
				return err
			}
			fmt.Println(color.Green.Sprintf("Signed in as %s (%s)", user.DisplayName, domain.Normalize(user.UserID)))
			return nil
		},
	}
	signInCmd.Flags().StringVarP(&user.UserID, "id", "i", "", "Chat user id, e.g. @alice:example.org (required)")
	signInCmd.Flags().StringVarP(&user.DisplayName, "name", "n", "", "Display name (required)")
	signInCmd.Flags().StringVarP(&user.AvatarRef, "avatar", "a", "", "Avatar media reference, e.g. mxc://example.org/abc")
	_ = signInCmd.MarkFlagRequired("id")
	_ = signInCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(signInCmd)

	var kind string
	var members []string
	var wait time.Duration
	callCmd := &cobra.Command{
		Use:   "call ROOM_ID",
		Short: "Start the calling session and invite the given members of a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			callKind := domain.CallKind(kind)
			if callKind != domain.VOICE && callKind != domain.VIDEO {
				return fmt.Errorf("--kind must be %q or %q", domain.VOICE, domain.VIDEO)
			}
			return runCall(args[0], callKind, members, wait)
		},
	}
	callCmd.Flags().StringVarP(&kind, "kind", "k", string(domain.VOICE), "voice or video")
	callCmd.Flags().StringSliceVarP(&members, "member", "m", nil, "Room member as USER_ID[=DISPLAY_NAME], repeatable")
	callCmd.Flags().DurationVarP(&wait, "wait", "w", 30*time.Second, "How long to wait for the session")
	rootCmd.AddCommand(callCmd)
}

func runCall(roomID string, kind domain.CallKind, members []string, wait time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Registry.SetMembers(roomID, parseMembers(members))
	app.Orchestrator.RegisterRoom(roomID)
	done := make(chan error, 1)
	go func() { done <- app.Orchestrator.Start(ctx) }()
	defer func() {
		_ = app.Orchestrator.Stop(context.Background())
		<-done
	}()

	timeout := time.After(wait)
	select {
	case <-app.Sessions.Ready():
	case <-timeout:
		return fmt.Errorf("session not ready after %s (state %s)", wait, app.Sessions.State())
	case <-ctx.Done():
		return ctx.Err()
	}
	for len(app.Orchestrator.Participants(roomID)) == 0 {
		select {
		case <-timeout:
			return fmt.Errorf("no one to call in %s", roomID)
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	if err := app.Orchestrator.Call(ctx, roomID, kind); err != nil {
		return err
	}
	stats := app.Metrics.Snapshot()
	fmt.Println(color.Green.Sprintf("Invitation sent to %d participants, %d call logs written, %d failed",
		len(app.Orchestrator.Participants(roomID)), stats.RecordsWritten, stats.RecordsFailed))
	return nil
}

func parseMembers(raw []string) []domain.Member {
	members := make([]domain.Member, 0, len(raw))
	for _, entry := range raw {
		id, name, found := strings.Cut(entry, "=")
		if !found {
			name = id
		}
		members = append(members, domain.Member{UserID: id, DisplayName: name, Membership: domain.JOIN})
	}
	return members
}
