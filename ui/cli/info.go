// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/acheiapp/achei/internal/cep"
	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/store"
)

func newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "painel",
		Short: "Show the citizen dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()
			stats, err := apiClient.DashboardStats(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d\n", i18n.T("dashboard.objects"), stats.RegisteredObjects)
			fmt.Printf("%s: %d\n", i18n.T("dashboard.open_cases"), stats.OpenCases)
			fmt.Printf("%s: %d\n", i18n.T("dashboard.recovered"), stats.RecoveredObjects)
			fmt.Printf("%s: %d\n", i18n.T("dashboard.alerts"), stats.ActiveAlerts)
			return nil
		},
	}
}

func newNotificationsCmd() *cobra.Command {
	var markRead int64
	cmd := &cobra.Command{
		Use:   "notificacoes",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			if markRead > 0 {
				if store.IsInitialized() {
					if cerr := store.Get().MarkNotificationRead(ctx, markRead); cerr != nil {
						log.Warnf("notification %d not marked locally: %v", markRead, cerr)
					}
				}
				if err := apiClient.MarkNotificationRead(ctx, markRead); err != nil {
					return err
				}
				fmt.Println(i18n.T("notifications.marked"))
				return nil
			}

			notifs, err := apiClient.Notifications(ctx)
			if err != nil {
				return err
			}
			if store.IsInitialized() {
				readIDs, cerr := store.Get().ReadNotificationIDs(ctx)
				if cerr == nil {
					for i := range notifs {
						if readIDs[notifs[i].ID] {
							notifs[i].Read = true
						}
					}
				}
			}
			if len(notifs) == 0 {
				fmt.Println(i18n.T("notifications.empty"))
				return nil
			}
			for _, n := range notifs {
				marker := "*"
				if n.Read {
					marker = " "
				}
				fmt.Printf("%s %-4d %s: %s\n", marker, n.ID, n.Title, n.Message)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&markRead, "lida", 0, "Mark the given notification as read")
	return cmd
}

// cepError translates the lookup sentinels into the active language.
func cepError(err error) error {
	switch {
	case errors.Is(err, cep.ErrInvalidCEP):
		return errors.New(i18n.T("cep.error.invalid"))
	case errors.Is(err, cep.ErrNotFound):
		return errors.New(i18n.T("cep.error.not_found"))
	default:
		return err
	}
}

func newCEPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cep <código>",
		Short: "Look up a Brazilian postal code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()
			addr, err := cepClient.Lookup(ctx, args[0])
			if err != nil {
				return cepError(err)
			}
			fmt.Printf("%s\n%s - %s/%s\n", addr.Street, addr.Neighborhood, addr.City, addr.State)
			return nil
		},
	}
}
