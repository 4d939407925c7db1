// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// cases.go holds the case-facing commands: listing and inspecting theft
// reports, advancing statuses (police portal) and the occurrence map.
// Listings refresh the local cache and fall back to it when offline.

package cli

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/store"
)

func newCasesCmd() *cobra.Command {
	var statusFilter string
	cmd := &cobra.Command{
		Use:   "casos",
		Short: "List and inspect theft and loss cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCases(statusFilter)
		},
	}
	cmd.PersistentFlags().StringVarP(&statusFilter, "status", "s", "", "Filter by status")
	cmd.AddCommand(newCaseShowCmd(), newCaseStatusCmd())
	return cmd
}

func listCases(statusFilter string) error {
	if err := requireSession(); err != nil {
		return err
	}
	filter := model.CaseStatus("")
	if statusFilter != "" {
		filter = model.NormalizeStatus(statusFilter)
		if !model.KnownStatus(filter) {
			return fmt.Errorf("%s: %q", i18n.T("cases.error.unknown_status"), statusFilter)
		}
	}

	ctx, cancel := commandContext()
	defer cancel()
	cases, offline, err := fetchCases(ctx, filter)
	if err != nil {
		return err
	}
	if offline {
		fmt.Println(i18n.T("common.offline"))
	}
	if len(cases) == 0 {
		fmt.Println(i18n.T("cases.empty"))
		return nil
	}
	for _, c := range cases {
		fmt.Printf("%-16s %-12s %-24s %s\n", c.Protocol, c.Status, c.ObjectName, c.Neighborhood)
	}
	return nil
}

// fetchCases loads from the API, refreshing the cache on success and
// serving the cached copy when the service is unreachable.
func fetchCases(ctx context.Context, filter model.CaseStatus) ([]model.Case, bool, error) {
	cases, err := apiClient.ListCases(ctx, filter)
	if err == nil {
		if store.IsInitialized() && filter == "" {
			if cerr := store.Get().ReplaceCachedCases(ctx, cases); cerr != nil {
				log.Warnf("case cache not refreshed: %v", cerr)
			}
		}
		return cases, false, nil
	}
	if !store.IsInitialized() {
		return nil, false, err
	}
	cached, cerr := store.Get().ListCachedCases(ctx)
	if cerr != nil || len(cached) == 0 {
		return nil, false, err
	}
	if filter != "" {
		filtered := cached[:0]
		for _, c := range cached {
			if c.Status == filter {
				filtered = append(filtered, c)
			}
		}
		cached = filtered
	}
	return cached, true, nil
}

func newCaseShowCmd() *cobra.Command {
	var copyProtocol bool
	cmd := &cobra.Command{
		Use:   "show <protocolo>",
		Short: "Show one case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()
			c, err := apiClient.GetCase(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", i18n.T("cases.protocol"), c.Protocol)
			fmt.Printf("%s: %s\n", i18n.T("cases.status"), c.Status)
			fmt.Printf("%s: %s (%s)\n", i18n.T("objects.form.name"), c.ObjectName, c.Category)
			if c.Description != "" {
				fmt.Printf("%s: %s\n", i18n.T("objects.form.description"), c.Description)
			}
			if !c.OccurredAt.IsZero() {
				fmt.Printf("%s\n", c.OccurredAt.Format("02/01/2006 15:04"))
			}
			if c.Location != "" {
				fmt.Printf("%s - %s\n", c.Location, c.Neighborhood)
			}
			if copyProtocol {
				if err := clipboard.WriteAll(c.Protocol); err != nil {
					return err
				}
				fmt.Println(i18n.T("cases.copied"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyProtocol, "copy", "c", false, "Copy the protocol to the clipboard")
	return cmd
}

func newCaseStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <protocolo> <status>",
		Short: "Set a case status (police portal)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			if sessions.Current().User.Type != model.UserOfficer {
				return fmt.Errorf("only police accounts can change case statuses")
			}
			status := model.NormalizeStatus(args[1])
			ctx, cancel := commandContext()
			defer cancel()
			if err := apiClient.UpdateCaseStatus(ctx, args[0], status); err != nil {
				return err
			}
			fmt.Println(i18n.Tf("cases.status_updated", map[string]any{
				"Protocol": args[0],
				"Status":   string(status),
			}))
			return nil
		},
	}
}

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mapa",
		Short: "Show occurrence points for the area",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			ctx, cancel := commandContext()
			defer cancel()

			points, err := apiClient.MapPoints(ctx)
			offline := false
			if err != nil {
				if !store.IsInitialized() {
					return err
				}
				cached, cerr := store.Get().ListCachedMapPoints(ctx)
				if cerr != nil || len(cached) == 0 {
					return err
				}
				points, offline = cached, true
			} else if store.IsInitialized() {
				if cerr := store.Get().ReplaceCachedMapPoints(ctx, points); cerr != nil {
					log.Warnf("map cache not refreshed: %v", cerr)
				}
			}

			if offline {
				fmt.Println(i18n.T("common.offline"))
			}
			if len(points) == 0 {
				fmt.Println(i18n.T("map.empty"))
				return nil
			}
			for _, p := range points {
				fmt.Printf("%-16s %9.5f %9.5f  %-12s %.1f\n", p.Protocol, p.Latitude, p.Longitude, p.Category, p.Weight)
			}
			return nil
		},
	}
}
