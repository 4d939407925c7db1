// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/model"
)

// Character grid dimensions for the occurrence map.
const (
	mapCols = 48
	mapRows = 16
)

type mapLoadedMsg struct {
	points  []model.MapPoint
	offline bool
	err     error
}

// mapModel renders theft occurrences as a density grid in the terminal.
// Real coordinates are projected onto a fixed character raster; cell
// brightness follows the summed point weight.
type mapModel struct {
	deps Deps

	loading bool
	offline bool
	points  []model.MapPoint
	errMsg  string
}

func newMapModel(deps Deps) mapModel {
	return mapModel{deps: deps, loading: true}
}

func (m mapModel) Init() tea.Cmd {
	apiClient := m.deps.API
	cache := m.deps.Cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		points, err := apiClient.MapPoints(ctx)
		if err == nil {
			if cache != nil {
				if cerr := cache.ReplaceCachedMapPoints(ctx, points); cerr != nil {
					logging.Warnf("map cache not refreshed: %v", cerr)
				}
			}
			return mapLoadedMsg{points: points}
		}
		if cache == nil {
			return mapLoadedMsg{err: err}
		}
		cached, cerr := cache.ListCachedMapPoints(ctx)
		if cerr != nil || len(cached) == 0 {
			return mapLoadedMsg{err: err}
		}
		return mapLoadedMsg{points: cached, offline: true}
	}
}

func (m mapModel) Update(msg tea.Msg) (mapModel, tea.Cmd) {
	switch msg := msg.(type) {
	case mapLoadedMsg:
		m.loading = false
		m.offline = msg.offline
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.points = msg.points
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "r":
			m.loading = true
			m.errMsg = ""
			return m, m.Init()
		}
	}
	return m, nil
}

// renderGrid projects the points into the raster and picks a glyph per
// cell by density.
func renderGrid(points []model.MapPoint) string {
	if len(points) == 0 {
		return i18n.T("map.empty")
	}

	minLat, maxLat := math.MaxFloat64, -math.MaxFloat64
	minLon, maxLon := math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		minLat = math.Min(minLat, p.Latitude)
		maxLat = math.Max(maxLat, p.Latitude)
		minLon = math.Min(minLon, p.Longitude)
		maxLon = math.Max(maxLon, p.Longitude)
	}
	latSpan := maxLat - minLat
	lonSpan := maxLon - minLon
	if latSpan == 0 {
		latSpan = 1
	}
	if lonSpan == 0 {
		lonSpan = 1
	}

	grid := make([]float64, mapRows*mapCols)
	var peak float64
	for _, p := range points {
		// Latitude grows north, rows grow down.
		row := int((maxLat - p.Latitude) / latSpan * float64(mapRows-1))
		col := int((p.Longitude - minLon) / lonSpan * float64(mapCols-1))
		w := p.Weight
		if w <= 0 {
			w = 1
		}
		grid[row*mapCols+col] += w
		peak = math.Max(peak, grid[row*mapCols+col])
	}

	glyphs := []rune{' ', '·', '+', '*', '#'}
	var b strings.Builder
	for r := 0; r < mapRows; r++ {
		for c := 0; c < mapCols; c++ {
			v := grid[r*mapCols+c]
			if v == 0 {
				b.WriteRune(glyphs[0])
				continue
			}
			idx := 1 + int(v/peak*float64(len(glyphs)-2))
			if idx >= len(glyphs) {
				idx = len(glyphs) - 1
			}
			b.WriteRune(glyphs[idx])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m mapModel) View() string {
	s := titleStyle.Render(i18n.T("map.title")) + "\n\n"
	if m.loading {
		return s + i18n.T("common.loading")
	}
	if m.offline {
		s += specialStyle.Render(i18n.T("common.offline")) + "\n\n"
	}
	if m.errMsg != "" {
		s += errorStyle.Render(m.errMsg) + "\n\n"
		return s
	}
	s += renderGrid(m.points) + "\n"
	s += helpStyle.Render(fmt.Sprintf("%s: %d", i18n.T("map.points"), len(m.points))) + "\n"
	s += helpStyle.Render(i18n.T("common.help.list"))
	return s
}
