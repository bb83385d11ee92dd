package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fuelrun/internal/core"
)

// palette maps each screen role to a 256-color terminal style.
var palette = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorText:      fg("252"),
	core.ColorTitle:     fg("229").Bold(true),
	core.ColorCue:       fg("213"),
	core.ColorDust:      fg("238"),
	core.ColorShip:      fg("51").Bold(true),
	core.ColorHostile:   fg("196"),
	core.ColorBullet:    fg("226"),
	core.ColorFuel:      fg("118"),
	core.ColorFuelGauge: fg("208"),
	core.ColorTarget:    fg("214"),
	core.ColorStar:      fg("220"),
	core.ColorEmber:     fg("160"),
	core.ColorFlame:     fg("202"),
	core.ColorSpark:     fg("227"),
	core.ColorSmoke:     fg("244"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as runs of same-colored cells, one escape sequence per run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(styleFor(current).Render(string(run)))
				run, current = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(current).Render(string(run)))
		}
	}
	return sb.String()
}
