package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/list"

	"github.com/eni-rainstop/colorselect/internal/domain"
)

type entryItem struct {
	entry  domain.PaletteEntry
	name   string
	swatch string
}

func (e entryItem) Title() string       { return e.swatch + "  " + e.name }
func (e entryItem) Description() string { return string(e.entry.Color) }
func (e entryItem) FilterValue() string { return e.name }

func paletteItems(t Theme, p domain.Palette, loc domain.Locale, width int) []list.Item {
	items := make([]list.Item, 0, len(p.Entries))
	for _, e := range p.Entries {
		items = append(items, entryItem{
			entry:  e,
			name:   e.Label.DisplayName(loc),
			swatch: t.Swatch(e.Color, width),
		})
	}
	return items
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}
