package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const generateTimeout = 2 * time.Second

func cmdGenerate(deps Deps, input string) tea.Cmd {
	return func() tea.Msg {
		if deps.Palettes == nil {
			return paletteGeneratedMsg{input: input, err: errors.New("PaletteGenerator is nil")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()

		start := time.Now()
		p, err := deps.Palettes.Generate(ctx, input)
		if deps.Logger != nil {
			switch {
			case err != nil:
				deps.Logger.Warn("tui.generate.failed", "input", input, "err", err)
			case deps.Debug:
				deps.Logger.Debug("tui.generate.ok",
					"base", string(p.Base),
					"entries", len(p.Entries),
					"duration_ms", time.Since(start).Milliseconds(),
				)
			}
		}
		return paletteGeneratedMsg{input: input, palette: p, err: err}
	}
}
