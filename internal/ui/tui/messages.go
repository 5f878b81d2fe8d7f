package tui

import "github.com/eni-rainstop/colorselect/internal/domain"

type paletteGeneratedMsg struct {
	input   string
	palette domain.Palette
	err     error
}
