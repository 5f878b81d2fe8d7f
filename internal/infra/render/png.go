package render

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/eni-rainstop/colorselect/internal/colormath"
	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/ports"
)

// PNG draws the base colour followed by every entry as square swatches in a single row,
// each captioned with its hex code.
type PNG struct {
	w    io.Writer
	size int
}

func NewPNG(w io.Writer, size int) *PNG {
	if size < 16 {
		size = domain.DefaultConfig().Render.SwatchSize
	}
	return &PNG{w: w, size: size}
}

var _ ports.PaletteRenderer = (*PNG)(nil)

func (p *PNG) Render(_ context.Context, pal domain.Palette) error {
	img, err := p.Image(pal)
	if err != nil {
		return err
	}
	return png.Encode(p.w, img)
}

// Image builds the swatch strip without encoding it.
func (p *PNG) Image(pal domain.Palette) (*image.RGBA, error) {
	colors := make([]domain.HexColor, 0, len(pal.Entries)+1)
	colors = append(colors, pal.Base)
	for _, e := range pal.Entries {
		colors = append(colors, e.Color)
	}

	img := image.NewRGBA(image.Rect(0, 0, p.size*len(colors), p.size))
	for i, hx := range colors {
		fill, err := toRGBA(hx)
		if err != nil {
			return nil, err
		}
		cell := image.Rect(i*p.size, 0, (i+1)*p.size, p.size)
		draw.Draw(img, cell, image.NewUniform(fill), image.Point{}, draw.Src)

		ink, err := toRGBA(Foreground(hx))
		if err != nil {
			return nil, err
		}
		caption(img, cell, string(hx), ink)
	}
	return img, nil
}

// caption centres s near the bottom edge of cell.
func caption(img *image.RGBA, cell image.Rectangle, s string, ink color.RGBA) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
	}
	width := d.MeasureString(s).Ceil()
	x := cell.Min.X + (cell.Dx()-width)/2
	if x < cell.Min.X {
		x = cell.Min.X
	}
	y := cell.Max.Y - face.Descent - 4
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

func toRGBA(hx domain.HexColor) (color.RGBA, error) {
	rgb, err := colormath.HexToRGB(hx)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 0xff}, nil
}
