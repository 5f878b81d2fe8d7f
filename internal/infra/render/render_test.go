package render

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/eni-rainstop/colorselect/internal/colormath"
	"github.com/eni-rainstop/colorselect/internal/domain"
)

func redPalette(t *testing.T) domain.Palette {
	t.Helper()
	entries, err := colormath.GeneratePalette("#ff0000")
	if err != nil {
		t.Fatalf("GeneratePalette: %v", err)
	}
	return domain.Palette{Base: "#ff0000", Entries: entries}
}

func TestForeground(t *testing.T) {
	cases := []struct {
		bg   domain.HexColor
		want domain.HexColor
	}{
		{"#ffffff", black},
		{"#ffff80", black},
		{"#000000", white},
		{"#ff0000", white},
		{"garbage", white},
	}
	for _, c := range cases {
		if got := Foreground(c.bg); got != c.want {
			t.Errorf("Foreground(%q) = %q, want %q", c.bg, got, c.want)
		}
	}
}

func TestText_Render(t *testing.T) {
	var buf bytes.Buffer
	r := NewText(&buf, domain.LocaleEnglish, 12)

	if err := r.Render(context.Background(), redPalette(t)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Base", "#ff0000", "#00ffff", "#00bfff", "#ff8000", "#ff0080", "#00ff00", "Complementary", "Analogous", "Triadic"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 7 {
		t.Errorf("expected 7 lines (base, blank, 5 entries), got %d", lines)
	}
}

func TestText_LocalizedNames(t *testing.T) {
	var buf bytes.Buffer
	if err := NewText(&buf, domain.LocaleTraditionalChinese, 0).Render(context.Background(), redPalette(t)); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	for _, want := range []string{"互補色", "類似色", "三角配色"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestJSON_Render(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSON(&buf, domain.LocaleEnglish).Render(context.Background(), redPalette(t)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var decoded struct {
		Base    string `json:"base"`
		Entries []struct {
			Label string `json:"label"`
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Base != "#ff0000" {
		t.Fatalf("unexpected base %q", decoded.Base)
	}
	if len(decoded.Entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(decoded.Entries))
	}
	first := decoded.Entries[0]
	if first.Label != "complementary" || first.Name != "Complementary" || first.Color != "#00ffff" {
		t.Fatalf("unexpected first entry %+v", first)
	}
}

func TestPNG_Render(t *testing.T) {
	var buf bytes.Buffer
	const size = 32

	if err := NewPNG(&buf, size).Render(context.Background(), redPalette(t)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != size*6 || b.Dy() != size {
		t.Fatalf("unexpected bounds %v", b)
	}

	// Top-left pixel of each cell is untouched by the caption.
	want := []domain.RGB{{R: 255}, {G: 255, B: 255}, {G: 191, B: 255}, {R: 255, G: 128}, {R: 255, B: 128}, {G: 255}}
	for i, w := range want {
		r, g, bl, _ := img.At(i*size+1, 1).RGBA()
		got := domain.RGB{R: int(r >> 8), G: int(g >> 8), B: int(bl >> 8)}
		if got != w {
			t.Errorf("cell %d = %v, want %v", i, got, w)
		}
	}
}

func TestPNG_InvalidColor(t *testing.T) {
	_, err := NewPNG(&bytes.Buffer{}, 32).Image(domain.Palette{Base: "nope"})
	if !domain.IsKind(err, domain.KindInvalidFormat) {
		t.Fatalf("expected KindInvalidFormat, got %v", err)
	}
}

func TestHTML_Render(t *testing.T) {
	var buf bytes.Buffer
	if err := NewHTML(&buf, domain.LocaleTraditionalChinese).Render(context.Background(), redPalette(t)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, `class="color-card"`); got != 5 {
		t.Fatalf("expected 5 cards, got %d", got)
	}
	for _, want := range []string{`lang="zh-TW"`, `value="#ff0000"`, "互補色", "#00bfff", "base=%23ff0000"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in page", want)
		}
	}
}

func TestHTML_RenderPageEscapesError(t *testing.T) {
	var buf bytes.Buffer
	err := NewHTML(&buf, domain.LocaleEnglish).RenderPage(Page{
		Base:  "#3498db",
		Error: `<script>alert(1)</script>`,
	})
	if err != nil {
		t.Fatalf("RenderPage error: %v", err)
	}
	if strings.Contains(buf.String(), "<script>") {
		t.Fatalf("expected error text to be escaped")
	}
	if strings.Contains(buf.String(), `class="color-card"`) {
		t.Fatalf("expected no cards on error page")
	}
}
