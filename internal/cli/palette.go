package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/infra/basecolor"
	"github.com/eni-rainstop/colorselect/internal/infra/config"
	"github.com/eni-rainstop/colorselect/internal/infra/logger"
	"github.com/eni-rainstop/colorselect/internal/infra/render"
	"github.com/eni-rainstop/colorselect/internal/ports"
	"github.com/eni-rainstop/colorselect/internal/usecase"
)

func paletteCmd(debug *bool) *cobra.Command {
	var path string
	var format string
	var output string
	var locale string

	c := &cobra.Command{
		Use:   "palette [base]",
		Short: "Generate the harmony palette of a base colour",
		Long: "Generate the five harmony colours of a base colour.\n\n" +
			"The base is a #rrggbb hex colour. Use - to read it from stdin; when omitted\n" +
			"the defaults.base value of colorselect.yaml is used.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(path)
			if err != nil {
				return err
			}

			stop := startLogging(p.root, *debug, nil)
			defer stop()

			f := p.cfg.Defaults.Format
			if strings.TrimSpace(format) != "" {
				if f, err = config.ParseFormat(format); err != nil {
					return err
				}
			}

			loc, err := resolveLocale(locale, p.cfg)
			if err != nil {
				return err
			}

			var arg string
			if len(args) == 1 {
				arg = args[0]
			}
			src := baseSource(arg, cmd.InOrStdin(), p.cfg)

			// File output is buffered so a failed run leaves an existing file untouched.
			var buf bytes.Buffer
			w := cmd.OutOrStdout()
			if output != "" {
				w = &buf
			}

			r, err := newRenderer(f, w, loc, p.cfg)
			if err != nil {
				return err
			}

			uc := usecase.NewGeneratePalette(usecase.WithLogger(logger.L()))
			pal, err := uc.Execute(cmd.Context(), src, r)
			if err != nil {
				return err
			}

			if output != "" {
				if err := writeFileAtomic(output, buf.Bytes()); err != nil {
					return &domain.OpError{Op: "cli.palette", Kind: domain.KindExecution, Path: output, Err: err}
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote palette of %s to %s\n", pal.Base, output)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", "", "Project directory (optional; autodetected if omitted)")
	c.Flags().StringVarP(&format, "format", "f", "", "Output format: text|json|png (default from colorselect.yaml)")
	c.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	c.Flags().StringVar(&locale, "locale", "", "Label language: en|zh-TW (default from colorselect.yaml)")
	return c
}

func baseSource(arg string, stdin io.Reader, cfg domain.Config) ports.BaseColorSource {
	if strings.TrimSpace(arg) == "-" {
		return basecolor.NewReader(stdin)
	}
	return basecolor.Fallback{
		basecolor.Static(arg),
		basecolor.Static(cfg.Defaults.Base),
	}
}

func newRenderer(f domain.OutputFormat, w io.Writer, loc domain.Locale, cfg domain.Config) (ports.PaletteRenderer, error) {
	switch f {
	case domain.FormatText, "":
		return render.NewText(w, loc, cfg.Render.SwatchWidth), nil
	case domain.FormatJSON:
		return render.NewJSON(w, loc), nil
	case domain.FormatPNG:
		return render.NewPNG(w, cfg.Render.SwatchSize), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
}

// writeFileAtomic writes b to a temp file next to path and renames it into place.
func writeFileAtomic(path string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
