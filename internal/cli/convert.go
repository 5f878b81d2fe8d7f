package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eni-rainstop/colorselect/internal/domain"
	"github.com/eni-rainstop/colorselect/internal/usecase"
)

func convertCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a colour as hex, rgb and hsl",
		Example: "  colorselect convert '#3498db'\n" +
			"  colorselect convert 'rgb(52, 152, 219)' --format json",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := usecase.NewDescribeColor().Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printColorInfo(cmd.OutOrStdout(), info, format)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "text", "Output format: text|json")
	return c
}

func shiftCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "shift <color> <degrees>",
		Short: "Rotate the hue of a colour",
		Example: "  colorselect shift '#ff0000' 180\n" +
			"  colorselect shift '#ff0000' -- -30",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
			if err != nil {
				return domain.InvalidFormat("cli.shift", "degrees %q is not a number", args[1])
			}

			info, err := usecase.NewShiftColor().Execute(cmd.Context(), args[0], deg)
			if err != nil {
				return err
			}
			return printColorInfo(cmd.OutOrStdout(), info, format)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "text", "Output format: text|json")
	return c
}

func printColorInfo(w io.Writer, info domain.ColorInfo, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "text", "":
		_, err := fmt.Fprintf(w, "hex  %s\nrgb  %s\nhsl  %s\n", info.Hex, info.RGB, info.HSL)
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected text|json)", format)
	}
}
