package domain

// OutputFormat selects how a palette is rendered by the CLI.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatPNG  OutputFormat = "png"
)

// Config represents the colorselect configuration loaded from colorselect.yaml.
type Config struct {
	Defaults DefaultsConfig
	Labels   LabelsConfig
	Render   RenderConfig
	Server   ServerConfig
}

type DefaultsConfig struct {
	Base   HexColor
	Format OutputFormat
}

type LabelsConfig struct {
	Locale Locale
}

type RenderConfig struct {
	SwatchWidth int // terminal cells
	SwatchSize  int // PNG pixels
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// DefaultConfig provides sane defaults if colorselect.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Base:   "#3498db",
			Format: FormatText,
		},
		Labels: LabelsConfig{Locale: LocaleEnglish},
		Render: RenderConfig{
			SwatchWidth: 14,
			SwatchSize:  96,
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"*"},
		},
	}
}
