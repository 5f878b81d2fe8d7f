package config

// FileName is the project configuration file searched for by Finder.
const FileName = "colorselect.yaml"

type yamlFile struct {
	ColorSelect yamlConfig `yaml:"colorselect"`
}

type yamlConfig struct {
	Defaults struct {
		Base   string `yaml:"base"`
		Format string `yaml:"format"`
	} `yaml:"defaults"`

	Labels struct {
		Locale string `yaml:"locale"`
	} `yaml:"labels"`

	Render struct {
		SwatchWidth *int `yaml:"swatch_width"`
		SwatchSize  *int `yaml:"swatch_size"`
	} `yaml:"render"`

	Server struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
}
