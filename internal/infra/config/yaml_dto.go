package config

type YAMLFile struct {
	Miloplot YAMLConfig `yaml:"miloplot"`
}

type YAMLConfig struct {
	Output      string               `yaml:"output"`
	Page        YAMLPage             `yaml:"page"`
	Viewer      string               `yaml:"viewer"`
	HistoryFile string               `yaml:"history_file"`
	Titles      map[string]YAMLTitle `yaml:"titles"`
}

type YAMLPage struct {
	Width  *float64 `yaml:"width"`
	Height *float64 `yaml:"height"`
}

type YAMLTitle struct {
	Short   string `yaml:"short"`
	Verbose string `yaml:"verbose"`
}
