package domain

// Config represents the optional settings loaded from miloplot.yaml.
type Config struct {
	Output      string
	Page        PageConfig
	Viewer      string
	HistoryFile string
	Titles      TitleTable
}

// PageConfig is the figure size in inches.
type PageConfig struct {
	Width  float64
	Height float64
}

// DefaultConfig provides sane defaults if miloplot.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: DefaultOutputPath,
		Page: PageConfig{
			Width:  14,
			Height: 9,
		},
		Titles: TitleTable{},
	}
}

// TitleTable returns the built-in labels overlaid with configured ones.
func (c Config) TitleTable() TitleTable {
	return defaultTitles.With(c.Titles)
}
