package config

import (
	"fmt"
	"strings"

	"github.com/otisTek/miloPlot/internal/domain"
)

func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if out := strings.TrimSpace(yc.Output); out != "" {
		cfg.Output = out
	}
	if yc.Page.Width != nil {
		if *yc.Page.Width <= 0 {
			return domain.DefaultConfig(), invalidField(path, "page.width", "must be positive")
		}
		cfg.Page.Width = *yc.Page.Width
	}
	if yc.Page.Height != nil {
		if *yc.Page.Height <= 0 {
			return domain.DefaultConfig(), invalidField(path, "page.height", "must be positive")
		}
		cfg.Page.Height = *yc.Page.Height
	}
	cfg.Viewer = strings.TrimSpace(yc.Viewer)
	cfg.HistoryFile = strings.TrimSpace(yc.HistoryFile)

	for name, t := range yc.Titles {
		key := strings.TrimSpace(name)
		if key == "" {
			return domain.DefaultConfig(), invalidField(path, "titles", "empty variable name")
		}
		if strings.TrimSpace(t.Short) == "" && strings.TrimSpace(t.Verbose) == "" {
			return domain.DefaultConfig(), invalidField(path, "titles."+key, "short or verbose is required")
		}
		cfg.Titles[key] = domain.Label{Short: t.Short, Verbose: t.Verbose}
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
