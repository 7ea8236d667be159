package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/otisTek/miloPlot/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is searched for from the working directory upward when no
// --config is given.
const DefaultPath = "miloplot.yaml"

// Load reads the YAML config at path on top of domain.DefaultConfig.
// An empty path means the nearest DefaultPath, which may be absent; an
// explicit path must exist.
func Load(path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		wd, err := os.Getwd()
		if err != nil {
			return domain.DefaultConfig(), nil
		}
		found, ok := Find(wd)
		if !ok {
			return domain.DefaultConfig(), nil
		}
		path = found
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindFileAccess,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto.Miloplot)
}
