package viewer

import (
	"errors"

	"origamiview/internal/config"
	"origamiview/internal/dataset"
	"origamiview/internal/geom"
)

// Options are the command line settings shared by the hosts.
type Options struct {
	ConfigPath string
	Demo       bool
	// Transform overrides the configured coordinate convention when set.
	Transform string
	Path      string
}

// Setup resolves the configuration and the dataset to show at startup. An
// empty Path without Demo yields an empty origami dataset.
func Setup(o Options) (config.Config, dataset.Dataset, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return cfg, dataset.Dataset{}, err
		}
	}
	if o.Transform != "" {
		tr, err := geom.ParseTransform(o.Transform)
		if err != nil {
			return cfg, dataset.Dataset{}, err
		}
		cfg.Transform = &tr
	}

	switch {
	case o.Demo && o.Path != "":
		return cfg, dataset.Dataset{}, errors.New("viewer: -demo and a file are mutually exclusive")
	case o.Demo:
		return cfg, dataset.Curves(), nil
	case o.Path != "":
		ds, err := dataset.Load(o.Path)
		return cfg, ds, err
	}
	return cfg, dataset.New("empty", dataset.Origami, nil), nil
}
