package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/gitdata/application"
	"github.com/rios0rios0/gitdata/config"
	"github.com/rios0rios0/gitdata/infrastructure/codec"
	"github.com/rios0rios0/gitdata/infrastructure/workdir"
)

// buildContainer wires the config and the services into a DIG container the
// command handlers pull their dependencies from.
func buildContainer() (*dig.Container, error) {
	container := dig.New()

	constructors := []any{
		loadConfig,
		codec.NewDefaultRegistry,
		application.NewProposeService,
		application.NewBlobService,
		newScanner,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func newScanner(cfg *config.Config) *workdir.Scanner {
	return workdir.NewScanner(cfg.BlobModes())
}
