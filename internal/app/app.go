package app

import (
	"context"

	"github.com/maxbolgarin/contem"
	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/logze/v2"

	"github.com/AdenMGB/devtoolbox/internal/config"
	"github.com/AdenMGB/devtoolbox/internal/provider"
	"github.com/AdenMGB/devtoolbox/internal/server"
	"github.com/AdenMGB/devtoolbox/internal/tools/hash"
)

// Toolbox is the main service that wires the tool cores to the API server
type Toolbox struct {
	server  *server.Server
	hasher  *hash.Pipeline
	fetcher *provider.Fetcher

	cfg config.Config
	log logze.Logger
}

// New creates a new toolbox service
func New(ctx contem.Context, cfg config.Config) (*Toolbox, error) {
	service := &Toolbox{
		cfg: cfg,
		log: logze.With("component", "app"),
	}

	if err := service.init(ctx, cfg); err != nil {
		return nil, errm.Wrap(err, "failed to initialize service")
	}

	return service, nil
}

// Start starts the API server
func (t *Toolbox) Start(ctx context.Context) error {
	if err := t.server.Start(ctx); err != nil {
		return errm.Wrap(err, "failed to start server")
	}
	return nil
}

func (t *Toolbox) init(ctx contem.Context, cfg config.Config) (err error) {

	// The hash pipeline owns a goroutine pool, everything else is stateless
	t.hasher, err = hash.NewPipeline()
	if err != nil {
		return errm.Wrap(err, "failed to create hash pipeline")
	}
	ctx.Add(func(context.Context) error {
		t.hasher.Close()
		return nil
	})

	// Commit fetching only works when a hosting provider is configured
	if cfg.Provider.Enabled() {
		commitProvider, err := provider.New(cfg.Provider)
		if err != nil {
			return errm.Wrap(err, "failed to create hosting provider")
		}
		t.fetcher = provider.NewFetcher(commitProvider)
	} else {
		t.log.Info("no hosting provider configured, commit endpoint disabled")
	}

	t.server, err = server.New(cfg.Server, t.hasher, t.fetcher)
	if err != nil {
		return errm.Wrap(err, "failed to create server")
	}
	ctx.Add(t.server.Stop)

	return nil
}

// LoadConfig loads the application configuration from a file path
func LoadConfig(path string) (config.Config, error) {
	return config.Load(path)
}
