package commands

import (
	"log"
	"os"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/store"
)

// session is what every command needs to reach the catalog.
type session struct {
	config  store.Config
	catalog *store.Catalog
	app     app.Config
}

func load() (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	catalog, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	acfg, err := app.ConfigFrom(cfg)
	if err != nil {
		return nil, err
	}
	if vo.Verbose {
		acfg.Logger = log.New(os.Stderr, "picklist: ", log.Ltime)
	}
	return &session{config: cfg, catalog: catalog, app: acfg}, nil
}

func (s *session) service() *app.Service {
	return &app.Service{Store: s.catalog}
}
