// Command fixtodict normalises FIX Repository data into canonical JSON.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/fixtodict/internal/adapters/driven/config/file"
	"github.com/custodia-labs/fixtodict/internal/adapters/driven/schema"
	"github.com/custodia-labs/fixtodict/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/fixtodict/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/fixtodict/internal/adapters/driven/typos"
	"github.com/custodia-labs/fixtodict/internal/adapters/driving/cli"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
	"github.com/custodia-labs/fixtodict/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.SetVersion(version)
	os.Exit(cli.Execute(wire))
}

// wire builds the services from the configuration file at configPath.
func wire(configPath string) (cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("load config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("config %s: %w", configStore.Path(), err)
	}

	validator, err := schema.Load(settings.SchemaPath)
	if err != nil {
		return cli.Services{}, nil, fmt.Errorf("load schema: %w", err)
	}

	store := filesystem.NewStore()
	patches := filesystem.NewPatchReader(store)

	var transformer driven.DescriptionTransformer
	if r := typos.New(settings.Typos); r != nil {
		transformer = r
	}

	closeFn := func() error { return nil }
	var ledger driven.LedgerStore
	if settings.Ledger.Enabled {
		db, err := sqlite.NewStore(settings.Ledger.Dir)
		if err != nil {
			return cli.Services{}, nil, fmt.Errorf("open ledger: %w", err)
		}
		ledger = db
		closeFn = db.Close
	}

	patchService := services.NewPatchService(validator, store, patches, ledger, settings)
	repositoryService := services.NewRepositoryService(
		store,
		filesystem.NewChecksummer(),
		validator,
		store,
		transformer,
		ledger,
		patchService,
		settings,
		version,
	)

	return cli.Services{
		Repository: repositoryService,
		Patch:      patchService,
		Document:   services.NewDocumentService(store, validator),
		Ledger:     services.NewLedgerService(ledger),
		Settings:   settingsService,
	}, closeFn, nil
}
