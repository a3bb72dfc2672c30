package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
	"github.com/alexisbeaulieu97/playground/internal/logger"
	"github.com/alexisbeaulieu97/playground/internal/playground"
	"github.com/alexisbeaulieu97/playground/internal/settings"
	"github.com/alexisbeaulieu97/playground/internal/styling"
	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// settingFlags maps settings keys to the persistent flags that override them.
var settingFlags = map[string]string{
	"catalog":      "catalog",
	"catalog_repo": "catalog-repo",
	"catalog_ref":  "catalog-ref",
	"catalog_path": "catalog-path",
	"component":    "component",
	"log_level":    "log-level",
}

// AppContext bundles the services a command needs.
type AppContext struct {
	Settings   settings.Settings
	Logger     *logger.Logger
	Catalog    *catalog.Catalog
	Stylesheet *styling.Stylesheet
}

func loadApp(cmd *cobra.Command, flags *rootFlags, operation string) (*AppContext, error) {
	v := viper.New()
	for key, name := range settingFlags {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, newCommandError(operation, "binding flags", err, "This is a bug; please report it.")
			}
		}
	}

	s, err := settings.Load(v, flags.configFile)
	if err != nil {
		return nil, newCommandError(operation, "loading settings", err, "Check the config file and PLAYGROUND_* environment variables.")
	}
	if flags.verbose {
		s.LogLevel = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         s.LogLevel,
		HumanReadable: s.LogHuman,
		Writer:        cmd.ErrOrStderr(),
		Component:     operation,
	})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn, error or disabled.")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cat, err := s.OpenCatalog(ctx)
	if err != nil {
		return nil, newCommandError(operation, "opening catalog ("+s.Source()+")", err, catalogSuggestion(err))
	}
	log.WithFields(map[string]any{"source": s.Source(), "demos": cat.Len()}).Debug("catalog loaded")

	return &AppContext{Settings: s, Logger: log, Catalog: cat, Stylesheet: styling.NewStylesheet()}, nil
}

func catalogSuggestion(err error) string {
	var parseErr *playerrors.ParseError
	var validationErr *playerrors.ValidationError
	var sourceErr *playerrors.SourceError
	switch {
	case errors.As(err, &parseErr):
		return "Fix the YAML syntax of the catalog file."
	case errors.As(err, &validationErr):
		return "Fix the catalog field named above; every demo needs a component and at least one approach."
	case errors.As(err, &sourceErr):
		return "Check the repository URL, branch and catalog path."
	default:
		return "Pass --component with one of the built-in catalogs or --catalog with a catalog file."
	}
}

// NewEngine creates an engine over the loaded catalog.
func (a *AppContext) NewEngine() *playground.Engine {
	return playground.New(a.Catalog, "", playground.Options{Logger: a.Logger, Stylesheet: a.Stylesheet})
}
