// Package settings resolves CLI settings from defaults, an optional config
// file, PLAYGROUND_* environment variables and bound flags.
package settings

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/playground/internal/catalog"
	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PLAYGROUND"

// Settings are the resolved CLI settings.
type Settings struct {
	// Catalog is a catalog YAML file. Empty uses the built-in catalog for Component.
	Catalog string `mapstructure:"catalog"`
	// CatalogRepo is a git repository holding the catalog at CatalogPath.
	CatalogRepo string `mapstructure:"catalog_repo"`
	CatalogRef  string `mapstructure:"catalog_ref"`
	CatalogPath string `mapstructure:"catalog_path" validate:"required_with=CatalogRepo"`
	// Component selects the built-in catalog and names the component in generated code.
	Component string `mapstructure:"component" validate:"required"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogHuman  bool   `mapstructure:"log_human"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		CatalogPath: "catalog.yaml",
		Component:   "button",
		LogLevel:    "warn",
		LogHuman:    true,
	}
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("catalog_repo", d.CatalogRepo)
	v.SetDefault("catalog_ref", d.CatalogRef)
	v.SetDefault("catalog_path", d.CatalogPath)
	v.SetDefault("component", d.Component)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_human", d.LogHuman)
}

// Load reads settings into v. cfgFile, when set, must exist; otherwise
// ~/.config/playground/config.yaml is read if present.
func Load(v *viper.Viper, cfgFile string) (Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "playground"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Settings{}, playerrors.NewParseError(v.ConfigFileUsed(), 0, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.LogLevel = strings.ToLower(s.LogLevel)

	if err := catalog.GetValidator().Struct(s); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			field := strings.ToLower(ves[0].Field())
			return Settings{}, playerrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, ves[0].Tag()), err)
		}
		return Settings{}, playerrors.NewValidationError("settings", err.Error(), err)
	}

	return s, nil
}

// Source describes where the catalog comes from.
func (s Settings) Source() string {
	switch {
	case s.CatalogRepo != "":
		ref := s.CatalogRef
		if ref == "" {
			ref = "HEAD"
		}
		return fmt.Sprintf("git %s@%s:%s", s.CatalogRepo, ref, s.CatalogPath)
	case s.Catalog != "":
		return "file " + s.Catalog
	default:
		return "builtin " + s.Component
	}
}

// OpenCatalog loads the catalog the settings point at: a git repository, a
// file, or the built-in catalog for Component, in that order.
func (s Settings) OpenCatalog(ctx context.Context) (*catalog.Catalog, error) {
	switch {
	case s.CatalogRepo != "":
		return catalog.FetchGit(ctx, catalog.GitSource{URL: s.CatalogRepo, Branch: s.CatalogRef, Path: s.CatalogPath})
	case s.Catalog != "":
		return catalog.Load(s.Catalog)
	default:
		return catalog.Builtin(s.Component)
	}
}
