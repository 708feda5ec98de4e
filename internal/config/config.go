package config

import (
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"go.uber.org/zap"

	"github.com/eugenenazirov/loghub-connector/internal/defaults"
)

// Config holds the resolved connector settings. An empty field means the
// setting resolved to null.
type Config struct {
	Central        string
	Organization   string
	Environment    string
	Registry       string
	Group          string
	Application    string
	Version        string
	Revision       string
	Name           string
	Description    string
	Repository     string
	RepositoryType string

	// Origins records the source of every present setting, keyed by setting name.
	Origins map[string]Origin
}

// Options selects the inputs of the property, resource and default layers.
// The environment layer always reads the process environment.
type Options struct {
	// Properties are loghub.* properties given on the command line. They
	// override entries of PropertiesFile.
	Properties map[string]string
	// PropertiesFile is an optional YAML file of properties. Nested mappings
	// are flattened with dots.
	PropertiesFile string
	// Resources holds bundled META-INF/loghub/<NAME> files. May be nil.
	Resources fs.FS
	// Defaults overrides the compiled-in defaults store.
	Defaults defaults.Store
}

// Load resolves every setting with precedence:
// Environment variables > Properties > Resources > Defaults
func Load(opts *Options, logger *zap.Logger) (Config, error) {
	if opts == nil {
		opts = &Options{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	properties, err := mergeProperties(opts)
	if err != nil {
		return Config{}, err
	}

	store := opts.Defaults
	if store == nil {
		store = defaults.NewMemoryStore()
	}

	logger.Debug("effective defaults", zap.Any("defaults", store.Snapshot()))

	resolver := NewResolver(logger,
		NewEnvSource(),
		NewPropertySource(properties),
		NewResourceSource(opts.Resources),
		NewDefaultSource(store),
	)

	cfg := Config{Origins: make(map[string]Origin)}
	for _, s := range Settings() {
		v, err := resolver.Resolve(s)
		if err != nil {
			return Config{}, err
		}
		if !v.Present {
			continue
		}
		*cfg.field(s.Name) = v.Value
		cfg.Origins[s.Name] = v.Origin
	}

	logger.Info("configuration resolved",
		zap.Int("settings", len(cfg.Origins)),
		zap.String("central", cfg.Central),
	)

	return cfg, nil
}

// Get returns the value of the named setting and whether it is present.
func (c Config) Get(name string) (string, bool) {
	_, ok := c.Origins[name]
	if !ok {
		return "", false
	}
	return *c.field(name), true
}

func (c *Config) field(name string) *string {
	switch name {
	case SettingCentral.Name:
		return &c.Central
	case SettingOrganization.Name:
		return &c.Organization
	case SettingEnvironment.Name:
		return &c.Environment
	case SettingRegistry.Name:
		return &c.Registry
	case SettingGroup.Name:
		return &c.Group
	case SettingApplication.Name:
		return &c.Application
	case SettingVersion.Name:
		return &c.Version
	case SettingRevision.Name:
		return &c.Revision
	case SettingName.Name:
		return &c.Name
	case SettingDescription.Name:
		return &c.Description
	case SettingRepository.Name:
		return &c.Repository
	case SettingRepositoryType.Name:
		return &c.RepositoryType
	}
	panic(fmt.Sprintf("config: no field for setting %q", name))
}

// mergeProperties layers command-line properties over the properties file.
func mergeProperties(opts *Options) (map[string]string, error) {
	properties := make(map[string]string)

	if opts.PropertiesFile != "" {
		fromFile, err := loadProperties(opts.PropertiesFile)
		if err != nil {
			return nil, fmt.Errorf("load properties: %w", err)
		}
		properties = fromFile
	}

	if len(opts.Properties) > 0 {
		if err := mergo.Merge(&properties, opts.Properties, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge properties: %w", err)
		}
	}

	return properties, nil
}
