package config

import (
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"path"
	"strings"

	"github.com/eugenenazirov/loghub-connector/internal/defaults"
)

const (
	// EnvPrefix is prepended to setting names for environment lookup.
	EnvPrefix = "LOGHUB_"
	// PropertyPrefix is prepended to the dotted lower-case setting name for property lookup.
	PropertyPrefix = "loghub."
	// ResourceDir is the directory of bundled resources, one file per setting.
	ResourceDir = "META-INF/loghub"
)

// Origin indicates where a configuration value came from.
type Origin string

// Origins, one per layer of the resolution chain.
const (
	OriginEnv      Origin = "env"
	OriginProperty Origin = "property"
	OriginResource Origin = "resource"
	OriginDefault  Origin = "default"
)

// Source is one layer of the resolution chain. Lookup reports ok=false when
// the layer has no value for the setting; a non-nil error aborts resolution.
type Source interface {
	Origin() Origin
	Lookup(name string) (value string, ok bool, err error)
}

// EnvSource resolves settings from LOGHUB_<NAME> environment variables.
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource creates a source backed by the process environment.
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// Origin returns OriginEnv.
func (s *EnvSource) Origin() Origin { return OriginEnv }

// Lookup reads the LOGHUB_<NAME> variable.
func (s *EnvSource) Lookup(name string) (string, bool, error) {
	v, ok := s.lookup(EnvKey(name))
	return v, ok, nil
}

// PropertySource resolves settings from loghub.<name> process properties.
type PropertySource struct {
	properties map[string]string
}

// NewPropertySource creates a source over a copy of properties.
func NewPropertySource(properties map[string]string) *PropertySource {
	return &PropertySource{properties: maps.Clone(properties)}
}

// Origin returns OriginProperty.
func (s *PropertySource) Origin() Origin { return OriginProperty }

// Lookup reads the loghub.<name> property.
func (s *PropertySource) Lookup(name string) (string, bool, error) {
	v, ok := s.properties[PropertyKey(name)]
	return v, ok, nil
}

// ResourceSource resolves settings from files named META-INF/loghub/<NAME>.
// Contents are returned exactly as stored, decoded as UTF-8.
type ResourceSource struct {
	fsys fs.FS
}

// NewResourceSource creates a source over fsys, typically an embed.FS or os.DirFS.
// A nil fsys holds no resources.
func NewResourceSource(fsys fs.FS) *ResourceSource {
	return &ResourceSource{fsys: fsys}
}

// Origin returns OriginResource.
func (s *ResourceSource) Origin() Origin { return OriginResource }

// Lookup reads META-INF/loghub/<NAME>. A missing file is absent; a
// file that cannot be read completely is an *InitializationError.
func (s *ResourceSource) Lookup(name string) (string, bool, error) {
	if s.fsys == nil {
		return "", false, nil
	}

	resource := path.Join(ResourceDir, name)
	f, err := s.fsys.Open(resource)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &InitializationError{Resource: resource, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", false, &InitializationError{Resource: resource, Err: err}
	}
	if info.IsDir() {
		return "", false, &InitializationError{Resource: resource, Err: errors.New("is a directory")}
	}

	data := make([]byte, info.Size())
	n, err := io.ReadFull(f, data)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return "", false, &InitializationError{Resource: resource, Read: n, Size: info.Size()}
	}
	if err != nil {
		return "", false, &InitializationError{Resource: resource, Err: err}
	}

	return strings.ToValidUTF8(string(data), "\uFFFD"), true, nil
}

// DefaultSource resolves settings from a defaults store.
type DefaultSource struct {
	store defaults.Store
}

// NewDefaultSource creates a source over store.
func NewDefaultSource(store defaults.Store) *DefaultSource {
	return &DefaultSource{store: store}
}

// Origin returns OriginDefault.
func (s *DefaultSource) Origin() Origin { return OriginDefault }

// Lookup returns the default held by the store, if any.
func (s *DefaultSource) Lookup(name string) (string, bool, error) {
	v, ok := s.store.Get(name)
	return v, ok, nil
}
