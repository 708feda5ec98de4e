// Package config resolves the connector settings from a layered set of sources
// with precedence: Environment variables > Properties (flags, YAML file) >
// Bundled resources > Compiled-in defaults. Every resolved value is validated
// against the format of its setting, and Load produces an immutable Config or
// fails as a whole.
package config
