package config

import (
	"strings"

	"github.com/eugenenazirov/loghub-connector/internal/validation"
)

// Setting is a named configuration value and the validator applied to it once resolved.
type Setting struct {
	Name string
	// Validate runs in nullable mode. A nil Validate accepts any value.
	Validate func(argument string, value *string) (*string, error)
}

// The setting catalogue. NAME and DESCRIPTION are free text.
var (
	SettingCentral        = Setting{Name: "CENTRAL", Validate: validation.DomainNullable}
	SettingOrganization   = Setting{Name: "ORGANIZATION", Validate: validation.NameNullable}
	SettingEnvironment    = Setting{Name: "ENVIRONMENT", Validate: validation.NameNullable}
	SettingRegistry       = Setting{Name: "REGISTRY", Validate: validation.DomainNullable}
	SettingGroup          = Setting{Name: "GROUP", Validate: validation.NameWithDotsNullable}
	SettingApplication    = Setting{Name: "APPLICATION", Validate: validation.NameNullable}
	SettingVersion        = Setting{Name: "VERSION", Validate: validation.VersionNullable}
	SettingRevision       = Setting{Name: "REVISION", Validate: validation.RevisionNullable}
	SettingName           = Setting{Name: "NAME"}
	SettingDescription    = Setting{Name: "DESCRIPTION"}
	SettingRepository     = Setting{Name: "REPOSITORY", Validate: validation.URLNullable}
	SettingRepositoryType = Setting{Name: "REPOSITORY_TYPE", Validate: repositoryTypeNullable}
)

// Settings returns the catalogue of settings in resolution order.
func Settings() []Setting {
	return []Setting{
		SettingCentral,
		SettingOrganization,
		SettingEnvironment,
		SettingRegistry,
		SettingGroup,
		SettingApplication,
		SettingVersion,
		SettingRevision,
		SettingName,
		SettingDescription,
		SettingRepository,
		SettingRepositoryType,
	}
}

// RepositoryType is the version control system hosting the application sources.
type RepositoryType string

// Accepted repository types.
const (
	RepositoryGit        RepositoryType = "git"
	RepositorySubversion RepositoryType = "svn"
	RepositoryMercurial  RepositoryType = "hg"
)

func repositoryTypeNullable(argument string, value *string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	switch RepositoryType(*value) {
	case RepositoryGit, RepositorySubversion, RepositoryMercurial:
		return value, nil
	}
	return nil, &validation.ArgumentError{
		Argument:   argument,
		Value:      "'" + *value + "'",
		Constraint: "not a repository type",
	}
}

// PropertyKey maps a setting name to its lower-case dotted property key,
// e.g. REPOSITORY_TYPE -> loghub.repository.type.
func PropertyKey(name string) string {
	return PropertyPrefix + strings.ReplaceAll(strings.ToLower(name), "_", ".")
}

// EnvKey maps a setting name to its environment variable, e.g. CENTRAL -> LOGHUB_CENTRAL.
func EnvKey(name string) string {
	return EnvPrefix + name
}
