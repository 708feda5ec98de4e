package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Format identifies one of the closed set of string formats.
type Format string

// Known formats. Revision, instance and process share the version grammar.
const (
	FormatID           Format = "id"
	FormatName         Format = "name"
	FormatNameWithDots Format = "nameWithDots"
	FormatDomain       Format = "domain"
	FormatVersion      Format = "version"
	FormatRevision     Format = "revision"
	FormatInstance     Format = "instance"
	FormatProcess      Format = "process"
	FormatSecret       Format = "secret"
	FormatUser         Format = "user"
	FormatEmail        Format = "email"
	FormatURL          Format = "url"
)

const maxURLLength = 4096

var (
	idPattern           = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	namePattern         = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
	nameWithDotsPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)
	domainPattern       = regexp.MustCompile(`^[a-z0-9._-]{1,253}$`)
	versionPattern      = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{1,125}[a-zA-Z0-9]$`)
	secretPattern       = regexp.MustCompile(`^[a-z]{40}$`)
	userPattern         = regexp.MustCompile(`^[a-z][a-z0-9-]{1,61}[a-z0-9]$`)
	emailPattern        = regexp.MustCompile(`^[A-Za-z0-9._%-]+@[A-Za-z0-9.-]+[.][A-Za-z]+$`)
)

// urlSchemes are the protocols accepted by IsURL.
var urlSchemes = map[string]struct{}{
	"http":   {},
	"https":  {},
	"ftp":    {},
	"file":   {},
	"jar":    {},
	"mailto": {},
}

type rule struct {
	min, max int
	match    func(string) bool
	noun     string
}

// rules holds the length bounds and grammar of every Format. Revision, instance
// and process share the version grammar.
var rules = map[Format]rule{
	FormatID:           {min: 36, max: 36, match: idPattern.MatchString, noun: "an id"},
	FormatName:         {min: 3, max: 63, match: namePattern.MatchString, noun: "a name"},
	FormatNameWithDots: {min: 3, max: 63, match: nameWithDotsPattern.MatchString, noun: "a name with dots"},
	FormatDomain:       {min: 1, max: 253, match: domainPattern.MatchString, noun: "a domain"},
	FormatVersion:      {min: 3, max: 127, match: versionPattern.MatchString, noun: "a version"},
	FormatRevision:     {min: 3, max: 127, match: versionPattern.MatchString, noun: "a revision"},
	FormatInstance:     {min: 3, max: 127, match: versionPattern.MatchString, noun: "an instance"},
	FormatProcess:      {min: 3, max: 127, match: versionPattern.MatchString, noun: "a process"},
	FormatSecret:       {min: 40, max: 40, match: secretPattern.MatchString, noun: "a secret"},
	FormatUser:         {min: 3, max: 63, match: userPattern.MatchString, noun: "a user"},
	FormatEmail:        {min: 3, max: 127, match: emailPattern.MatchString, noun: "an email"},
	FormatURL:          {min: 1, max: maxURLLength, match: matchURL, noun: "an url"},
}

// Formats returns every known format in a stable order.
func Formats() []Format {
	return []Format{
		FormatID, FormatName, FormatNameWithDots, FormatDomain,
		FormatVersion, FormatRevision, FormatInstance, FormatProcess,
		FormatSecret, FormatUser, FormatEmail, FormatURL,
	}
}

// Is reports whether s satisfies the length bounds and grammar of f.
// Unknown formats never match.
func Is(f Format, s string) bool {
	r, ok := rules[f]
	if !ok {
		return false
	}
	if l := len(s); l < r.min || l > r.max {
		return false
	}
	return r.match(s)
}

// Check returns s unchanged when it satisfies f, or an *ArgumentError naming argument.
func Check(f Format, argument, s string) (string, error) {
	if err := checkArgument(argument); err != nil {
		return "", err
	}
	r, ok := rules[f]
	if !ok {
		return "", fmt.Errorf("unknown format %q: %w", f, ErrInvalidArgument)
	}
	if !Is(f, s) {
		return "", &ArgumentError{
			Argument:   argument,
			Value:      quote(s),
			Constraint: "not " + r.noun,
		}
	}
	return s, nil
}

// CheckNullable passes nil through and otherwise delegates to Check.
func CheckNullable(f Format, argument string, s *string) (*string, error) {
	if err := checkArgument(argument); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if _, err := Check(f, argument, *s); err != nil {
		return nil, err
	}
	return s, nil
}

func matchURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	_, ok := urlSchemes[strings.ToLower(u.Scheme)]
	return ok
}

func quote(s string) string {
	return "'" + s + "'"
}
