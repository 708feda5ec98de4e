package validation

// Per-format shorthands for Is, Check and CheckNullable.

// IsID reports whether s is a UUID with lowercase hex groups.
func IsID(s string) bool { return Is(FormatID, s) }

// ID returns s when IsID(s) holds, or an *ArgumentError naming argument.
func ID(argument, s string) (string, error) { return Check(FormatID, argument, s) }

// IDNullable passes nil through and otherwise delegates to ID.
func IDNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatID, argument, s)
}

// IsName reports whether s is a lowercase name of 3 to 63 characters.
func IsName(s string) bool { return Is(FormatName, s) }

// Name returns s when IsName(s) holds, or an *ArgumentError naming argument.
func Name(argument, s string) (string, error) { return Check(FormatName, argument, s) }

// NameNullable passes nil through and otherwise delegates to Name.
func NameNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatName, argument, s)
}

// IsNameWithDots reports whether s is a name that may also contain dots.
func IsNameWithDots(s string) bool { return Is(FormatNameWithDots, s) }

// NameWithDots returns s when IsNameWithDots(s) holds, or an *ArgumentError naming argument.
func NameWithDots(argument, s string) (string, error) { return Check(FormatNameWithDots, argument, s) }

// NameWithDotsNullable passes nil through and otherwise delegates to NameWithDots.
func NameWithDotsNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatNameWithDots, argument, s)
}

// IsDomain reports whether s is a lowercase domain of up to 253 characters.
func IsDomain(s string) bool { return Is(FormatDomain, s) }

// Domain returns s when IsDomain(s) holds, or an *ArgumentError naming argument.
func Domain(argument, s string) (string, error) { return Check(FormatDomain, argument, s) }

// DomainNullable passes nil through and otherwise delegates to Domain.
func DomainNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatDomain, argument, s)
}

// IsVersion reports whether s is a version string.
func IsVersion(s string) bool { return Is(FormatVersion, s) }

// Version returns s when IsVersion(s) holds, or an *ArgumentError naming argument.
func Version(argument, s string) (string, error) { return Check(FormatVersion, argument, s) }

// VersionNullable passes nil through and otherwise delegates to Version.
func VersionNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatVersion, argument, s)
}

// IsRevision reports whether s is a revision string.
func IsRevision(s string) bool { return Is(FormatRevision, s) }

// Revision returns s when IsRevision(s) holds, or an *ArgumentError naming argument.
func Revision(argument, s string) (string, error) { return Check(FormatRevision, argument, s) }

// RevisionNullable passes nil through and otherwise delegates to Revision.
func RevisionNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatRevision, argument, s)
}

// IsInstance reports whether s is an instance identifier.
func IsInstance(s string) bool { return Is(FormatInstance, s) }

// Instance returns s when IsInstance(s) holds, or an *ArgumentError naming argument.
func Instance(argument, s string) (string, error) { return Check(FormatInstance, argument, s) }

// InstanceNullable passes nil through and otherwise delegates to Instance.
func InstanceNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatInstance, argument, s)
}

// IsProcess reports whether s is a process identifier.
func IsProcess(s string) bool { return Is(FormatProcess, s) }

// Process returns s when IsProcess(s) holds, or an *ArgumentError naming argument.
func Process(argument, s string) (string, error) { return Check(FormatProcess, argument, s) }

// ProcessNullable passes nil through and otherwise delegates to Process.
func ProcessNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatProcess, argument, s)
}

// IsSecret reports whether s is a 40 letter lowercase secret.
func IsSecret(s string) bool { return Is(FormatSecret, s) }

// Secret returns s when IsSecret(s) holds, or an *ArgumentError naming argument.
func Secret(argument, s string) (string, error) { return Check(FormatSecret, argument, s) }

// SecretNullable passes nil through and otherwise delegates to Secret.
func SecretNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatSecret, argument, s)
}

// IsUser reports whether s is a user name.
func IsUser(s string) bool { return Is(FormatUser, s) }

// User returns s when IsUser(s) holds, or an *ArgumentError naming argument.
func User(argument, s string) (string, error) { return Check(FormatUser, argument, s) }

// UserNullable passes nil through and otherwise delegates to User.
func UserNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatUser, argument, s)
}

// IsEmail reports whether s is an email address.
func IsEmail(s string) bool { return Is(FormatEmail, s) }

// Email returns s when IsEmail(s) holds, or an *ArgumentError naming argument.
func Email(argument, s string) (string, error) { return Check(FormatEmail, argument, s) }

// EmailNullable passes nil through and otherwise delegates to Email.
func EmailNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatEmail, argument, s)
}

// IsURL reports whether s is an URL with a supported scheme.
func IsURL(s string) bool { return Is(FormatURL, s) }

// URL returns s when IsURL(s) holds, or an *ArgumentError naming argument.
func URL(argument, s string) (string, error) { return Check(FormatURL, argument, s) }

// URLNullable passes nil through and otherwise delegates to URL.
func URLNullable(argument string, s *string) (*string, error) {
	return CheckNullable(FormatURL, argument, s)
}
