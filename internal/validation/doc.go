// Package validation checks strings against the fixed structural formats used by
// the connector (ids, names, domains, versions, secrets, users, emails, URLs) and
// ordered values against inclusive ranges. Every failing check returns an
// *ArgumentError naming the offending argument, its value, and the expected
// constraint.
package validation
