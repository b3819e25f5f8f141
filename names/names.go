// Package names holds the syntax rules of the octra naming layer: what a
// valid .oct domain looks like and what an octra address looks like. Both
// the registration and the resolution paths validate through this package so
// they can never disagree on what a malformed name is.
package names

import (
	"regexp"
	"strings"
)

const (
	// Suffix is the reserved top level suffix of all ONS domains.
	Suffix = ".oct"

	// AddressPrefix starts every octra account address.
	AddressPrefix = "oct"

	// MinNameLen and MaxNameLen bound the domain name with the suffix
	// stripped.
	MinNameLen = 3
	MaxNameLen = 32

	// RegistrationTagPrefix is the literal prefix of the message embedded in
	// a domain registration transaction. The domain follows the colon
	// verbatim, no escaping.
	RegistrationTagPrefix = "register_domain:"
)

// namePattern matches the stripped name: alphanumeric edges, hyphens only in
// the interior. Length is checked separately.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

var addressPattern = regexp.MustCompile(`oct[1-9A-HJ-NP-Za-km-z]{41,}`)

// IsValidDomainFormat reports whether domain is a well formed ONS domain:
// it ends with the reserved suffix and the stripped name has length in
// [MinNameLen, MaxNameLen] with no leading or trailing hyphen and no
// characters outside ASCII letters, digits and hyphen.
func IsValidDomainFormat(domain string) bool {
	if !strings.HasSuffix(domain, Suffix) {
		return false
	}
	name := strings.TrimSuffix(domain, Suffix)
	if len(name) < MinNameLen || len(name) > MaxNameLen {
		return false
	}
	return namePattern.MatchString(name)
}

// IsOctDomain reports whether input both carries the reserved suffix and is
// a well formed domain. A string ending in .oct that fails the format rules
// merely looks like a domain, it is not one.
func IsOctDomain(input string) bool {
	return strings.HasSuffix(input, Suffix) && IsValidDomainFormat(input)
}

// Strip returns the domain with the reserved suffix removed.
func Strip(domain string) string {
	return strings.TrimSuffix(domain, Suffix)
}

// IsAddress reports whether s is shaped like an octra address: the oct
// prefix and more than 40 characters. It is a syntactic check only, it says
// nothing about the address existing on chain.
func IsAddress(s string) bool {
	return strings.HasPrefix(s, AddressPrefix) && len(s) > 40
}

// ScanForAddresses extracts every octra-address-shaped substring from para.
func ScanForAddresses(para string) []string {
	result := addressPattern.FindAllString(para, -1)
	if result == nil {
		return []string{}
	}
	return result
}

// RegistrationTag returns the message tag a registration transaction for
// domain must carry: "register_domain:<domain>".
func RegistrationTag(domain string) string {
	return RegistrationTagPrefix + domain
}
