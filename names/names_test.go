package names_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/octra-labs/octname/names"
)

func TestIsValidDomainFormat(t *testing.T) {
	valid := []string{
		"abc.oct",
		"a1b.oct",
		"my-wallet.oct",
		"x0-0-0y.oct",
		"ABC.oct",
		strings.Repeat("a", 32) + ".oct",
	}
	for _, d := range valid {
		assert.True(t, names.IsValidDomainFormat(d), d)
	}

	invalid := []string{
		"",
		"abc",
		"abc.com",
		"abc.OCT",
		"ab.oct",          // too short
		"-ab.oct",         // leading hyphen
		"ab-.oct",         // trailing hyphen
		"a*b.oct",         // bad character
		"a b.oct",         // space
		"a_b.oct",         // underscore
		".oct",            // empty name
		"abc.oct.oct.oct", // dots in the name portion
		strings.Repeat("a", 33) + ".oct",
	}
	for _, d := range invalid {
		assert.False(t, names.IsValidDomainFormat(d), d)
	}
}

func TestNoSuffixNeverValid(t *testing.T) {
	for _, s := range []string{"abc", "abc.octa", "abcoct", "oct", "abc.", "abc.oc"} {
		assert.False(t, names.IsValidDomainFormat(s), s)
		assert.False(t, names.IsOctDomain(s), s)
	}
}

func TestIsOctDomain(t *testing.T) {
	assert.True(t, names.IsOctDomain("abc.oct"))
	assert.False(t, names.IsOctDomain("ab.oct"))
	assert.False(t, names.IsOctDomain("abc.com"))
	assert.False(t, names.IsOctDomain("-abc.oct"))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "abc", names.Strip("abc.oct"))
	assert.Equal(t, "abc", names.Strip("abc"))
}

func TestIsAddress(t *testing.T) {
	assert.True(t, names.IsAddress("oct"+strings.Repeat("B", 44)))
	assert.False(t, names.IsAddress("oct"+strings.Repeat("B", 30)), "too short")
	assert.False(t, names.IsAddress("eth"+strings.Repeat("B", 44)), "wrong prefix")
	assert.False(t, names.IsAddress("abc.oct"))
}

func TestScanForAddresses(t *testing.T) {
	addr := "octBUhQ6Zv2o2L7fuV5DPACXRTN4vXsqXAGfMJKfhmax1BS"
	found := names.ScanForAddresses("send to " + addr + " please")
	assert.Equal(t, []string{addr}, found)

	assert.Empty(t, names.ScanForAddresses("nothing here"))
}

func TestRegistrationTag(t *testing.T) {
	assert.Equal(t, "register_domain:abc.oct", names.RegistrationTag("abc.oct"))
}
