// Package resolver turns user input that may be either a raw octra address
// or a .oct domain into a canonical address.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/octra-labs/octname/names"
	"github.com/octra-labs/octname/registry"
)

var (
	ErrDomainNotFound = errors.New("domain is not registered")
	ErrInvalidInput   = errors.New("input is neither an octra address nor a valid .oct domain")
)

// Registry is the single lookup the resolver needs from the ONS registry.
type Registry interface {
	LookupDomain(ctx context.Context, domain string) registry.LookupResult
}

type Resolver struct {
	registry Registry
}

func New(reg Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Resolve returns the canonical address for input.
//
// An address-shaped input (oct prefix, longer than 40 characters) is
// returned verbatim with no network call: an explicit address is trusted
// as given, registered or not. A valid .oct domain is looked up in the
// registry; ErrDomainNotFound when the registry has no mapping. Anything
// else is ErrInvalidInput. The on-chain ledger is never consulted —
// resolution is purely a naming concern.
func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)

	if names.IsAddress(input) {
		return input, nil
	}

	if names.IsOctDomain(input) {
		res := r.registry.LookupDomain(ctx, input)
		if !res.Found {
			return "", fmt.Errorf("%w: %s", ErrDomainNotFound, input)
		}
		return res.Address, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidInput, input)
}
