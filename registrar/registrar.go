// Package registrar orchestrates the claim of an unregistered .oct domain:
// validate the name, confirm it is unclaimed, build a zero-value
// message-tagged transaction to the master registry address at the
// account's next nonce, broadcast it, then persist the mapping in the
// off-chain index.
package registrar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/octra-labs/octname/ledger"
	"github.com/octra-labs/octname/names"
	"github.com/octra-labs/octname/registry"
)

var (
	ErrInvalidFormat     = errors.New("Invalid domain format")
	ErrAlreadyRegistered = errors.New("Domain is already registered")
	ErrTransactionFailed = errors.New("Transaction failed")
	ErrPersistenceFailed = errors.New("Domain registration could not be persisted")
)

// Registry is the slice of the ONS registry client the registrar needs.
type Registry interface {
	LookupDomain(ctx context.Context, domain string) registry.LookupResult
	Store(ctx context.Context, rec registry.RegistrationRecord) error
}

// Ledger is the slice of the octra node client the registrar needs.
type Ledger interface {
	FetchBalance(ctx context.Context, address string) (ledger.Balance, error)
	SendTransaction(ctx context.Context, tx *ledger.Transaction) (hash string, broadcasted bool, err error)
}

// Request is one registration attempt: the domain to claim and the signing
// capability of the account that will own it.
type Request struct {
	Domain string
	Signer ledger.Signer
}

// Result is the discriminated outcome of a registration attempt. Exactly one
// of Success/Err is meaningful: on success TxHash carries the registration
// transaction hash, on failure Err carries the reason.
type Result struct {
	Success bool
	TxHash  string
	Err     string
}

type Registrar struct {
	registry Registry
	ledger   Ledger

	// masterAddress is the well known registry account registration
	// transactions are addressed to. Injected so deployments and tests can
	// differ.
	masterAddress string

	now func() time.Time
}

func New(reg Registry, led Ledger, masterAddress string) *Registrar {
	return &Registrar{
		registry:      reg,
		ledger:        led,
		masterAddress: masterAddress,
		now:           time.Now,
	}
}

// RegisterDomain runs the registration state machine for req.
//
// Every failure up to and including the broadcast comes back as a Result
// with Success == false and a nil error; no network or ledger problem
// escapes as an error and no step panics through to the caller. The one
// exception is persistence: when the transaction is already on chain but
// the registry index POST fails, the returned Result carries the tx hash
// and err wraps ErrPersistenceFailed, because the caller must know about
// the broadcast-but-unindexed state and retry the persistence itself. The
// chain side is immutable and is never retried.
func (r *Registrar) RegisterDomain(ctx context.Context, req Request) (result Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = Result{Err: fmt.Sprintf("%v", p)}
			err = nil
		}
	}()
	return r.registerDomain(ctx, req)
}

func (r *Registrar) registerDomain(ctx context.Context, req Request) (Result, error) {
	if !names.IsValidDomainFormat(req.Domain) {
		return Result{Err: ErrInvalidFormat.Error()}, nil
	}

	if existing := r.registry.LookupDomain(ctx, req.Domain); existing.Found {
		return Result{Err: ErrAlreadyRegistered.Error()}, nil
	}

	owner := req.Signer.Address()
	balance, err := r.ledger.FetchBalance(ctx, owner)
	if err != nil {
		return Result{Err: fmt.Sprintf("couldn't fetch nonce of %s: %s", owner, err)}, nil
	}

	// nonce is the account's latest used value; the registration tx takes
	// the next one.
	tx, err := ledger.CreateTransaction(
		r.masterAddress,
		0,
		balance.Nonce+1,
		req.Signer,
		names.RegistrationTag(req.Domain),
	)
	if err != nil {
		return Result{Err: err.Error()}, nil
	}

	hash, broadcasted, err := r.ledger.SendTransaction(ctx, tx)
	if !broadcasted {
		if err != nil {
			return Result{Err: err.Error()}, nil
		}
		return Result{Err: ErrTransactionFailed.Error()}, nil
	}

	rec := registry.RegistrationRecord{
		Domain:       req.Domain,
		Address:      owner,
		TxHash:       hash,
		RegisteredAt: r.now().UnixMilli(),
	}
	if err = r.registry.Store(ctx, rec); err != nil {
		// The tx is on chain and can't be taken back; surface the gap so
		// the caller can retry Store with the same record.
		return Result{TxHash: hash, Err: ErrPersistenceFailed.Error()},
			fmt.Errorf("%w: %s", ErrPersistenceFailed, err)
	}

	return Result{Success: true, TxHash: hash}, nil
}
