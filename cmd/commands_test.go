package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octra-labs/octname/book"
	"github.com/octra-labs/octname/config"
	"github.com/octra-labs/octname/ledger"
	"github.com/octra-labs/octname/networks"
	"github.com/octra-labs/octname/registrar"
	"github.com/octra-labs/octname/registry"
	"github.com/octra-labs/octname/resolver"
	"github.com/octra-labs/octname/ui"
)

const ownerAddr = "octBUhQ6Zv2o2L7fuV5DPACXRTN4vXsqXAGfMJKfhmax1BS"

func useTempBook(t *testing.T) {
	t.Helper()
	orig := book.BookPath
	book.BookPath = filepath.Join(t.TempDir(), "book.json")
	t.Cleanup(func() { book.BookPath = orig })
}

type fakeRegistry struct {
	lookup   registry.LookupResult
	reverse  registry.LookupResult
	storeErr error
	stored   []registry.RegistrationRecord
}

func (f *fakeRegistry) LookupDomain(_ context.Context, domain string) registry.LookupResult {
	return f.lookup
}

func (f *fakeRegistry) LookupAddress(_ context.Context, address string) registry.LookupResult {
	return f.reverse
}

func (f *fakeRegistry) Store(_ context.Context, rec registry.RegistrationRecord) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	f.stored = append(f.stored, rec)
	return nil
}

type fakeLedger struct {
	nonce    uint64
	sendHash string
	sendOK   bool
	sendErr  error
}

func (f *fakeLedger) FetchBalance(_ context.Context, address string) (ledger.Balance, error) {
	return ledger.Balance{Balance: "1000000", Nonce: f.nonce}, nil
}

func (f *fakeLedger) SendTransaction(_ context.Context, tx *ledger.Transaction) (string, bool, error) {
	return f.sendHash, f.sendOK, f.sendErr
}

type staticSigner struct{}

func (staticSigner) Address() string { return ownerAddr }

func (staticSigner) PublicKey() []byte { return []byte("pub") }

func (staticSigner) Sign(p []byte) ([]byte, error) { return []byte("sig"), nil }

func TestDoResolveDomain(t *testing.T) {
	useTempBook(t)
	reg := &fakeRegistry{lookup: registry.LookupResult{
		Found: true, Domain: "alice.oct", Address: ownerAddr,
	}}
	u := ui.NewRecordingUI()

	doResolve(u, resolver.New(reg), "alice.oct")

	assert.True(t, u.HasMessage("Success", ownerAddr))

	// a resolved domain lands in the local book
	e, err := book.Get("alice.oct")
	require.NoError(t, err)
	assert.Equal(t, ownerAddr, e.Address)
}

func TestDoResolveInvalidInput(t *testing.T) {
	useTempBook(t)
	u := ui.NewRecordingUI()

	doResolve(u, resolver.New(&fakeRegistry{}), "definitely not a name")

	assert.True(t, u.HasMessage("Error", "neither an octra address"))
}

func TestDoLookupNotRegistered(t *testing.T) {
	u := ui.NewRecordingUI()
	srvReg := registry.NewClient("http://127.0.0.1:0") // nothing listening

	doLookup(u, srvReg, "ghost.oct")

	// transport failure degrades to not-found but gets the stale warning
	assert.True(t, u.HasMessage("Warn", "not found"))
}

func TestDoRegisterConfirmedFlow(t *testing.T) {
	useTempBook(t)
	reg := &fakeRegistry{lookup: registry.LookupResult{Miss: registry.MissAbsent}}
	led := &fakeLedger{nonce: 5, sendHash: "0xabc", sendOK: true}
	r := registrar.New(reg, led, "octMaster")
	u := ui.NewRecordingUI("y")

	config.SkipConfirm = false
	config.DontBroadcast = false
	doRegister(u, r, led, staticSigner{}, "alice.oct", "octMaster")

	assert.True(t, u.HasMessage("Success", "Registered alice.oct"))
	assert.True(t, u.HasMessage("Critical", "0xabc"))
	require.Len(t, reg.stored, 1)
	assert.Equal(t, "alice.oct", reg.stored[0].Domain)
	assert.Equal(t, ownerAddr, reg.stored[0].Address)
	assert.NotZero(t, reg.stored[0].RegisteredAt)
}

func TestDoRegisterAborted(t *testing.T) {
	useTempBook(t)
	reg := &fakeRegistry{lookup: registry.LookupResult{Miss: registry.MissAbsent}}
	led := &fakeLedger{nonce: 5, sendHash: "0xabc", sendOK: true}
	r := registrar.New(reg, led, "octMaster")
	u := ui.NewRecordingUI("n")

	config.SkipConfirm = false
	doRegister(u, r, led, staticSigner{}, "alice.oct", "octMaster")

	assert.True(t, u.HasMessage("Warn", "Aborted"))
	assert.Empty(t, reg.stored)
}

func TestDoRegisterInvalidDomainNeedsNoInput(t *testing.T) {
	u := ui.NewRecordingUI() // no scripted input: must not prompt
	r := registrar.New(&fakeRegistry{}, &fakeLedger{}, "octMaster")

	doRegister(u, r, &fakeLedger{}, staticSigner{}, "a*b.oct", "octMaster")

	assert.True(t, u.HasMessage("Error", "not a valid .oct domain"))
}

func TestDoRegisterDontBroadcastPrintsSignedTx(t *testing.T) {
	led := &fakeLedger{nonce: 5}
	r := registrar.New(&fakeRegistry{}, led, "octMaster")
	u := ui.NewRecordingUI() // no scripted input: must not prompt

	config.DontBroadcast = true
	defer func() { config.DontBroadcast = false }()
	doRegister(u, r, led, staticSigner{}, "alice.oct", "octMaster")

	assert.True(t, u.HasMessage("Info", "not broadcast"))
	assert.Contains(t, u.Output(), `"nonce": 6`)
	assert.Contains(t, u.Output(), "register_domain:alice.oct")
}

func TestDoRegisterPersistenceGap(t *testing.T) {
	useTempBook(t)
	reg := &fakeRegistry{
		lookup:   registry.LookupResult{Miss: registry.MissAbsent},
		storeErr: errors.New("index down"),
	}
	led := &fakeLedger{nonce: 5, sendHash: "0xabc", sendOK: true}
	r := registrar.New(reg, led, "octMaster")
	u := ui.NewRecordingUI("y")

	config.SkipConfirm = false
	doRegister(u, r, led, staticSigner{}, "alice.oct", "octMaster")

	assert.True(t, u.HasMessage("Critical", "on chain but the ONS index update failed"))
	assert.True(t, u.HasMessage("KeyValue", "0xabc"))
}

func TestDoWhoisNoAddresses(t *testing.T) {
	u := ui.NewRecordingUI()
	doWhois(u, registry.NewClient("http://127.0.0.1:0"), "no addresses here")
	assert.True(t, u.HasMessage("Error", "Couldn't find any octra addresses"))
}

func TestDoWhoisFound(t *testing.T) {
	useTempBook(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/domain/reverse/"+ownerAddr, r.URL.Path)
		fmt.Fprintf(w, `{"address": %q, "domain": "alice.oct"}`, ownerAddr)
	}))
	defer srv.Close()

	u := ui.NewRecordingUI()
	doWhois(u, registry.NewClient(srv.URL), "pay "+ownerAddr+" please")

	assert.True(t, u.HasMessage("Info", ownerAddr+": alice.oct"))
}

func TestDoBalanceShowsBookName(t *testing.T) {
	useTempBook(t)
	require.NoError(t, book.Set("alice.oct", ownerAddr))

	node := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"balance": "12500000", "nonce": 5}`)
	}))
	defer node.Close()

	reg := &fakeRegistry{lookup: registry.LookupResult{
		Found: true, Domain: "alice.oct", Address: ownerAddr,
	}}
	u := ui.NewRecordingUI()

	doBalance(u, resolver.New(reg), ledger.NewClient(map[string]string{"test": node.URL}), "alice.oct")

	assert.True(t, u.HasMessage("KeyValue", ownerAddr+" (alice.oct)"))
	assert.True(t, u.HasMessage("KeyValue", "12.5 OCT"))
	assert.True(t, u.HasMessage("KeyValue", "Nonce: 5"))
}

func TestDoBookNoMatches(t *testing.T) {
	useTempBook(t)
	u := ui.NewRecordingUI()
	doBook(u, "zzqx")
	assert.True(t, u.HasMessage("Info", "No name in the local book matches"))
}

func TestFormatOCT(t *testing.T) {
	n := networks.OctraMainnet
	assert.Equal(t, "12.5 OCT", formatOCT("12500000", n))
	assert.Equal(t, "0 OCT", formatOCT("0", n))
	assert.Equal(t, "garbage (raw)", formatOCT("garbage", n))
}
