package ledger_test

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/octra-labs/octname/ledger"
)

type testSigner struct {
	addr string
	priv ed25519.PrivateKey
}

func newTestSigner(t *testing.T, addr string) *testSigner {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return &testSigner{addr: addr, priv: priv}
}

func (s *testSigner) Address() string { return s.addr }

func (s *testSigner) PublicKey() []byte {
	return s.priv.Public().(ed25519.PublicKey)
}

func (s *testSigner) Sign(payload []byte) ([]byte, error) {
	return ed25519.Sign(s.priv, payload), nil
}

const testAddr = "octBUhQ6Zv2o2L7fuV5DPACXRTN4vXsqXAGfMJKfhmax1BS"

func TestCreateTransaction(t *testing.T) {
	signer := newTestSigner(t, testAddr)
	tx, err := ledger.CreateTransaction("octRecipient", 0, 6, signer, "register_domain:alice.oct")
	require.NoError(t, err)

	assert.Equal(t, testAddr, tx.From)
	assert.Equal(t, "octRecipient", tx.To)
	assert.Equal(t, "0", tx.Amount)
	assert.Equal(t, uint64(6), tx.Nonce)
	assert.Equal(t, "register_domain:alice.oct", tx.Message)
	assert.Equal(t,
		base64.StdEncoding.EncodeToString(signer.PublicKey()),
		tx.PublicKey,
	)
	assert.NotEmpty(t, tx.Signature)
	assert.Greater(t, tx.Timestamp, 0.0)
}

func TestFetchBalance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/balance/"+testAddr, r.URL.Path)
		fmt.Fprint(w, `{"balance": "12500000", "nonce": 5}`)
	}))
	defer srv.Close()

	c := ledger.NewClient(map[string]string{"test": srv.URL})
	b, err := c.FetchBalance(context.Background(), testAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), b.Nonce)
	assert.Equal(t, "12500000", b.Balance)
}

func TestFetchBalanceFallsBackAcrossNodes(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"balance": "0", "nonce": 9}`)
	}))
	defer good.Close()

	c := ledger.NewClient(map[string]string{"bad": bad.URL, "good": good.URL})
	b, err := c.FetchBalance(context.Background(), testAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), b.Nonce)
}

func TestSendTransaction(t *testing.T) {
	var got ledger.Transaction
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/send-tx", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"status": "accepted", "tx_hash": "0xabc"}`)
	}))
	defer srv.Close()

	signer := newTestSigner(t, testAddr)
	tx, err := ledger.CreateTransaction("octRecipient", 0, 6, signer, "")
	require.NoError(t, err)

	c := ledger.NewClient(map[string]string{"test": srv.URL})
	hash, broadcasted, err := c.SendTransaction(context.Background(), tx)
	require.NoError(t, err)
	assert.True(t, broadcasted)
	assert.Equal(t, "0xabc", hash)
	assert.Equal(t, tx.Signature, got.Signature)
}

func TestSendTransactionAllNodesRefuse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"status": "rejected", "error": "invalid nonce"}`)
	}))
	defer srv.Close()

	signer := newTestSigner(t, testAddr)
	tx, err := ledger.CreateTransaction("octRecipient", 0, 1, signer, "")
	require.NoError(t, err)

	c := ledger.NewClient(map[string]string{"a": srv.URL, "b": srv.URL})
	_, broadcasted, err := c.SendTransaction(context.Background(), tx)
	assert.False(t, broadcasted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid nonce")
}

func TestSendTransactionOneNodeIsEnough(t *testing.T) {
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "accepted", "tx_hash": "0xdef"}`)
	}))
	defer up.Close()

	signer := newTestSigner(t, testAddr)
	tx, err := ledger.CreateTransaction("octRecipient", 0, 2, signer, "")
	require.NoError(t, err)

	c := ledger.NewClient(map[string]string{"down": down.URL, "up": up.URL})
	hash, broadcasted, err := c.SendTransaction(context.Background(), tx)
	require.NoError(t, err)
	assert.True(t, broadcasted)
	assert.Equal(t, "0xdef", hash)
}
