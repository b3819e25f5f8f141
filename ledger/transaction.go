package ledger

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Signer is an opaque signing capability over an octra account. The naming
// layer never sees key material: it hands a payload to the Signer and gets a
// signature and the matching public key back.
type Signer interface {
	Address() string
	PublicKey() []byte
	Sign(payload []byte) ([]byte, error)
}

// Transaction is an octra transfer in its wire form. Amount is a decimal
// string of micro-OCT, ou is the octra fee tier ("1" covers zero-value and
// small transfers). Signature and PublicKey are base64 and are only set
// after signing.
type Transaction struct {
	From      string  `json:"from"`
	To        string  `json:"to_"`
	Amount    string  `json:"amount"`
	Nonce     uint64  `json:"nonce"`
	OU        string  `json:"ou"`
	Timestamp float64 `json:"timestamp"`
	Message   string  `json:"message,omitempty"`
	Signature string  `json:"signature,omitempty"`
	PublicKey string  `json:"public_key,omitempty"`
}

// signingPayload is the canonical JSON the signature covers: every field of
// the transaction except the signature and public key themselves, in
// declaration order.
func (t *Transaction) signingPayload() ([]byte, error) {
	return json.Marshal(struct {
		From      string  `json:"from"`
		To        string  `json:"to_"`
		Amount    string  `json:"amount"`
		Nonce     uint64  `json:"nonce"`
		OU        string  `json:"ou"`
		Timestamp float64 `json:"timestamp"`
		Message   string  `json:"message,omitempty"`
	}{t.From, t.To, t.Amount, t.Nonce, t.OU, t.Timestamp, t.Message})
}

// CreateTransaction builds and signs a transfer of amount micro-OCT from the
// signer's account to recipient at the given nonce, with message attached
// verbatim. The caller picks the nonce; registration flows use the account's
// current nonce + 1.
func CreateTransaction(
	to string,
	amount uint64,
	nonce uint64,
	signer Signer,
	message string,
) (*Transaction, error) {
	tx := &Transaction{
		From:      signer.Address(),
		To:        to,
		Amount:    strconv.FormatUint(amount, 10),
		Nonce:     nonce,
		OU:        "1",
		Timestamp: float64(time.Now().UnixNano()) / float64(time.Second),
		Message:   message,
	}
	payload, err := tx.signingPayload()
	if err != nil {
		return nil, fmt.Errorf("couldn't encode tx for signing: %w", err)
	}
	sig, err := signer.Sign(payload)
	if err != nil {
		return nil, fmt.Errorf("couldn't sign tx: %w", err)
	}
	tx.Signature = base64.StdEncoding.EncodeToString(sig)
	tx.PublicKey = base64.StdEncoding.EncodeToString(signer.PublicKey())
	return tx, nil
}
