// Package ledger is the octra node client: it reads account balances and
// nonces and broadcasts signed transactions. It is the "chain side"
// collaborator of the naming layer; the registry index is a separate
// service with its own client.
package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const broadcastTimeout = 4 * time.Second

// Balance is an account's state as reported by a node. Nonce is the
// account's latest used nonce; the next transaction must use Nonce + 1.
type Balance struct {
	Balance string `json:"balance"`
	Nonce   uint64 `json:"nonce"`
}

// Client talks to one or more octra nodes. Reads try nodes one at a time;
// broadcasts go to every node in parallel and succeed if any node accepts.
type Client struct {
	nodes      map[string]string
	httpClient *http.Client
}

func NewClient(nodes map[string]string) *Client {
	return &Client{
		nodes:      nodes,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchBalance returns the balance and latest nonce of address. Nodes are
// tried in turn; the first successful response wins.
func (c *Client) FetchBalance(ctx context.Context, address string) (Balance, error) {
	var errs []error
	for name, node := range c.nodes {
		b, err := c.fetchBalanceFrom(ctx, node, address)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		return b, nil
	}
	return Balance{}, fmt.Errorf(
		"couldn't fetch balance of %s from any node: %w", address, errors.Join(errs...),
	)
}

func (c *Client) fetchBalanceFrom(ctx context.Context, node, address string) (Balance, error) {
	url := fmt.Sprintf("%s/balance/%s", node, address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Balance{}, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Balance{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Balance{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Balance{}, err
	}
	b := Balance{}
	if err = json.Unmarshal(body, &b); err != nil {
		return Balance{}, fmt.Errorf("couldn't decode balance response %s: %w", string(body), err)
	}
	return b, nil
}

type sendResponse struct {
	Status string `json:"status"`
	TxHash string `json:"tx_hash"`
	Error  string `json:"error"`
}

// SendTransaction broadcasts tx to all nodes in parallel. It returns the tx
// hash reported by the first node that accepted it and broadcasted == true
// when at least one node did. When every node refuses, err aggregates their
// failures.
func (c *Client) SendTransaction(ctx context.Context, tx *Transaction) (hash string, broadcasted bool, err error) {
	payload, err := json.Marshal(tx)
	if err != nil {
		return "", false, fmt.Errorf("tx is not valid, couldn't encode it: %w", err)
	}

	timeout, cancel := context.WithTimeout(ctx, broadcastTimeout)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		errs     []error
		accepted string
	)
	for name := range c.nodes {
		node := c.nodes[name]
		nodeName := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, sendErr := c.sendTo(timeout, node, payload)
			mu.Lock()
			defer mu.Unlock()
			if sendErr != nil {
				errs = append(errs, fmt.Errorf("%s: %w", nodeName, sendErr))
				return
			}
			if accepted == "" {
				accepted = h
			}
		}()
	}
	wg.Wait()

	if accepted == "" {
		return "", false, errors.Join(errs...)
	}
	return accepted, true, nil
}

func (c *Client) sendTo(ctx context.Context, node string, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, node+"/send-tx", bytes.NewReader(payload),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	sr := sendResponse{}
	if err = json.Unmarshal(body, &sr); err != nil {
		return "", fmt.Errorf("couldn't decode node response %s: %w", string(body), err)
	}
	if resp.StatusCode != http.StatusOK || sr.Status != "accepted" {
		if sr.Error != "" {
			return "", errors.New(sr.Error)
		}
		return "", fmt.Errorf("node refused the tx with status %d", resp.StatusCode)
	}
	if sr.TxHash == "" {
		return "", errors.New("node accepted the tx but returned no hash")
	}
	return sr.TxHash, nil
}
