// Package accounts manages local octra account records under ~/.octname and
// turns their key material into ledger.Signer capabilities.
package accounts

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/term"
)

// AccDesc is one locally known account. Kind says where the private key
// lives: "keyfile" points Keypath at a file holding the base64 key,
// "prompt" means the key is typed in at unlock time and never stored.
type AccDesc struct {
	ID      string
	Address string
	Kind    string
	Keypath string
	Desc    string
}

func getHomeDir() string {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr.HomeDir
}

func accountsDir() string {
	return filepath.Join(getHomeDir(), ".octname")
}

func getPassword(prompt string) string {
	fmt.Print(prompt)
	byteKey, _ := term.ReadPassword(int(syscall.Stdin))
	fmt.Printf("\n")
	return strings.TrimSpace(string(byteKey))
}

// StoreAccountRecord writes ad to ~/.octname/<address>.json, creating the
// directory on first use.
func StoreAccountRecord(ad AccDesc) error {
	if ad.ID == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return err
		}
		ad.ID = id.String()
	}
	dir := accountsDir()
	os.MkdirAll(dir, 0o700)
	path := filepath.Join(dir, fmt.Sprintf("%s.json", ad.Address))
	content, _ := json.MarshalIndent(ad, "", "  ")
	return os.WriteFile(path, content, 0o600)
}

// GetAccounts loads every account record under ~/.octname.
func GetAccounts() []AccDesc {
	entries, err := os.ReadDir(accountsDir())
	if err != nil {
		return []AccDesc{}
	}
	result := []AccDesc{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(accountsDir(), entry.Name()))
		if err != nil {
			continue
		}
		ad := AccDesc{}
		if err = json.Unmarshal(content, &ad); err != nil {
			continue
		}
		if ad.Address == "" {
			continue
		}
		result = append(result, ad)
	}
	return result
}

// GetAccount fuzzy-matches input against the local account records.
func GetAccount(input string) (AccDesc, error) {
	source := NewFuzzySource()
	matches := source.Match(input)
	if len(matches) == 0 {
		return AccDesc{}, fmt.Errorf("no account is found with '%s'", input)
	}
	return matches[0], nil
}

// UnlockAccount turns an account record into a signing capability. For
// keyfile accounts the key is read from Keypath; for prompt accounts the
// user types it with echo off. The derived address must match the record.
func UnlockAccount(ad AccDesc) (*KeySigner, error) {
	var keyB64 string
	switch ad.Kind {
	case "keyfile":
		fmt.Printf("Using key file: %s\n", ad.Keypath)
		content, err := os.ReadFile(ad.Keypath)
		if err != nil {
			return nil, fmt.Errorf("couldn't read key file: %w", err)
		}
		keyB64 = strings.TrimSpace(string(content))
	case "prompt":
		keyB64 = getPassword("Enter private key (base64): ")
	default:
		return nil, fmt.Errorf("unsupported account kind: %s", ad.Kind)
	}

	signer, err := NewKeySigner(keyB64)
	if err != nil {
		return nil, err
	}
	if ad.Address != "" && signer.Address() != ad.Address {
		return nil, fmt.Errorf(
			"the key derives %s, not %s. Wrong key?", signer.Address(), ad.Address,
		)
	}
	return signer, nil
}
