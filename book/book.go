// Package book keeps a local book of name ↔ address pairs the user has
// registered or resolved, so commands can show verbose addresses and offer
// fuzzy search without a network round-trip. It is an explicit user-facing
// record, not a resolution cache: the resolver never reads it.
package book

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"sync"
)

var (
	BookPath = filepath.Join(getHomeDir(), ".octname", "book.json")
	book     *nameBook
	mu       sync.Mutex
)

func getHomeDir() string {
	usr, err := user.Current()
	if err != nil {
		log.Fatal(err)
	}
	return usr.HomeDir
}

// Entry is one known mapping.
type Entry struct {
	Domain  string `json:"domain"`
	Address string `json:"address"`
}

type nameBook struct {
	Data map[string]string `json:"Data"` // domain -> address
}

func (b *nameBook) Persist() error {
	jsonData, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	os.MkdirAll(filepath.Dir(BookPath), 0o700)
	return os.WriteFile(BookPath, jsonData, 0o644)
}

func loadNameBook() *nameBook {
	if book != nil {
		return book
	}
	book = &nameBook{
		Data: map[string]string{},
	}
	content, err := os.ReadFile(BookPath)
	if err != nil {
		// a missing book is an empty book
		return book
	}
	err = json.Unmarshal(content, book)
	if err != nil {
		// WARNING: swallow error here
		return book
	}
	return book
}

// Set records that domain maps to address.
func Set(domain, address string) error {
	mu.Lock()
	defer mu.Unlock()
	b := loadNameBook()
	b.Data[domain] = address
	return b.Persist()
}

// Get returns the best fuzzy match for input.
func Get(input string) (Entry, error) {
	matches := Search(input)
	if len(matches) == 0 {
		return Entry{}, fmt.Errorf("no name is found with '%s'", input)
	}
	return matches[0], nil
}

// Search returns the entries fuzzy-matching input, best first, at most 10.
func Search(input string) []Entry {
	return All().match(input)
}

// All returns every entry of the book ordered by domain.
func All() Entries {
	mu.Lock()
	defer mu.Unlock()
	b := loadNameBook()
	result := Entries{}
	for domain, address := range b.Data {
		result = append(result, Entry{Domain: domain, Address: address})
	}
	result.sort()
	return result
}

// VerboseAddress renders addr with its book name when one is known.
func VerboseAddress(addr string) string {
	for _, e := range All() {
		if e.Address == addr {
			return fmt.Sprintf("%s (%s)", addr, e.Domain)
		}
	}
	return fmt.Sprintf("%s (unknown)", addr)
}

// reset drops the in-memory book so tests can point BookPath elsewhere.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	book = nil
}
