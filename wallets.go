package fintrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"
)

// Wallet is a named exchange credential pair. The name is the key: saving
// under an existing name overwrites it.
type Wallet struct {
	Name      string
	APIKey    string
	APISecret string
}

// Wallets maps wallet names to credentials.
type Wallets map[string]Wallet

// walletsSchemaVersion tags the persisted wallets document.
const walletsSchemaVersion = 1

type walletRecord struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

type walletsDocument struct {
	Version int                     `json:"version"`
	Wallets map[string]walletRecord `json:"wallets"`
}

// Set stores the wallet under its name, overwriting a previous one.
func (ws Wallets) Set(w Wallet) { ws[w.Name] = w }

// Get returns the named wallet.
func (ws Wallets) Get(name string) (Wallet, bool) {
	w, ok := ws[name]
	return w, ok
}

// Delete removes the named wallet. Removing an unknown name is a no-op.
func (ws Wallets) Delete(name string) { delete(ws, name) }

// Names returns the wallet names sorted for stable display.
func (ws Wallets) Names() []string {
	names := make([]string, 0, len(ws))
	for name := range ws {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EncodeWallets writes the wallets as an indented JSON document.
func EncodeWallets(w io.Writer, ws Wallets) error {
	doc := walletsDocument{Version: walletsSchemaVersion, Wallets: make(map[string]walletRecord, len(ws))}
	for name, wallet := range ws {
		doc.Wallets[name] = walletRecord{APIKey: wallet.APIKey, APISecret: wallet.APISecret}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding wallets: %w", err)
	}
	return nil
}

// DecodeWallets reads a wallets document.
func DecodeWallets(r io.Reader) (Wallets, error) {
	var doc walletsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding wallets: %w", err)
	}
	ws := make(Wallets, len(doc.Wallets))
	for name, rec := range doc.Wallets {
		ws[name] = Wallet{Name: name, APIKey: rec.APIKey, APISecret: rec.APISecret}
	}
	return ws, nil
}

// LoadWallets reads the wallets file at path. A missing or unreadable file
// loads as an empty mapping after logging a warning; the file is only
// rewritten when the user saves or deletes a wallet.
func LoadWallets(path string) (Wallets, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, wallets file %q does not exist, starting empty", path)
		return make(Wallets), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening wallets file %q: %w", path, err)
	}
	defer f.Close()
	ws, err := DecodeWallets(f)
	if err != nil {
		log.Printf("warning, wallets file %q is unreadable, starting empty: %v", path, err)
		return make(Wallets), nil
	}
	return ws, nil
}

// SaveWallets overwrites the whole wallets file at path.
func SaveWallets(path string, ws Wallets) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating wallets file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeWallets(f, ws)
}
