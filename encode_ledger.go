package fintrack

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ledgerSchemaVersion tags the persisted document so a future layout change
// can tell old files apart.
const ledgerSchemaVersion = 1

// entryRecord is the persisted shape of one budget entry. Amounts are plain
// JSON numbers in the local currency.
type entryRecord struct {
	Month         string          `json:"month"`
	Salary        decimal.Decimal `json:"salary"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Savings       decimal.Decimal `json:"savings"`
	Invested      decimal.Decimal `json:"invested"`
	Log           string          `json:"computationLog"`
}

type ledgerDocument struct {
	Version int           `json:"version"`
	Entries []entryRecord `json:"entries"`
}

// EncodeLedger writes the ledger as an indented, human-inspectable JSON
// document.
func EncodeLedger(w io.Writer, l *Ledger) error {
	doc := ledgerDocument{Version: ledgerSchemaVersion, Entries: make([]entryRecord, 0, l.Len())}
	for _, e := range l.Entries() {
		doc.Entries = append(doc.Entries, entryRecord{
			Month:         e.Month,
			Salary:        e.Salary.Amount(),
			TotalExpenses: e.TotalExpenses.Amount(),
			Savings:       e.Savings.Amount(),
			Invested:      e.Invested.Amount(),
			Log:           e.Log,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger document back into memory.
//
// Documents written before the version tag existed are a bare JSON array of
// entries; both shapes decode.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	var doc ledgerDocument
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		// legacy unversioned layout
		if err := json.Unmarshal(trimmed, &doc.Entries); err != nil {
			return nil, fmt.Errorf("decoding legacy ledger: %w", err)
		}
	} else if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decoding ledger: %w", err)
	}

	l := NewLedger()
	for _, rec := range doc.Entries {
		l.Append(BudgetEntry{
			Month:         rec.Month,
			Salary:        M(rec.Salary, LocalCurrency),
			TotalExpenses: M(rec.TotalExpenses, LocalCurrency),
			Savings:       M(rec.Savings, LocalCurrency),
			Invested:      M(rec.Invested, LocalCurrency),
			Log:           rec.Log,
		})
	}
	return l, nil
}

// LoadLedger reads the ledger file at path. A missing or unreadable file is
// no data yet, not an error: it returns an empty ledger after logging a
// warning. The file is only overwritten when the user records something, so
// degrading does not destroy a corrupt file by itself.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, ledger file %q does not exist, starting empty", path)
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger file %q: %w", path, err)
	}
	defer f.Close()
	l, err := DecodeLedger(f)
	if err != nil {
		// unreadable is no data yet, same as missing
		log.Printf("warning, ledger file %q is unreadable, starting empty: %v", path, err)
		return NewLedger(), nil
	}
	return l, nil
}

// SaveLedger overwrites the whole ledger file at path.
func SaveLedger(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating ledger file %q: %w", path, err)
	}
	defer f.Close()
	return EncodeLedger(f, l)
}
