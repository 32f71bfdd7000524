package fintrack

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWallets_SetGetDelete(t *testing.T) {
	ws := make(Wallets)
	ws.Set(Wallet{Name: "main", APIKey: "k1", APISecret: "s1"})
	ws.Set(Wallet{Name: "spare", APIKey: "k2", APISecret: "s2"})

	if w, ok := ws.Get("main"); !ok || w.APIKey != "k1" {
		t.Errorf("Get(main) = %+v, %v", w, ok)
	}

	// saving under an existing name overwrites
	ws.Set(Wallet{Name: "main", APIKey: "k3", APISecret: "s3"})
	if w, _ := ws.Get("main"); w.APISecret != "s3" {
		t.Errorf("after overwrite, Get(main).APISecret = %q, want s3", w.APISecret)
	}

	ws.Delete("spare")
	if _, ok := ws.Get("spare"); ok {
		t.Error("Get(spare) found a deleted wallet")
	}
	ws.Delete("never-existed") // no-op

	if got, want := ws.Names(), []string{"main"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestWallets_NamesSorted(t *testing.T) {
	ws := make(Wallets)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		ws.Set(Wallet{Name: name, APIKey: "k", APISecret: "s"})
	}
	if got, want := ws.Names(), []string{"alpha", "mid", "zeta"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestEncodeDecodeWallets(t *testing.T) {
	ws := make(Wallets)
	ws.Set(Wallet{Name: "main", APIKey: "key", APISecret: "secret"})

	var buf bytes.Buffer
	if err := EncodeWallets(&buf, ws); err != nil {
		t.Fatalf("EncodeWallets() unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"version": 1`) {
		t.Errorf("encoded document is missing the version tag:\n%s", buf.String())
	}

	got, err := DecodeWallets(&buf)
	if err != nil {
		t.Fatalf("DecodeWallets() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, ws) {
		t.Errorf("round trip gave %+v, want %+v", got, ws)
	}
}

func TestSaveLoadWallets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binance_wallets.json")

	ws := make(Wallets)
	ws.Set(Wallet{Name: "main", APIKey: "key", APISecret: "secret"})
	if err := SaveWallets(path, ws); err != nil {
		t.Fatalf("SaveWallets() unexpected error: %v", err)
	}
	got, err := LoadWallets(path)
	if err != nil {
		t.Fatalf("LoadWallets() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, ws) {
		t.Errorf("loaded %+v, want %+v", got, ws)
	}
}

func TestLoadWallets_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binance_wallets.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	ws, err := LoadWallets(path)
	if err != nil {
		t.Fatalf("LoadWallets() unexpected error: %v", err)
	}
	if len(ws) != 0 {
		t.Errorf("a corrupt file must load as an empty mapping, got %+v", ws)
	}
}

func TestLoadWallets_MissingFile(t *testing.T) {
	ws, err := LoadWallets(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadWallets() unexpected error: %v", err)
	}
	if len(ws) != 0 {
		t.Errorf("a missing file must load as an empty mapping, got %+v", ws)
	}
}
