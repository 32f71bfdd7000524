package fintrack

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestExchange(t *testing.T, handler http.HandlerFunc) *Exchange {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Exchange{
		base:      srv.URL,
		apiKey:    "test-key",
		apiSecret: "test-secret",
		client:    &http.Client{Timeout: 5 * time.Second},
	}
}

func TestExchange_GetBalances(t *testing.T) {
	ex := newTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/account" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("X-MBX-APIKEY"); got != "test-key" {
			t.Errorf("X-MBX-APIKEY = %q, want test-key", got)
		}
		// the signature covers the query string before the signature param
		q := r.URL.Query()
		mac := hmac.New(sha256.New, []byte("test-secret"))
		mac.Write([]byte("timestamp=" + q.Get("timestamp")))
		if want := hex.EncodeToString(mac.Sum(nil)); q.Get("signature") != want {
			t.Errorf("signature = %q, want %q", q.Get("signature"), want)
		}
		w.Write([]byte(`{"balances":[
            {"asset":"BTC","free":"0.5","locked":"0.1"},
            {"asset":"ETH","free":"0","locked":"0"}
        ]}`))
	})

	balances, err := ex.GetBalances(context.Background())
	if err != nil {
		t.Fatalf("GetBalances() unexpected error: %v", err)
	}
	if len(balances) != 2 {
		t.Fatalf("got %d balances, want 2 (zero balances are reported as-is)", len(balances))
	}
	btc := balances[0]
	if btc.Asset != "BTC" || !btc.Free.Equal(Q(0.5)) || !btc.Locked.Equal(Q(0.1)) {
		t.Errorf("balances[0] = %+v", btc)
	}
	if want := Q(0.6); !btc.Total().Equal(want) {
		t.Errorf("BTC Total() = %v, want %v", btc.Total(), want)
	}
}

func TestExchange_GetBalances_BadCredentials(t *testing.T) {
	ex := newTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-2014,"msg":"API-key format invalid."}`, http.StatusUnauthorized)
	})
	_, err := ex.GetBalances(context.Background())
	if !errors.Is(err, ErrAuth) {
		t.Errorf("GetBalances() error = %v, want ErrAuth", err)
	}
}

func TestExchange_GetQuote(t *testing.T) {
	ex := newTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/24hr" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("symbol"); got != "BTCUSDT" {
			t.Errorf("symbol = %q, want BTCUSDT", got)
		}
		w.Write([]byte(`{"symbol":"BTCUSDT","lastPrice":"50000.10","priceChangePercent":"-2.500"}`))
	})

	quote, err := ex.GetQuote(context.Background(), "BTCUSDT")
	if err != nil {
		t.Fatalf("GetQuote() unexpected error: %v", err)
	}
	if quote.Symbol != "BTCUSDT" {
		t.Errorf("Symbol = %q, want BTCUSDT", quote.Symbol)
	}
	if want := M(50_000.10, USD); !quote.LastPrice.Equal(want) {
		t.Errorf("LastPrice = %v, want %v", quote.LastPrice, want)
	}
	if want := Percent(-2.5); !quote.DailyChange.Equal(want) {
		t.Errorf("DailyChange = %v, want %v", quote.DailyChange, want)
	}
}

func TestExchange_GetQuote_UnknownSymbol(t *testing.T) {
	ex := newTestExchange(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	})
	_, err := ex.GetQuote(context.Background(), "NOPEUSDT")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetQuote() error = %v, want ErrNotFound", err)
	}
}

func TestExchange_GetQuote_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	ex := &Exchange{
		base:      srv.URL,
		apiKey:    "test-key",
		apiSecret: "test-secret",
		client:    &http.Client{Timeout: time.Second},
	}
	_, err := ex.GetQuote(context.Background(), "BTCUSDT")
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("GetQuote() error = %v, want ErrNetwork", err)
	}
}
