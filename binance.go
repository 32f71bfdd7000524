package fintrack

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const binanceBaseURL = "https://api.binance.com"

// Exchange is a Binance REST client scoped to one wallet's credentials.
// It serves the two sources the valuator needs: account balances and 24h
// pair quotes.
type Exchange struct {
	base      string
	apiKey    string
	apiSecret string
	client    *http.Client
}

// NewExchange creates a client for the wallet's credentials.
func NewExchange(w Wallet) *Exchange {
	return &Exchange{
		base:      binanceBaseURL,
		apiKey:    w.APIKey,
		apiSecret: w.APISecret,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// sign computes the HMAC-SHA256 signature Binance expects on account
// endpoints, over the raw query string.
func (e *Exchange) sign(query string) string {
	mac := hmac.New(sha256.New, []byte(e.apiSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}

// get performs a GET and maps HTTP status to the failure taxonomy:
// 401/403 are credential rejections, 400/404 unknown symbols, anything
// else non-200 (and transport errors) a network failure.
func (e *Exchange) get(ctx context.Context, addr string, signed bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", addr, err)
	}
	if signed {
		req.Header.Set("X-MBX-APIKEY", e.apiKey)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %v: %w", addr, err, ErrNetwork)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response of %s: %v: %w", addr, err, ErrNetwork)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("GET %s: %s: %w", addr, resp.Status, ErrAuth)
	case http.StatusBadRequest, http.StatusNotFound:
		return nil, fmt.Errorf("GET %s: %s: %w", addr, resp.Status, ErrNotFound)
	default:
		return nil, fmt.Errorf("GET %s: %s: %w", addr, resp.Status, ErrNetwork)
	}
}

// GetBalances fetches the account's asset balances. The exchange reports
// every asset it lists, most with zero balances; filtering is the
// valuator's business.
func (e *Exchange) GetBalances(ctx context.Context) ([]AssetBalance, error) {
	query := url.Values{}
	query.Set("timestamp", fmt.Sprintf("%d", time.Now().UnixMilli()))
	encoded := query.Encode()
	addr := fmt.Sprintf("%s/api/v3/account?%s&signature=%s", e.base, encoded, e.sign(encoded))

	body, err := e.get(ctx, addr, true)
	if err != nil {
		return nil, err
	}

	// balances come as strings, parsed into decimals
	var payload struct {
		Balances []struct {
			Asset  string `json:"asset"`
			Free   string `json:"free"`
			Locked string `json:"locked"`
		} `json:"balances"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding account payload: %w", err)
	}

	balances := make([]AssetBalance, 0, len(payload.Balances))
	for _, b := range payload.Balances {
		free, err := decimal.NewFromString(b.Free)
		if err != nil {
			return nil, fmt.Errorf("balance %s has invalid free amount %q: %w", b.Asset, b.Free, err)
		}
		locked, err := decimal.NewFromString(b.Locked)
		if err != nil {
			return nil, fmt.Errorf("balance %s has invalid locked amount %q: %w", b.Asset, b.Locked, err)
		}
		balances = append(balances, AssetBalance{Asset: b.Asset, Free: Q(free), Locked: Q(locked)})
	}
	return balances, nil
}

// GetQuote fetches the 24h ticker for one pair symbol: last price and
// signed daily change.
func (e *Exchange) GetQuote(ctx context.Context, symbol string) (PriceQuote, error) {
	addr := fmt.Sprintf("%s/api/v3/ticker/24hr?symbol=%s", e.base, url.QueryEscape(symbol))
	body, err := e.get(ctx, addr, false)
	if err != nil {
		return PriceQuote{}, err
	}

	var payload struct {
		LastPrice          string `json:"lastPrice"`
		PriceChangePercent string `json:"priceChangePercent"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return PriceQuote{}, fmt.Errorf("decoding ticker payload for %s: %w", symbol, err)
	}
	price, err := decimal.NewFromString(payload.LastPrice)
	if err != nil {
		return PriceQuote{}, fmt.Errorf("ticker %s has invalid lastPrice %q: %w", symbol, payload.LastPrice, err)
	}
	change, err := decimal.NewFromString(payload.PriceChangePercent)
	if err != nil {
		return PriceQuote{}, fmt.Errorf("ticker %s has invalid priceChangePercent %q: %w", symbol, payload.PriceChangePercent, err)
	}
	return PriceQuote{
		Symbol:      symbol,
		LastPrice:   M(price, USD),
		DailyChange: Percent(change.InexactFloat64()),
	}, nil
}
