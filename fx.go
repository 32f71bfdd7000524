package fintrack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// FxURL serves the live USD exchange rates used to convert holdings into
// the local currency.
const FxURL = "https://open.er-api.com/v6/latest/USD"

// FallbackUSDAED is the approximate USD to AED rate used when the FX
// service is unreachable. The dirham is pegged to the dollar, so this
// policy default is close, but it is a constant, not a live rate.
const FallbackUSDAED = 3.6725

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http GET %v: %v: %w", addr, err, ErrNetwork)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v: %v: %w", addr, resp.Status, ErrNetwork)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return fmt.Errorf("reading %v: %v: %w", addr, err, ErrNetwork)
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// USDAED fetches the live USD to AED rate from the open rates API at addr.
func USDAED(ctx context.Context, client *http.Client, addr string) (Quantity, error) {
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return Quantity{}, fmt.Errorf("fetching USD/AED: %w", err)
	}
	jval, err := jsonpath.Get("$.rates.AED", jobj)
	if err != nil {
		return Quantity{}, fmt.Errorf("no AED rate in FX payload: %w", err)
	}
	rate, ok := jval.(float64)
	if !ok || rate <= 0 {
		return Quantity{}, fmt.Errorf("FX payload has unusable AED rate %v", jval)
	}
	return Q(rate), nil
}

// USDAEDOrFallback fetches the live rate and degrades to FallbackUSDAED
// when the FX service is unavailable.
func USDAEDOrFallback(ctx context.Context, addr string) Quantity {
	client := &http.Client{Timeout: 10 * time.Second}
	rate, err := USDAED(ctx, client, addr)
	if err != nil {
		log.Printf("warning: FX service unavailable, using approximate rate %v: %v", FallbackUSDAED, err)
		return Q(FallbackUSDAED)
	}
	return rate
}
