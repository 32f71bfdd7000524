package fintrack

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"
)

// QuoteAsset is the stable-value reference asset quotes are priced against;
// pair symbols are formed by appending it to the asset (BTC -> BTCUSDT).
const QuoteAsset = "USDT"

// maxConcurrentQuotes bounds the per-asset quote fan-out during a refresh.
const maxConcurrentQuotes = 4

// AssetBalance is one asset's balance on the exchange, as fetched.
type AssetBalance struct {
	Asset  string
	Free   Quantity
	Locked Quantity
}

// Total returns free plus locked units.
func (b AssetBalance) Total() Quantity { return b.Free.Add(b.Locked) }

// PriceQuote is a live quote for one pair symbol: last price in USD and the
// signed 24h change.
type PriceQuote struct {
	Symbol      string
	LastPrice   Money
	DailyChange Percent
}

// Quoter provides live quotes for pair symbols.
type Quoter interface {
	GetQuote(ctx context.Context, symbol string) (PriceQuote, error)
}

// Holding is one asset's valuation line in a snapshot.
type Holding struct {
	Asset    string
	Units    Quantity
	PriceUSD Money
	PriceAED Money
	DailyPnL Percent
	Value    Money // Units * PriceAED
}

// DashboardSnapshot is the whole-portfolio valuation at one refresh: every
// quote and the FX rate come from a single pass.
type DashboardSnapshot struct {
	Holdings        []Holding
	TotalValue      Money
	AverageDailyPnL Percent
}

// Valuate prices the given balances in the local currency.
//
// Zero balances are dropped; an empty result is an empty snapshot, not an
// error. Quotes are fetched concurrently with bounded parallelism, one per
// retained asset, except for the reference asset which is worth exactly one
// USD by definition. A failed quote degrades that one asset to a zero value
// instead of aborting the snapshot. Only context cancellation fails the call.
func Valuate(ctx context.Context, balances []AssetBalance, quoter Quoter, usdRate Quantity) (*DashboardSnapshot, error) {
	retained := make([]AssetBalance, 0, len(balances))
	for _, b := range balances {
		if b.Free.IsPositive() || b.Locked.IsPositive() {
			retained = append(retained, b)
		}
	}

	quotes := make([]PriceQuote, len(retained))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQuotes)
	for i, b := range retained {
		if b.Asset == QuoteAsset {
			quotes[i] = PriceQuote{Symbol: QuoteAsset, LastPrice: M(1, USD)}
			continue
		}
		g.Go(func() error {
			q, err := quoter.GetQuote(gctx, b.Asset+QuoteAsset)
			if err != nil {
				// one bad asset must not abort the snapshot
				log.Printf("warning: no quote for %s, valued at zero: %v", b.Asset, err)
				q = PriceQuote{Symbol: b.Asset + QuoteAsset, LastPrice: M(0, USD)}
			}
			quotes[i] = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := &DashboardSnapshot{
		Holdings:   make([]Holding, 0, len(retained)),
		TotalValue: M(0, LocalCurrency),
	}
	pnls := make([]Percent, 0, len(retained))
	for i, b := range retained {
		q := quotes[i]
		priceAED := q.LastPrice.Convert(usdRate, LocalCurrency)
		h := Holding{
			Asset:    b.Asset,
			Units:    b.Total(),
			PriceUSD: q.LastPrice,
			PriceAED: priceAED,
			DailyPnL: q.DailyChange,
			Value:    priceAED.Mul(b.Total()),
		}
		snapshot.Holdings = append(snapshot.Holdings, h)
		snapshot.TotalValue = snapshot.TotalValue.Add(h.Value)
		pnls = append(pnls, h.DailyPnL)
	}
	snapshot.AverageDailyPnL = meanPercent(pnls)
	return snapshot, nil
}
