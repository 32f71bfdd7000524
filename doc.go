// Package fintrack implements a personal-finance tracker with an attached
// exchange portfolio dashboard.
//
// The package holds the computation core: an amortized-debt calculator, a
// monthly budget calculator, a compounding growth projector, and a portfolio
// valuator that combines exchange balances, live quotes and an FX rate into
// a single snapshot. Persistence is plain JSON documents on disk, one for
// the budget ledger and one for the saved exchange wallets.
//
// The cmd package exposes everything as subcommands; fintrack itself has no
// UI concerns.
package fintrack
