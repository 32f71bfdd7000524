package fintrack

import "fmt"

// Percent is a percentage value, e.g. a savings rate or a 24h price change.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// meanPercent returns the arithmetic mean, 0 for an empty slice.
func meanPercent(ps []Percent) Percent {
	if len(ps) == 0 {
		return 0
	}
	var sum Percent
	for _, p := range ps {
		sum += p
	}
	return sum / Percent(len(ps))
}
