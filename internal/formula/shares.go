package formula

import "math"

// Share issuance is priced in tranches: the first FirstTrancheShares are
// tranche 0, every TrancheShares after that opens the next tranche and
// doubles the price. Independent of vessel pricing.
const (
	FirstTrancheShares = 25_000
	TrancheShares      = 25_000
)

// ShareTranche returns the 0-indexed tranche that totalIssued shares have
// reached, clamped at zero.
func ShareTranche(totalIssued int) int {
	tier := (totalIssued - FirstTrancheShares) / TrancheShares
	if tier < 0 {
		return 0
	}
	return tier
}

// SharePrice is the per-share price at the tranche totalIssued has reached.
func SharePrice(basePrice float64, totalIssued int) float64 {
	return basePrice * math.Pow(2, float64(ShareTranche(totalIssued)))
}
