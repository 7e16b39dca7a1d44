// Package quota estimates how much of a subscription's monthly token
// allowance the tracked savings preserved.
package quota

// Tier represents the subscription level the estimate is scaled against.
type Tier string

const (
	// TierPro is the base subscription.
	TierPro Tier = "pro"
	// TierMax5 is the 5x allowance subscription.
	TierMax5 Tier = "5x"
	// TierMax20 is the 20x allowance subscription.
	TierMax20 Tier = "20x"
)

// proMonthlyTokens approximates the Pro tier's monthly allowance,
// extrapolated from the ~44K tokens per 5-hour window baseline. Actual
// limits use rolling 5-hour windows, not monthly caps, so everything built
// on this number is a rough heuristic.
const proMonthlyTokens = 6_000_000

// ParseTier maps a tier name to a known tier. Unrecognized names fall back
// to pro, the most conservative allowance.
func ParseTier(s string) Tier {
	switch s {
	case "5x":
		return TierMax5
	case "20x":
		return TierMax20
	default:
		return TierPro
	}
}

// DisplayName returns the subscription name shown to the user.
func (t Tier) DisplayName() string {
	switch t {
	case TierMax5:
		return "Max 5x ($100/mo)"
	case TierMax20:
		return "Max 20x ($200/mo)"
	default:
		return "Pro ($20/mo)"
	}
}

// MonthlyTokens returns the tier's estimated monthly token allowance.
func (t Tier) MonthlyTokens() int64 {
	switch t {
	case TierMax5:
		return proMonthlyTokens * 5
	case TierMax20:
		return proMonthlyTokens * 20
	default:
		return proMonthlyTokens
	}
}

// Estimate relates lifetime token savings to a tier's monthly allowance.
type Estimate struct {
	Tier          Tier
	MonthlyTokens int64
	SavedTokens   int64
	PreservedPct  float64
}

// EstimateFor computes the preserved-quota estimate for a tier.
func EstimateFor(tier Tier, savedTokens int64) Estimate {
	monthly := tier.MonthlyTokens()
	pct := 0.0
	if monthly > 0 {
		pct = float64(savedTokens) / float64(monthly) * 100.0
	}
	return Estimate{
		Tier:          tier,
		MonthlyTokens: monthly,
		SavedTokens:   savedTokens,
		PreservedPct:  pct,
	}
}
