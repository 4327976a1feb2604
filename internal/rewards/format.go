package rewards

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a smallest-unit amount as a human-readable decimal
// string (e.g. 1250000 -> "1.25" USDC)
func FormatAmount(units int64) string {
	return decimal.New(units, -AssetDecimals).String()
}

// FormatBigAmount renders an arbitrary-precision smallest-unit amount.
// decimal keeps the division exact for magnitudes past float64 precision.
func FormatBigAmount(units *big.Int) string {
	if units == nil {
		return "0"
	}
	return decimal.NewFromBigInt(units, -AssetDecimals).String()
}
