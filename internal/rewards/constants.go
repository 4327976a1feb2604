package rewards

// Payout policy constants
const (
	// MaxPaidRanks caps how many leaderboard ranks receive a payout
	MaxPaidRanks = 10

	// BpsDenominator converts basis points to a share (10000 bps == 100%)
	BpsDenominator = 10000

	// AssetDecimals is the smallest-unit scale of the payout asset (USDC)
	AssetDecimals = 6

	// DustThresholdUnits is the minimum payout in smallest units below
	// which a recipient is excluded (0.0001 USDC)
	DustThresholdUnits = 100
)
