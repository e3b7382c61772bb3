package margin

import (
	bin "github.com/gagliardetto/binary"
)

// SpotPosition is one account's holding in a single spot market.
// OpenBids and OpenAsks are non-negative magnitudes of resting order size;
// OpenOrders counts resting orders and gates position reuse.
type SpotPosition struct {
	ScaledBalance      uint64
	OpenBids           int64
	OpenAsks           int64
	CumulativeDeposits int64
	MarketIndex        uint16
	BalanceType        SpotBalanceType
	OpenOrders         uint8
}

// SpotMarket carries the static per-asset risk configuration the margin
// math reads. Interest and balance fields are 128-bit account values.
type SpotMarket struct {
	MarketIndex uint16
	Decimals    uint32

	CumulativeDepositInterest bin.Uint128
	CumulativeBorrowInterest  bin.Uint128
	DepositBalance            bin.Uint128
	BorrowBalance             bin.Uint128

	InitialAssetWeight         uint32
	MaintenanceAssetWeight     uint32
	InitialLiabilityWeight     uint32
	MaintenanceLiabilityWeight uint32
	ImfFactor                  uint32

	// ScaleInitialAssetWeightStart is the total deposit value
	// (PRICE_PRECISION) above which the initial asset weight derates.
	// Zero disables scaling.
	ScaleInitialAssetWeightStart uint64
}
