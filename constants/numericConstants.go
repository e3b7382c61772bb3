package constants

import "math/big"

var (
	ZERO = big.NewInt(0)
	ONE  = big.NewInt(1)
	TWO  = big.NewInt(2)
	TEN  = big.NewInt(10)

	// PRICE_PRECISION scales oracle prices and token values (1e6).
	PRICE_PRECISION = big.NewInt(1_000_000)
	QUOTE_PRECISION = big.NewInt(1_000_000)

	// SPOT_MARKET_WEIGHT_PRECISION is the unit weight: an asset weight of
	// SPOT_MARKET_WEIGHT_PRECISION passes value through unchanged (1e4).
	SPOT_MARKET_WEIGHT_PRECISION = big.NewInt(10_000)
	MARGIN_PRECISION             = big.NewInt(10_000)

	SPOT_MARKET_BALANCE_PRECISION             = big.NewInt(1_000_000_000)
	SPOT_MARKET_CUMULATIVE_INTEREST_PRECISION = big.NewInt(10_000_000_000)
	SPOT_MARKET_IMF_PRECISION                 = big.NewInt(1_000_000)

	AMM_RESERVE_PRECISION = big.NewInt(1_000_000_000)
)

const QUOTE_SPOT_MARKET_INDEX = uint16(0)
