package math

import (
	"margingo/constants"
	"margingo/lib/margin"
	oracles "margingo/oracles/types"
	"margingo/utils"
	"math/big"

	"github.com/go-errors/errors"
)

// IsSpotPositionAvailable reports whether a position slot holds nothing:
// no balance and no resting orders.
func IsSpotPositionAvailable(position *margin.SpotPosition) bool {
	return position.ScaledBalance == 0 && position.OpenOrders == 0
}

// OrderFillSimulation is the snapshot of one simulated fill scenario.
// FreeCollateralContribution is always WeightedTokenValue plus the
// (non-positive) OrdersValue of the side that filled.
type OrderFillSimulation struct {
	TokenAmount                *big.Int
	OrdersValue                *big.Int
	TokenValue                 *big.Int
	Weight                     *big.Int
	WeightedTokenValue         *big.Int
	FreeCollateralContribution *big.Int
}

// CalculateWeightedTokenValue applies the asset weight curve to holdings
// and the liability weight curve to amounts owed, returning the weight
// (SPOT_MARKET_WEIGHT_PRECISION base) and the weighted value.
// A positive customMarginRatio (MARGIN_PRECISION base) tightens initial
// margin: it caps the asset weight at unit-ratio and floors the liability
// weight at unit+ratio.
func CalculateWeightedTokenValue(
	tokenAmount *big.Int,
	tokenValue *big.Int,
	oraclePrice *big.Int,
	spotMarket *margin.SpotMarket,
	marginCategory margin.MarginRequirementType,
	customMarginRatio int64,
) (*big.Int, *big.Int) {
	var weight *big.Int
	if tokenValue.Cmp(constants.ZERO) >= 0 {
		weight = CalculateAssetWeight(tokenAmount, oraclePrice, spotMarket, marginCategory)
	} else {
		weight = CalculateLiabilityWeight(utils.AbsX(tokenAmount), spotMarket, marginCategory)
	}

	if marginCategory == margin.MarginRequirementType_Initial && customMarginRatio > 0 {
		if tokenValue.Cmp(constants.ZERO) >= 0 {
			customAssetWeight := utils.Max(
				utils.BN(0),
				utils.SubX(constants.SPOT_MARKET_WEIGHT_PRECISION, utils.BN(customMarginRatio)),
			)
			weight = utils.Min(weight, customAssetWeight)
		} else {
			customLiabilityWeight := utils.AddX(constants.SPOT_MARKET_WEIGHT_PRECISION, utils.BN(customMarginRatio))
			weight = utils.Max(weight, customLiabilityWeight)
		}
	}

	assertWeightInBounds(weight, tokenValue)

	weightedTokenValue := utils.DivX(utils.MulX(tokenValue, weight), constants.SPOT_MARKET_WEIGHT_PRECISION)
	return weight, assertPlatformWidth(weightedTokenValue)
}

// SimulateOrderFill computes the scenario where one side's resting orders
// fill completely. openOrders is signed: positive for bids, negative for
// asks. The removed orders are valued at the upper oracle bound; the
// post-fill balance is weighted at the current price.
func SimulateOrderFill(
	tokenAmount *big.Int,
	tokenValue *big.Int,
	openOrders *big.Int,
	spotMarket *margin.SpotMarket,
	strictOraclePrice *oracles.StrictOraclePrice,
	marginCategory margin.MarginRequirementType,
	customMarginRatio int64,
) *OrderFillSimulation {
	maxOraclePrice := strictOraclePrice.Max()
	decimals := int64(spotMarket.Decimals)

	ordersValue := GetTokenValue(
		utils.NegX(utils.AbsX(openOrders)),
		decimals,
		&oracles.OraclePriceData{Price: maxOraclePrice},
	)
	tokenAmountAfterFill := utils.AddX(tokenAmount, openOrders)
	tokenValueAfterFill := utils.AddX(
		tokenValue,
		GetTokenValue(openOrders, decimals, &oracles.OraclePriceData{Price: maxOraclePrice}),
	)

	weight, weightedTokenValueAfterFill := CalculateWeightedTokenValue(
		tokenAmountAfterFill,
		tokenValueAfterFill,
		strictOraclePrice.Current,
		spotMarket,
		marginCategory,
		customMarginRatio,
	)

	freeCollateralContribution := utils.AddX(weightedTokenValueAfterFill, ordersValue)

	return &OrderFillSimulation{
		TokenAmount:                tokenAmountAfterFill,
		OrdersValue:                ordersValue,
		TokenValue:                 tokenValueAfterFill,
		Weight:                     weight,
		WeightedTokenValue:         weightedTokenValueAfterFill,
		FreeCollateralContribution: assertPlatformWidth(freeCollateralContribution),
	}
}

// GetWorstCaseTokenAmounts values a spot position at its most adverse
// post-fill state: all bids fill or all asks fill, whichever leaves the
// smaller free collateral contribution. With no resting orders the current
// balance is weighted directly.
func GetWorstCaseTokenAmounts(
	spotPosition *margin.SpotPosition,
	spotMarket *margin.SpotMarket,
	strictOraclePrice *oracles.StrictOraclePrice,
	marginCategory margin.MarginRequirementType,
	customMarginRatio int64,
) *OrderFillSimulation {
	tokenAmount := GetSignedTokenAmount(
		GetTokenAmount(
			utils.BN(spotPosition.ScaledBalance),
			spotMarket,
			spotPosition.BalanceType,
		),
		spotPosition.BalanceType,
	)
	tokenValue := GetStrictTokenValue(tokenAmount, int64(spotMarket.Decimals), strictOraclePrice)

	if spotPosition.OpenBids == 0 && spotPosition.OpenAsks == 0 {
		weight, weightedTokenValue := CalculateWeightedTokenValue(
			tokenAmount,
			tokenValue,
			strictOraclePrice.Current,
			spotMarket,
			marginCategory,
			customMarginRatio,
		)
		return &OrderFillSimulation{
			TokenAmount:                tokenAmount,
			OrdersValue:                utils.BN(0),
			TokenValue:                 tokenValue,
			Weight:                     weight,
			WeightedTokenValue:         weightedTokenValue,
			FreeCollateralContribution: weightedTokenValue,
		}
	}

	bidsSimulation := SimulateOrderFill(
		tokenAmount,
		tokenValue,
		utils.BN(spotPosition.OpenBids),
		spotMarket,
		strictOraclePrice,
		marginCategory,
		customMarginRatio,
	)
	asksSimulation := SimulateOrderFill(
		tokenAmount,
		tokenValue,
		utils.NegX(utils.BN(spotPosition.OpenAsks)),
		spotMarket,
		strictOraclePrice,
		marginCategory,
		customMarginRatio,
	)

	if asksSimulation.FreeCollateralContribution.Cmp(bidsSimulation.FreeCollateralContribution) < 0 {
		return asksSimulation
	}
	return bidsSimulation
}

// assertWeightInBounds fails loudly on a weight curve contract violation:
// asset weights live in [0, unit], liability weights in [unit, inf).
func assertWeightInBounds(weight *big.Int, tokenValue *big.Int) {
	if tokenValue.Cmp(constants.ZERO) >= 0 {
		if weight.Sign() < 0 || weight.Cmp(constants.SPOT_MARKET_WEIGHT_PRECISION) > 0 {
			panic(errors.Errorf("asset weight %s outside [0, %s]", weight.String(), constants.SPOT_MARKET_WEIGHT_PRECISION.String()))
		}
		return
	}
	if weight.Cmp(constants.SPOT_MARKET_WEIGHT_PRECISION) < 0 {
		panic(errors.Errorf("liability weight %s below unit %s", weight.String(), constants.SPOT_MARKET_WEIGHT_PRECISION.String()))
	}
}

// assertPlatformWidth fails loudly instead of letting a value outside the
// 128-bit account width flow into a solvency decision.
func assertPlatformWidth(x *big.Int) *big.Int {
	if !utils.FitsInt128(x) {
		panic(errors.Errorf("value %s overflows Int128", x.String()))
	}
	return x
}
