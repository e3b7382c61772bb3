package math

import (
	"margingo/constants"
	"margingo/utils"
	"math/big"
)

// CalculateSizePremiumLiabilityWeight inflates a liability weight with
// position size: weight' = 4/5 * weight + sqrt(|size|) * imf, floored at
// the configured weight. Size enters in AMM_RESERVE_PRECISION.
func CalculateSizePremiumLiabilityWeight(
	size *big.Int,
	imfFactor *big.Int,
	liabilityWeight *big.Int,
	precision *big.Int,
) *big.Int {
	if imfFactor.Cmp(constants.ZERO) == 0 {
		return liabilityWeight
	}

	sizeSqrt := utils.SquareRootBN(utils.AddX(utils.MulX(utils.AbsX(size), utils.BN(10)), utils.BN(1))) // 1e9 -> 1e10 -> 1e5

	liabilityWeightNumerator := utils.SubX(liabilityWeight, utils.DivX(liabilityWeight, utils.BN(5)))

	denom := utils.DivX(
		utils.MulX(
			utils.BN(100_000),
			constants.SPOT_MARKET_IMF_PRECISION,
		),
		precision,
	)

	sizePremiumLiabilityWeight := utils.AddX(liabilityWeightNumerator, utils.DivX(utils.MulX(sizeSqrt, imfFactor), denom))

	return utils.Max(liabilityWeight, sizePremiumLiabilityWeight)
}

// CalculateSizeDiscountAssetWeight derates an asset weight with position
// size, capped at the configured weight. Size enters in
// AMM_RESERVE_PRECISION.
func CalculateSizeDiscountAssetWeight(
	size *big.Int,
	imfFactor *big.Int,
	assetWeight *big.Int,
) *big.Int {
	if imfFactor.Cmp(constants.ZERO) == 0 {
		return assetWeight
	}

	sizeSqrt := utils.SquareRootBN(utils.AddX(utils.MulX(utils.AbsX(size), utils.BN(10)), utils.BN(1))) // 1e9 -> 1e10 -> 1e5
	imfNumerator := utils.AddX(
		constants.SPOT_MARKET_IMF_PRECISION,
		utils.DivX(
			constants.SPOT_MARKET_IMF_PRECISION,
			utils.BN(10),
		),
	)

	sizeDiscountAssetWeight := utils.DivX(
		utils.MulX(
			imfNumerator,
			constants.SPOT_MARKET_WEIGHT_PRECISION,
		),
		utils.AddX(
			constants.SPOT_MARKET_IMF_PRECISION,
			utils.DivX(
				utils.MulX(
					sizeSqrt,
					imfFactor,
				),
				utils.BN(100_000),
			),
		),
	)

	return utils.Min(assetWeight, sizeDiscountAssetWeight)
}
