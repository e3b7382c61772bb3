package math

import (
	"margingo/constants"
	"margingo/lib/margin"
	oracles "margingo/oracles/types"
	"margingo/utils"
	"math/big"
)

// interestPrecisionIncrease is the scaling between a token amount in native
// units and a scaled balance: 10^(19-decimals), i.e. balance precision (1e9)
// times cumulative interest precision (1e10) over 10^decimals.
func interestPrecisionIncrease(spotMarket *margin.SpotMarket) *big.Int {
	return utils.PowX(utils.BN(10), utils.BN(19-int64(spotMarket.Decimals)))
}

// GetBalance converts a token amount into a scaled balance, backing out any
// accumulated interest. Borrow balances round up so dust can never
// understate a liability.
func GetBalance(
	tokenAmount *big.Int,
	spotMarket *margin.SpotMarket,
	balanceType margin.SpotBalanceType,
) *big.Int {
	precisionIncrease := interestPrecisionIncrease(spotMarket)

	cumulativeInterest := spotMarket.CumulativeDepositInterest
	if balanceType == margin.SpotBalanceType_Borrow {
		cumulativeInterest = spotMarket.CumulativeBorrowInterest
	}

	balance := utils.DivX(utils.MulX(tokenAmount, precisionIncrease), cumulativeInterest.BigInt())

	if balance.Cmp(constants.ZERO) != 0 && balanceType == margin.SpotBalanceType_Borrow {
		balance = utils.AddX(balance, utils.BN(1))
	}
	return balance
}

// GetTokenAmount converts a scaled balance into a token amount including
// accumulated interest, scaled by 10^decimals. Borrows round up.
func GetTokenAmount(
	balanceAmount *big.Int,
	spotMarket *margin.SpotMarket,
	balanceType margin.SpotBalanceType,
) *big.Int {
	precisionIncrease := interestPrecisionIncrease(spotMarket)
	if balanceType == margin.SpotBalanceType_Deposit {
		return utils.DivX(utils.MulX(balanceAmount, spotMarket.CumulativeDepositInterest.BigInt()), precisionIncrease)
	}
	return utils.DivCeilX(utils.MulX(balanceAmount, spotMarket.CumulativeBorrowInterest.BigInt()), precisionIncrease)
}

// GetSignedTokenAmount returns the token amount signed by direction:
// positive for deposits, negative for borrows.
func GetSignedTokenAmount(
	tokenAmount *big.Int,
	balanceType margin.SpotBalanceType,
) *big.Int {
	if balanceType == margin.SpotBalanceType_Deposit {
		return tokenAmount
	}
	return utils.NegX(utils.AbsX(tokenAmount))
}

// GetTokenValue values a token amount at the given oracle price, scaled by
// PRICE_PRECISION.
func GetTokenValue(
	tokenAmount *big.Int,
	spotDecimals int64,
	oraclePriceData *oracles.OraclePriceData,
) *big.Int {
	if tokenAmount.Cmp(constants.ZERO) == 0 {
		return utils.BN(0)
	}
	precisionDecrease := utils.PowX(utils.BN(10), utils.BN(spotDecimals))

	return utils.DivX(utils.MulX(tokenAmount, oraclePriceData.Price), precisionDecrease)
}

// GetStrictTokenValue values a token amount at whichever bound of the
// strict oracle price is worst for the account: the lower bound for
// holdings, the upper bound for amounts owed.
func GetStrictTokenValue(
	tokenAmount *big.Int,
	spotDecimals int64,
	strictOraclePrice *oracles.StrictOraclePrice,
) *big.Int {
	if tokenAmount.Cmp(constants.ZERO) == 0 {
		return utils.BN(0)
	}

	var price *big.Int
	if tokenAmount.Cmp(constants.ZERO) >= 0 {
		price = strictOraclePrice.Min()
	} else {
		price = strictOraclePrice.Max()
	}

	return GetTokenValue(tokenAmount, spotDecimals, &oracles.OraclePriceData{Price: price})
}

// sizeInReservePrecision rescales a token amount from 10^decimals into
// AMM_RESERVE_PRECISION, the base the IMF curves are calibrated in.
func sizeInReservePrecision(size *big.Int, spotMarket *margin.SpotMarket) *big.Int {
	sizePrecision := utils.PowX(utils.BN(10), utils.BN(int64(spotMarket.Decimals)))
	if sizePrecision.Cmp(constants.AMM_RESERVE_PRECISION) > 0 {
		return utils.DivX(size, utils.DivX(sizePrecision, constants.AMM_RESERVE_PRECISION))
	}
	return utils.DivX(utils.MulX(size, constants.AMM_RESERVE_PRECISION), sizePrecision)
}

// CalculateAssetWeight returns the collateral weight for a deposit of the
// given size, SPOT_MARKET_WEIGHT_PRECISION base. Initial weights derate
// with position size (IMF) and with total market deposits.
func CalculateAssetWeight(
	balanceAmount *big.Int,
	oraclePrice *big.Int,
	spotMarket *margin.SpotMarket,
	marginCategory margin.MarginRequirementType,
) *big.Int {
	size := sizeInReservePrecision(balanceAmount, spotMarket)

	var assetWeight *big.Int
	switch marginCategory {
	case margin.MarginRequirementType_Initial:
		assetWeight = CalculateSizeDiscountAssetWeight(
			size,
			utils.BN(spotMarket.ImfFactor),
			CalculateScaledInitialAssetWeight(spotMarket, oraclePrice),
		)
	case margin.MarginRequirementType_Maintenance:
		assetWeight = CalculateSizeDiscountAssetWeight(
			size,
			utils.BN(spotMarket.ImfFactor),
			utils.BN(spotMarket.MaintenanceAssetWeight),
		)
	default:
		assetWeight = CalculateScaledInitialAssetWeight(spotMarket, oraclePrice)
	}
	return assetWeight
}

// CalculateScaledInitialAssetWeight derates the initial asset weight once
// the market's total deposit value exceeds ScaleInitialAssetWeightStart.
func CalculateScaledInitialAssetWeight(
	spotMarket *margin.SpotMarket,
	oraclePrice *big.Int,
) *big.Int {
	if spotMarket.ScaleInitialAssetWeightStart == 0 {
		return utils.BN(spotMarket.InitialAssetWeight)
	}

	deposits := GetTokenAmount(
		spotMarket.DepositBalance.BigInt(),
		spotMarket,
		margin.SpotBalanceType_Deposit,
	)
	depositsValue := GetTokenValue(
		deposits,
		int64(spotMarket.Decimals),
		&oracles.OraclePriceData{Price: oraclePrice},
	)

	if depositsValue.Cmp(utils.BN(spotMarket.ScaleInitialAssetWeightStart)) < 0 {
		return utils.BN(spotMarket.InitialAssetWeight)
	}
	return utils.DivX(
		utils.MulX(utils.BN(spotMarket.InitialAssetWeight), utils.BN(spotMarket.ScaleInitialAssetWeightStart)),
		depositsValue,
	)
}

// CalculateLiabilityWeight returns the borrow weight for a liability of the
// given size, SPOT_MARKET_WEIGHT_PRECISION base, always >= the unit weight.
func CalculateLiabilityWeight(
	size *big.Int,
	spotMarket *margin.SpotMarket,
	marginCategory margin.MarginRequirementType,
) *big.Int {
	sizeReserve := sizeInReservePrecision(size, spotMarket)

	var liabilityWeight *big.Int
	switch marginCategory {
	case margin.MarginRequirementType_Initial:
		liabilityWeight = CalculateSizePremiumLiabilityWeight(
			sizeReserve,
			utils.BN(spotMarket.ImfFactor),
			utils.BN(spotMarket.InitialLiabilityWeight),
			constants.SPOT_MARKET_WEIGHT_PRECISION,
		)
	case margin.MarginRequirementType_Maintenance:
		liabilityWeight = CalculateSizePremiumLiabilityWeight(
			sizeReserve,
			utils.BN(spotMarket.ImfFactor),
			utils.BN(spotMarket.MaintenanceLiabilityWeight),
			constants.SPOT_MARKET_WEIGHT_PRECISION,
		)
	default:
		liabilityWeight = utils.BN(spotMarket.InitialLiabilityWeight)
	}
	return liabilityWeight
}
