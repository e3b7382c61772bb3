package math

import (
	"margingo/constants"
	"margingo/lib/margin"
	oracles "margingo/oracles/types"
	"margingo/utils"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/stretchr/testify/assert"
)

func TestGetTokenAmount_AccruesInterest(t *testing.T) {
	spotMarket := testSpotMarket()
	spotMarket.CumulativeDepositInterest = bin.Uint128{Lo: 12_000_000_000} // 1.2x
	spotMarket.CumulativeBorrowInterest = bin.Uint128{Lo: 15_000_000_000}  // 1.5x

	deposit := GetTokenAmount(utils.BN(100_000_000_000), spotMarket, margin.SpotBalanceType_Deposit)
	assert.Zero(t, deposit.Cmp(utils.BN(120_000_000_000)))

	borrow := GetTokenAmount(utils.BN(100_000_000_000), spotMarket, margin.SpotBalanceType_Borrow)
	assert.Zero(t, borrow.Cmp(utils.BN(150_000_000_000)))
}

func TestGetTokenAmount_BorrowRoundsUp(t *testing.T) {
	spotMarket := testSpotMarket()
	spotMarket.CumulativeDepositInterest = bin.Uint128{Lo: 10_000_000_001}
	spotMarket.CumulativeBorrowInterest = bin.Uint128{Lo: 10_000_000_001}

	deposit := GetTokenAmount(utils.BN(3), spotMarket, margin.SpotBalanceType_Deposit)
	assert.Zero(t, deposit.Cmp(utils.BN(3)))

	borrow := GetTokenAmount(utils.BN(3), spotMarket, margin.SpotBalanceType_Borrow)
	assert.Zero(t, borrow.Cmp(utils.BN(4)))
}

func TestGetBalance_InverseOfTokenAmount(t *testing.T) {
	spotMarket := testSpotMarket()
	spotMarket.CumulativeDepositInterest = bin.Uint128{Lo: 12_000_000_000}
	spotMarket.CumulativeBorrowInterest = bin.Uint128{Lo: 15_000_000_000}

	balance := GetBalance(utils.BN(120_000_000_000), spotMarket, margin.SpotBalanceType_Deposit)
	assert.Zero(t, balance.Cmp(utils.BN(100_000_000_000)))

	// borrows round the scaled balance up
	balance = GetBalance(utils.BN(150_000_000_000), spotMarket, margin.SpotBalanceType_Borrow)
	assert.Zero(t, balance.Cmp(utils.BN(100_000_000_001)))
}

func TestGetSignedTokenAmount(t *testing.T) {
	deposit := GetSignedTokenAmount(utils.BN(5), margin.SpotBalanceType_Deposit)
	assert.Zero(t, deposit.Cmp(utils.BN(5)))

	borrow := GetSignedTokenAmount(utils.BN(5), margin.SpotBalanceType_Borrow)
	assert.Zero(t, borrow.Cmp(utils.BN(-5)))
}

func TestGetTokenValue(t *testing.T) {
	price := &oracles.OraclePriceData{Price: utils.BN(3_500_000)}

	value := GetTokenValue(utils.BN(2_000_000_000), 9, price)
	assert.Zero(t, value.Cmp(utils.BN(7_000_000)))

	value = GetTokenValue(utils.BN(-2_000_000_000), 9, price)
	assert.Zero(t, value.Cmp(utils.BN(-7_000_000)))

	value = GetTokenValue(utils.BN(0), 9, price)
	assert.Zero(t, value.Cmp(constants.ZERO))
}

func TestGetStrictTokenValue_PicksWorstBound(t *testing.T) {
	strictOraclePrice := strictPrice(10_000_000, 10_500_000)

	// holdings value at the lower bound
	value := GetStrictTokenValue(utils.BN(1_000_000_000), 9, strictOraclePrice)
	assert.Zero(t, value.Cmp(utils.BN(10_000_000)))

	// amounts owed value at the upper bound
	value = GetStrictTokenValue(utils.BN(-1_000_000_000), 9, strictOraclePrice)
	assert.Zero(t, value.Cmp(utils.BN(-10_500_000)))

	value = GetStrictTokenValue(utils.BN(0), 9, strictOraclePrice)
	assert.Zero(t, value.Cmp(constants.ZERO))

	// no twap: the current price is both bounds
	value = GetStrictTokenValue(utils.BN(1_000_000_000), 9, strictPrice(10_000_000, 0))
	assert.Zero(t, value.Cmp(utils.BN(10_000_000)))
}

func TestCalculateAssetWeight_FlatCurves(t *testing.T) {
	spotMarket := testSpotMarket()
	amount := utils.BN(100_000_000_000)
	price := utils.BN(10_000_000)

	weight := CalculateAssetWeight(amount, price, spotMarket, margin.MarginRequirementType_Initial)
	assert.Zero(t, weight.Cmp(utils.BN(8000)))

	weight = CalculateAssetWeight(amount, price, spotMarket, margin.MarginRequirementType_Maintenance)
	assert.Zero(t, weight.Cmp(utils.BN(9000)))
}

func TestCalculateAssetWeight_ImfDiscountsLargeSize(t *testing.T) {
	spotMarket := testSpotMarket()
	spotMarket.ImfFactor = 10_000 // 0.01
	price := utils.BN(10_000_000)

	small := CalculateAssetWeight(utils.BN(1_000_000_000), price, spotMarket, margin.MarginRequirementType_Initial)
	assert.Zero(t, small.Cmp(utils.BN(8000)))

	// 10_000 tokens: sqrt term halves the discounted weight to 5500
	large := CalculateAssetWeight(utils.BN(10_000_000_000_000), price, spotMarket, margin.MarginRequirementType_Initial)
	assert.Zero(t, large.Cmp(utils.BN(5500)))
}

func TestCalculateScaledInitialAssetWeight(t *testing.T) {
	spotMarket := testSpotMarket()
	spotMarket.ScaleInitialAssetWeightStart = 500_000_000
	spotMarket.DepositBalance = bin.Uint128{Lo: 100_000_000_000}

	// deposits worth 1000 vs a 500 start: weight scales by half
	weight := CalculateScaledInitialAssetWeight(spotMarket, utils.BN(10_000_000))
	assert.Zero(t, weight.Cmp(utils.BN(4000)))

	// below the start the configured weight applies
	weight = CalculateScaledInitialAssetWeight(spotMarket, utils.BN(1_000_000))
	assert.Zero(t, weight.Cmp(utils.BN(8000)))
}

func TestCalculateLiabilityWeight(t *testing.T) {
	spotMarket := testSpotMarket()
	size := utils.BN(100_000_000_000)

	weight := CalculateLiabilityWeight(size, spotMarket, margin.MarginRequirementType_Initial)
	assert.Zero(t, weight.Cmp(utils.BN(12000)))

	weight = CalculateLiabilityWeight(size, spotMarket, margin.MarginRequirementType_Maintenance)
	assert.Zero(t, weight.Cmp(utils.BN(11000)))

	spotMarket.ImfFactor = 10_000
	weight = CalculateLiabilityWeight(utils.BN(10_000_000_000_000), spotMarket, margin.MarginRequirementType_Initial)
	assert.Zero(t, weight.Cmp(utils.BN(19600)))
}
