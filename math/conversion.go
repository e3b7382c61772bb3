package math

import (
	"margingo/constants"
	"margingo/utils"
	"math/big"

	"github.com/shopspring/decimal"
)

// ConvertToNumber collapses a fixed-point value to an int64 at the given
// precision (PRICE_PRECISION by default). Lossy; display only.
func ConvertToNumber(bigNumber *big.Int, precision ...*big.Int) int64 {
	if bigNumber == nil {
		return 0
	}
	var precisionx *big.Int
	if len(precision) == 0 {
		precisionx = utils.IntX(constants.PRICE_PRECISION)
	} else {
		precisionx = precision[0]
	}
	return utils.DivX(bigNumber, precisionx).Int64() + utils.ModX(bigNumber, precisionx).Int64()/precisionx.Int64()
}

// ConvertToDecimal rescales a fixed-point value to a decimal at the given
// precision (PRICE_PRECISION by default) without losing the fraction.
func ConvertToDecimal(bigNumber *big.Int, precision ...*big.Int) decimal.Decimal {
	if bigNumber == nil {
		return decimal.Zero
	}
	var precisionx *big.Int
	if len(precision) == 0 {
		precisionx = utils.IntX(constants.PRICE_PRECISION)
	} else {
		precisionx = precision[0]
	}
	return decimal.NewFromBigInt(bigNumber, 0).Div(decimal.NewFromBigInt(precisionx, 0))
}
