package math

import (
	"margingo/constants"
	"margingo/utils"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvertToNumber(t *testing.T) {
	assert.Equal(t, int64(0), ConvertToNumber(nil))
	assert.Equal(t, int64(1), ConvertToNumber(utils.BN(1_500_000)))
	assert.Equal(t, int64(525), ConvertToNumber(utils.BN(525_000_000)))
	assert.Equal(t, int64(50), ConvertToNumber(utils.BN(50_000_000_000), constants.SPOT_MARKET_BALANCE_PRECISION))
}

func TestConvertToDecimal(t *testing.T) {
	assert.True(t, ConvertToDecimal(nil).Equal(decimal.Zero))
	assert.True(t, ConvertToDecimal(utils.BN(1_500_000)).Equal(decimal.RequireFromString("1.5")))
	assert.True(t, ConvertToDecimal(utils.BN(-525_000_000)).Equal(decimal.RequireFromString("-525")))
	assert.True(t, ConvertToDecimal(utils.BN(50_000_000_000), constants.SPOT_MARKET_BALANCE_PRECISION).Equal(decimal.RequireFromString("50")))
}
