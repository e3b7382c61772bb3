package types

import (
	"margingo/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictOraclePriceBounds(t *testing.T) {
	p := &StrictOraclePrice{Current: utils.BN(10_000_000), Twap: utils.BN(10_500_000)}
	assert.Zero(t, p.Max().Cmp(utils.BN(10_500_000)))
	assert.Zero(t, p.Min().Cmp(utils.BN(10_000_000)))

	p = &StrictOraclePrice{Current: utils.BN(10_500_000), Twap: utils.BN(10_000_000)}
	assert.Zero(t, p.Max().Cmp(utils.BN(10_500_000)))
	assert.Zero(t, p.Min().Cmp(utils.BN(10_000_000)))
}

func TestStrictOraclePriceWithoutTwap(t *testing.T) {
	p := &StrictOraclePrice{Current: utils.BN(10_000_000)}
	assert.Zero(t, p.Max().Cmp(p.Current))
	assert.Zero(t, p.Min().Cmp(p.Current))
}
