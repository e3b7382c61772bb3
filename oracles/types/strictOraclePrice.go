package types

import (
	"margingo/utils"
	"math/big"
)

// StrictOraclePrice pairs the live oracle price with its 5min twap so
// valuations can pick the bound that is worst for the account.
type StrictOraclePrice struct {
	Current *big.Int
	Twap    *big.Int
}

func (p *StrictOraclePrice) Max() *big.Int {
	if p.Twap != nil {
		return utils.Max(p.Twap, p.Current)
	}
	return p.Current
}

func (p *StrictOraclePrice) Min() *big.Int {
	if p.Twap != nil {
		return utils.Min(p.Twap, p.Current)
	}
	return p.Current
}
