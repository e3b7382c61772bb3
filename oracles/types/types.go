package types

import "math/big"

type OraclePriceData struct {
	Price                           *big.Int
	Slot                            uint64
	Confidence                      *big.Int
	HasSufficientNumberOfDataPoints bool
	Twap                            *big.Int
	TwapConfidence                  *big.Int
}
