package utils

import (
	"math/big"
	"reflect"
)

func IntX(x *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Set(x)
}

func AddX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Add(z, v)
	}
	return z
}

func SubX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Sub(z, v)
	}
	return z
}

func MulX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Mul(z, v)
	}
	return z
}

// DivX truncates toward zero, matching BN semantics the weight formulas
// assume for negative liability values.
func DivX(x *big.Int, y ...*big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	for _, v := range y {
		z = z.Quo(z, v)
	}
	return z
}

func DivCeilX(x *big.Int, y *big.Int) *big.Int {
	quotient := DivX(x, y)
	remainder := ModX(x, y)

	if remainder.Cmp(BN(0)) != 0 {
		return AddX(quotient, BN(1))
	}
	return quotient
}

func PowX(x, y *big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	return z.Exp(z, y, nil)
}

func ModX(x, y *big.Int) *big.Int {
	z := big.NewInt(0)
	z.Set(x)
	return z.Mod(z, y)
}

func AbsX(x *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Abs(x)
}

func NegX(x *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Neg(x)
}

func Min(x *big.Int, y ...*big.Int) *big.Int {
	minValue := x
	for _, v := range y {
		if minValue.Cmp(v) > 0 {
			minValue = v
		}
	}
	return minValue
}

func Max(x *big.Int, y ...*big.Int) *big.Int {
	maxValue := x
	for _, v := range y {
		if maxValue.Cmp(v) < 0 {
			maxValue = v
		}
	}
	return maxValue
}

func BigInt64(x int64) *big.Int {
	return big.NewInt(x)
}

func BigUInt64(x uint64) *big.Int {
	return big.NewInt(0).SetUint64(x)
}

func BN[T int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64](x T) *big.Int {
	xtype := []byte(reflect.TypeOf(x).String())
	if xtype[0] == 'u' {
		return BigUInt64(uint64(x))
	}
	return BigInt64(int64(x))
}

func SquareRootBN(n *big.Int) *big.Int {
	z := big.NewInt(0)
	return z.Sqrt(n)
}

func SigNum(x *big.Int) *big.Int {
	if x.Sign() == -1 {
		return big.NewInt(-1)
	}
	return big.NewInt(1)
}

func ClampBN(x *big.Int, min *big.Int, max *big.Int) *big.Int {
	return Max(min, Min(x, max))
}

// FitsInt128 reports whether x fits the platform's 128-bit account width.
func FitsInt128(x *big.Int) bool {
	return x.BitLen() <= 127
}
