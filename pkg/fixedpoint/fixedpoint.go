package fixedpoint

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	// ErrDivideByZero division with a zero denominator
	ErrDivideByZero = errors.New("fixedpoint: divide by zero")
	// ErrOverflow result or intermediate product exceeds 256 bits
	ErrOverflow = errors.New("fixedpoint: overflow")
	// ErrNegative value cannot be represented as an unsigned amount
	ErrNegative = errors.New("fixedpoint: negative value")
)

var (
	// Wad 18-decimal fixed-point unit
	Wad = uint256.NewInt(1e18)
	// Ray 27-decimal fixed-point unit
	Ray = Pow10(27)
)

// Pow10 10^n as a 256-bit integer
func Pow10(n uint8) *uint256.Int {
	r := uint256.NewInt(10)
	return r.Exp(r, uint256.NewInt(uint64(n)))
}

// Mul floor(a * b / scale). Truncates toward zero, matching the protocol
// convention, and fails instead of wrapping when a*b exceeds 256 bits.
func Mul(a, b, scale *uint256.Int) (*uint256.Int, error) {
	if scale.IsZero() {
		return nil, ErrDivideByZero
	}

	p, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, ErrOverflow
	}

	return p.Div(p, scale), nil
}

// Div floor(a * scale / b)
func Div(a, b, scale *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, ErrDivideByZero
	}

	p, overflow := new(uint256.Int).MulOverflow(a, scale)
	if overflow {
		return nil, ErrOverflow
	}

	return p.Div(p, b), nil
}

// WadMul floor(a * b / 1e18)
func WadMul(a, b *uint256.Int) (*uint256.Int, error) {
	return Mul(a, b, Wad)
}

// WadDiv floor(a * 1e18 / b)
func WadDiv(a, b *uint256.Int) (*uint256.Int, error) {
	return Div(a, b, Wad)
}

// RayMul floor(a * b / 1e27)
func RayMul(a, b *uint256.Int) (*uint256.Int, error) {
	return Mul(a, b, Ray)
}

// RayDiv floor(a * 1e27 / b)
func RayDiv(a, b *uint256.Int) (*uint256.Int, error) {
	return Div(a, b, Ray)
}

// RayToWad drops 9 decimal places, truncating
func RayToWad(a *uint256.Int) *uint256.Int {
	return new(uint256.Int).Div(a, Pow10(9))
}

// Rescale moves a between decimal conventions. Scaling down truncates.
func Rescale(a *uint256.Int, from, to uint8) (*uint256.Int, error) {
	switch {
	case from == to:
		return new(uint256.Int).Set(a), nil
	case from < to:
		r, overflow := new(uint256.Int).MulOverflow(a, Pow10(to-from))
		if overflow {
			return nil, ErrOverflow
		}
		return r, nil
	default:
		return new(uint256.Int).Div(a, Pow10(from-to)), nil
	}
}

// MulUint64 a * n with overflow check
func MulUint64(a *uint256.Int, n uint64) (*uint256.Int, error) {
	r, overflow := new(uint256.Int).MulOverflow(a, uint256.NewInt(n))
	if overflow {
		return nil, ErrOverflow
	}
	return r, nil
}

// FromDecimal converts a human-readable amount into native units,
// e.g. 1.5 at 8 decimals -> 150000000. Fractional dust beyond the
// market's precision is rejected rather than silently truncated.
func FromDecimal(d decimal.Decimal, decimals uint8) (*uint256.Int, error) {
	shifted := d.Shift(int32(decimals))
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, errors.New("fixedpoint: amount has more precision than the asset")
	}
	if shifted.IsNegative() {
		return nil, ErrNegative
	}

	v, overflow := uint256.FromBig(shifted.BigInt())
	if overflow {
		return nil, ErrOverflow
	}
	return v, nil
}

// ToDecimal renders native units as a human-readable amount
func ToDecimal(a *uint256.Int, decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(a.ToBig(), -int32(decimals))
}

// FromBig converts a non-negative big.Int
func FromBig(b *big.Int) (*uint256.Int, error) {
	if b.Sign() < 0 {
		return nil, ErrNegative
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return nil, ErrOverflow
	}
	return v, nil
}
