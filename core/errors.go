package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// ErrMarketNotFound no market configured for the symbol
	ErrMarketNotFound ErrorCode = 100100
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrDivideByZero zero denominator in a rate or price computation
	ErrDivideByZero ErrorCode = 100102
	// ErrOverflow fixed-point product exceeds 256 bits
	ErrOverflow ErrorCode = 100103
	// ErrExternalCallFailure router/lens/oracle call failed
	ErrExternalCallFailure ErrorCode = 100104
	// ErrInsufficientAllowance token allowance below the requested amount
	ErrInsufficientAllowance ErrorCode = 100105
	// ErrInsufficientBalance token balance below the requested amount
	ErrInsufficientBalance ErrorCode = 100106
	// ErrInvalidPrice invalid oracle price
	ErrInvalidPrice ErrorCode = 100107
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
