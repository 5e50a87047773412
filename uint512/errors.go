package uint512

import "errors"

var (
	// ErrEncoding is returned when an input byte string does not fit the
	// fixed 64-byte width.
	ErrEncoding = errors.New("uint512: byte string longer than 64 bytes")

	// ErrOverflow is returned when a plain addition escapes 512 bits.
	// There is no widening for Add; callers needing growth use MulFull or
	// the modular operations.
	ErrOverflow = errors.New("uint512: addition overflows 512 bits")

	// ErrUnderflow is returned by Sub when the subtrahend exceeds the
	// minuend.
	ErrUnderflow = errors.New("uint512: subtraction underflows")

	// ErrNotInvertible is returned by ModInv and ModDiv when the operand
	// shares a factor with the modulus. Under the engine's prime-modulus
	// contract this means the operand reduces to zero.
	ErrNotInvertible = errors.New("uint512: operand not invertible")

	// ErrOracleCall is returned when the modexp oracle reports failure or
	// returns a result wider than 64 bytes.
	ErrOracleCall = errors.New("uint512: modexp oracle call failed")

	// ErrMisuse is returned when a call context is found in flight on a
	// second operation. Detection is best-effort and only active in debug
	// builds; the non-aliasing rule is a caller contract.
	ErrMisuse = errors.New("uint512: call context reused while in flight")
)
