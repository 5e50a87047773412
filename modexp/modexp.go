// Package modexp defines the modular-exponentiation oracle the arithmetic
// engine delegates its reductions to.
//
// The oracle works on minimal-length big-endian byte strings: callers are
// expected to trim leading zero bytes from base, exponent and modulus before a
// call. The contract matters for cost, not correctness — the metered wrapper
// charges by declared operand length, and an exponent padded to 64 bytes costs
// more than an order of magnitude over its one-byte encoding.
//
// The default backend computes with math/big. Environments with a native
// modexp capability can install their own implementation via Set.
package modexp

import "errors"

// ErrOracle is returned when a backend reports failure. The arithmetic engine
// wraps it into its own error taxonomy.
var ErrOracle = errors.New("modexp: oracle call failed")

// Oracle computes base^exponent mod modulus over big-endian byte strings.
// The result has at most the byte length of the modulus.
type Oracle interface {
	ModExp(base, exp, mod []byte) ([]byte, error)
}

var current Oracle = BigInt{}

// Set installs o as the oracle used by package-level calls.
func Set(o Oracle) {
	current = o
}

// Default returns the currently installed oracle.
func Default() Oracle {
	return current
}

// ModExp performs modular exponentiation on byte strings through the
// installed oracle.
func ModExp(base, exp, mod []byte) ([]byte, error) {
	return current.ModExp(base, exp, mod)
}
