package modexp

import "math/big"

// BigInt is the math/big oracle backend.
type BigInt struct{}

// ModExp returns base^exp mod mod computed with big.Int.
//
// A zero modulus yields an empty result, which the engine decodes as zero.
// This matches the EVM convention where x mod 0 = 0.
func (BigInt) ModExp(base, exp, mod []byte) ([]byte, error) {
	baseBig := new(big.Int).SetBytes(base)
	expBig := new(big.Int).SetBytes(exp)
	modBig := new(big.Int).SetBytes(mod)

	if modBig.BitLen() == 0 {
		return []byte{}, nil
	}

	result := new(big.Int).Exp(baseBig, expBig, modBig)
	return result.Bytes(), nil
}
