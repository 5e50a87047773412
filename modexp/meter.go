package modexp

import (
	"math/bits"

	"github.com/dovgopoly/u512-md/logger"
)

// minCallCost is the floor charged for any oracle call, regardless of
// operand sizes.
const minCallCost = 200

// Meter wraps an oracle and accounts the cost of every call under the host
// pricing model. The model follows the EIP-198/EIP-2565 shape: quadratic in
// the width of base and modulus, linear in the adjusted exponent length. It
// exists so that callers (and tests) can observe the penalty of over-declared
// operand lengths.
//
// Meter is not safe for concurrent use, matching the single-threaded
// execution model of the engine.
type Meter struct {
	Oracle Oracle

	cost  uint64
	calls uint64
}

// NewMeter returns a Meter charging calls made through o. A nil o meters the
// default big.Int backend.
func NewMeter(o Oracle) *Meter {
	if o == nil {
		o = BigInt{}
	}
	return &Meter{Oracle: o}
}

// Cost returns the total cost charged since the last Reset.
func (m *Meter) Cost() uint64 {
	return m.cost
}

// Calls returns the number of oracle calls since the last Reset.
func (m *Meter) Calls() uint64 {
	return m.calls
}

// Reset clears the accumulated cost and call count.
func (m *Meter) Reset() {
	m.cost = 0
	m.calls = 0
}

// ModExp charges CallCost for the declared operand lengths, then delegates.
func (m *Meter) ModExp(base, exp, mod []byte) ([]byte, error) {
	c := CallCost(base, exp, mod)
	m.cost += c
	m.calls++
	log := logger.With("oracle")
	log.Trace().
		Int("base", len(base)).
		Int("exp", len(exp)).
		Int("mod", len(mod)).
		Uint64("cost", c).
		Msg("modexp oracle call")
	return m.Oracle.ModExp(base, exp, mod)
}

// CallCost prices one oracle call from the declared operand encodings.
func CallCost(base, exp, mod []byte) uint64 {
	maxLen := uint64(len(base))
	if uint64(len(mod)) > maxLen {
		maxLen = uint64(len(mod))
	}
	words := (maxLen + 7) / 8
	multComplexity := words * words

	adjExpLen := adjustedExpLen(exp)
	if adjExpLen < 1 {
		adjExpLen = 1
	}

	gas := multComplexity * adjExpLen / 3
	if gas < minCallCost {
		return minCallCost
	}
	return gas
}

// adjustedExpLen charges the exponent by its declared length beyond 32 bytes
// plus the bit length of its leading 32 bytes. Padding a small exponent out
// to a wide encoding therefore inflates the charge even though the numeric
// value is unchanged.
func adjustedExpLen(exp []byte) uint64 {
	head := exp
	var tail uint64
	if len(exp) > 32 {
		head = exp[:32]
		tail = 8 * uint64(len(exp)-32)
	}
	var headBits uint64
	for i, b := range head {
		if b != 0 {
			headBits = uint64(bits.Len8(b)) + 8*uint64(len(head)-i-1)
			break
		}
	}
	if headBits > 0 {
		headBits--
	}
	return tail + headBits
}
