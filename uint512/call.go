package uint512

import (
	"fmt"

	"github.com/dovgopoly/u512-md/debug"
	"github.com/dovgopoly/u512-md/modexp"
	"github.com/holiman/uint256"
)

// Frame region sizes: the base slot must hold a full 1024-bit product, the
// exponent and modulus slots one value each.
const (
	frameBaseLen = 2 * Bytes
	frameExpLen  = Bytes
	frameModLen  = Bytes
)

// Call is the reusable scratch region threaded through a chain of modular
// operations. It holds the oracle call framing and the temporaries of the
// compound operations, sized once for the worst case, so that repeated calls
// share one region instead of allocating per call.
//
// A Call has no value semantics: its contents after an operation are
// garbage. It must be fully consumed by one operation before being passed to
// the next and must never be shared between two in-flight operation chains.
type Call struct {
	frame   [frameBaseLen + frameExpLen + frameModLen]byte
	scratch [3]Uint512
	busy    bool
}

// NewCall returns a scratch region sized for the worst-case oracle framing.
func NewCall() *Call {
	return new(Call)
}

// ensure substitutes a private single-use context when the caller passed
// nil. The private context costs one allocation per operation, which is why
// long chains pass their own.
func ensure(c *Call) *Call {
	if c == nil {
		c = new(Call)
	}
	return c
}

func (c *Call) baseBuf() []byte { return c.frame[:frameBaseLen] }
func (c *Call) expBuf() []byte  { return c.frame[frameBaseLen : frameBaseLen+frameExpLen] }
func (c *Call) modBuf() []byte  { return c.frame[frameBaseLen+frameExpLen:] }

// oneByte is the minimal encoding of exponent 1, used by every
// reduction-only oracle call.
var oneByte = []byte{1}

// invoke performs the oracle call and decodes the result into z. All operand
// encodings live in c's frame, so z may alias any Uint512 the caller read
// them from.
func (c *Call) invoke(z *Uint512, base, exp, mod []byte) error {
	if debug.Debug {
		if c.busy {
			return fmt.Errorf("%w\n%s", ErrMisuse, debug.Stack())
		}
		c.busy = true
		defer func() { c.busy = false }()
	}
	out, err := modexp.ModExp(base, exp, mod)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOracleCall, err)
	}
	if len(out) > Bytes {
		return fmt.Errorf("%w: result is %d bytes", ErrOracleCall, len(out))
	}
	if err := z.SetBytes(out); err != nil {
		return fmt.Errorf("%w: %v", ErrOracleCall, err)
	}
	return nil
}

// trimZeros strips leading zero bytes, producing the minimal encoding the
// oracle cost model expects. Zero encodes as the empty string.
func trimZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}

// encode512 writes x big-endian into buf and returns its minimal encoding.
func encode512(buf []byte, x *Uint512) []byte {
	x.hi.PutUint256(buf[:limbBytes])
	x.lo.PutUint256(buf[limbBytes:Bytes])
	return trimZeros(buf[:Bytes])
}

// encodeSum writes a 513-bit sum (top carry plus 512-bit value) and returns
// its minimal encoding.
func encodeSum(buf []byte, carry bool, s *Uint512) []byte {
	buf[0] = 0
	if carry {
		buf[0] = 1
	}
	s.hi.PutUint256(buf[1 : 1+limbBytes])
	s.lo.PutUint256(buf[1+limbBytes : 1+Bytes])
	return trimZeros(buf[:1+Bytes])
}

// encodeProduct writes a 1024-bit product (least-significant limb first in
// p) and returns its minimal encoding.
func encodeProduct(buf []byte, p *[4]uint256.Int) []byte {
	for i := 0; i < 4; i++ {
		p[3-i].PutUint256(buf[i*limbBytes : (i+1)*limbBytes])
	}
	return trimZeros(buf[:frameBaseLen])
}
