package uint512

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// Bits is the fixed width of a Uint512.
	Bits = 512

	// Bytes is the width of the external encoding: every value marshals to
	// exactly this many big-endian bytes.
	Bytes = 64

	// limbBytes is the width of one native limb.
	limbBytes = 32
)

// Uint512 is an unsigned 512-bit integer held in two 256-bit limbs. The zero
// value is the number zero and ready to use. Values have no identity beyond
// their two limbs: copy by assignment, compare with Eq or Cmp.
type Uint512 struct {
	// lo holds bits 0..255, hi bits 256..511.
	lo, hi uint256.Int
}

// FromUint64 returns x widened to 512 bits.
func FromUint64(x uint64) Uint512 {
	var z Uint512
	z.lo.SetUint64(x)
	return z
}

// FromBytes interprets b as a big-endian unsigned integer of at most 64
// bytes, left-zero-padded to the full width.
func FromBytes(b []byte) (Uint512, error) {
	var z Uint512
	if err := z.SetBytes(b); err != nil {
		return Uint512{}, err
	}
	return z, nil
}

// MustFromHex returns the value of a "0x"-prefixed hexadecimal string of at
// most 128 digits. It panics on malformed input and is intended for
// constants such as curve parameters.
func MustFromHex(s string) Uint512 {
	z, err := fromHex(s)
	if err != nil {
		panic(err)
	}
	return z
}

func fromHex(s string) (Uint512, error) {
	h, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return Uint512{}, ErrEncoding
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return Uint512{}, err
	}
	return FromBytes(b)
}

// SetUint64 sets z to x and returns z.
func (z *Uint512) SetUint64(x uint64) *Uint512 {
	z.lo.SetUint64(x)
	z.hi.Clear()
	return z
}

// SetBytes sets z from a big-endian byte string of at most 64 bytes,
// left-zero-padding shorter inputs. Longer inputs fail with ErrEncoding and
// leave z untouched.
func (z *Uint512) SetBytes(b []byte) error {
	if len(b) > Bytes {
		return ErrEncoding
	}
	if len(b) <= limbBytes {
		z.lo.SetBytes(b)
		z.hi.Clear()
		return nil
	}
	split := len(b) - limbBytes
	z.hi.SetBytes(b[:split])
	z.lo.SetBytes(b[split:])
	return nil
}

// Set sets z to x and returns z.
func (z *Uint512) Set(x *Uint512) *Uint512 {
	*z = *x
	return z
}

// Clear sets z to zero and returns z.
func (z *Uint512) Clear() *Uint512 {
	z.lo.Clear()
	z.hi.Clear()
	return z
}

// Bytes64 returns the fixed-width external encoding of z: exactly 64
// big-endian bytes, zero-padded, regardless of magnitude.
func (z *Uint512) Bytes64() [Bytes]byte {
	var out [Bytes]byte
	z.hi.PutUint256(out[:limbBytes])
	z.lo.PutUint256(out[limbBytes:])
	return out
}

// Cmp compares z and x, most-significant limb first, and returns -1, 0 or 1.
func (z *Uint512) Cmp(x *Uint512) int {
	if c := z.hi.Cmp(&x.hi); c != 0 {
		return c
	}
	return z.lo.Cmp(&x.lo)
}

// Eq reports whether z equals x.
func (z *Uint512) Eq(x *Uint512) bool {
	return z.lo.Eq(&x.lo) && z.hi.Eq(&x.hi)
}

// Lt reports whether z < x.
func (z *Uint512) Lt(x *Uint512) bool {
	return z.Cmp(x) < 0
}

// Gt reports whether z > x.
func (z *Uint512) Gt(x *Uint512) bool {
	return z.Cmp(x) > 0
}

// IsZero reports whether z is zero.
func (z *Uint512) IsZero() bool {
	return z.lo.IsZero() && z.hi.IsZero()
}

// BitLen returns the number of bits needed to represent z. The bit length
// of zero is zero.
func (z *Uint512) BitLen() int {
	if !z.hi.IsZero() {
		return 256 + z.hi.BitLen()
	}
	return z.lo.BitLen()
}

// Bit returns bit n of z, with n counted from the least-significant end.
// Bits at or beyond the width are zero.
func (z *Uint512) Bit(n uint) uint {
	if n >= Bits {
		return 0
	}
	limb := &z.lo
	if n >= 256 {
		limb = &z.hi
		n -= 256
	}
	return uint(limb[n/64]>>(n%64)) & 1
}

// String returns the minimal "0x"-prefixed hexadecimal rendering of z.
func (z *Uint512) String() string {
	if z.hi.IsZero() {
		return z.lo.Hex()
	}
	lo := z.lo.Bytes32()
	return z.hi.Hex() + hex.EncodeToString(lo[:])
}
