package uint512

import "github.com/holiman/uint256"

// oneWord is a read-only 256-bit 1 used for carry and borrow propagation.
var oneWord = uint256.NewInt(1)

// addOverflow sets z = x + y mod 2^512 and reports the carry out of the top
// limb. z may alias either operand.
func addOverflow(z, x, y *Uint512) bool {
	_, c0 := z.lo.AddOverflow(&x.lo, &y.lo)
	_, c1 := z.hi.AddOverflow(&x.hi, &y.hi)
	if c0 {
		_, c2 := z.hi.AddOverflow(&z.hi, oneWord)
		c1 = c1 || c2
	}
	return c1
}

// subBorrow sets z = x - y mod 2^512 and reports the borrow out of the top
// limb. z may alias either operand.
func subBorrow(z, x, y *Uint512) bool {
	_, b0 := z.lo.SubOverflow(&x.lo, &y.lo)
	_, b1 := z.hi.SubOverflow(&x.hi, &y.hi)
	if b0 {
		_, b2 := z.hi.SubOverflow(&z.hi, oneWord)
		b1 = b1 || b2
	}
	return b1
}

// Add sets z = x + y. A carry out of the top limb fails with ErrOverflow and
// leaves z unspecified; there is no 1024-bit widening for plain addition.
func (z *Uint512) Add(x, y *Uint512) error {
	if addOverflow(z, x, y) {
		return ErrOverflow
	}
	return nil
}

// Sub sets z = x - y, failing with ErrUnderflow when x < y. On failure z is
// unspecified.
func (z *Uint512) Sub(x, y *Uint512) error {
	if subBorrow(z, x, y) {
		return ErrUnderflow
	}
	return nil
}

// Add returns a + b in fresh storage.
func Add(a, b *Uint512) (Uint512, error) {
	var z Uint512
	err := z.Add(a, b)
	return z, err
}

// Sub returns a - b in fresh storage.
func Sub(a, b *Uint512) (Uint512, error) {
	var z Uint512
	err := z.Sub(a, b)
	return z, err
}

// And sets z = x & y and returns z.
func (z *Uint512) And(x, y *Uint512) *Uint512 {
	z.lo.And(&x.lo, &y.lo)
	z.hi.And(&x.hi, &y.hi)
	return z
}

// Or sets z = x | y and returns z.
func (z *Uint512) Or(x, y *Uint512) *Uint512 {
	z.lo.Or(&x.lo, &y.lo)
	z.hi.Or(&x.hi, &y.hi)
	return z
}

// Xor sets z = x ^ y and returns z.
func (z *Uint512) Xor(x, y *Uint512) *Uint512 {
	z.lo.Xor(&x.lo, &y.lo)
	z.hi.Xor(&x.hi, &y.hi)
	return z
}

// Not sets z = ^x and returns z.
func (z *Uint512) Not(x *Uint512) *Uint512 {
	z.lo.Not(&x.lo)
	z.hi.Not(&x.hi)
	return z
}

// Lsh sets z = x << n and returns z. Bits shifted past the width are
// discarded; n ≥ 512 yields zero and n = 0 copies x.
func (z *Uint512) Lsh(x *Uint512, n uint) *Uint512 {
	switch {
	case n == 0:
		return z.Set(x)
	case n >= Bits:
		return z.Clear()
	case n >= 256:
		z.hi.Lsh(&x.lo, n-256)
		z.lo.Clear()
	default:
		var cross uint256.Int
		cross.Rsh(&x.lo, 256-n)
		z.hi.Lsh(&x.hi, n)
		z.hi.Or(&z.hi, &cross)
		z.lo.Lsh(&x.lo, n)
	}
	return z
}

// Rsh sets z = x >> n and returns z. n ≥ 512 yields zero and n = 0 copies x.
func (z *Uint512) Rsh(x *Uint512, n uint) *Uint512 {
	switch {
	case n == 0:
		return z.Set(x)
	case n >= Bits:
		return z.Clear()
	case n >= 256:
		z.lo.Rsh(&x.hi, n-256)
		z.hi.Clear()
	default:
		var cross uint256.Int
		cross.Lsh(&x.hi, 256-n)
		z.lo.Rsh(&x.lo, n)
		z.lo.Or(&z.lo, &cross)
		z.hi.Rsh(&x.hi, n)
	}
	return z
}
