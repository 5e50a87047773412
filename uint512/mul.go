package uint512

import "github.com/holiman/uint256"

// maxWord is 2^256 - 1, the modulus of the carry-safe reconstruction.
var maxWord uint256.Int

func init() {
	maxWord.SetAllOne()
}

// mul256 computes the full 512-bit product of two native words as hi:lo
// without overflowing native arithmetic. The low half comes from truncating
// multiplication; the high half is reconstructed from a multiply modulo
// 2^256-1, since x*y = hi*2^256 + lo and 2^256 ≡ 1 (mod 2^256-1) give
//
//	hi = (mulmod(x, y, 2^256-1) - lo - borrow) mod 2^256
//
// with the borrow detected by a single comparison. hi and lo must not alias
// x or y.
func mul256(hi, lo, x, y *uint256.Int) {
	var mm uint256.Int
	mm.MulMod(x, y, &maxWord)
	lo.Mul(x, y)
	borrow := mm.Lt(lo)
	hi.Sub(&mm, lo)
	if borrow {
		hi.SubUint64(hi, 1)
	}
}

// mulFull sets p to the exact 1024-bit product of x and y, least-significant
// limb first. The four partial products are accumulated into limb positions
// with explicit carry counting; the top limb cannot overflow because the
// product of two 512-bit values is below 2^1024.
func mulFull(p *[4]uint256.Int, x, y *Uint512) {
	var h00, l00, h01, l01, h10, l10, h11, l11 uint256.Int
	mul256(&h00, &l00, &x.lo, &y.lo)
	mul256(&h01, &l01, &x.lo, &y.hi)
	mul256(&h10, &l10, &x.hi, &y.lo)
	mul256(&h11, &l11, &x.hi, &y.hi)

	p[0] = l00

	var c1 uint64
	if _, o := p[1].AddOverflow(&h00, &l01); o {
		c1++
	}
	if _, o := p[1].AddOverflow(&p[1], &l10); o {
		c1++
	}

	var c2 uint64
	if _, o := p[2].AddOverflow(&h01, &h10); o {
		c2++
	}
	if _, o := p[2].AddOverflow(&p[2], &l11); o {
		c2++
	}
	if c1 > 0 {
		var carry uint256.Int
		carry.SetUint64(c1)
		if _, o := p[2].AddOverflow(&p[2], &carry); o {
			c2++
		}
	}

	p[3].SetUint64(c2)
	p[3].Add(&p[3], &h11)
}

// Mul sets z to the product x * y taken mod 2^512 and returns z. Callers
// needing the full double-width product use MulFull.
func (z *Uint512) Mul(x, y *Uint512) *Uint512 {
	var p [4]uint256.Int
	mulFull(&p, x, y)
	z.lo = p[0]
	z.hi = p[1]
	return z
}

// Mul returns a * b mod 2^512 in fresh storage.
func Mul(a, b *Uint512) Uint512 {
	var z Uint512
	z.Mul(a, b)
	return z
}

// MulFull returns the exact 1024-bit product of a and b split into its high
// and low 512-bit halves, so that a*b = hi*2^512 + lo.
func MulFull(a, b *Uint512) (hi, lo Uint512) {
	var p [4]uint256.Int
	mulFull(&p, a, b)
	lo.lo = p[0]
	lo.hi = p[1]
	hi.lo = p[2]
	hi.hi = p[3]
	return hi, lo
}
