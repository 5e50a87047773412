package uint512

import "github.com/holiman/uint256"

// two is the exponent offset of the Fermat inverse.
var two = FromUint64(2)

// Mod sets z = x mod m. The reduction is one oracle call with exponent 1.
// A zero modulus yields zero, matching the EVM convention.
func (z *Uint512) Mod(c *Call, x, m *Uint512) error {
	c = ensure(c)
	base := encode512(c.baseBuf(), x)
	mod := encode512(c.modBuf(), m)
	return c.invoke(z, base, oneByte, mod)
}

// ModAdd sets z = (x + y) mod m. The unreduced 513-bit sum is framed
// directly for the oracle, so the plain-addition overflow rule does not
// apply here.
func (z *Uint512) ModAdd(c *Call, x, y, m *Uint512) error {
	c = ensure(c)
	var s Uint512
	carry := addOverflow(&s, x, y)
	base := encodeSum(c.baseBuf(), carry, &s)
	mod := encode512(c.modBuf(), m)
	return c.invoke(z, base, oneByte, mod)
}

// ModSub sets z = (x - y) mod m. When x < y the magnitude of the difference
// is reduced instead and complemented against m, which costs the same single
// oracle call.
func (z *Uint512) ModSub(c *Call, x, y, m *Uint512) error {
	c = ensure(c)
	mod := encode512(c.modBuf(), m)
	if x.Cmp(y) >= 0 {
		var d Uint512
		subBorrow(&d, x, y)
		return c.invoke(z, encode512(c.baseBuf(), &d), oneByte, mod)
	}
	var d Uint512
	subBorrow(&d, y, x)
	r := &c.scratch[0]
	if err := c.invoke(r, encode512(c.baseBuf(), &d), oneByte, mod); err != nil {
		return err
	}
	if r.IsZero() {
		z.Clear()
		return nil
	}
	subBorrow(z, m, r)
	return nil
}

// ModMul sets z = (x * y) mod m. The full 1024-bit product feeds one oracle
// call with exponent 1.
func (z *Uint512) ModMul(c *Call, x, y, m *Uint512) error {
	c = ensure(c)
	var p [4]uint256.Int
	mulFull(&p, x, y)
	base := encodeProduct(c.baseBuf(), &p)
	mod := encode512(c.modBuf(), m)
	return c.invoke(z, base, oneByte, mod)
}

// ModExp sets z = x^e mod m through the oracle. All three operands are
// framed at their minimal byte length; the oracle accepts padded encodings
// but charges for the declared width.
func (z *Uint512) ModExp(c *Call, x, e, m *Uint512) error {
	c = ensure(c)
	base := encode512(c.baseBuf(), x)
	exp := encode512(c.expBuf(), e)
	mod := encode512(c.modBuf(), m)
	return c.invoke(z, base, exp, mod)
}

// ModInv sets z to the multiplicative inverse of x modulo a prime m,
// computed as x^(m-2) mod m. It fails with ErrNotInvertible when x reduces
// to zero or m < 2. Behavior for composite m is undefined; primality is a
// caller guarantee.
func (z *Uint512) ModInv(c *Call, x, m *Uint512) error {
	if m.Lt(&two) {
		return ErrNotInvertible
	}
	c = ensure(c)
	red := &c.scratch[0]
	if err := red.Mod(c, x, m); err != nil {
		return err
	}
	if red.IsZero() {
		return ErrNotInvertible
	}
	e := &c.scratch[1]
	subBorrow(e, m, &two)
	return z.ModExp(c, red, e, m)
}

// ModDiv sets z = x * y^(-1) mod m for prime m.
func (z *Uint512) ModDiv(c *Call, x, y, m *Uint512) error {
	c = ensure(c)
	inv := &c.scratch[2]
	if err := inv.ModInv(c, y, m); err != nil {
		return err
	}
	return z.ModMul(c, x, inv, m)
}

// RedAdd sets z = (x + y) mod m for operands already reduced below m and
// returns z. The sum of two reduced values is at most one multiple of m out
// of range, so a single conditional subtraction replaces the oracle
// reduction.
func (z *Uint512) RedAdd(x, y, m *Uint512) *Uint512 {
	carry := addOverflow(z, x, y)
	if carry || z.Cmp(m) >= 0 {
		subBorrow(z, z, m)
	}
	return z
}

// RedSub sets z = (x - y) mod m for operands already reduced below m and
// returns z, adding back m once when the difference would go negative.
func (z *Uint512) RedSub(x, y, m *Uint512) *Uint512 {
	if x.Cmp(y) >= 0 {
		subBorrow(z, x, y)
		return z
	}
	var t Uint512
	subBorrow(&t, m, y)
	addOverflow(z, x, &t)
	return z
}

// Mod returns a mod m in fresh storage.
func Mod(c *Call, a, m *Uint512) (Uint512, error) {
	var z Uint512
	err := z.Mod(c, a, m)
	return z, err
}

// ModAdd returns (a + b) mod m in fresh storage.
func ModAdd(c *Call, a, b, m *Uint512) (Uint512, error) {
	var z Uint512
	err := z.ModAdd(c, a, b, m)
	return z, err
}

// ModSub returns (a - b) mod m in fresh storage.
func ModSub(c *Call, a, b, m *Uint512) (Uint512, error) {
	var z Uint512
	err := z.ModSub(c, a, b, m)
	return z, err
}

// ModMul returns (a * b) mod m in fresh storage.
func ModMul(c *Call, a, b, m *Uint512) (Uint512, error) {
	var z Uint512
	err := z.ModMul(c, a, b, m)
	return z, err
}

// ModExp returns a^e mod m in fresh storage.
func ModExp(c *Call, a, e, m *Uint512) (Uint512, error) {
	var z Uint512
	err := z.ModExp(c, a, e, m)
	return z, err
}

// ModInv returns the inverse of a modulo a prime m in fresh storage.
func ModInv(c *Call, a, m *Uint512) (Uint512, error) {
	var z Uint512
	err := z.ModInv(c, a, m)
	return z, err
}

// ModDiv returns a / b mod m for prime m in fresh storage.
func ModDiv(c *Call, a, b, m *Uint512) (Uint512, error) {
	var z Uint512
	err := z.ModDiv(c, a, b, m)
	return z, err
}

// RedAdd returns (a + b) mod m in fresh storage for reduced operands.
func RedAdd(a, b, m *Uint512) Uint512 {
	var z Uint512
	z.RedAdd(a, b, m)
	return z
}

// RedSub returns (a - b) mod m in fresh storage for reduced operands.
func RedSub(a, b, m *Uint512) Uint512 {
	var z Uint512
	z.RedSub(a, b, m)
	return z
}
