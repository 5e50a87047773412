// Package ecdsa verifies ECDSA signatures over 384-bit and 512-bit
// prime-field curves on top of the uint512 engine.
//
// A verification performs thousands of modular operations; all of them
// thread one call context allocated up front, which is the allocation
// discipline the engine was built around. Field elements stay reduced below
// the curve prime throughout, so point arithmetic leans on the RedAdd/RedSub
// shortcuts and only multiplications pay for an oracle reduction.
package ecdsa

import (
	"github.com/dovgopoly/u512-md/logger"
	"github.com/dovgopoly/u512-md/uint512"
)

// point is a curve point in Jacobian coordinates, (X/Z², Y/Z³) affine.
// Z = 0 marks the point at infinity.
type point struct {
	x, y, z uint512.Uint512
}

// Verify checks an ECDSA signature (r, s) over hash against the public key
// (qx, qy) on cv. It returns false for structurally invalid inputs (out of
// range signature components, public key off the curve) and an error only
// when the engine itself fails.
func Verify(cv *Curve, hash []byte, r, s, qx, qy *uint512.Uint512) (bool, error) {
	call := uint512.NewCall()

	if r.IsZero() || s.IsZero() || r.Cmp(&cv.N) >= 0 || s.Cmp(&cv.N) >= 0 {
		return false, nil
	}
	ok, err := onCurve(call, cv, qx, qy)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	e := hashToInt(hash, cv)

	var w, u1, u2 uint512.Uint512
	if err := w.ModInv(call, s, &cv.N); err != nil {
		return false, err
	}
	if err := u1.ModMul(call, &e, &w, &cv.N); err != nil {
		return false, err
	}
	if err := u2.ModMul(call, r, &w, &cv.N); err != nil {
		return false, err
	}

	// R = u1*G + u2*Q with a shared double-and-add ladder.
	var R point
	maxBits := u1.BitLen()
	if b := u2.BitLen(); b > maxBits {
		maxBits = b
	}
	for i := maxBits - 1; i >= 0; i-- {
		if err := R.double(call, cv); err != nil {
			return false, err
		}
		if u1.Bit(uint(i)) == 1 {
			if err := R.addAffine(call, cv, &cv.Gx, &cv.Gy); err != nil {
				return false, err
			}
		}
		if u2.Bit(uint(i)) == 1 {
			if err := R.addAffine(call, cv, qx, qy); err != nil {
				return false, err
			}
		}
	}
	if R.z.IsZero() {
		return false, nil
	}

	// v = (R.x / R.z²) mod n, compared against r.
	var zinv, z2, xa, v uint512.Uint512
	if err := zinv.ModInv(call, &R.z, &cv.P); err != nil {
		return false, err
	}
	if err := z2.ModMul(call, &zinv, &zinv, &cv.P); err != nil {
		return false, err
	}
	if err := xa.ModMul(call, &R.x, &z2, &cv.P); err != nil {
		return false, err
	}
	if err := v.Mod(call, &xa, &cv.N); err != nil {
		return false, err
	}
	valid := v.Eq(r)

	log := logger.With("ecdsa")
	log.Debug().
		Str("curve", cv.Name).
		Bool("valid", valid).
		Msg("ecdsa verification")
	return valid, nil
}

// onCurve reports whether (x, y) is an affine point of cv, i.e. both
// coordinates are reduced and y² = x³ + ax + b holds mod p.
func onCurve(call *uint512.Call, cv *Curve, x, y *uint512.Uint512) (bool, error) {
	p := &cv.P
	if x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return false, nil
	}
	var lhs, t, rhs uint512.Uint512
	if err := lhs.ModMul(call, y, y, p); err != nil {
		return false, err
	}
	if err := t.ModMul(call, x, x, p); err != nil {
		return false, err
	}
	if err := t.ModMul(call, &t, x, p); err != nil {
		return false, err
	}
	if err := rhs.ModMul(call, &cv.A, x, p); err != nil {
		return false, err
	}
	rhs.RedAdd(&rhs, &t, p)
	rhs.RedAdd(&rhs, &cv.B, p)
	return lhs.Eq(&rhs), nil
}

// hashToInt converts a message digest to an integer, keeping only the
// leftmost bits up to the order's bit length, as required by the signature
// equation. The result may still exceed the order; the caller reduces it.
func hashToInt(hash []byte, cv *Curve) uint512.Uint512 {
	orderBits := cv.N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}
	e, _ := uint512.FromBytes(hash)
	if excess := len(hash)*8 - orderBits; excess > 0 {
		e.Rsh(&e, uint(excess))
	}
	return e
}

// double sets pt = 2*pt.
func (pt *point) double(call *uint512.Call, cv *Curve) error {
	if pt.z.IsZero() {
		return nil
	}
	if pt.y.IsZero() {
		// Order-2 point, doubles to infinity.
		pt.z.Clear()
		return nil
	}
	p := &cv.P
	var y2, s, m, t, z2, z4, x3, y3, z3 uint512.Uint512

	if err := y2.ModMul(call, &pt.y, &pt.y, p); err != nil {
		return err
	}
	// s = 4xy²
	if err := s.ModMul(call, &pt.x, &y2, p); err != nil {
		return err
	}
	s.RedAdd(&s, &s, p)
	s.RedAdd(&s, &s, p)
	// m = 3x² + az⁴
	if err := t.ModMul(call, &pt.x, &pt.x, p); err != nil {
		return err
	}
	m.RedAdd(&t, &t, p)
	m.RedAdd(&m, &t, p)
	if err := z2.ModMul(call, &pt.z, &pt.z, p); err != nil {
		return err
	}
	if err := z4.ModMul(call, &z2, &z2, p); err != nil {
		return err
	}
	if err := t.ModMul(call, &cv.A, &z4, p); err != nil {
		return err
	}
	m.RedAdd(&m, &t, p)
	// x3 = m² - 2s
	if err := x3.ModMul(call, &m, &m, p); err != nil {
		return err
	}
	x3.RedSub(&x3, &s, p)
	x3.RedSub(&x3, &s, p)
	// y3 = m(s - x3) - 8y⁴
	y3.RedSub(&s, &x3, p)
	if err := y3.ModMul(call, &m, &y3, p); err != nil {
		return err
	}
	if err := t.ModMul(call, &y2, &y2, p); err != nil {
		return err
	}
	t.RedAdd(&t, &t, p)
	t.RedAdd(&t, &t, p)
	t.RedAdd(&t, &t, p)
	y3.RedSub(&y3, &t, p)
	// z3 = 2yz
	if err := z3.ModMul(call, &pt.y, &pt.z, p); err != nil {
		return err
	}
	z3.RedAdd(&z3, &z3, p)

	pt.x, pt.y, pt.z = x3, y3, z3
	return nil
}

// addAffine sets pt = pt + (qx, qy) using mixed Jacobian-affine addition.
func (pt *point) addAffine(call *uint512.Call, cv *Curve, qx, qy *uint512.Uint512) error {
	if pt.z.IsZero() {
		pt.x.Set(qx)
		pt.y.Set(qy)
		pt.z.SetUint64(1)
		return nil
	}
	p := &cv.P
	var z1z1, u2, s2, h, r, h2, h3, v, t, x3, y3, z3 uint512.Uint512

	if err := z1z1.ModMul(call, &pt.z, &pt.z, p); err != nil {
		return err
	}
	if err := u2.ModMul(call, qx, &z1z1, p); err != nil {
		return err
	}
	if err := t.ModMul(call, &z1z1, &pt.z, p); err != nil {
		return err
	}
	if err := s2.ModMul(call, qy, &t, p); err != nil {
		return err
	}
	h.RedSub(&u2, &pt.x, p)
	r.RedSub(&s2, &pt.y, p)
	if h.IsZero() {
		if r.IsZero() {
			return pt.double(call, cv)
		}
		// pt and q are inverses of each other.
		pt.z.Clear()
		return nil
	}
	if err := h2.ModMul(call, &h, &h, p); err != nil {
		return err
	}
	if err := h3.ModMul(call, &h2, &h, p); err != nil {
		return err
	}
	if err := v.ModMul(call, &pt.x, &h2, p); err != nil {
		return err
	}
	// x3 = r² - h³ - 2v
	if err := x3.ModMul(call, &r, &r, p); err != nil {
		return err
	}
	x3.RedSub(&x3, &h3, p)
	x3.RedSub(&x3, &v, p)
	x3.RedSub(&x3, &v, p)
	// y3 = r(v - x3) - y1*h³
	y3.RedSub(&v, &x3, p)
	if err := y3.ModMul(call, &r, &y3, p); err != nil {
		return err
	}
	if err := t.ModMul(call, &pt.y, &h3, p); err != nil {
		return err
	}
	y3.RedSub(&y3, &t, p)
	// z3 = z1*h
	if err := z3.ModMul(call, &pt.z, &h, p); err != nil {
		return err
	}

	pt.x, pt.y, pt.z = x3, y3, z3
	return nil
}
