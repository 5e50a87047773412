package ecdsa

import (
	stdecdsa "crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha512"
	"math/big"
	"testing"

	"github.com/dovgopoly/u512-md/uint512"
	"github.com/stretchr/testify/require"
)

func fromBig(t *testing.T, x *big.Int) uint512.Uint512 {
	t.Helper()
	z, err := uint512.FromBytes(x.Bytes())
	require.NoError(t, err)
	return z
}

func TestVerifyP384Interop(t *testing.T) {
	// The standard library signs, the engine verifies.
	priv, err := stdecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	msg := []byte("metered hosts make every byte count")
	hash := sha512.Sum384(msg)

	r, s, err := stdecdsa.Sign(rand.Reader, priv, hash[:])
	require.NoError(t, err)

	rv := fromBig(t, r)
	sv := fromBig(t, s)
	qx := fromBig(t, priv.PublicKey.X)
	qy := fromBig(t, priv.PublicKey.Y)

	ok, err := Verify(P384(), hash[:], &rv, &sv, &qx, &qy)
	require.NoError(t, err)
	require.True(t, ok)

	// A single flipped digest byte must invalidate the signature.
	bad := hash
	bad[0] ^= 0x01
	ok, err = Verify(P384(), bad[:], &rv, &sv, &qx, &qy)
	require.NoError(t, err)
	require.False(t, ok)

	// Swapped components are overwhelmingly likely to be rejected too.
	ok, err = Verify(P384(), hash[:], &sv, &rv, &qx, &qy)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsOutOfRange(t *testing.T) {
	cv := P384()
	hash := sha512.Sum384([]byte("x"))
	one := uint512.FromUint64(1)
	zero := uint512.FromUint64(0)

	ok, err := Verify(cv, hash[:], &zero, &one, &cv.Gx, &cv.Gy)
	require.NoError(t, err)
	require.False(t, ok, "r = 0 is invalid")

	ok, err = Verify(cv, hash[:], &cv.N, &one, &cv.Gx, &cv.Gy)
	require.NoError(t, err)
	require.False(t, ok, "r = n is invalid")

	// A public key off the curve is rejected before any ladder work.
	ok, err = Verify(cv, hash[:], &one, &one, &one, &one)
	require.NoError(t, err)
	require.False(t, ok)
}

// refPoint is an affine point of the big.Int reference implementation used
// to build brainpool test signatures. A nil x marks infinity.
type refPoint struct {
	x, y *big.Int
}

type refCurve struct {
	p, n, a, b *big.Int
	g          refPoint
}

func newRefBrainpool(t *testing.T) *refCurve {
	t.Helper()
	parse := func(s string) *big.Int {
		v, ok := new(big.Int).SetString(s, 16)
		require.True(t, ok)
		return v
	}
	return &refCurve{
		p: parse("aadd9db8dbe9c48b3fd4e6ae33c9fc07cb308db3b3c9d20ed6639cca703308717d4d9b009bc66842aecda12ae6a380e62881ff2f2d82c68528aa6056583a48f3"),
		n: parse("aadd9db8dbe9c48b3fd4e6ae33c9fc07cb308db3b3c9d20ed6639cca70330870553e5c414ca92619418661197fac10471db1d381085ddaddb58796829ca90069"),
		a: parse("7830a3318b603b89e2327145ac234cc594cbdd8d3df91610a83441caea9863bc2ded5d5aa8253aa10a2ef1c98b9ac8b57f1117a72bf2c7b9e7c1ac4d77fc94ca"),
		b: parse("3df91610a83441caea9863bc2ded5d5aa8253aa10a2ef1c98b9ac8b57f1117a72bf2c7b9e7c1ac4d77fc94cadc083e67984050b75ebae5dd2809bd638016f723"),
		g: refPoint{
			x: parse("81aee4bdd82ed9645a21322e9c4c6a9385ed9f70b5d916c1b43b62eef4d0098eff3b1f78e2d0d48d50d1687b93b97d5f7c6d5047406a5e688b352209bcb9f822"),
			y: parse("7dde385d566332ecc0eabfa9cf7822fdf209f70024a57b1aa000c55b881f8111b2dcde494a5f485e5bca4bd88a2763aed1ca2b2fa8f0540678cd1e0f3ad80892"),
		},
	}
}

func (c *refCurve) add(p1, p2 refPoint) refPoint {
	if p1.x == nil {
		return p2
	}
	if p2.x == nil {
		return p1
	}
	var lam *big.Int
	if p1.x.Cmp(p2.x) == 0 {
		if p1.y.Cmp(p2.y) != 0 || p1.y.Sign() == 0 {
			return refPoint{}
		}
		// lam = (3x² + a) / 2y
		num := new(big.Int).Mul(p1.x, p1.x)
		num.Mul(num, big.NewInt(3))
		num.Add(num, c.a)
		den := new(big.Int).Lsh(p1.y, 1)
		lam = num.Mul(num, den.ModInverse(den, c.p))
	} else {
		num := new(big.Int).Sub(p2.y, p1.y)
		den := new(big.Int).Sub(p2.x, p1.x)
		den.Mod(den, c.p)
		lam = num.Mul(num, den.ModInverse(den, c.p))
	}
	lam.Mod(lam, c.p)

	x3 := new(big.Int).Mul(lam, lam)
	x3.Sub(x3, p1.x)
	x3.Sub(x3, p2.x)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p1.x, x3)
	y3.Mul(y3, lam)
	y3.Sub(y3, p1.y)
	y3.Mod(y3, c.p)
	return refPoint{x: x3, y: y3}
}

func (c *refCurve) scalarMult(k *big.Int, p refPoint) refPoint {
	var acc refPoint
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = c.add(acc, acc)
		if k.Bit(i) == 1 {
			acc = c.add(acc, p)
		}
	}
	return acc
}

func TestVerifyBrainpoolP512r1(t *testing.T) {
	ref := newRefBrainpool(t)

	// Fixed scalars below the order; the reference builds the signature,
	// the engine checks it.
	d, _ := new(big.Int).SetString("1c9e57f6a3b28d4e0f1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f701122334455667788990011223344556677889900aabbccddeeff001122334455", 16)
	k, _ := new(big.Int).SetString("0b1d2f3a4c5e60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f9112233445566778899aabbccddeeff00112233445566778899aabbccddeeff01", 16)
	require.True(t, d.Cmp(ref.n) < 0)
	require.True(t, k.Cmp(ref.n) < 0)

	q := ref.scalarMult(d, ref.g)
	require.NotNil(t, q.x)

	hash := sha512.Sum512([]byte("512-bit curves need 512-bit words"))
	e := new(big.Int).SetBytes(hash[:])

	kg := ref.scalarMult(k, ref.g)
	r := new(big.Int).Mod(kg.x, ref.n)
	require.NotZero(t, r.Sign())

	// s = k^-1 (e + r d) mod n
	s := new(big.Int).Mul(r, d)
	s.Add(s, e)
	s.Mul(s, new(big.Int).ModInverse(k, ref.n))
	s.Mod(s, ref.n)
	require.NotZero(t, s.Sign())

	rv := fromBig(t, r)
	sv := fromBig(t, s)
	qx := fromBig(t, q.x)
	qy := fromBig(t, q.y)

	cv := BrainpoolP512r1()
	ok, err := Verify(cv, hash[:], &rv, &sv, &qx, &qy)
	require.NoError(t, err)
	require.True(t, ok)

	// Corrupting s must fail verification.
	bad := new(big.Int).Add(s, big.NewInt(1))
	bad.Mod(bad, ref.n)
	if bad.Sign() == 0 {
		bad.SetInt64(1)
	}
	badS := fromBig(t, bad)
	ok, err = Verify(cv, hash[:], &rv, &badS, &qx, &qy)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashToIntTruncation(t *testing.T) {
	cv := P384()
	// A 64-byte digest against a 384-bit order keeps the leftmost 384 bits.
	digest := make([]byte, 64)
	for i := range digest {
		digest[i] = byte(i + 1)
	}
	e := hashToInt(digest, cv)

	ref := new(big.Int).SetBytes(digest[:48])
	var buf [64]byte
	ref.FillBytes(buf[:])
	want, err := uint512.FromBytes(buf[:])
	require.NoError(t, err)
	require.True(t, e.Eq(&want))
}
