package ecdsa

import "github.com/dovgopoly/u512-md/uint512"

// Curve holds the domain parameters of a short-Weierstrass prime-field
// curve y² = x³ + ax + b over GF(p), all widened to the engine width.
type Curve struct {
	Name string

	// P is the field prime, N the order of the base point.
	P, N uint512.Uint512

	// A and B are the curve coefficients.
	A, B uint512.Uint512

	// Gx, Gy are the affine coordinates of the base point.
	Gx, Gy uint512.Uint512
}

var p384 = &Curve{
	Name: "P-384",
	P:    uint512.MustFromHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff"),
	N:    uint512.MustFromHex("0xffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973"),
	A:    uint512.MustFromHex("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000fffffffc"),
	B:    uint512.MustFromHex("0xb3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef"),
	Gx:   uint512.MustFromHex("0xaa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7"),
	Gy:   uint512.MustFromHex("0x3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f"),
}

var brainpoolP512r1 = &Curve{
	Name: "brainpoolP512r1",
	P:    uint512.MustFromHex("0xaadd9db8dbe9c48b3fd4e6ae33c9fc07cb308db3b3c9d20ed6639cca703308717d4d9b009bc66842aecda12ae6a380e62881ff2f2d82c68528aa6056583a48f3"),
	N:    uint512.MustFromHex("0xaadd9db8dbe9c48b3fd4e6ae33c9fc07cb308db3b3c9d20ed6639cca70330870553e5c414ca92619418661197fac10471db1d381085ddaddb58796829ca90069"),
	A:    uint512.MustFromHex("0x7830a3318b603b89e2327145ac234cc594cbdd8d3df91610a83441caea9863bc2ded5d5aa8253aa10a2ef1c98b9ac8b57f1117a72bf2c7b9e7c1ac4d77fc94ca"),
	B:    uint512.MustFromHex("0x3df91610a83441caea9863bc2ded5d5aa8253aa10a2ef1c98b9ac8b57f1117a72bf2c7b9e7c1ac4d77fc94cadc083e67984050b75ebae5dd2809bd638016f723"),
	Gx:   uint512.MustFromHex("0x81aee4bdd82ed9645a21322e9c4c6a9385ed9f70b5d916c1b43b62eef4d0098eff3b1f78e2d0d48d50d1687b93b97d5f7c6d5047406a5e688b352209bcb9f822"),
	Gy:   uint512.MustFromHex("0x7dde385d566332ecc0eabfa9cf7822fdf209f70024a57b1aa000c55b881f8111b2dcde494a5f485e5bca4bd88a2763aed1ca2b2fa8f0540678cd1e0f3ad80892"),
}

// P384 returns the NIST P-384 curve parameters.
func P384() *Curve {
	return p384
}

// BrainpoolP512r1 returns the brainpoolP512r1 curve parameters, the 512-bit
// prime-field curve the engine width was chosen for.
func BrainpoolP512r1() *Curve {
	return brainpoolP512r1
}
