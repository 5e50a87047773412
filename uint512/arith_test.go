package uint512

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("Add matches big.Int or overflows exactly when it should", prop512x2(func(a, b Uint512) bool {
		ref := new(big.Int).Add(toBig(&a), toBig(&b))
		z, err := Add(&a, &b)
		if ref.Cmp(twoTo512) >= 0 {
			return err == ErrOverflow
		}
		return err == nil && toBig(&z).Cmp(ref) == 0
	}))
	properties.Property("Sub matches big.Int or underflows exactly when it should", prop512x2(func(a, b Uint512) bool {
		ref := new(big.Int).Sub(toBig(&a), toBig(&b))
		z, err := Sub(&a, &b)
		if ref.Sign() < 0 {
			return err == ErrUnderflow
		}
		return err == nil && toBig(&z).Cmp(ref) == 0
	}))
	properties.Property("a + 0 == a", prop512(func(a Uint512) bool {
		zero := FromUint64(0)
		z, err := Add(&a, &zero)
		return err == nil && z.Eq(&a)
	}))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAddOverflow(t *testing.T) {
	var max Uint512
	max.Not(&max) // 2^512 - 1
	one := FromUint64(1)

	var z Uint512
	require.ErrorIs(t, z.Add(&max, &one), ErrOverflow)
}

func TestSubUnderflow(t *testing.T) {
	one := FromUint64(1)
	twoV := FromUint64(2)

	var z Uint512
	require.ErrorIs(t, z.Sub(&one, &twoV), ErrUnderflow)
}

func TestAddCarryAcrossLimb(t *testing.T) {
	// 2^256 - 1 + 1 carries into the upper limb.
	one := FromUint64(1)
	var a Uint512
	a.Lsh(&one, 256)
	require.NoError(t, a.Sub(&a, &one))

	var z Uint512
	require.NoError(t, z.Add(&a, &one))

	var want Uint512
	want.Lsh(new(Uint512).SetUint64(1), 256)
	require.True(t, z.Eq(&want))
}

func TestBitwise(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)
	properties.Property("And/Or/Xor/Not match big.Int", prop512x2(func(a, b Uint512) bool {
		ab, bb := toBig(&a), toBig(&b)
		var and, or, xor, not Uint512
		and.And(&a, &b)
		or.Or(&a, &b)
		xor.Xor(&a, &b)
		not.Not(&a)

		mask := new(big.Int).Sub(twoTo512, big.NewInt(1))
		refNot := new(big.Int).Xor(ab, mask)
		return toBig(&and).Cmp(new(big.Int).And(ab, bb)) == 0 &&
			toBig(&or).Cmp(new(big.Int).Or(ab, bb)) == 0 &&
			toBig(&xor).Cmp(new(big.Int).Xor(ab, bb)) == 0 &&
			toBig(&not).Cmp(refNot) == 0
	}))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestShifts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("Lsh/Rsh match big.Int for any shift", prop.ForAll(
		func(a Uint512, n uint16) bool {
			shift := uint(n) % 600
			var l, r Uint512
			l.Lsh(&a, shift)
			r.Rsh(&a, shift)

			refL := new(big.Int).Lsh(toBig(&a), shift)
			refL.Mod(refL, twoTo512)
			refR := new(big.Int).Rsh(toBig(&a), shift)
			return toBig(&l).Cmp(refL) == 0 && toBig(&r).Cmp(refR) == 0
		},
		genUint512(), gen.UInt16(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestShiftEdges(t *testing.T) {
	a := MustFromHex("0xdeadbeefcafebabe00112233445566778899aabbccddeeff")

	var z Uint512
	z.Lsh(&a, 0)
	require.True(t, z.Eq(&a), "shift by 0 is the identity")
	z.Rsh(&a, 0)
	require.True(t, z.Eq(&a))

	z.Lsh(&a, 512)
	require.True(t, z.IsZero(), "shift by the full width yields zero")
	z.Rsh(&a, 700)
	require.True(t, z.IsZero())
}
