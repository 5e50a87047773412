package uint512

import (
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// Shared gopter glue for the property tests of this package.

func forAll1(f func(Uint512) bool) gopter.Prop {
	return prop.ForAll(f, genUint512())
}

func forAll2(f func(a, b Uint512) bool) gopter.Prop {
	return prop.ForAll(f, genUint512(), genUint512())
}

func forAll2Mod(f func(a, b, m Uint512) bool) gopter.Prop {
	return prop.ForAll(f, genUint512(), genUint512(), genModulus())
}
