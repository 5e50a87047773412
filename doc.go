// Package u512 provides fixed-width 512-bit unsigned integer arithmetic with
// oracle-backed modular reduction.
//
// The module targets metered execution environments whose native word is 256
// bits wide and whose modular exponentiation is a host capability with its own
// cost model. It was built to make ECDSA verification over 384-bit and 512-bit
// prime-field curves affordable in such environments.
//
// The packages are:
//   - uint512: the two-limb value type, its basic arithmetic, the carry-safe
//     multiplication engine, modular operations and the reusable call context
//   - modexp: the modular-exponentiation oracle interface, a big.Int backend
//     and a metered wrapper implementing the host cost model
//   - ecdsa: signature verification for P-384 and brainpoolP512r1 built on
//     the engine
package u512

import (
	"github.com/blang/semver/v4"
)

// Version of the u512 module.
var Version = semver.MustParse("1.0.0")
