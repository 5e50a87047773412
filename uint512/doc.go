/*
Package uint512 implements fixed-width 512-bit unsigned integer arithmetic
over two 256-bit limbs, with modular operations that delegate reduction to an
external modular-exponentiation oracle.

# Representation

A value is exactly two [github.com/holiman/uint256.Int] words, the
most-significant limb first in print order, with no length field and no heap
indirection. This mirrors the native word of the metered host the engine was
designed for, where every byte of working memory has a direct cost.

# Multiplication

The full 1024-bit product of two values decomposes into four 256×256 partial
products. Each partial product is computed with a carry-safe primitive that
obtains the low half by truncating multiplication and reconstructs the high
half from a multiply modulo 2^256−1:

	hi = (mulmod(a, b, 2^256−1) − lo − borrow) mod 2^256

so no intermediate ever escapes native word arithmetic. The cost of a full
multiplication stays within a small constant factor of an addition.

# Modular operations and the oracle

Mod, ModAdd, ModSub, ModMul, ModExp, ModInv and ModDiv route every
reduction through the oracle installed in package
[github.com/dovgopoly/u512-md/modexp], always encoding operands at their
minimal byte length: the oracle accepts padded encodings but charges for the
declared width, and an over-declared exponent costs roughly an order of
magnitude more. RedAdd and RedSub are the reduced-domain shortcuts for
operands already known to be below the modulus; they correct with at most one
conditional subtraction and never call the oracle.

Each modular operation is a method writing its result into the receiver,
which may alias any operand. Package-level functions of the same name return
a fresh value instead.

# Call contexts

A [Call] is a fixed-size scratch region holding the oracle framing buffer
and the temporaries of the compound operations. Threading one *Call through a
chain of modular calls (an ECDSA verification makes thousands) reuses the
same memory throughout; passing nil makes the operation allocate a private
single-use context. A Call carries no value semantics — its contents after
an operation are garbage — and must not be shared between two in-flight
operation chains. The engine does not police this beyond an optional check
in debug builds.
*/
package uint512
