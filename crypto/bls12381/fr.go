package bls12381

import (
	"fmt"
	"io"
	"math/big"
)

// frLimbs is the number of 64-bit limbs backing an Fr value, sized for the
// 255-bit BLS12-381 scalar field order.
const frLimbs = 4

// frModulusDec is the order r of the BLS12-381 scalar field (the size of the
// G1/G2 prime-order subgroup, and of Fr used throughout the KZG scheme).
const frModulusDec = "52435875175126190479447740508185965837690552500527637822603658699938581184513"

var frField = newMontgomeryField(frModulusDec, frLimbs)

// qBig is the scalar field modulus in big.Int form, used inside this package
// to reduce exponents and to reject non-canonical encodings. Other packages
// obtain a copy through FrModulus.
var qBig = mustBig(frModulusDec)

// FrModulus returns the BLS12-381 scalar field order r.
func FrModulus() *big.Int { return new(big.Int).Set(qBig) }

// Fr is an element of the BLS12-381 scalar field, stored as four
// little-endian 64-bit limbs holding the Montgomery residue value*R mod r.
// Plain-named methods (Add, Mul, ...) operate on and return Montgomery
// residues; the Red-prefixed family exists for callers that keep values in
// plain (non-Montgomery) form, matching the dual API go-ethereum's
// bls12381 package exposes for its own Fr type.
type Fr [frLimbs]uint64

func (z *Fr) big() *big.Int    { return limbsToBig(z[:]) }
func (z *Fr) setBig(v *big.Int) *Fr {
	bigToLimbs(v, z[:])
	return z
}

// NewFr constructs an Fr from a plain (non-Montgomery) big.Int value,
// reducing it modulo r and converting it into Montgomery form.
func NewFr(v *big.Int) *Fr {
	z := new(Fr)
	return z.setBig(frField.toMontgomery(frField.reduce(v)))
}

// NewFrFromUint64 constructs an Fr from a small non-negative plain integer.
func NewFrFromUint64(v uint64) *Fr {
	return NewFr(new(big.Int).SetUint64(v))
}

// Zero sets z to 0 and returns it.
func (z *Fr) Zero() *Fr {
	*z = Fr{}
	return z
}

// One sets z to the Montgomery residue of 1 and returns it.
func (z *Fr) One() *Fr {
	return z.setBig(frField.toMontgomery(big.NewInt(1)))
}

// RedOne sets z to the plain value 1 (i.e. the Red family's identity,
// represented with no Montgomery factor) and returns it.
func (z *Fr) RedOne() *Fr {
	*z = Fr{1, 0, 0, 0}
	return z
}

// IsZero reports whether z is the additive identity.
func (z *Fr) IsZero() bool {
	return *z == Fr{}
}

// IsOne reports whether z represents the multiplicative identity, assuming
// z holds a Montgomery residue.
func (z *Fr) IsOne() bool {
	return z.big().Cmp(frField.toMontgomery(big.NewInt(1))) == 0
}

// Set sets z to x and returns z.
func (z *Fr) Set(x *Fr) *Fr {
	*z = *x
	return z
}

// Equal reports whether z and x hold the same limb representation.
func (z *Fr) Equal(x *Fr) bool {
	return *z == *x
}

// Rand sets z to a uniformly random element of Fr (Montgomery form) read
// from reader, or crypto/rand.Reader if reader is nil.
func (z *Fr) Rand(reader io.Reader) (*Fr, error) {
	var plain Fr
	if err := randFieldLimbs(plain[:], qBig, reader); err != nil {
		return nil, err
	}
	return z.setBig(frField.toMontgomery(plain.big())), nil
}

// Add sets z = x + y and returns z. Montgomery form is additively
// homomorphic, so this operates directly on the residues.
func (z *Fr) Add(x, y *Fr) *Fr {
	sum := new(big.Int).Add(x.big(), y.big())
	return z.setBig(frField.reduce(sum))
}

// Sub sets z = x - y and returns z.
func (z *Fr) Sub(x, y *Fr) *Fr {
	diff := new(big.Int).Sub(x.big(), y.big())
	return z.setBig(frField.reduce(diff))
}

// Neg sets z = -x and returns z.
func (z *Fr) Neg(x *Fr) *Fr {
	if x.IsZero() {
		return z.Zero()
	}
	return z.setBig(new(big.Int).Sub(frField.modulus, x.big()))
}

// Double sets z = 2*x and returns z.
func (z *Fr) Double(x *Fr) *Fr {
	return z.Add(x, x)
}

// Mul sets z = x*y (Montgomery residues in, residue out) and returns z.
func (z *Fr) Mul(x, y *Fr) *Fr {
	return z.setBig(frField.redMul(x.big(), y.big()))
}

// Square sets z = x*x and returns z.
func (z *Fr) Square(x *Fr) *Fr {
	return z.Mul(x, x)
}

// Exp sets z = x^e, where e is a plain (non-Montgomery) exponent, and
// returns z.
func (z *Fr) Exp(x *Fr, e *big.Int) *Fr {
	if e.Sign() == 0 {
		return z.One()
	}
	result := new(Fr).One()
	base := new(Fr).Set(x)
	exp := new(big.Int).Set(e)
	if exp.Sign() < 0 {
		exp.Mod(exp, new(big.Int).Sub(qBig, big.NewInt(1)))
	}
	two := big.NewInt(2)
	for exp.Sign() > 0 {
		bit := new(big.Int).And(exp, big.NewInt(1))
		if bit.Sign() != 0 {
			result.Mul(result, base)
		}
		base.Square(base)
		exp.Div(exp, two)
	}
	*z = *result
	return z
}

// Inverse sets z = x^-1 and returns z, or returns nil if x is zero.
func (z *Fr) Inverse(x *Fr) *Fr {
	if x.IsZero() {
		return nil
	}
	plain := frField.fromMontgomery(x.big())
	inv := new(big.Int).ModInverse(plain, frField.modulus)
	return z.setBig(frField.toMontgomery(inv))
}

// InverseBatchFr inverts every non-zero element of values in place using
// Montgomery's trick: one accumulated product, a single inversion, then a
// backward sweep distributing it. Zero elements are left untouched; this
// mirrors the KZG commitment-opening code path where divisor terms are
// guaranteed non-zero by construction (z has already been checked distinct
// from every domain point before InverseBatchFr is called).
func InverseBatchFr(values []Fr) {
	n := len(values)
	if n == 0 {
		return
	}
	accum := make([]Fr, n)
	running := new(Fr).One()
	for i := 0; i < n; i++ {
		accum[i] = *running
		if !values[i].IsZero() {
			running.Mul(running, &values[i])
		}
	}
	inv := new(Fr).Inverse(running)
	if inv == nil {
		return
	}
	for i := n - 1; i >= 0; i-- {
		if values[i].IsZero() {
			continue
		}
		orig := values[i]
		values[i].Mul(inv, &accum[i])
		inv.Mul(inv, &orig)
	}
}

// ToBig returns the plain (non-Montgomery) integer value of z.
func (z *Fr) ToBig() *big.Int {
	return frField.fromMontgomery(z.big())
}

// ToBytes encodes z as 32 big-endian bytes of its plain integer value, the
// canonical wire encoding of a field element.
func (z *Fr) ToBytes() [32]byte {
	var out [32]byte
	copy(out[:], padBytes(z.ToBig().Bytes(), 32))
	return out
}

// FromBytes decodes 32 big-endian bytes into z, rejecting any encoding
// whose integer value is not strictly less than the field modulus.
func (z *Fr) FromBytes(b []byte) (*Fr, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("bls12381: Fr.FromBytes: want 32 bytes, got %d", len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(qBig) >= 0 {
		return nil, ErrNonCanonicalScalar
	}
	return z.setBig(frField.toMontgomery(v)), nil
}

// RedToBig returns z's limbs interpreted directly as a plain integer,
// without undoing any Montgomery factor. Used by callers that keep Fr
// values in plain form throughout (the Red family).
func (z *Fr) RedToBig() *big.Int {
	return z.big()
}

// RedFromBytes decodes 32 big-endian bytes directly into plain-form limbs,
// without applying a Montgomery conversion.
func (z *Fr) RedFromBytes(b []byte) (*Fr, error) {
	if len(b) != 32 {
		return nil, fmt.Errorf("bls12381: Fr.RedFromBytes: want 32 bytes, got %d", len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(qBig) >= 0 {
		return nil, ErrNonCanonicalScalar
	}
	return z.setBig(v), nil
}

// RedToBytes encodes z's plain-form limbs as 32 big-endian bytes.
func (z *Fr) RedToBytes() [32]byte {
	var out [32]byte
	copy(out[:], padBytes(z.big().Bytes(), 32))
	return out
}

// RedMul sets z = x*y treating x, y and the result as plain (non-Montgomery)
// values.
func (z *Fr) RedMul(x, y *Fr) *Fr {
	return z.setBig(frField.reduce(new(big.Int).Mul(x.big(), y.big())))
}

// RedSquare sets z = x*x in plain form.
func (z *Fr) RedSquare(x *Fr) *Fr {
	return z.RedMul(x, x)
}

// Bit returns the i-th least-significant bit of z's plain integer value.
func (z *Fr) Bit(i int) uint {
	return uint(z.ToBig().Bit(i))
}

// sliceUint64 returns the plain integer value of z as little-endian 64-bit
// limbs.
func (z *Fr) sliceUint64() [frLimbs]uint64 {
	var plain Fr
	plain.setBig(z.ToBig())
	return plain
}
