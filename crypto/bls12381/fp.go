package bls12381

import (
	"fmt"
	"io"
	"math/big"
)

// fpLimbs is the number of 64-bit limbs backing an Fp value, sized for the
// 381-bit BLS12-381 base field modulus.
const fpLimbs = 6

const fpModulusDec = "4002409555221667393417789825735904156556882819939007885332058136124031650490837864442687629129015664037894272559787"

var fpField = newMontgomeryField(fpModulusDec, fpLimbs)

// pBig is the base field modulus p.
var pBig = mustBig(fpModulusDec)

// FpModulus returns the BLS12-381 base field modulus p.
func FpModulus() *big.Int { return new(big.Int).Set(pBig) }

// Fp is an element of the BLS12-381 base field, stored as six little-endian
// 64-bit limbs holding the Montgomery residue value*R mod p. Unlike Fr, Fp
// has no Red-prefixed plain-form method family.
type Fp [fpLimbs]uint64

func (z *Fp) big() *big.Int {
	return limbsToBig(z[:])
}

func (z *Fp) setBig(v *big.Int) *Fp {
	bigToLimbs(v, z[:])
	return z
}

// NewFp constructs an Fp from a plain big.Int value, reducing modulo p and
// converting to Montgomery form.
func NewFp(v *big.Int) *Fp {
	z := new(Fp)
	return z.setBig(fpField.toMontgomery(fpField.reduce(v)))
}

// NewFpFromUint64 constructs an Fp from a small non-negative plain integer.
func NewFpFromUint64(v uint64) *Fp {
	return NewFp(new(big.Int).SetUint64(v))
}

func (z *Fp) Zero() *Fp {
	*z = Fp{}
	return z
}

func (z *Fp) One() *Fp {
	return z.setBig(fpField.toMontgomery(big.NewInt(1)))
}

func (z *Fp) IsZero() bool {
	return *z == Fp{}
}

func (z *Fp) IsOne() bool {
	return z.big().Cmp(fpField.toMontgomery(big.NewInt(1))) == 0
}

func (z *Fp) Set(x *Fp) *Fp {
	*z = *x
	return z
}

func (z *Fp) Equal(x *Fp) bool {
	return *z == *x
}

func (z *Fp) Rand(reader io.Reader) (*Fp, error) {
	var plain Fp
	if err := randFieldLimbs(plain[:], pBig, reader); err != nil {
		return nil, err
	}
	return z.setBig(fpField.toMontgomery(plain.big())), nil
}

func (z *Fp) Add(x, y *Fp) *Fp {
	return z.setBig(fpField.reduce(new(big.Int).Add(x.big(), y.big())))
}

func (z *Fp) Sub(x, y *Fp) *Fp {
	return z.setBig(fpField.reduce(new(big.Int).Sub(x.big(), y.big())))
}

func (z *Fp) Neg(x *Fp) *Fp {
	if x.IsZero() {
		return z.Zero()
	}
	return z.setBig(new(big.Int).Sub(fpField.modulus, x.big()))
}

func (z *Fp) Double(x *Fp) *Fp {
	return z.Add(x, x)
}

func (z *Fp) Mul(x, y *Fp) *Fp {
	return z.setBig(fpField.redMul(x.big(), y.big()))
}

func (z *Fp) Square(x *Fp) *Fp {
	return z.Mul(x, x)
}

// Exp sets z = x^e for a plain exponent e.
func (z *Fp) Exp(x *Fp, e *big.Int) *Fp {
	if e.Sign() == 0 {
		return z.One()
	}
	result := new(Fp).One()
	base := new(Fp).Set(x)
	exp := new(big.Int).Set(e)
	two := big.NewInt(2)
	for exp.Sign() > 0 {
		if new(big.Int).And(exp, big.NewInt(1)).Sign() != 0 {
			result.Mul(result, base)
		}
		base.Square(base)
		exp.Div(exp, two)
	}
	*z = *result
	return z
}

// Inverse sets z = x^-1, or returns nil if x is zero.
func (z *Fp) Inverse(x *Fp) *Fp {
	if x.IsZero() {
		return nil
	}
	plain := fpField.fromMontgomery(x.big())
	inv := new(big.Int).ModInverse(plain, fpField.modulus)
	return z.setBig(fpField.toMontgomery(inv))
}

// Sqrt sets z to a square root of x and returns z, or returns nil if x is
// not a quadratic residue. p % 4 == 3 for BLS12-381's base field, so the
// Tonelli-Shanks shortcut x^((p+1)/4) applies directly.
func (z *Fp) Sqrt(x *Fp) *Fp {
	if x.IsZero() {
		return z.Zero()
	}
	exp := new(big.Int).Add(fpField.modulus, big.NewInt(1))
	exp.Rsh(exp, 2)
	candidate := new(Fp).Exp(x, exp)
	check := new(Fp).Square(candidate)
	if !check.Equal(x) {
		return nil
	}
	*z = *candidate
	return z
}

// ToBig returns the plain integer value of z.
func (z *Fp) ToBig() *big.Int {
	return fpField.fromMontgomery(z.big())
}

// ToBytes encodes z as 48 big-endian bytes of its plain value.
func (z *Fp) ToBytes() [48]byte {
	var out [48]byte
	copy(out[:], padBytes(z.ToBig().Bytes(), 48))
	return out
}

// FromBytes decodes 48 big-endian bytes into z, rejecting values >= p.
func (z *Fp) FromBytes(b []byte) (*Fp, error) {
	if len(b) != 48 {
		return nil, fmt.Errorf("bls12381: Fp.FromBytes: want 48 bytes, got %d", len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(pBig) >= 0 {
		return nil, ErrNonCanonicalScalar
	}
	return z.setBig(fpField.toMontgomery(v)), nil
}

// Legendre returns 1 if x is a non-zero quadratic residue, -1 if it is a
// quadratic non-residue, and 0 if x is zero.
func (z *Fp) Legendre() int {
	if z.IsZero() {
		return 0
	}
	exp := new(big.Int).Sub(fpField.modulus, big.NewInt(1))
	exp.Rsh(exp, 1)
	r := new(Fp).Exp(z, exp)
	if r.IsOne() {
		return 1
	}
	return -1
}
