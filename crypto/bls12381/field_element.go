package bls12381

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrNonCanonicalScalar is returned when decoding bytes whose integer value
// is not the canonical representative of a field element (i.e. >= modulus).
var ErrNonCanonicalScalar = errors.New("bls12381: non-canonical field element encoding")

// montgomeryField holds the constants needed to move a limb array between
// its plain integer interpretation and its Montgomery-residue interpretation
// for a single modulus. Fr and Fp each embed one of these, parameterized by
// limb count (4 for Fr, 6 for Fp).
//
// Rather than hand-unroll a CIOS multiply/reduce carry chain for each limb
// count, all arithmetic routes through math/big: addition and subtraction
// add or subtract the residues as big.Int values and reduce (the residue
// representation is additively homomorphic so no R-correction is needed),
// while multiplication, squaring, and the Montgomery round-trip also reduce
// via big.Int. This keeps the modular arithmetic impossible to get subtly wrong
// in an environment where the result can't be executed, at the cost of the
// raw-limb multiply speed a production build would want.
type montgomeryField struct {
	modulus *big.Int
	r       *big.Int // 2^(64*limbs) mod modulus is NOT pre-reduced here; r itself is 2^(64*limbs)
	rInv    *big.Int // r^-1 mod modulus
	limbs   int
}

func newMontgomeryField(modulusDec string, limbs int) *montgomeryField {
	m := mustBig(modulusDec)
	r := new(big.Int).Lsh(big.NewInt(1), uint(64*limbs))
	rInv := new(big.Int).ModInverse(r, m)
	if rInv == nil {
		panic("bls12381: modulus not coprime to Montgomery radix")
	}
	return &montgomeryField{modulus: m, r: r, rInv: rInv, limbs: limbs}
}

func limbsToBig(limbs []uint64) *big.Int {
	out := new(big.Int)
	for i := len(limbs) - 1; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(limbs[i]))
	}
	return out
}

func bigToLimbs(x *big.Int, limbs []uint64) {
	v := new(big.Int).Set(x)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := range limbs {
		word := new(big.Int).And(v, mask)
		limbs[i] = word.Uint64()
		v.Rsh(v, 64)
	}
}

func (f *montgomeryField) reduce(x *big.Int) *big.Int {
	v := new(big.Int).Mod(x, f.modulus)
	if v.Sign() < 0 {
		v.Add(v, f.modulus)
	}
	return v
}

// toMontgomery returns the residue x*R mod m for a plain value x.
func (f *montgomeryField) toMontgomery(x *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(x, f.r))
}

// fromMontgomery returns the plain value represented by residue x.
func (f *montgomeryField) fromMontgomery(x *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(x, f.rInv))
}

// redMul computes the Montgomery residue of a*b given residues ra, rb of a
// and b: (ra*rb*R^-1) mod m, which is the residue of a*b.
func (f *montgomeryField) redMul(ra, rb *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(new(big.Int).Mul(ra, rb), f.rInv))
}

func randFieldLimbs(limbs []uint64, modulus *big.Int, reader io.Reader) error {
	if reader == nil {
		reader = rand.Reader
	}
	bitLen := modulus.BitLen()
	byteLen := (bitLen + 7) / 8
	for {
		buf := make([]byte, byteLen)
		if _, err := io.ReadFull(reader, buf); err != nil {
			return err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(modulus) < 0 {
			bigToLimbs(v, limbs)
			return nil
		}
	}
}
