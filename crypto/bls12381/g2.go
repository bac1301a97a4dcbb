package bls12381

import (
	"errors"
	"math/big"
)

// g2B is the curve coefficient b in y^2 = x^3 + b over Fp2, for G2:
// b = 4*(1+i).
var g2B = &Fp2{c0: *NewFpFromUint64(4), c1: *NewFpFromUint64(4)}

// G2Affine is a point on the BLS12-381 G2 curve in affine coordinates.
type G2Affine struct {
	X, Y       Fp2
	IsInfinity bool
}

// G2Jacobian is a point on G2 in Jacobian projective coordinates.
type G2Jacobian struct {
	X, Y, Z Fp2
}

// G2Generator is the standard generator of the BLS12-381 G2 prime-order
// subgroup.
func G2Generator() *G2Affine {
	x0 := mustBig("352701069587466618187139116011060144890029952792775240219908644239793785735715026873347600343865175952761926303160")
	x1 := mustBig("3059144344244213709971259814753781636986470325476647558659373206291635324768958432433509563104347017837885763365758")
	y0 := mustBig("1985150602287291935568054521177171638300868978215655730859378665066344726373823718423869104263333984641494340347905")
	y1 := mustBig("927553665492332455747201965776037880757740193453592970025027978793976877002675564980949289727957565575433344219582")
	return &G2Affine{
		X: Fp2{c0: *NewFp(x0), c1: *NewFp(x1)},
		Y: Fp2{c0: *NewFp(y0), c1: *NewFp(y1)},
	}
}

func (p *G2Affine) Infinity() *G2Affine {
	p.X.Zero()
	p.Y.Zero()
	p.IsInfinity = true
	return p
}

func (p *G2Affine) Equal(q *G2Affine) bool {
	if p.IsInfinity || q.IsInfinity {
		return p.IsInfinity == q.IsInfinity
	}
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

func (p *G2Affine) IsOnCurve() bool {
	if p.IsInfinity {
		return true
	}
	var lhs, rhs, x3 Fp2
	lhs.Square(&p.Y)
	rhs.Square(&p.X)
	x3.Mul(&rhs, &p.X)
	rhs.Add(&x3, g2B)
	return lhs.Equal(&rhs)
}

// IsInSubgroup checks p*r == infinity directly, the same big.Int-backed
// approach G1Affine.IsInSubgroup uses rather than a cofactor endomorphism.
func (p *G2Affine) IsInSubgroup() bool {
	if p.IsInfinity {
		return true
	}
	product := new(G2Jacobian).FromAffine(p).ScalarMulBig(qBig)
	return product.ToAffine().IsInfinity
}

func (j *G2Jacobian) FromAffine(p *G2Affine) *G2Jacobian {
	if p.IsInfinity {
		j.X.Zero()
		j.Y.One()
		j.Z.Zero()
		return j
	}
	j.X = p.X
	j.Y = p.Y
	j.Z.One()
	return j
}

func (j *G2Jacobian) ToAffine() *G2Affine {
	if j.Z.IsZero() {
		return new(G2Affine).Infinity()
	}
	zInv := new(Fp2).Inverse(&j.Z)
	zInv2 := new(Fp2).Square(zInv)
	zInv3 := new(Fp2).Mul(zInv2, zInv)
	out := new(G2Affine)
	out.X.Mul(&j.X, zInv2)
	out.Y.Mul(&j.Y, zInv3)
	return out
}

func (j *G2Jacobian) Double(x *G2Jacobian) *G2Jacobian {
	if x.Z.IsZero() || x.Y.IsZero() {
		j.X.Zero()
		j.Y.One()
		j.Z.Zero()
		return j
	}
	var a, b, c, d, e, f Fp2
	a.Square(&x.X)
	b.Square(&x.Y)
	c.Square(&b)

	var xb Fp2
	xb.Add(&x.X, &b)
	xb.Square(&xb)
	xb.Sub(&xb, &a)
	xb.Sub(&xb, &c)
	d.Double(&xb)

	var a3 Fp2
	a3.Double(&a)
	a3.Add(&a3, &a)
	e.Set(&a3)
	f.Square(&e)

	var newX, twoD, eightC, newY, yz Fp2
	twoD.Double(&d)
	newX.Sub(&f, &twoD)

	eightC.Double(&c)
	eightC.Double(&eightC)
	eightC.Double(&eightC)

	var dMinusX Fp2
	dMinusX.Sub(&d, &newX)
	newY.Mul(&e, &dMinusX)
	newY.Sub(&newY, &eightC)

	yz.Mul(&x.Y, &x.Z)
	yz.Double(&yz)

	j.X.Set(&newX)
	j.Y.Set(&newY)
	j.Z.Set(&yz)
	return j
}

func (j *G2Jacobian) Add(x, y *G2Jacobian) *G2Jacobian {
	if x.Z.IsZero() {
		*j = *y
		return j
	}
	if y.Z.IsZero() {
		*j = *x
		return j
	}

	var z1z1, z2z2, u1, u2, s1, s2 Fp2
	z1z1.Square(&x.Z)
	z2z2.Square(&y.Z)
	u1.Mul(&x.X, &z2z2)
	u2.Mul(&y.X, &z1z1)
	s1.Mul(&x.Y, &y.Z)
	s1.Mul(&s1, &z2z2)
	s2.Mul(&y.Y, &x.Z)
	s2.Mul(&s2, &z1z1)

	if u1.Equal(&u2) {
		if !s1.Equal(&s2) {
			j.X.Zero()
			j.Y.One()
			j.Z.Zero()
			return j
		}
		return j.Double(x)
	}

	var h, i, jj, r, v Fp2
	h.Sub(&u2, &u1)
	i.Double(&h)
	i.Square(&i)
	jj.Mul(&h, &i)
	r.Sub(&s2, &s1)
	r.Double(&r)
	v.Mul(&u1, &i)

	var newX, twoV, newY, s1j2, z1z2 Fp2
	newX.Square(&r)
	newX.Sub(&newX, &jj)
	twoV.Double(&v)
	newX.Sub(&newX, &twoV)

	var vMinusX Fp2
	vMinusX.Sub(&v, &newX)
	newY.Mul(&r, &vMinusX)
	s1j2.Mul(&s1, &jj)
	s1j2.Double(&s1j2)
	newY.Sub(&newY, &s1j2)

	z1z2.Add(&x.Z, &y.Z)
	z1z2.Square(&z1z2)
	z1z2.Sub(&z1z2, &z1z1)
	z1z2.Sub(&z1z2, &z2z2)
	z1z2.Mul(&z1z2, &h)

	j.X.Set(&newX)
	j.Y.Set(&newY)
	j.Z.Set(&z1z2)
	return j
}

func (j *G2Jacobian) Neg(x *G2Jacobian) *G2Jacobian {
	j.X = x.X
	j.Z = x.Z
	j.Y.Neg(&x.Y)
	return j
}

func (j *G2Jacobian) ScalarMulBig(e *big.Int) *G2Jacobian {
	result := new(G2Jacobian)
	result.X.Zero()
	result.Y.One()
	result.Z.Zero()
	if e.Sign() == 0 {
		*j = *result
		return j
	}
	base := *j
	for i := e.BitLen() - 1; i >= 0; i-- {
		result.Double(result)
		if e.Bit(i) == 1 {
			result.Add(result, &base)
		}
	}
	*j = *result
	return j
}

func (j *G2Jacobian) ScalarMul(x *G2Jacobian, e *Fr) *G2Jacobian {
	*j = *x
	return j.ScalarMulBig(e.ToBig())
}

// CompressG2 encodes p in the 96-byte compressed format: flag bits in the
// top byte of the c1 (imaginary) half of X, followed by c1 then c0.
func CompressG2(p *G2Affine) [96]byte {
	var out [96]byte
	if p.IsInfinity {
		out[0] = 0xc0
		return out
	}
	x1Bytes := p.X.c1.ToBytes()
	x0Bytes := p.X.c0.ToBytes()
	copy(out[:48], x1Bytes[:])
	copy(out[48:], x0Bytes[:])
	out[0] |= 0x80
	if isLexicographicallyLargestFp2(&p.Y) {
		out[0] |= 0x20
	}
	return out
}

// DecompressG2 decodes a 96-byte compressed G2 point, validating
// on-curve-ness and subgroup membership.
func DecompressG2(b []byte) (*G2Affine, error) {
	if len(b) != 96 {
		return nil, errors.New("bls12381: DecompressG2: want 96 bytes")
	}
	if b[0]&0x80 == 0 {
		return nil, errors.New("bls12381: DecompressG2: uncompressed encoding not supported")
	}
	if b[0]&0xc0 == 0xc0 {
		return new(G2Affine).Infinity(), nil
	}
	ySign := b[0]&0x20 != 0

	x1b := make([]byte, 48)
	copy(x1b, b[:48])
	x1b[0] &^= 0xe0
	x0b := b[48:]

	x1, err := new(Fp).FromBytes(x1b)
	if err != nil {
		return nil, err
	}
	x0, err := new(Fp).FromBytes(x0b)
	if err != nil {
		return nil, err
	}
	x := &Fp2{c0: *x0, c1: *x1}

	var rhs, x2 Fp2
	x2.Square(x)
	rhs.Mul(&x2, x)
	rhs.Add(&rhs, g2B)
	y := sqrtFp2(&rhs)
	if y == nil {
		return nil, errors.New("bls12381: DecompressG2: point is not on curve")
	}
	if isLexicographicallyLargestFp2(y) != ySign {
		y.Neg(y)
	}
	p := &G2Affine{X: *x, Y: *y}
	if !p.IsOnCurve() {
		return nil, errors.New("bls12381: DecompressG2: point is not on curve")
	}
	if !p.IsInSubgroup() {
		return nil, errors.New("bls12381: DecompressG2: point is not in the correct subgroup")
	}
	return p, nil
}

func isLexicographicallyLargestFp2(x *Fp2) bool {
	if x.c1.IsZero() {
		return isLexicographicallyLargest(&x.c0)
	}
	return isLexicographicallyLargest(&x.c1)
}

// sqrtFp2 computes a square root in Fp2 via the Fp-sqrt-based formula for
// p = 3 mod 4 towers: it takes c0 = sqrt((a0 + sqrt(N))/2), or failing that
// sqrt((a0 - sqrt(N))/2), where N is the norm, and returns nil when neither
// yields a root.
func sqrtFp2(a *Fp2) *Fp2 {
	if a.IsZero() {
		return new(Fp2).Zero()
	}
	var norm, a0sq, a1sq Fp
	a0sq.Square(&a.c0)
	a1sq.Square(&a.c1)
	norm.Add(&a0sq, &a1sq)
	normSqrt := new(Fp).Sqrt(&norm)
	if normSqrt == nil {
		return nil
	}

	var t0 Fp
	t0.Add(&a.c0, normSqrt)
	half := new(Fp).Inverse(NewFpFromUint64(2))
	t0.Mul(&t0, half)
	c0 := new(Fp).Sqrt(&t0)
	if c0 == nil {
		t0.Sub(&a.c0, normSqrt)
		t0.Mul(&t0, half)
		c0 = new(Fp).Sqrt(&t0)
		if c0 == nil {
			return nil
		}
	}
	c0Inv := new(Fp).Inverse(c0)
	if c0Inv == nil {
		return nil
	}
	var c1 Fp
	c1.Mul(&a.c1, half)
	c1.Mul(&c1, c0Inv)

	candidate := &Fp2{c0: *c0, c1: c1}
	check := new(Fp2).Square(candidate)
	if !check.Equal(a) {
		return nil
	}
	return candidate
}
