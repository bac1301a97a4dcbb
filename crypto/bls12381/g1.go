package bls12381

import (
	"errors"
	"math/big"
)

// g1B is the curve coefficient b in y^2 = x^3 + b over Fp, for G1.
var g1B = NewFpFromUint64(4)

// G1Affine is a point on the BLS12-381 G1 curve in affine coordinates.
// Infinity is represented by IsInfinity == true, with X/Y left as their
// zero values, matching the convention the teacher's curve code uses for
// the identity element.
type G1Affine struct {
	X, Y       Fp
	IsInfinity bool
}

// G1Jacobian is a point on G1 in Jacobian projective coordinates
// (X:Y:Z) -> (X/Z^2, Y/Z^3), the representation used internally for group
// arithmetic so that addition and doubling avoid field inversions.
type G1Jacobian struct {
	X, Y, Z Fp
}

// G1Generator is the standard generator of the BLS12-381 G1 prime-order
// subgroup.
func G1Generator() *G1Affine {
	x := mustBig("3685416753713387016781088315183077757961620795782546409894578378688607592378376318836054947676345821548104185464507")
	y := mustBig("1339506544944476473020471379941921221584933875938349620426543736416511423956333506472724655353366534992391756441569")
	return &G1Affine{X: *NewFp(x), Y: *NewFp(y)}
}

func (p *G1Affine) Infinity() *G1Affine {
	p.X.Zero()
	p.Y.Zero()
	p.IsInfinity = true
	return p
}

func (p *G1Affine) Equal(q *G1Affine) bool {
	if p.IsInfinity || q.IsInfinity {
		return p.IsInfinity == q.IsInfinity
	}
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + b.
func (p *G1Affine) IsOnCurve() bool {
	if p.IsInfinity {
		return true
	}
	var lhs, rhs, x3 Fp
	lhs.Square(&p.Y)
	rhs.Square(&p.X)
	x3.Mul(&rhs, &p.X)
	rhs.Add(&x3, g1B)
	return lhs.Equal(&rhs)
}

// IsInSubgroup reports whether p lies in the prime-order subgroup, checked
// directly by scalar multiplication by the group order r (cheap correctness
// over a fast cofactor-endomorphism check, consistent with this package's
// big.Int-backed approach elsewhere).
func (p *G1Affine) IsInSubgroup() bool {
	if p.IsInfinity {
		return true
	}
	product := new(G1Jacobian).FromAffine(p).ScalarMulBig(qBig)
	return product.ToAffine().IsInfinity
}

func (j *G1Jacobian) FromAffine(p *G1Affine) *G1Jacobian {
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

func (j *G1Jacobian) ToAffine() *G1Affine {
	if j.Z.IsZero() {
		return new(G1Affine).Infinity()
	}
	zInv := new(Fp).Inverse(&j.Z)
	zInv2 := new(Fp).Square(zInv)
	zInv3 := new(Fp).Mul(zInv2, zInv)
	out := new(G1Affine)
	out.X.Mul(&j.X, zInv2)
	out.Y.Mul(&j.Y, zInv3)
	return out
}

// Double sets j = 2*x using the standard Jacobian doubling formulas for
// a=0 short Weierstrass curves.
func (j *G1Jacobian) Double(x *G1Jacobian) *G1Jacobian {
	if x.Z.IsZero() || x.Y.IsZero() {
		j.X.Zero()
		j.Y.One()
		j.Z.Zero()
		return j
	}
	var a, b, c, d, e, f Fp
	a.Square(&x.X)
	b.Square(&x.Y)
	c.Square(&b)

	var xb Fp
	xb.Add(&x.X, &b)
	xb.Square(&xb)
	xb.Sub(&xb, &a)
	xb.Sub(&xb, &c)
	d.Double(&xb)

	var a3 Fp
	a3.Double(&a)
	a3.Add(&a3, &a)
	e.Set(&a3)

	f.Square(&e)

	var newX, twoD, eightC, newY, yz Fp
	twoD.Double(&d)
	newX.Sub(&f, &twoD)

	eightC.Double(&c)
	eightC.Double(&eightC)
	eightC.Double(&eightC)

	var dMinusX Fp
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

// Add sets j = x+y in Jacobian coordinates using the general
// addition formulas, handling the identity and doubling cases.
func (j *G1Jacobian) Add(x, y *G1Jacobian) *G1Jacobian {
	if x.Z.IsZero() {
		*j = *y
		return j
	}
	if y.Z.IsZero() {
		*j = *x
		return j
	}

	var z1z1, z2z2, u1, u2, s1, s2 Fp
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

	var h, i, jj, r, v Fp
	h.Sub(&u2, &u1)
	i.Double(&h)
	i.Square(&i)
	jj.Mul(&h, &i)
	r.Sub(&s2, &s1)
	r.Double(&r)
	v.Mul(&u1, &i)

	var newX, twoV, newY, s1j2, z1z2 Fp
	newX.Square(&r)
	newX.Sub(&newX, &jj)
	twoV.Double(&v)
	newX.Sub(&newX, &twoV)

	var vMinusX Fp
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

func (j *G1Jacobian) Neg(x *G1Jacobian) *G1Jacobian {
	j.X = x.X
	j.Z = x.Z
	j.Y.Neg(&x.Y)
	return j
}

// ScalarMulBig sets j to e*x via a plain big.Int double-and-add. The
// windowed Pippenger bucket method in MultiScalarMul is used on the hot
// commitment/proof paths; this direct routine backs subgroup checks and
// single-point scalar multiplications where clarity matters more than
// speed.
func (j *G1Jacobian) ScalarMulBig(e *big.Int) *G1Jacobian {
	result := new(G1Jacobian)
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

// ScalarMul sets j = e*x for an Fr scalar e.
func (j *G1Jacobian) ScalarMul(x *G1Jacobian, e *Fr) *G1Jacobian {
	*j = *x
	return j.ScalarMulBig(e.ToBig())
}

// MultiScalarMul computes sum(scalars[i] * points[i]) using Pippenger's
// bucket method, the workhorse behind commitment and proof computation
// over the thousands of points in a trusted setup.
func MultiScalarMul(points []G1Affine, scalars []Fr) (*G1Affine, error) {
	if len(points) != len(scalars) {
		return nil, errors.New("bls12381: MultiScalarMul: mismatched lengths")
	}
	if len(points) == 0 {
		return new(G1Affine).Infinity(), nil
	}

	const windowBits = 8
	numWindows := (255 + windowBits - 1) / windowBits
	numBuckets := 1 << windowBits

	acc := new(G1Jacobian)
	acc.X.Zero()
	acc.Y.One()
	acc.Z.Zero()

	for w := numWindows - 1; w >= 0; w-- {
		for b := 0; b < windowBits; b++ {
			acc.Double(acc)
		}
		buckets := make([]*G1Jacobian, numBuckets)
		for i, pt := range points {
			digit := windowDigit(scalars[i].ToBig(), w, windowBits)
			if digit == 0 {
				continue
			}
			if buckets[digit] == nil {
				buckets[digit] = new(G1Jacobian).FromAffine(&pt)
			} else {
				buckets[digit].Add(buckets[digit], new(G1Jacobian).FromAffine(&pt))
			}
		}
		var runningSum, windowSum G1Jacobian
		runningSum.X.Zero()
		runningSum.Y.One()
		runningSum.Z.Zero()
		windowSum.X.Zero()
		windowSum.Y.One()
		windowSum.Z.Zero()
		for b := numBuckets - 1; b >= 1; b-- {
			if buckets[b] != nil {
				runningSum.Add(&runningSum, buckets[b])
			}
			windowSum.Add(&windowSum, &runningSum)
		}
		acc.Add(acc, &windowSum)
	}
	return acc.ToAffine(), nil
}

func windowDigit(e *big.Int, window, bits int) int {
	shifted := new(big.Int).Rsh(e, uint(window*bits))
	mask := (1 << uint(bits)) - 1
	return int(new(big.Int).And(shifted, big.NewInt(int64(mask))).Int64())
}

// CompressG1 encodes p in the 48-byte compressed format: the top bit marks
// compression (always set), the second bit marks infinity, the third bit
// holds the sign of Y, and the remaining 381 bits hold X.
func CompressG1(p *G1Affine) [48]byte {
	var out [48]byte
	if p.IsInfinity {
		out[0] = 0xc0
		return out
	}
	xBytes := p.X.ToBytes()
	copy(out[:], xBytes[:])
	out[0] |= 0x80
	if isLexicographicallyLargest(&p.Y) {
		out[0] |= 0x20
	}
	return out
}

// DecompressG1 decodes a 48-byte compressed G1 point, validating the
// encoding flags, that the recovered point lies on the curve, and that it
// lies in the correct prime-order subgroup.
func DecompressG1(b []byte) (*G1Affine, error) {
	if len(b) != 48 {
		return nil, errors.New("bls12381: DecompressG1: want 48 bytes")
	}
	if b[0]&0x80 == 0 {
		return nil, errors.New("bls12381: DecompressG1: uncompressed encoding not supported")
	}
	if b[0]&0xc0 == 0xc0 {
		return new(G1Affine).Infinity(), nil
	}
	ySign := b[0]&0x20 != 0

	xb := make([]byte, 48)
	copy(xb, b)
	xb[0] &^= 0xe0

	x, err := new(Fp).FromBytes(xb)
	if err != nil {
		return nil, err
	}
	var rhs, x2 Fp
	x2.Square(x)
	rhs.Mul(&x2, x)
	rhs.Add(&rhs, g1B)
	y := new(Fp).Sqrt(&rhs)
	if y == nil {
		return nil, errors.New("bls12381: DecompressG1: point is not on curve")
	}
	if isLexicographicallyLargest(y) != ySign {
		y.Neg(y)
	}
	p := &G1Affine{X: *x, Y: *y}
	if !p.IsOnCurve() {
		return nil, errors.New("bls12381: DecompressG1: point is not on curve")
	}
	if !p.IsInSubgroup() {
		return nil, errors.New("bls12381: DecompressG1: point is not in the correct subgroup")
	}
	return p, nil
}

// isLexicographicallyLargest reports whether x's plain integer value is
// greater than p-1-x, the sign convention the zcash/IETF BLS serialization
// uses to pick a canonical Y.
func isLexicographicallyLargest(x *Fp) bool {
	v := x.ToBig()
	half := new(big.Int).Rsh(pBig, 1)
	return v.Cmp(half) > 0
}
