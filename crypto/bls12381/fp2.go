package bls12381

// Fp2 is an element of the quadratic extension Fp[i]/(i^2+1), represented
// as c0 + c1*i, the tower base for G2 and for Fp6/Fp12 in the pairing.
type Fp2 struct {
	c0, c1 Fp
}

func (z *Fp2) Zero() *Fp2 {
	z.c0.Zero()
	z.c1.Zero()
	return z
}

func (z *Fp2) One() *Fp2 {
	z.c0.One()
	z.c1.Zero()
	return z
}

func (z *Fp2) IsZero() bool {
	return z.c0.IsZero() && z.c1.IsZero()
}

func (z *Fp2) Set(x *Fp2) *Fp2 {
	*z = *x
	return z
}

func (z *Fp2) Equal(x *Fp2) bool {
	return z.c0.Equal(&x.c0) && z.c1.Equal(&x.c1)
}

func (z *Fp2) Add(x, y *Fp2) *Fp2 {
	z.c0.Add(&x.c0, &y.c0)
	z.c1.Add(&x.c1, &y.c1)
	return z
}

func (z *Fp2) Sub(x, y *Fp2) *Fp2 {
	z.c0.Sub(&x.c0, &y.c0)
	z.c1.Sub(&x.c1, &y.c1)
	return z
}

func (z *Fp2) Neg(x *Fp2) *Fp2 {
	z.c0.Neg(&x.c0)
	z.c1.Neg(&x.c1)
	return z
}

func (z *Fp2) Double(x *Fp2) *Fp2 {
	return z.Add(x, x)
}

// Mul sets z = x*y using the Karatsuba-style 3-multiply formula for
// (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z *Fp2) Mul(x, y *Fp2) *Fp2 {
	var ac, bd, adPlusBc Fp
	ac.Mul(&x.c0, &y.c0)
	bd.Mul(&x.c1, &y.c1)

	var sumA, sumB, cross Fp
	sumA.Add(&x.c0, &x.c1)
	sumB.Add(&y.c0, &y.c1)
	cross.Mul(&sumA, &sumB)
	adPlusBc.Sub(&cross, &ac)
	adPlusBc.Sub(&adPlusBc, &bd)

	z.c0.Sub(&ac, &bd)
	z.c1.Set(&adPlusBc)
	return z
}

func (z *Fp2) Square(x *Fp2) *Fp2 {
	return z.Mul(x, x)
}

// MulByNonResidue multiplies x by i+1, the non-residue used to build Fp6 on
// top of Fp2.
func (z *Fp2) MulByNonResidue(x *Fp2) *Fp2 {
	c0, c1 := x.c0, x.c1
	var t Fp
	t.Sub(&c0, &c1)
	z.c1.Add(&c0, &c1)
	z.c0.Set(&t)
	return z
}

func (z *Fp2) Conjugate(x *Fp2) *Fp2 {
	z.c0.Set(&x.c0)
	z.c1.Neg(&x.c1)
	return z
}

// Inverse sets z = x^-1 using (c0+c1 i)^-1 = (c0-c1 i) / (c0^2+c1^2), or
// returns nil if x is zero.
func (z *Fp2) Inverse(x *Fp2) *Fp2 {
	if x.IsZero() {
		return nil
	}
	var c0sq, c1sq, norm Fp
	c0sq.Square(&x.c0)
	c1sq.Square(&x.c1)
	norm.Add(&c0sq, &c1sq)
	normInv := new(Fp).Inverse(&norm)

	z.c0.Mul(&x.c0, normInv)
	var negC1 Fp
	negC1.Neg(&x.c1)
	z.c1.Mul(&negC1, normInv)
	return z
}
