package bls12381

// Fp6 is an element of the cubic extension Fp2[v]/(v^3-(i+1)), represented
// as c0 + c1*v + c2*v^2.
type Fp6 struct {
	c0, c1, c2 Fp2
}

func (z *Fp6) Zero() *Fp6 {
	z.c0.Zero()
	z.c1.Zero()
	z.c2.Zero()
	return z
}

func (z *Fp6) One() *Fp6 {
	z.c0.One()
	z.c1.Zero()
	z.c2.Zero()
	return z
}

func (z *Fp6) IsZero() bool {
	return z.c0.IsZero() && z.c1.IsZero() && z.c2.IsZero()
}

func (z *Fp6) Set(x *Fp6) *Fp6 {
	*z = *x
	return z
}

func (z *Fp6) Equal(x *Fp6) bool {
	return z.c0.Equal(&x.c0) && z.c1.Equal(&x.c1) && z.c2.Equal(&x.c2)
}

func (z *Fp6) Add(x, y *Fp6) *Fp6 {
	z.c0.Add(&x.c0, &y.c0)
	z.c1.Add(&x.c1, &y.c1)
	z.c2.Add(&x.c2, &y.c2)
	return z
}

func (z *Fp6) Sub(x, y *Fp6) *Fp6 {
	z.c0.Sub(&x.c0, &y.c0)
	z.c1.Sub(&x.c1, &y.c1)
	z.c2.Sub(&x.c2, &y.c2)
	return z
}

func (z *Fp6) Neg(x *Fp6) *Fp6 {
	z.c0.Neg(&x.c0)
	z.c1.Neg(&x.c1)
	z.c2.Neg(&x.c2)
	return z
}

// Mul implements the standard degree-3 tower multiplication for Fp6 over
// Fp2 with non-residue (i+1), via the schoolbook product reduced modulo
// v^3 = i+1.
func (z *Fp6) Mul(x, y *Fp6) *Fp6 {
	var t0, t1, t2 Fp2
	t0.Mul(&x.c0, &y.c0)
	t1.Mul(&x.c1, &y.c1)
	t2.Mul(&x.c2, &y.c2)

	var c0, c1, c2 Fp2

	var a1a2, b1b2, sum Fp2
	a1a2.Add(&x.c1, &x.c2)
	b1b2.Add(&y.c1, &y.c2)
	sum.Mul(&a1a2, &b1b2)
	sum.Sub(&sum, &t1)
	sum.Sub(&sum, &t2)
	var nr Fp2
	nr.MulByNonResidue(&sum)
	c0.Add(&t0, &nr)

	var a0a1, b0b1 Fp2
	a0a1.Add(&x.c0, &x.c1)
	b0b1.Add(&y.c0, &y.c1)
	sum.Mul(&a0a1, &b0b1)
	sum.Sub(&sum, &t0)
	sum.Sub(&sum, &t1)
	nr.MulByNonResidue(&t2)
	c1.Add(&sum, &nr)

	var a0a2, b0b2 Fp2
	a0a2.Add(&x.c0, &x.c2)
	b0b2.Add(&y.c0, &y.c2)
	sum.Mul(&a0a2, &b0b2)
	sum.Sub(&sum, &t0)
	sum.Sub(&sum, &t2)
	c2.Add(&sum, &t1)

	z.c0.Set(&c0)
	z.c1.Set(&c1)
	z.c2.Set(&c2)
	return z
}

func (z *Fp6) Square(x *Fp6) *Fp6 {
	return z.Mul(x, x)
}

// MulByNonResidue multiplies x by v, used when lifting Fp6 into Fp12.
func (z *Fp6) MulByNonResidue(x *Fp6) *Fp6 {
	c0, c1, c2 := x.c0, x.c1, x.c2
	var newC0 Fp2
	newC0.MulByNonResidue(&c2)
	z.c2.Set(&c1)
	z.c1.Set(&c0)
	z.c0.Set(&newC0)
	return z
}

// Inverse sets z = x^-1, or returns nil if x is zero, via the standard
// Fp6-over-Fp2 inversion formula.
func (z *Fp6) Inverse(x *Fp6) *Fp6 {
	if x.IsZero() {
		return nil
	}
	var c0sq, c1c2, a Fp2
	c0sq.Square(&x.c0)
	c1c2.Mul(&x.c1, &x.c2)
	c1c2.MulByNonResidue(&c1c2)
	a.Sub(&c0sq, &c1c2)

	var c1sq, c0c2, b Fp2
	c1sq.Square(&x.c1)
	c0c2.Mul(&x.c0, &x.c2)
	b.Sub(&c1sq, &c0c2)

	var c2sq, c0c1, c Fp2
	c2sq.Square(&x.c2)
	c2sq.MulByNonResidue(&c2sq)
	c0c1.Mul(&x.c0, &x.c1)
	c.Sub(&c2sq, &c0c1)

	var t0, t1, t2, det Fp2
	t0.Mul(&x.c0, &a)
	t1.Mul(&x.c2, &c)
	t1.MulByNonResidue(&t1)
	t2.Mul(&x.c1, &b)
	t2.MulByNonResidue(&t2)
	det.Add(&t0, &t1)
	det.Add(&det, &t2)

	detInv := new(Fp2).Inverse(&det)
	if detInv == nil {
		return nil
	}
	z.c0.Mul(&a, detInv)
	z.c1.Mul(&c, detInv)
	z.c2.Mul(&b, detInv)
	return z
}
