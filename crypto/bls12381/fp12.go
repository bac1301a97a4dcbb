package bls12381

// Fp12 is an element of the degree-12 extension Fp6[w]/(w^2-v), the target
// group of the optimal ate pairing over BLS12-381.
type Fp12 struct {
	c0, c1 Fp6
}

func (z *Fp12) Zero() *Fp12 {
	z.c0.Zero()
	z.c1.Zero()
	return z
}

func (z *Fp12) One() *Fp12 {
	z.c0.One()
	z.c1.Zero()
	return z
}

func (z *Fp12) IsOne() bool {
	one := new(Fp12).One()
	return z.Equal(one)
}

func (z *Fp12) Set(x *Fp12) *Fp12 {
	*z = *x
	return z
}

func (z *Fp12) Equal(x *Fp12) bool {
	return z.c0.Equal(&x.c0) && z.c1.Equal(&x.c1)
}

func (z *Fp12) Add(x, y *Fp12) *Fp12 {
	z.c0.Add(&x.c0, &y.c0)
	z.c1.Add(&x.c1, &y.c1)
	return z
}

func (z *Fp12) Sub(x, y *Fp12) *Fp12 {
	z.c0.Sub(&x.c0, &y.c0)
	z.c1.Sub(&x.c1, &y.c1)
	return z
}

// Mul implements Karatsuba multiplication over the Fp6-over-w tower:
// (a+bw)(c+dw) = (ac + bd*v) + (ad+bc)w, where v is Fp6's non-residue.
func (z *Fp12) Mul(x, y *Fp12) *Fp12 {
	var ac, bd, sum1, sum2, adPlusBc, bdv Fp6
	ac.Mul(&x.c0, &y.c0)
	bd.Mul(&x.c1, &y.c1)
	sum1.Add(&x.c0, &x.c1)
	sum2.Add(&y.c0, &y.c1)
	adPlusBc.Mul(&sum1, &sum2)
	adPlusBc.Sub(&adPlusBc, &ac)
	adPlusBc.Sub(&adPlusBc, &bd)

	bdv.MulByNonResidue(&bd)
	z.c0.Add(&ac, &bdv)
	z.c1.Set(&adPlusBc)
	return z
}

func (z *Fp12) Square(x *Fp12) *Fp12 {
	return z.Mul(x, x)
}

// Conjugate sets z to the Frobenius conjugate of x over the final
// quadratic extension (negating the w-component), used in the cheap
// "unitary inverse" shortcut for elements already known to lie in the
// cyclotomic subgroup reached after the easy part of final exponentiation.
func (z *Fp12) Conjugate(x *Fp12) *Fp12 {
	z.c0.Set(&x.c0)
	z.c1.Neg(&x.c1)
	return z
}

// Inverse sets z = x^-1 using (a+bw)^-1 = (a-bw) / (a^2 - b^2*v).
func (z *Fp12) Inverse(x *Fp12) *Fp12 {
	var a2, b2, b2v, den Fp6
	a2.Square(&x.c0)
	b2.Square(&x.c1)
	b2v.MulByNonResidue(&b2)
	den.Sub(&a2, &b2v)
	denInv := new(Fp6).Inverse(&den)
	if denInv == nil {
		return nil
	}
	z.c0.Mul(&x.c0, denInv)
	var negB Fp6
	negB.Neg(&x.c1)
	z.c1.Mul(&negB, denInv)
	return z
}

// Exp sets z = x^e for a non-negative plain exponent e given as a
// big-endian bit sequence via square-and-multiply; used by the direct
// final-exponentiation implementation in pairing.go.
func (z *Fp12) Exp(x *Fp12, e []byte) *Fp12 {
	result := new(Fp12).One()
	base := new(Fp12).Set(x)
	for i := len(e) - 1; i >= 0; i-- {
		b := e[i]
		for bit := 0; bit < 8; bit++ {
			if (b>>uint(bit))&1 == 1 {
				result.Mul(result, base)
			}
			base.Square(base)
		}
	}
	*z = *result
	return z
}
