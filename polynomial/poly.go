package polynomial

import "github.com/jtraglia/peerdas-kzg/crypto/bls12381"

// EvaluateAtPoint evaluates the polynomial given by coeffs (lowest degree
// first) at z using Horner's method.
func EvaluateAtPoint(coeffs []bls12381.Fr, z *bls12381.Fr) *bls12381.Fr {
	result := new(bls12381.Fr).Zero()
	for i := len(coeffs) - 1; i >= 0; i-- {
		result.Mul(result, z)
		result.Add(result, &coeffs[i])
	}
	return result
}

// LinearCombination returns sum(scalars[i] * vectors[i]), element-wise over
// equal-length vectors of field elements, used to aggregate several
// polynomials (in coefficient or evaluation form) under random
// Fiat-Shamir-derived weights.
func LinearCombination(vectors [][]bls12381.Fr, scalars []bls12381.Fr) []bls12381.Fr {
	if len(vectors) == 0 {
		return nil
	}
	out := make([]bls12381.Fr, len(vectors[0]))
	for i := range out {
		out[i].Zero()
	}
	for v, vec := range vectors {
		for i := range vec {
			var term bls12381.Fr
			term.Mul(&vec[i], &scalars[v])
			out[i].Add(&out[i], &term)
		}
	}
	return out
}

// Powers returns [1, x, x^2, ..., x^(n-1)].
func Powers(x *bls12381.Fr, n int) []bls12381.Fr {
	out := make([]bls12381.Fr, n)
	if n == 0 {
		return out
	}
	out[0] = *new(bls12381.Fr).One()
	for i := 1; i < n; i++ {
		out[i] = *new(bls12381.Fr).Mul(&out[i-1], x)
	}
	return out
}
