package polynomial

import (
	"fmt"
	"math/big"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
)

// EvaluateInEvaluationForm evaluates the polynomial that interpolates
// (d.Roots[i], values[i]) at z, without ever materializing its
// coefficients, via the barycentric formula
//
//	p(z) = (z^n - 1)/n * sum_i values[i] * root[i] / (z - root[i])
//
// the same formula go-ethereum's crypto/kzg/util.go uses to evaluate a
// blob polynomial at a challenge point during proof computation and
// verification. If z happens to equal one of the domain points exactly,
// the corresponding value is returned directly instead of dividing by zero.
func EvaluateInEvaluationForm(d *Domain, values []bls12381.Fr, z *bls12381.Fr) (*bls12381.Fr, error) {
	if uint64(len(values)) != d.Size {
		return nil, fmt.Errorf("polynomial: EvaluateInEvaluationForm: expected %d values, got %d", d.Size, len(values))
	}

	for i := range d.Roots {
		if d.Roots[i].Equal(z) {
			out := values[i]
			return &out, nil
		}
	}

	denominators := make([]bls12381.Fr, d.Size)
	for i := range denominators {
		denominators[i].Sub(z, &d.Roots[i])
	}
	bls12381.InverseBatchFr(denominators)

	sum := new(bls12381.Fr).Zero()
	for i := range values {
		var term bls12381.Fr
		term.Mul(&values[i], &d.Roots[i])
		term.Mul(&term, &denominators[i])
		sum.Add(sum, &term)
	}

	zn := new(bls12381.Fr).Exp(z, new(big.Int).SetUint64(d.Size))
	zn.Sub(zn, new(bls12381.Fr).One())

	factor := new(bls12381.Fr).Mul(zn, &d.SizeInv)
	result := new(bls12381.Fr).Mul(sum, factor)
	return result, nil
}
