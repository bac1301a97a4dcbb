package kzg

import (
	"fmt"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/params"
	"github.com/jtraglia/peerdas-kzg/polynomial"
)

// Commitment and Proof are compressed G1 points: 48-byte bindings of a
// polynomial and of a single opening of it, respectively.
type Commitment [48]byte
type Proof [48]byte

// commit computes C = sum(evals[i] * G1Lagrange[i]), the KZG commitment to
// the polynomial given in evaluation form over the blob domain, as a
// single multi-scalar multiplication against the Lagrange-basis commit key.
func commit(lagrangeKey []bls12381.G1Affine, evals []bls12381.Fr) (*bls12381.G1Affine, error) {
	if len(evals) != len(lagrangeKey) {
		return nil, fmt.Errorf("kzg: commit: %w: expected %d evaluations, got %d", ErrMismatchedLengths, len(lagrangeKey), len(evals))
	}
	return bls12381.MultiScalarMul(lagrangeKey, evals)
}

// openAtPoint produces a single-point KZG opening proof and the claimed
// evaluation y = p(z): the quotient polynomial q(x) = (p(x) - y)/(x - z) is
// formed directly in evaluation form over the domain (a well-known
// shortcut: q(w_i) = (p(w_i) - y) / (w_i - z) for each domain point w_i
// other than z itself, and a special L'Hopital-style limit formula at
// w_i = z), then committed the same way p itself was.
func openAtPoint(d *polynomial.Domain, lagrangeKey []bls12381.G1Affine, evals []bls12381.Fr, z *bls12381.Fr) (*bls12381.G1Affine, *bls12381.Fr, error) {
	y, err := polynomial.EvaluateInEvaluationForm(d, evals, z)
	if err != nil {
		return nil, nil, err
	}

	quotientEvals := make([]bls12381.Fr, len(evals))
	var matchIdx = -1
	for i := range evals {
		if d.Roots[i].Equal(z) {
			matchIdx = i
			break
		}
	}

	if matchIdx == -1 {
		denominators := make([]bls12381.Fr, len(evals))
		for i := range denominators {
			denominators[i].Sub(&d.Roots[i], z)
		}
		bls12381.InverseBatchFr(denominators)
		for i := range evals {
			var numerator bls12381.Fr
			numerator.Sub(&evals[i], y)
			quotientEvals[i].Mul(&numerator, &denominators[i])
		}
	} else {
		// When z lands exactly on a domain point, the ordinary barycentric
		// quotient formula divides by zero at that index. The standard
		// workaround (the same one the EIP-4844/EIP-7594 reference
		// implementations use) computes q(z) directly as
		// sum_{i != m} (p(w_i) - y) * (z - w_i)^-1 * w_i * z^-1, and leaves
		// every other quotient evaluation computed normally. The loop below
		// accumulates with (w_i - z)^-1 and negates the sum at the end.
		denominators := make([]bls12381.Fr, len(evals))
		for i := range denominators {
			if i == matchIdx {
				continue
			}
			denominators[i].Sub(&d.Roots[i], z)
		}
		bls12381.InverseBatchFr(denominators)
		zInv := new(bls12381.Fr).Inverse(z)

		var sum bls12381.Fr
		for i := range evals {
			if i == matchIdx {
				continue
			}
			var numerator bls12381.Fr
			numerator.Sub(&evals[i], y)
			quotientEvals[i].Mul(&numerator, &denominators[i])

			var limitTerm bls12381.Fr
			limitTerm.Mul(&numerator, &denominators[i])
			limitTerm.Mul(&limitTerm, &d.Roots[i])
			limitTerm.Mul(&limitTerm, zInv)
			sum.Add(&sum, &limitTerm)
		}
		quotientEvals[matchIdx].Neg(&sum)
	}

	proofPoint, err := commit(lagrangeKey, quotientEvals)
	if err != nil {
		return nil, nil, err
	}
	return proofPoint, y, nil
}

// verifyAtPoint checks commitment C opens to y at z with proof pi, via the
// single pairing-equality e(C - [y]_1, [1]_2) = e(pi, [tau - z]_2),
// equivalently e(C - [y]_1, [1]_2) * e(-pi, [tau-z]_2) == 1.
func verifyAtPoint(setup *Setup, c *bls12381.G1Affine, z, y *bls12381.Fr, proof *bls12381.G1Affine) bool {
	var yG1 bls12381.G1Jacobian
	yG1.ScalarMul(new(bls12381.G1Jacobian).FromAffine(bls12381.G1Generator()), y)

	var cMinusY bls12381.G1Jacobian
	var negYG1 bls12381.G1Jacobian
	negYG1.Neg(&yG1)
	cMinusY.Add(new(bls12381.G1Jacobian).FromAffine(c), &negYG1)

	var zG2 bls12381.G2Jacobian
	zG2.ScalarMul(new(bls12381.G2Jacobian).FromAffine(&setup.G2Gen), z)
	var tauMinusZ bls12381.G2Jacobian
	var negZG2 bls12381.G2Jacobian
	negZG2.Neg(&zG2)
	tauMinusZ.Add(tauG2(setup), &negZG2)

	lhsG1 := cMinusY.ToAffine()
	lhsG2 := tauMinusZ.ToAffine()
	return bls12381.PairingsEqual(lhsG1, &setup.G2Gen, proof, lhsG2)
}

// tauG2 returns [tau]_2, used by the single-point opening check.
func tauG2(setup *Setup) *bls12381.G2Jacobian {
	return new(bls12381.G2Jacobian).FromAffine(&setup.G2Tau)
}

// FieldElementsPerBlob re-exports params.FieldElementsPerBlob for callers
// that only import this package.
const FieldElementsPerBlob = params.FieldElementsPerBlob
