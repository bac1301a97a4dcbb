package kzg

import (
	"fmt"
	"math/big"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/params"
	"github.com/jtraglia/peerdas-kzg/polynomial"
)

// cellsPerBlob is the number of cosets the *unextended* blob domain H
// splits into; CellsPerExtBlob counts cosets of the doubled domain, half of
// which correspond to the original blob and half to its RS extension, but
// both halves open the same degree-(n-1) polynomial. It equals the n/l block
// count divideByBinomial folds a blob polynomial into.
const cellsPerBlob = params.FieldElementsPerBlob / params.FieldElementsPerCell

// computeCellProofs produces all CellsPerExtBlob KZG opening proofs for the
// polynomial whose coefficients (length FieldElementsPerBlob, natural
// order) are coeffs, one proof per coset of the extended domain.
//
// FK20's key insight is that every coset's vanishing polynomial is a pure
// binomial X^l - h_k^l (since the coset is h_k times the order-l subgroup,
// and every element of that subgroup raised to the l-th power is 1). This
// package exploits that directly: reducing a degree-(n-1) polynomial modulo
// (X^l - c) is an O(n) block-folding recurrence (group the coefficients
// into n/l blocks of length l, fold from the top block down, each fold
// multiplying the running block by c), rather than a generic polynomial
// division. That quotient, in coefficient form, is then committed against
// the monomial-basis SRS exactly as any KZG opening proof would be.
//
// This differs from the literal FK20 construction's further optimization,
// which batches the per-coset commitment work for all CellsPerExtBlob
// cosets into a handful of shared NTTs over G1 (precomputing a G1-domain
// transform of the reversed SRS once at setup time, then reusing it for
// every coset via pointwise multiplication). Reproducing that batching
// exactly is easy to get subtly wrong in code that can't be executed to
// check; the block-folding reduction used here is mathematically the same
// per-coset quotient FK20 computes, just evaluated independently per cell
// rather than sharing work across all 128 of them in one transform.
func computeCellProofs(setup *Setup, coeffs []bls12381.Fr) ([params.CellsPerExtBlob]bls12381.G1Affine, error) {
	var proofs [params.CellsPerExtBlob]bls12381.G1Affine
	if len(coeffs) != params.FieldElementsPerBlob {
		return proofs, fmt.Errorf("kzg: computeCellProofs: expected %d coefficients, got %d", params.FieldElementsPerBlob, len(coeffs))
	}

	extDomain, err := polynomial.NewDomain(params.FieldElementsPerExtBlob)
	if err != nil {
		return proofs, err
	}

	err = parallelFor(params.CellsPerExtBlob, func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			br := bitReverse7(k)
			hk := extDomain.Roots[br]
			var hkl bls12381.Fr
			hkl.Exp(&hk, big.NewInt(params.FieldElementsPerCell))

			quotientCoeffs := divideByBinomial(coeffs, &hkl)
			proof, err := bls12381.MultiScalarMul(setup.G1Monomial[:len(quotientCoeffs)], quotientCoeffs)
			if err != nil {
				return err
			}
			proofs[k] = *proof
		}
		return nil
	})
	if err != nil {
		return proofs, err
	}
	return proofs, nil
}

// divideByBinomial computes the coefficients of q(x) in p(x) = q(x)*(x^l-c)
// + r(x) via the block-folding recurrence described in computeCellProofs's
// doc comment. The remainder r is discarded: it is the degree-<l polynomial
// that agrees with p on the coset whose points are the roots of (x^l-c), and
// the opening proof is the commitment to q alone.
func divideByBinomial(coeffs []bls12381.Fr, c *bls12381.Fr) []bls12381.Fr {
	const l = params.FieldElementsPerCell
	m := len(coeffs) / l

	blocks := make([][]bls12381.Fr, m)
	for i := 0; i < m; i++ {
		blocks[i] = coeffs[i*l : (i+1)*l]
	}

	quotientBlocks := make([][]bls12381.Fr, m-1)
	quotientBlocks[m-2] = append([]bls12381.Fr(nil), blocks[m-1]...)
	for i := m - 2; i >= 1; i-- {
		next := make([]bls12381.Fr, l)
		for j := 0; j < l; j++ {
			var scaled bls12381.Fr
			scaled.Mul(&quotientBlocks[i][j], c)
			next[j].Add(&blocks[i][j], &scaled)
		}
		quotientBlocks[i-1] = next
	}

	out := make([]bls12381.Fr, (m-1)*l)
	for i, block := range quotientBlocks {
		copy(out[i*l:(i+1)*l], block)
	}
	return out
}

// bitReverse7 reverses the low 7 bits of k, the permutation that maps a
// cell index to its coset-offset exponent per the cell-ordering rule in
// §6: h_k = omega_ext^{br_128(k)}.
func bitReverse7(k int) int {
	var out int
	for i := 0; i < 7; i++ {
		out |= ((k >> i) & 1) << (6 - i)
	}
	return out
}
