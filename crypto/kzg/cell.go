package kzg

import (
	"fmt"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/erasure"
	"github.com/jtraglia/peerdas-kzg/params"
	"github.com/jtraglia/peerdas-kzg/polynomial"
)

// Blob is the wire representation of FIELD_ELEMENTS_PER_BLOB field
// elements, each encoded as 32 big-endian bytes.
type Blob [params.FieldElementsPerBlob * params.BytesPerFieldElement]byte

// Cell is the wire representation of FIELD_ELEMENTS_PER_CELL field
// elements, one coset's worth of evaluations of the extended blob
// polynomial.
type Cell [params.BytesPerCell]byte

// parseBlob decodes a Blob into its FieldElementsPerBlob scalar
// evaluations, rejecting any element whose encoding is not canonical.
func parseBlob(b *Blob) ([]bls12381.Fr, error) {
	out := make([]bls12381.Fr, params.FieldElementsPerBlob)
	for i := range out {
		start := i * params.BytesPerFieldElement
		if _, err := out[i].FromBytes(b[start : start+params.BytesPerFieldElement]); err != nil {
			return nil, fmt.Errorf("%w: blob element %d", ErrInvalidScalar, i)
		}
	}
	return out, nil
}

// parseCell decodes a Cell into its FieldElementsPerCell scalar
// evaluations.
func parseCell(c *Cell) ([]bls12381.Fr, error) {
	out := make([]bls12381.Fr, params.FieldElementsPerCell)
	for i := range out {
		start := i * params.BytesPerFieldElement
		if _, err := out[i].FromBytes(c[start : start+params.BytesPerFieldElement]); err != nil {
			return nil, fmt.Errorf("%w: cell element %d", ErrInvalidScalar, i)
		}
	}
	return out, nil
}

func serializeCell(evals []bls12381.Fr) Cell {
	var c Cell
	for i, v := range evals {
		b := v.ToBytes()
		copy(c[i*params.BytesPerFieldElement:], b[:])
	}
	return c
}

// blobDomain and extDomain are the two fixed-size NTT domains every cell
// operation needs; computed once and reused, matching the immutable,
// shared-setup spirit of this package's concurrency model.
func blobDomain() (*polynomial.Domain, error) {
	return polynomial.NewDomain(params.FieldElementsPerBlob)
}

func extDomain() (*polynomial.Domain, error) {
	return polynomial.NewDomain(params.FieldElementsPerExtBlob)
}

// BlobToKZGCommitment computes the KZG commitment to a blob: its
// FieldElementsPerBlob evaluations, committed via MSM against the
// Lagrange-basis commit key.
func (ctx *ProverContext) BlobToKZGCommitment(blob *Blob) (Commitment, error) {
	evals, err := parseBlob(blob)
	if err != nil {
		return Commitment{}, err
	}
	c, err := commit(ctx.setup.G1Lagrange, evals)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment(bls12381.CompressG1(c)), nil
}

// ComputeCellsAndKZGProofs deserializes blob, extends it to the full
// 2n-point Reed-Solomon domain, and produces all CellsPerExtBlob cells and
// their FK20 opening proofs.
func (ctx *ProverContext) ComputeCellsAndKZGProofs(blob *Blob) ([params.CellsPerExtBlob]Cell, [params.CellsPerExtBlob]Proof, error) {
	var cells [params.CellsPerExtBlob]Cell
	var proofs [params.CellsPerExtBlob]Proof

	evals, err := parseBlob(blob)
	if err != nil {
		return cells, proofs, err
	}
	bd, err := blobDomain()
	if err != nil {
		return cells, proofs, err
	}
	coeffs, err := polynomial.InverseNTT(bd, evals)
	if err != nil {
		return cells, proofs, err
	}

	extended, err := erasure.Extend(evals)
	if err != nil {
		return cells, proofs, err
	}
	cellEvals := extractCells(extended)
	for i, ce := range cellEvals {
		cells[i] = serializeCell(ce)
	}

	proofPoints, err := computeCellProofs(ctx.setup, coeffs)
	if err != nil {
		return cells, proofs, err
	}
	for i, p := range proofPoints {
		proofs[i] = Proof(bls12381.CompressG1(&p))
	}
	return cells, proofs, nil
}

// extractCells gathers the CellsPerExtBlob strided cosets out of the
// extended domain's natural-order evaluations: cell k holds the evaluations
// at extended-domain indices {br_128(k) + 128*j : j=0..FieldElementsPerCell-1},
// per the cell-ordering rule in §6 (a coset of the order-64 subgroup
// generated by w^128, since the extended domain has 8192 = 128*64 points).
func extractCells(extended []bls12381.Fr) [params.CellsPerExtBlob][]bls12381.Fr {
	var cells [params.CellsPerExtBlob][]bls12381.Fr
	const stride = params.CellsPerExtBlob
	_ = parallelFor(params.CellsPerExtBlob, func(lo, hi int) error {
		for k := lo; k < hi; k++ {
			br := bitReverse7(k)
			cell := make([]bls12381.Fr, params.FieldElementsPerCell)
			for j := 0; j < params.FieldElementsPerCell; j++ {
				cell[j] = extended[br+stride*j]
			}
			cells[k] = cell
		}
		return nil
	})
	return cells
}

// scatterCells is the inverse of extractCells: given every cell's
// evaluations, it rebuilds the natural-order extended-domain evaluation
// vector.
func scatterCells(cells map[int][]bls12381.Fr) []bls12381.Fr {
	out := make([]bls12381.Fr, params.FieldElementsPerExtBlob)
	const stride = params.CellsPerExtBlob
	for k, cell := range cells {
		br := bitReverse7(k)
		for j := 0; j < params.FieldElementsPerCell; j++ {
			out[br+stride*j] = cell[j]
		}
	}
	return out
}

// RecoverCellsAndKZGProofs reconstructs the full set of cells and proofs
// given at least half of CellsPerExtBlob cells, identified by cellIndices.
func (ctx *ProverContext) RecoverCellsAndKZGProofs(cellIndices []int, cells []Cell) ([params.CellsPerExtBlob]Cell, [params.CellsPerExtBlob]Proof, error) {
	var outCells [params.CellsPerExtBlob]Cell
	var outProofs [params.CellsPerExtBlob]Proof

	if len(cellIndices) != len(cells) {
		return outCells, outProofs, fmt.Errorf("%w: cell indices and cells", ErrMismatchedLengths)
	}
	if len(cellIndices) < params.CellsPerExtBlob/2 {
		return outCells, outProofs, ErrNotEnoughCells
	}

	seen := make(map[int]bool, len(cellIndices))
	present := make(map[int][]bls12381.Fr, len(cellIndices))
	for i, idx := range cellIndices {
		if idx < 0 || idx >= params.CellsPerExtBlob {
			return outCells, outProofs, fmt.Errorf("%w: index %d", ErrCellIndexOutOfRange, idx)
		}
		if seen[idx] {
			return outCells, outProofs, fmt.Errorf("%w: index %d", ErrDuplicateCellIndex, idx)
		}
		seen[idx] = true
		evals, err := parseCell(&cells[i])
		if err != nil {
			return outCells, outProofs, err
		}
		present[idx] = evals
	}

	recovered, err := erasure.Recover(present)
	if err != nil {
		return outCells, outProofs, fmt.Errorf("%w: %v", ErrNotEnoughCells, err)
	}

	ed, err := extDomain()
	if err != nil {
		return outCells, outProofs, err
	}
	extCoeffs, err := polynomial.InverseNTT(ed, recovered)
	if err != nil {
		return outCells, outProofs, err
	}
	// The blob polynomial has degree < FieldElementsPerBlob; the upper
	// half of the extended-domain coefficient vector must be zero, and
	// only the lower half is needed to recompute cells and proofs.
	coeffs := extCoeffs[:params.FieldElementsPerBlob]

	cellEvals := extractCells(recovered)
	for i, ce := range cellEvals {
		outCells[i] = serializeCell(ce)
	}
	proofPoints, err := computeCellProofs(ctx.setup, coeffs)
	if err != nil {
		return outCells, outProofs, err
	}
	for i, p := range proofPoints {
		outProofs[i] = Proof(bls12381.CompressG1(&p))
	}
	return outCells, outProofs, nil
}
