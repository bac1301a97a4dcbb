package tests

import (
	"testing"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/crypto/kzg"
	"github.com/jtraglia/peerdas-kzg/params"
)

func randomBenchBlob(b *testing.B) *kzg.Blob {
	b.Helper()
	var blob kzg.Blob
	for i := 0; i < params.FieldElementsPerBlob; i++ {
		v, err := new(bls12381.Fr).Rand(nil)
		if err != nil {
			b.Fatal(err)
		}
		fb := v.ToBytes()
		copy(blob[i*params.BytesPerFieldElement:], fb[:])
	}
	return &blob
}

func BenchmarkBlobToKZGCommitment(b *testing.B) {
	setup := benchSetup(b)
	prover := kzg.NewProverContext(setup)
	blob := randomBenchBlob(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := prover.BlobToKZGCommitment(blob); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeCellsAndKZGProofs(b *testing.B) {
	setup := benchSetup(b)
	prover := kzg.NewProverContext(setup)
	blob := randomBenchBlob(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := prover.ComputeCellsAndKZGProofs(blob); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerifyCellKZGProofBatch(b *testing.B) {
	setup := benchSetup(b)
	prover := kzg.NewProverContext(setup)
	verifier := kzg.NewVerifierContext(setup)
	blob := randomBenchBlob(b)

	commitment, err := prover.BlobToKZGCommitment(blob)
	if err != nil {
		b.Fatal(err)
	}
	cells, proofs, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		b.Fatal(err)
	}

	commitments := make([]kzg.Commitment, params.CellsPerExtBlob)
	indices := make([]int, params.CellsPerExtBlob)
	for i := 0; i < params.CellsPerExtBlob; i++ {
		commitments[i] = commitment
		indices[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := verifier.VerifyCellKZGProofBatch(commitments, indices, cells[:], proofs[:])
		if err != nil {
			b.Fatal(err)
		}
		if !ok {
			b.Fatal("expected batch verification to succeed")
		}
	}
}

func BenchmarkRecoverCellsAndKZGProofs(b *testing.B) {
	setup := benchSetup(b)
	prover := kzg.NewProverContext(setup)
	blob := randomBenchBlob(b)

	cells, _, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		b.Fatal(err)
	}

	half := params.CellsPerExtBlob / 2
	indices := make([]int, 0, half)
	haveCells := make([]kzg.Cell, 0, half)
	for i := 0; i < params.CellsPerExtBlob; i += 2 {
		indices = append(indices, i)
		haveCells = append(haveCells, cells[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := prover.RecoverCellsAndKZGProofs(indices, haveCells); err != nil {
			b.Fatal(err)
		}
	}
}
