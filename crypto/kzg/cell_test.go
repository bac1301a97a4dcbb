package kzg

import (
	"testing"

	"github.com/jtraglia/peerdas-kzg/params"
)

// TestIdentityBlobCommitment covers scenario S1: the all-zero blob commits
// to the identity point, serialized as the compressed-infinity encoding.
func TestIdentityBlobCommitment(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)

	c, err := prover.BlobToKZGCommitment(zeroBlob())
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	if c[0]&0x40 == 0 {
		t.Fatalf("expected the infinity bit set on the zero blob's commitment, got %x", c)
	}
}

func TestBlobToKZGCommitmentRejectsInvalidScalar(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)

	blob := zeroBlob()
	for i := range blob {
		blob[i] = 0xff
	}
	if _, err := prover.BlobToKZGCommitment(blob); err == nil {
		t.Fatal("expected an error decoding a non-canonical blob element")
	}
}

// TestComputeCellsAndKZGProofsRoundTrip covers the general round trip:
// compute cells/proofs for a random blob, then verify every one of them in
// one batch call.
func TestComputeCellsAndKZGProofsRoundTrip(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)
	verifier := NewVerifierContext(setup)

	blob := randomBlob(t)
	commitment, err := prover.BlobToKZGCommitment(blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}

	cells, proofs, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	commitments := make([]Commitment, params.CellsPerExtBlob)
	cellIndices := make([]int, params.CellsPerExtBlob)
	cellsIn := make([]Cell, params.CellsPerExtBlob)
	proofsIn := make([]Proof, params.CellsPerExtBlob)
	for i := 0; i < params.CellsPerExtBlob; i++ {
		commitments[i] = commitment
		cellIndices[i] = i
		cellsIn[i] = cells[i]
		proofsIn[i] = Proof(proofs[i])
	}

	ok, err := verifier.VerifyCellKZGProofBatch(commitments, cellIndices, cellsIn, proofsIn)
	if err != nil {
		t.Fatalf("VerifyCellKZGProofBatch: %v", err)
	}
	if !ok {
		t.Fatal("expected every cell/proof pair for a correctly computed blob to verify")
	}
}

// TestVerifyCellKZGProofBatchDetectsBitFlip covers S4: corrupting a single
// byte of a cell must make the batch check fail (not error).
func TestVerifyCellKZGProofBatchDetectsBitFlip(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)
	verifier := NewVerifierContext(setup)

	blob := randomBlob(t)
	commitment, err := prover.BlobToKZGCommitment(blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	cells, proofs, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	cells[0][0] ^= 0x01

	ok, err := verifier.VerifyCellKZGProofBatch(
		[]Commitment{commitment},
		[]int{0},
		[]Cell{cells[0]},
		[]Proof{Proof(proofs[0])},
	)
	if err != nil {
		t.Fatalf("VerifyCellKZGProofBatch: %v", err)
	}
	if ok {
		t.Fatal("expected a corrupted cell to fail verification")
	}
}

// TestVerifyCellKZGProofBatchRejectsDuplicateIndex covers S6/§7's duplicate
// cell index rejection.
func TestVerifyCellKZGProofBatchRejectsDuplicateIndex(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)
	verifier := NewVerifierContext(setup)

	blob := randomBlob(t)
	commitment, err := prover.BlobToKZGCommitment(blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	cells, proofs, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	_, err = verifier.VerifyCellKZGProofBatch(
		[]Commitment{commitment, commitment},
		[]int{3, 3},
		[]Cell{cells[3], cells[3]},
		[]Proof{Proof(proofs[3]), Proof(proofs[3])},
	)
	if err == nil {
		t.Fatal("expected an error for a duplicated (commitment, cell index) row")
	}
}

func TestVerifyCellKZGProofBatchRejectsOutOfRangeIndex(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)
	verifier := NewVerifierContext(setup)

	blob := randomBlob(t)
	commitment, err := prover.BlobToKZGCommitment(blob)
	if err != nil {
		t.Fatalf("BlobToKZGCommitment: %v", err)
	}
	cells, proofs, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	_, err = verifier.VerifyCellKZGProofBatch(
		[]Commitment{commitment},
		[]int{params.CellsPerExtBlob},
		[]Cell{cells[0]},
		[]Proof{Proof(proofs[0])},
	)
	if err == nil {
		t.Fatal("expected an error for an out-of-range cell index")
	}
}

// TestRecoverCellsAndKZGProofsFromHalf covers S3: recovering from exactly
// half the cells reproduces every cell and proof the prover originally
// computed.
func TestRecoverCellsAndKZGProofsFromHalf(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)

	blob := randomBlob(t)
	cells, proofs, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	half := params.CellsPerExtBlob / 2
	indices := make([]int, 0, half)
	haveCells := make([]Cell, 0, half)
	for i := 0; i < params.CellsPerExtBlob; i += 2 {
		indices = append(indices, i)
		haveCells = append(haveCells, cells[i])
	}
	if len(indices) != half {
		t.Fatalf("test setup error: expected exactly %d cells, got %d", half, len(indices))
	}

	recoveredCells, recoveredProofs, err := prover.RecoverCellsAndKZGProofs(indices, haveCells)
	if err != nil {
		t.Fatalf("RecoverCellsAndKZGProofs: %v", err)
	}

	for i := 0; i < params.CellsPerExtBlob; i++ {
		if recoveredCells[i] != cells[i] {
			t.Fatalf("recovered cell %d does not match the original", i)
		}
		if recoveredProofs[i] != Proof(proofs[i]) {
			t.Fatalf("recovered proof %d does not match the original", i)
		}
	}
}

func TestRecoverCellsAndKZGProofsRejectsDuplicateIndex(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)

	blob := randomBlob(t)
	cells, _, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	half := params.CellsPerExtBlob/2 + 1
	indices := make([]int, half)
	haveCells := make([]Cell, half)
	for i := range indices {
		indices[i] = 0
		haveCells[i] = cells[0]
	}

	if _, _, err := prover.RecoverCellsAndKZGProofs(indices, haveCells); err == nil {
		t.Fatal("expected an error for duplicate cell indices during recovery")
	}
}

func TestRecoverCellsAndKZGProofsRejectsNotEnoughCells(t *testing.T) {
	setup := toySetup(t)
	prover := NewProverContext(setup)

	blob := randomBlob(t)
	cells, _, err := prover.ComputeCellsAndKZGProofs(blob)
	if err != nil {
		t.Fatalf("ComputeCellsAndKZGProofs: %v", err)
	}

	n := params.CellsPerExtBlob/2 - 1
	indices := make([]int, n)
	haveCells := make([]Cell, n)
	for i := 0; i < n; i++ {
		indices[i] = i
		haveCells[i] = cells[i]
	}

	if _, _, err := prover.RecoverCellsAndKZGProofs(indices, haveCells); err == nil {
		t.Fatal("expected an error when fewer than half the cells are supplied")
	}
}
