package erasure

import (
	"testing"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/params"
)

func randBlobEvals(t *testing.T) []bls12381.Fr {
	t.Helper()
	out := make([]bls12381.Fr, params.FieldElementsPerBlob)
	for i := range out {
		v, err := new(bls12381.Fr).Rand(nil)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = *v
	}
	return out
}

// cellsFromExtended splits extended (natural root order) into its
// CellsPerExtBlob strided cosets, the same br_128(k)+stride*j grouping
// crypto/kzg's cell extraction and erasure.Recover use.
func cellsFromExtended(extended []bls12381.Fr) [][]bls12381.Fr {
	const stride = params.CellsPerExtBlob
	cells := make([][]bls12381.Fr, params.CellsPerExtBlob)
	for k := range cells {
		br := bitReverse7(k)
		cell := make([]bls12381.Fr, params.FieldElementsPerCell)
		for j := range cell {
			cell[j] = extended[br+stride*j]
		}
		cells[k] = cell
	}
	return cells
}

func TestExtendPreservesOriginalHalf(t *testing.T) {
	blob := randBlobEvals(t)
	extended, err := Extend(blob)
	if err != nil {
		t.Fatal(err)
	}
	if len(extended) != params.FieldElementsPerExtBlob {
		t.Fatalf("expected %d extended evaluations, got %d", params.FieldElementsPerExtBlob, len(extended))
	}
	// omega_ext^2 == omega_blob, so every even natural-order position of
	// the extended domain coincides with a blob-domain evaluation point.
	for i := range blob {
		if !blob[i].Equal(&extended[2*i]) {
			t.Fatalf("extended evaluation at even position %d does not match the original blob", 2*i)
		}
	}
}

func TestRecoverFromExactHalfCells(t *testing.T) {
	blob := randBlobEvals(t)
	extended, err := Extend(blob)
	if err != nil {
		t.Fatal(err)
	}
	cells := cellsFromExtended(extended)

	present := make(map[int][]bls12381.Fr)
	for i := 0; i < params.CellsPerExtBlob; i += 2 {
		present[i] = cells[i]
	}
	if len(present) != params.CellsPerExtBlob/2 {
		t.Fatalf("test setup error: expected exactly half the cells")
	}

	recovered, err := Recover(present)
	if err != nil {
		t.Fatal(err)
	}
	for i := range extended {
		if !extended[i].Equal(&recovered[i]) {
			t.Fatalf("recovered evaluation %d does not match the original extension", i)
		}
	}
}

func TestRecoverFromAllCellsIsIdentity(t *testing.T) {
	blob := randBlobEvals(t)
	extended, err := Extend(blob)
	if err != nil {
		t.Fatal(err)
	}
	cells := cellsFromExtended(extended)
	present := make(map[int][]bls12381.Fr)
	for i, c := range cells {
		present[i] = c
	}
	recovered, err := Recover(present)
	if err != nil {
		t.Fatal(err)
	}
	for i := range extended {
		if !extended[i].Equal(&recovered[i]) {
			t.Fatalf("recovered evaluation %d does not match original", i)
		}
	}
}

func TestRecoverNotEnoughCells(t *testing.T) {
	blob := randBlobEvals(t)
	extended, err := Extend(blob)
	if err != nil {
		t.Fatal(err)
	}
	cells := cellsFromExtended(extended)
	present := make(map[int][]bls12381.Fr)
	for i := 0; i < params.CellsPerExtBlob/2-1; i++ {
		present[i] = cells[i]
	}
	if _, err := Recover(present); err == nil {
		t.Fatal("expected an error when fewer than half the cells are present")
	}
}
