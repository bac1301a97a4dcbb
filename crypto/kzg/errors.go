package kzg

import "errors"

// Error kinds surfaced by this package. Every externally-reachable
// operation that can fail returns one of these (wrapped with fmt.Errorf for
// additional context) rather than an ad-hoc string, matching the
// enumerated-kind error design go-ethereum's kzg package aims for in its
// EIP-4844 validation paths.
var (
	// ErrInvalidScalar is returned when scalar bytes are not canonical
	// (their integer value is >= the scalar field modulus).
	ErrInvalidScalar = errors.New("kzg: invalid scalar: not canonical or >= field modulus")

	// ErrInvalidPoint is returned when point bytes are malformed, fail to
	// lie on the curve, or fail the subgroup check.
	ErrInvalidPoint = errors.New("kzg: invalid point: malformed, off-curve, or outside the prime-order subgroup")

	// ErrInvalidSetup is returned when a trusted setup document is
	// malformed or internally inconsistent.
	ErrInvalidSetup = errors.New("kzg: invalid trusted setup")

	// ErrCellIndexOutOfRange is returned when a cell index is >= CellsPerExtBlob.
	ErrCellIndexOutOfRange = errors.New("kzg: cell index out of range")

	// ErrDuplicateCellIndex is returned when a cell index repeats within a
	// single recovery call, or when the same (commitment, cell index) pair
	// repeats within a single batch-verification call.
	ErrDuplicateCellIndex = errors.New("kzg: duplicate cell index")

	// ErrNotEnoughCells is returned when recovery is attempted with fewer
	// than half of CellsPerExtBlob distinct cells.
	ErrNotEnoughCells = errors.New("kzg: not enough cells to recover the blob")

	// ErrMismatchedLengths is returned when parallel input arrays to a
	// batch operation differ in length.
	ErrMismatchedLengths = errors.New("kzg: mismatched input lengths")
)
