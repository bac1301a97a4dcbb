// Package params collects the compile-time constants shared by every layer
// of the PeerDAS cryptographic core, mirroring the way go-ethereum centralizes
// protocol constants in a single params package rather than scattering magic
// numbers through the implementation.
package params

const (
	// BytesPerFieldElement is the size of a canonically-encoded Fr element.
	BytesPerFieldElement = 32

	// FieldElementsPerBlob is the number of scalar evaluations in a blob
	// polynomial, i.e. the size of the evaluation domain H.
	FieldElementsPerBlob = 4096

	// FieldElementsPerExtBlob is the size of the Reed-Solomon extended
	// evaluation domain (2 * FieldElementsPerBlob).
	FieldElementsPerExtBlob = 2 * FieldElementsPerBlob

	// FieldElementsPerCell is the number of evaluations contained in a
	// single cell, i.e. the order of the per-cell coset subgroup H_l.
	FieldElementsPerCell = 64

	// CellsPerExtBlob is the number of cells an extended blob is split
	// into: half of them are the original blob, half are the RS extension.
	CellsPerExtBlob = FieldElementsPerExtBlob / FieldElementsPerCell

	// BytesPerCell is the serialized size of one cell.
	BytesPerCell = FieldElementsPerCell * BytesPerFieldElement

	// BytesPerCommitment is the size of a compressed G1 commitment.
	BytesPerCommitment = 48

	// BytesPerProof is the size of a compressed G1 opening proof.
	BytesPerProof = 48

	// MaxBlobsPerBlock bounds how many blobs a single block may carry; it
	// is not part of the cryptographic core but is threaded through the
	// sample data types the way go-ethereum's params package does.
	MaxBlobsPerBlock = 6

	// FiatShamirDomain tags every transcript this core hashes, preventing
	// cross-protocol challenge reuse.
	FiatShamirDomain = "RCKZGCBATCH__V1_"
)

// LogFieldElementsPerBlob is log2(FieldElementsPerBlob), the order of the
// forward/inverse NTT run over a blob polynomial.
const LogFieldElementsPerBlob = 12

// LogFieldElementsPerExtBlob is log2(FieldElementsPerExtBlob).
const LogFieldElementsPerExtBlob = 13

// LogFieldElementsPerCell is log2(FieldElementsPerCell).
const LogFieldElementsPerCell = 6
