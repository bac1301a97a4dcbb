package types

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jtraglia/peerdas-kzg/crypto/kzg"
	"github.com/jtraglia/peerdas-kzg/params"
	"github.com/protolambda/ztyp/codec"
	"github.com/protolambda/ztyp/tree"
)

// toKzgBlob converts a Blob to the analogous type in the cryptography
// module. We need this because we want to add ssz methods onto
// the cryptographic types without the kzg package taking on a ztyp
// dependency of its own.
func toKzgBlob(b Blob) kzg.Blob {
	return kzg.Blob(b)
}

// Commitment is the wire/ssz representation of a compressed BLS12-381 G1
// commitment point.
type Commitment kzg.Commitment

func (c *Commitment) Deserialize(dr *codec.DecodingReader) error {
	if c == nil {
		return errors.New("cannot decode ssz into nil Commitment")
	}
	_, err := dr.Read(c[:])
	return err
}

func (c *Commitment) Serialize(w *codec.EncodingWriter) error {
	return w.Write(c[:])
}

func (Commitment) ByteLength() uint64 {
	return params.BytesPerCommitment
}

func (Commitment) FixedLength() uint64 {
	return params.BytesPerCommitment
}

func (c Commitment) HashTreeRoot(hFn tree.HashFn) tree.Root {
	var a, b tree.Root
	copy(a[:], c[0:32])
	copy(b[:], c[32:48])
	return hFn(a, b)
}

func (c Commitment) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(c[:])), nil
}

func (c Commitment) String() string {
	return "0x" + hex.EncodeToString(c[:])
}

func (c *Commitment) UnmarshalText(text []byte) error {
	return unmarshalFixedHexText("Commitment", text, c[:])
}

// Proof is the wire/ssz representation of a compressed BLS12-381 G1 opening
// proof point.
type Proof kzg.Proof

func (p *Proof) Deserialize(dr *codec.DecodingReader) error {
	if p == nil {
		return errors.New("cannot decode ssz into nil Proof")
	}
	_, err := dr.Read(p[:])
	return err
}

func (p *Proof) Serialize(w *codec.EncodingWriter) error {
	return w.Write(p[:])
}

func (Proof) ByteLength() uint64 {
	return params.BytesPerProof
}

func (Proof) FixedLength() uint64 {
	return params.BytesPerProof
}

func (p Proof) HashTreeRoot(hFn tree.HashFn) tree.Root {
	var a, b tree.Root
	copy(a[:], p[0:32])
	copy(b[:], p[32:48])
	return hFn(a, b)
}

func (p Proof) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(p[:])), nil
}

func (p Proof) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

func (p *Proof) UnmarshalText(text []byte) error {
	return unmarshalFixedHexText("Proof", text, p[:])
}

// Cell is the wire/ssz representation of one FK20 opening, FieldElementsPerCell
// field elements wide.
type Cell kzg.Cell

func (c *Cell) Deserialize(dr *codec.DecodingReader) error {
	if c == nil {
		return errors.New("cannot decode ssz into nil Cell")
	}
	_, err := dr.Read(c[:])
	return err
}

func (c *Cell) Serialize(w *codec.EncodingWriter) error {
	return w.Write(c[:])
}

func (Cell) ByteLength() uint64 {
	return params.BytesPerCell
}

func (Cell) FixedLength() uint64 {
	return params.BytesPerCell
}

func (c *Cell) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexVectorHTR(func(i uint64) tree.HTR {
		var r tree.Root
		copy(r[:], c[i*32:i*32+32])
		return &r
	}, params.FieldElementsPerCell)
}

func (c Cell) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(c[:])), nil
}

func (c Cell) String() string {
	return "0x" + hex.EncodeToString(c[:])
}

func (c *Cell) UnmarshalText(text []byte) error {
	return unmarshalFixedHexText("Cell", text, c[:])
}

// Blob is the wire/ssz representation of FieldElementsPerBlob field
// elements, each encoded as 32 big-endian bytes.
type Blob kzg.Blob

func (blob *Blob) Deserialize(dr *codec.DecodingReader) error {
	if blob == nil {
		return errors.New("cannot decode ssz into nil Blob")
	}
	_, err := dr.Read(blob[:])
	return err
}

func (blob *Blob) Serialize(w *codec.EncodingWriter) error {
	return w.Write(blob[:])
}

func (blob *Blob) ByteLength() uint64 {
	return params.FieldElementsPerBlob * params.BytesPerFieldElement
}

func (blob *Blob) FixedLength() uint64 {
	return params.FieldElementsPerBlob * params.BytesPerFieldElement
}

func (blob *Blob) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexVectorHTR(func(i uint64) tree.HTR {
		var r tree.Root
		start := i * params.BytesPerFieldElement
		copy(r[:], blob[start:start+params.BytesPerFieldElement])
		return &r
	}, params.FieldElementsPerBlob)
}

func (blob *Blob) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(blob[:])), nil
}

func (blob *Blob) String() string {
	v, err := blob.MarshalText()
	if err != nil {
		return "<invalid-blob>"
	}
	return string(v)
}

func (blob *Blob) UnmarshalText(text []byte) error {
	return unmarshalFixedHexText("Blob", text, blob[:])
}

// BlobToKZGCommitment computes the KZG commitment to this blob using ctx.
func (blob *Blob) BlobToKZGCommitment(ctx *kzg.ProverContext) (Commitment, error) {
	b := toKzgBlob(*blob)
	c, err := ctx.BlobToKZGCommitment(&b)
	return Commitment(c), err
}

// ComputeCellsAndKZGProofs extends this blob and computes every cell and its
// FK20 opening proof using ctx.
func (blob *Blob) ComputeCellsAndKZGProofs(ctx *kzg.ProverContext) ([params.CellsPerExtBlob]Cell, [params.CellsPerExtBlob]Proof, error) {
	b := toKzgBlob(*blob)
	cells, proofs, err := ctx.ComputeCellsAndKZGProofs(&b)
	var outCells [params.CellsPerExtBlob]Cell
	var outProofs [params.CellsPerExtBlob]Proof
	for i := range cells {
		outCells[i] = Cell(cells[i])
		outProofs[i] = Proof(proofs[i])
	}
	return outCells, outProofs, err
}

// CommitmentSequence is a variable-length ssz list of commitments, one per
// blob in a block, bounded by MaxBlobsPerBlock.
type CommitmentSequence []Commitment

func (li *CommitmentSequence) Deserialize(dr *codec.DecodingReader) error {
	return dr.List(func() codec.Deserializable {
		i := len(*li)
		*li = append(*li, Commitment{})
		return &(*li)[i]
	}, params.BytesPerCommitment, params.MaxBlobsPerBlock)
}

func (li CommitmentSequence) Serialize(w *codec.EncodingWriter) error {
	return w.List(func(i uint64) codec.Serializable {
		return &li[i]
	}, params.BytesPerCommitment, uint64(len(li)))
}

func (li CommitmentSequence) ByteLength() uint64 {
	return uint64(len(li)) * params.BytesPerCommitment
}

func (li *CommitmentSequence) FixedLength() uint64 {
	return 0
}

func (li CommitmentSequence) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexListHTR(func(i uint64) tree.HTR {
		return &li[i]
	}, uint64(len(li)), params.MaxBlobsPerBlock)
}

// CellSequence is a variable-length ssz list of cells, bounded by the
// number of cells in one extended blob.
type CellSequence []Cell

func (li *CellSequence) Deserialize(dr *codec.DecodingReader) error {
	return dr.List(func() codec.Deserializable {
		i := len(*li)
		*li = append(*li, Cell{})
		return &(*li)[i]
	}, params.BytesPerCell, params.CellsPerExtBlob)
}

func (li CellSequence) Serialize(w *codec.EncodingWriter) error {
	return w.List(func(i uint64) codec.Serializable {
		return &li[i]
	}, params.BytesPerCell, uint64(len(li)))
}

func (li CellSequence) ByteLength() uint64 {
	return uint64(len(li)) * params.BytesPerCell
}

func (li *CellSequence) FixedLength() uint64 {
	return 0
}

func (li CellSequence) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexListHTR(func(i uint64) tree.HTR {
		return &li[i]
	}, uint64(len(li)), params.CellsPerExtBlob)
}

// ProofSequence is a variable-length ssz list of FK20 opening proofs,
// bounded by the number of cells in one extended blob.
type ProofSequence []Proof

func (li *ProofSequence) Deserialize(dr *codec.DecodingReader) error {
	return dr.List(func() codec.Deserializable {
		i := len(*li)
		*li = append(*li, Proof{})
		return &(*li)[i]
	}, params.BytesPerProof, params.CellsPerExtBlob)
}

func (li ProofSequence) Serialize(w *codec.EncodingWriter) error {
	return w.List(func(i uint64) codec.Serializable {
		return &li[i]
	}, params.BytesPerProof, uint64(len(li)))
}

func (li ProofSequence) ByteLength() uint64 {
	return uint64(len(li)) * params.BytesPerProof
}

func (li *ProofSequence) FixedLength() uint64 {
	return 0
}

func (li ProofSequence) HashTreeRoot(hFn tree.HashFn) tree.Root {
	return hFn.ComplexListHTR(func(i uint64) tree.HTR {
		return &li[i]
	}, uint64(len(li)), params.CellsPerExtBlob)
}

// BlobSequence is a variable-length ssz list of blobs, bounded by
// MaxBlobsPerBlock.
type BlobSequence []Blob

func (a *BlobSequence) Deserialize(dr *codec.DecodingReader) error {
	return dr.List(func() codec.Deserializable {
		i := len(*a)
		*a = append(*a, Blob{})
		return &(*a)[i]
	}, params.FieldElementsPerBlob*params.BytesPerFieldElement, params.MaxBlobsPerBlock)
}

func (a BlobSequence) Serialize(w *codec.EncodingWriter) error {
	return w.List(func(i uint64) codec.Serializable {
		return &a[i]
	}, params.FieldElementsPerBlob*params.BytesPerFieldElement, uint64(len(a)))
}

func (a BlobSequence) ByteLength() uint64 {
	return uint64(len(a)) * params.FieldElementsPerBlob * params.BytesPerFieldElement
}

func (a *BlobSequence) FixedLength() uint64 {
	return 0
}

func (a BlobSequence) HashTreeRoot(hFn tree.HashFn) tree.Root {
	length := uint64(len(a))
	return hFn.ComplexListHTR(func(i uint64) tree.HTR {
		if i < length {
			return &a[i]
		}
		return nil
	}, length, params.MaxBlobsPerBlock)
}

func unmarshalFixedHexText(typeName string, text []byte, out []byte) error {
	l := 2 + len(out)*2
	if len(text) != l {
		return fmt.Errorf("expected %d characters for %s but got %d", l, typeName, len(text))
	}
	if !(text[0] == '0' && text[1] == 'x') {
		return fmt.Errorf("expected '0x' prefix in %s string", typeName)
	}
	if _, err := hex.Decode(out, text[2:]); err != nil {
		return fmt.Errorf("%s is not formatted correctly: %w", typeName, err)
	}
	return nil
}
