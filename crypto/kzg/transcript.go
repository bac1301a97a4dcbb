package kzg

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"math/big"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/params"
)

// newTranscript starts a Fiat-Shamir hash state pre-seeded with this
// package's domain separator, following the same "domain string, then
// every length, then every byte of every input, in a fixed order" recipe
// go-ethereum's crypto/kzg/kzg_new.go HashToBLSField uses for EIP-4844
// challenge derivation, adapted here to also bind cell indices and proofs.
// Binding every byte of every input in a caller-order-preserving sequence
// is what makes batch verification both order-independent in its final
// boolean result (invariant 3) and sensitive to any single-bit corruption
// (S4).
func newTranscript() hash.Hash {
	h := sha256.New()
	h.Write([]byte(params.FiatShamirDomain))
	return h
}

func writeUint64(w hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.Write(buf[:])
}

// transcriptChallenges derives the two Fiat-Shamir scalars r and s (batch
// cell-proof verification weights its rows by powers of r and does not use
// s), binding the
// commitments, cell indices, cell contents, and proofs in exactly the order
// the caller supplied them.
func transcriptChallenges(commitments [][]byte, cellIndices []int, cells [][]bls12381.Fr, proofs [][]byte) (r, s *bls12381.Fr) {
	w := newTranscript()
	writeUint64(w, uint64(len(commitments)))
	writeUint64(w, uint64(len(cells)))

	for _, c := range commitments {
		w.Write(c)
	}
	for _, idx := range cellIndices {
		writeUint64(w, uint64(idx))
	}
	for _, cell := range cells {
		for _, v := range cell {
			b := v.ToBytes()
			w.Write(b[:])
		}
	}
	for _, p := range proofs {
		w.Write(p)
	}

	sum := w.Sum(nil)
	rVal := new(big.Int).SetBytes(sum)
	rVal.Mod(rVal, bls12381.FrModulus())
	r = bls12381.NewFr(rVal)

	w2 := sha256.New()
	w2.Write(sum)
	w2.Write([]byte("s"))
	sum2 := w2.Sum(nil)
	sVal := new(big.Int).SetBytes(sum2)
	sVal.Mod(sVal, bls12381.FrModulus())
	s = bls12381.NewFr(sVal)
	return r, s
}
