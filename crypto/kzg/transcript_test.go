package kzg

import (
	"testing"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
)

func TestTranscriptChallengesDeterministic(t *testing.T) {
	commitments := [][]byte{{1, 2, 3}, {4, 5, 6}}
	indices := []int{0, 1}
	cells := [][]bls12381.Fr{{*bls12381.NewFrFromUint64(1)}, {*bls12381.NewFrFromUint64(2)}}
	proofs := [][]byte{{7, 8, 9}, {10, 11, 12}}

	r1, s1 := transcriptChallenges(commitments, indices, cells, proofs)
	r2, s2 := transcriptChallenges(commitments, indices, cells, proofs)
	if !r1.Equal(r2) || !s1.Equal(s2) {
		t.Fatal("expected identical inputs to produce identical challenges")
	}
}

func TestTranscriptChallengesSensitiveToOrder(t *testing.T) {
	commitments := [][]byte{{1, 2, 3}, {4, 5, 6}}
	indices := []int{0, 1}
	cells := [][]bls12381.Fr{{*bls12381.NewFrFromUint64(1)}, {*bls12381.NewFrFromUint64(2)}}
	proofs := [][]byte{{7, 8, 9}, {10, 11, 12}}

	r1, _ := transcriptChallenges(commitments, indices, cells, proofs)

	reorderedIndices := []int{1, 0}
	r2, _ := transcriptChallenges(commitments, reorderedIndices, cells, proofs)
	if r1.Equal(r2) {
		t.Fatal("expected reordering cell indices to change the derived challenge")
	}
}

func TestTranscriptChallengesSensitiveToContent(t *testing.T) {
	commitments := [][]byte{{1, 2, 3}}
	indices := []int{0}
	cells := [][]bls12381.Fr{{*bls12381.NewFrFromUint64(1)}}
	proofs := [][]byte{{7, 8, 9}}

	r1, _ := transcriptChallenges(commitments, indices, cells, proofs)

	cellsMutated := [][]bls12381.Fr{{*bls12381.NewFrFromUint64(2)}}
	r2, _ := transcriptChallenges(commitments, indices, cellsMutated, proofs)
	if r1.Equal(r2) {
		t.Fatal("expected a different cell value to change the derived challenge")
	}
}
