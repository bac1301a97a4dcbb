package kzg

import (
	"testing"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/params"
)

// toySetup builds a fresh, single-use trusted setup by picking a random
// toxic-waste scalar tau and deriving every SRS point directly via G1/G2
// scalar multiplication, the standard "fake ceremony" pattern every KZG
// test suite uses in place of the real mainnet ceremony output: correct
// for test purposes as long as it is thrown away (and is, at the end of
// the calling test) with tau itself.
func toySetup(t *testing.T) *Setup {
	t.Helper()
	tau, err := new(bls12381.Fr).Rand(nil)
	if err != nil {
		t.Fatalf("toySetup: %v", err)
	}

	g1Gen := bls12381.G1Generator()
	g1Monomial := make([]bls12381.G1Affine, params.FieldElementsPerBlob)
	cur := new(bls12381.Fr).One()
	for i := range g1Monomial {
		var p bls12381.G1Jacobian
		p.ScalarMul(new(bls12381.G1Jacobian).FromAffine(g1Gen), cur)
		g1Monomial[i] = *p.ToAffine()
		cur = new(bls12381.Fr).Mul(cur, tau)
	}

	g1Lagrange, err := monomialToLagrangeG1(g1Monomial)
	if err != nil {
		t.Fatalf("toySetup: monomialToLagrangeG1: %v", err)
	}

	g2Gen := bls12381.G2Generator()
	g2Monomial := make([]bls12381.G2Affine, params.FieldElementsPerCell+1)
	cur2 := new(bls12381.Fr).One()
	for i := range g2Monomial {
		var p bls12381.G2Jacobian
		p.ScalarMul(new(bls12381.G2Jacobian).FromAffine(g2Gen), cur2)
		g2Monomial[i] = *p.ToAffine()
		cur2 = new(bls12381.Fr).Mul(cur2, tau)
	}

	return &Setup{
		G1Lagrange: g1Lagrange,
		G1Monomial: g1Monomial,
		G2Gen:      *g2Gen,
		G2Tau:      g2Monomial[1],
		G2TauL:     g2Monomial[params.FieldElementsPerCell],
	}
}

func randomBlob(t *testing.T) *Blob {
	t.Helper()
	var b Blob
	for i := 0; i < params.FieldElementsPerBlob; i++ {
		v, err := new(bls12381.Fr).Rand(nil)
		if err != nil {
			t.Fatal(err)
		}
		enc := v.ToBytes()
		copy(b[i*params.BytesPerFieldElement:], enc[:])
	}
	return &b
}

func zeroBlob() *Blob {
	return &Blob{}
}
