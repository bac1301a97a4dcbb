package bls12381

import "testing"

func TestPairingBilinearity(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()

	a := NewFrFromUint64(3)
	b := NewFrFromUint64(5)

	aG1 := new(G1Jacobian).FromAffine(g1).ScalarMul(new(G1Jacobian).FromAffine(g1), a).ToAffine()
	bG2 := new(G2Jacobian).FromAffine(g2).ScalarMul(new(G2Jacobian).FromAffine(g2), b).ToAffine()

	lhs := Pair(aG1, bG2)

	abG1 := new(G1Jacobian).FromAffine(g1).ScalarMul(new(G1Jacobian).FromAffine(g1), new(Fr).Mul(a, b)).ToAffine()
	rhs := Pair(abG1, g2)

	if !lhs.Equal(rhs) {
		t.Fatal("e(a*G1, b*G2) must equal e(ab*G1, G2)")
	}
}

func TestPairingsEqualMatchesDirectComparison(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	a := NewFrFromUint64(7)

	aG1 := new(G1Jacobian).FromAffine(g1).ScalarMul(new(G1Jacobian).FromAffine(g1), a).ToAffine()
	aG2 := new(G2Jacobian).FromAffine(g2).ScalarMul(new(G2Jacobian).FromAffine(g2), a).ToAffine()

	if !PairingsEqual(aG1, g2, g1, aG2) {
		t.Fatal("e(a*G1, G2) must equal e(G1, a*G2)")
	}
}

func TestPairingDegenerate(t *testing.T) {
	g2 := G2Generator()
	inf := new(G1Affine).Infinity()
	result := Pair(inf, g2)
	if !result.IsOne() {
		t.Fatal("pairing with an identity element must be 1")
	}
}
