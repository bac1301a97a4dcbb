package bls12381

import "testing"

func TestFrModulusAndFpModulusAreDistinct(t *testing.T) {
	if FrModulus().Cmp(FpModulus()) == 0 {
		t.Fatal("the scalar field order and base field modulus must differ")
	}
}

func TestCrossCheckKnownGenerators(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	if g1.IsInfinity || g2.IsInfinity {
		t.Fatal("generators must not be the identity")
	}
	if !g1.IsOnCurve() || !g2.IsOnCurve() {
		t.Fatal("generators must lie on their respective curves")
	}
}
