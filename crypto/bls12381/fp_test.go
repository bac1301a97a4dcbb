package bls12381

import "testing"

func randFp(t *testing.T) *Fp {
	t.Helper()
	z, err := new(Fp).Rand(nil)
	if err != nil {
		t.Fatal(err)
	}
	return z
}

func TestFpSerialization(t *testing.T) {
	for i := 0; i < fuz; i++ {
		a := randFp(t)
		enc := a.ToBytes()
		b, err := new(Fp).FromBytes(enc[:])
		if err != nil {
			t.Fatal(err)
		}
		if !a.Equal(b) {
			t.Fatal("round-trip through ToBytes/FromBytes changed value")
		}
	}
}

func TestFpAdditiveProperties(t *testing.T) {
	for i := 0; i < fuz; i++ {
		a := randFp(t)
		zero := new(Fp).Zero()
		if !new(Fp).Add(a, zero).Equal(a) {
			t.Fatal("a + 0 == a")
		}
		if !new(Fp).Sub(zero, a).Equal(new(Fp).Neg(a)) {
			t.Fatal("0 - a == -a")
		}
		if !new(Fp).Double(a).Equal(new(Fp).Add(a, a)) {
			t.Fatal("double(a) == a + a")
		}
	}
}

func TestFpMultiplicativeProperties(t *testing.T) {
	for i := 0; i < fuz; i++ {
		a := randFp(t)
		one := new(Fp).One()
		if !new(Fp).Mul(a, one).Equal(a) {
			t.Fatal("a * 1 == a")
		}
		if !new(Fp).Square(a).Equal(new(Fp).Mul(a, a)) {
			t.Fatal("square(a) == a * a")
		}
	}
}

func TestFpInverse(t *testing.T) {
	for i := 0; i < fuz; i++ {
		a := randFp(t)
		if a.IsZero() {
			continue
		}
		inv := new(Fp).Inverse(a)
		prod := new(Fp).Mul(a, inv)
		if !prod.IsOne() {
			t.Fatal("a * a^-1 == 1")
		}
	}
}

func TestFpSqrt(t *testing.T) {
	for i := 0; i < fuz; i++ {
		a := randFp(t)
		square := new(Fp).Square(a)
		root := new(Fp).Sqrt(square)
		if root == nil {
			t.Fatal("square of a field element must have a sqrt")
		}
		if !new(Fp).Square(root).Equal(square) {
			t.Fatal("sqrt(a^2)^2 == a^2")
		}
	}
}

func TestFpIsQuadraticNonResidue(t *testing.T) {
	nonResidueFound := false
	for i := 0; i < fuz*4 && !nonResidueFound; i++ {
		a := randFp(t)
		if a.Legendre() == -1 {
			nonResidueFound = true
			if new(Fp).Sqrt(a) != nil {
				t.Fatal("non-residue must not have a sqrt")
			}
		}
	}
}
