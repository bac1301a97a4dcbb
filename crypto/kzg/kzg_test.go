package kzg

import (
	"testing"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/params"
	"github.com/jtraglia/peerdas-kzg/polynomial"
)

func TestOpenAndVerifyAtRandomPoint(t *testing.T) {
	setup := toySetup(t)
	d, err := polynomial.NewDomain(params.FieldElementsPerBlob)
	if err != nil {
		t.Fatal(err)
	}

	evals := make([]bls12381.Fr, params.FieldElementsPerBlob)
	for i := range evals {
		v, err := new(bls12381.Fr).Rand(nil)
		if err != nil {
			t.Fatal(err)
		}
		evals[i] = *v
	}

	c, err := commit(setup.G1Lagrange, evals)
	if err != nil {
		t.Fatal(err)
	}

	z, err := new(bls12381.Fr).Rand(nil)
	if err != nil {
		t.Fatal(err)
	}
	proof, y, err := openAtPoint(d, setup.G1Lagrange, evals, z)
	if err != nil {
		t.Fatal(err)
	}
	if !verifyAtPoint(setup, c, z, y, proof) {
		t.Fatal("expected a correctly computed opening to verify")
	}

	wrongY := new(bls12381.Fr).Add(y, new(bls12381.Fr).One())
	if verifyAtPoint(setup, c, z, wrongY, proof) {
		t.Fatal("expected verification to fail against a tampered claimed value")
	}
}

func TestOpenAndVerifyAtDomainPoint(t *testing.T) {
	setup := toySetup(t)
	d, err := polynomial.NewDomain(params.FieldElementsPerBlob)
	if err != nil {
		t.Fatal(err)
	}

	evals := make([]bls12381.Fr, params.FieldElementsPerBlob)
	for i := range evals {
		v, err := new(bls12381.Fr).Rand(nil)
		if err != nil {
			t.Fatal(err)
		}
		evals[i] = *v
	}

	c, err := commit(setup.G1Lagrange, evals)
	if err != nil {
		t.Fatal(err)
	}

	z := d.Roots[7]
	proof, y, err := openAtPoint(d, setup.G1Lagrange, evals, &z)
	if err != nil {
		t.Fatal(err)
	}
	if !y.Equal(&evals[7]) {
		t.Fatal("expected the claimed evaluation at a domain point to equal the stored evaluation")
	}
	if !verifyAtPoint(setup, c, &z, y, proof) {
		t.Fatal("expected the domain-point opening to verify")
	}
}

func TestCommitRejectsMismatchedLengths(t *testing.T) {
	setup := toySetup(t)
	if _, err := commit(setup.G1Lagrange, make([]bls12381.Fr, 1)); err == nil {
		t.Fatal("expected an error for a mismatched-length commit")
	}
}
