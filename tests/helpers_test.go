package tests

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/crypto/kzg"
	"github.com/jtraglia/peerdas-kzg/params"
)

// benchSetup builds a throwaway trusted setup from a random tau, the same
// "toxic waste" construction any local devnet or test fixture uses, routed
// through kzg.LoadSetup so the benchmarks exercise the exact same decoding
// path a mainnet ceremony file would.
func benchSetup(b *testing.B) *kzg.Setup {
	b.Helper()

	tau, err := new(bls12381.Fr).Rand(nil)
	if err != nil {
		b.Fatal(err)
	}

	g1 := bls12381.G1Generator()
	g1Jac := new(bls12381.G1Jacobian).FromAffine(g1)
	g1Monomial := make([]string, params.FieldElementsPerBlob)
	power := *new(bls12381.Fr).One()
	for i := range g1Monomial {
		p := new(bls12381.G1Jacobian).ScalarMul(g1Jac, &power)
		c := bls12381.CompressG1(p.ToAffine())
		g1Monomial[i] = "0x" + hex.EncodeToString(c[:])
		power.Mul(&power, tau)
	}

	g2 := bls12381.G2Generator()
	g2Jac := new(bls12381.G2Jacobian).FromAffine(g2)
	g2Monomial := make([]string, params.FieldElementsPerCell+1)
	power = *new(bls12381.Fr).One()
	for i := range g2Monomial {
		p := new(bls12381.G2Jacobian).ScalarMul(g2Jac, &power)
		c := bls12381.CompressG2(p.ToAffine())
		g2Monomial[i] = "0x" + hex.EncodeToString(c[:])
		power.Mul(&power, tau)
	}

	doc := kzg.JSONTrustedSetup{
		G1Monomial: g1Monomial,
		G2Monomial: g2Monomial,
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		b.Fatal(err)
	}

	setup, err := kzg.LoadSetup(bytes.NewReader(raw))
	if err != nil {
		b.Fatal(err)
	}
	return setup
}
