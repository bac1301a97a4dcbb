package kzg

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/params"
	"github.com/jtraglia/peerdas-kzg/polynomial"
)

// JSONTrustedSetup mirrors the on-disk trusted setup document: hex-encoded
// compressed points in monomial basis (and, optionally, precomputed
// Lagrange-basis G1 points), the same shape go-ethereum's crypto/kzg.go
// decodes its embedded mainnet ceremony file into before converting it into
// working group elements.
type JSONTrustedSetup struct {
	G1Monomial []string `json:"g1_monomial"`
	G1Lagrange []string `json:"g1_lagrange"`
	G2Monomial []string `json:"g2_monomial"`
}

// Setup is the immutable, process-shareable object every prover/verifier
// context holds a reference to. It is built once, at load time, and never
// mutated afterward; every operation in this package treats it as
// read-only, so a single Setup can safely back any number of concurrent
// contexts.
type Setup struct {
	// G1Lagrange is the Lagrange-basis commit key: n G1 points such that
	// G1Lagrange[i] = [L_i(tau)]_1 for the i-th Lagrange basis polynomial
	// over the blob evaluation domain.
	G1Lagrange []bls12381.G1Affine

	// G1Monomial is the monomial-basis SRS: powers of tau in G1, used to
	// commit FK20 quotient polynomials (which are naturally produced in
	// coefficient form).
	G1Monomial []bls12381.G1Affine

	// G2Gen is [1]_2, the G2 generator.
	G2Gen bls12381.G2Affine

	// G2Tau is [tau]_2, used by the internal single-point KZG opening
	// check (component E); not part of the batched cell-proof check.
	G2Tau bls12381.G2Affine

	// G2TauL is [tau^l]_2, used in the batched cell-proof pairing check.
	G2TauL bls12381.G2Affine
}

// LoadSetup decodes a trusted setup document from r and builds a Setup:
// converting monomial G1 points to Lagrange form if no precomputed
// Lagrange basis was supplied, and validating every point's encoding,
// on-curve-ness, and subgroup membership. This is the only operation in
// the package permitted to be slow; everything downstream treats its
// result as an immutable, already-validated object.
func LoadSetup(r io.Reader) (*Setup, error) {
	var doc JSONTrustedSetup
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSetup, err)
	}
	if len(doc.G1Monomial) < params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: g1_monomial has %d points, need at least %d", ErrInvalidSetup, len(doc.G1Monomial), params.FieldElementsPerBlob)
	}
	if len(doc.G2Monomial) < params.FieldElementsPerCell+1 {
		return nil, fmt.Errorf("%w: g2_monomial has %d points, need at least %d", ErrInvalidSetup, len(doc.G2Monomial), params.FieldElementsPerCell+1)
	}

	g1Monomial, err := decodeG1Points(doc.G1Monomial)
	if err != nil {
		return nil, err
	}

	var g1Lagrange []bls12381.G1Affine
	if len(doc.G1Lagrange) > 0 {
		g1Lagrange, err = decodeG1Points(doc.G1Lagrange)
		if err != nil {
			return nil, err
		}
	} else {
		g1Lagrange, err = monomialToLagrangeG1(g1Monomial[:params.FieldElementsPerBlob])
		if err != nil {
			return nil, err
		}
	}
	if len(g1Lagrange) < params.FieldElementsPerBlob {
		return nil, fmt.Errorf("%w: g1_lagrange has %d points, need at least %d", ErrInvalidSetup, len(g1Lagrange), params.FieldElementsPerBlob)
	}

	g2Points, err := decodeG2Points(doc.G2Monomial)
	if err != nil {
		return nil, err
	}

	return &Setup{
		G1Lagrange: g1Lagrange[:params.FieldElementsPerBlob],
		G1Monomial: g1Monomial,
		G2Gen:      g2Points[0],
		G2Tau:      g2Points[1],
		G2TauL:     g2Points[params.FieldElementsPerCell],
	}, nil
}

func decodeG1Points(hexPoints []string) ([]bls12381.G1Affine, error) {
	out := make([]bls12381.G1Affine, len(hexPoints))
	for i, h := range hexPoints {
		b, err := decodeHexPoint(h, 48)
		if err != nil {
			return nil, fmt.Errorf("%w: g1 point %d: %v", ErrInvalidSetup, i, err)
		}
		p, err := bls12381.DecompressG1(b)
		if err != nil {
			return nil, fmt.Errorf("%w: g1 point %d: %v", ErrInvalidSetup, i, err)
		}
		out[i] = *p
	}
	return out, nil
}

func decodeG2Points(hexPoints []string) ([]bls12381.G2Affine, error) {
	out := make([]bls12381.G2Affine, len(hexPoints))
	for i, h := range hexPoints {
		b, err := decodeHexPoint(h, 96)
		if err != nil {
			return nil, fmt.Errorf("%w: g2 point %d: %v", ErrInvalidSetup, i, err)
		}
		p, err := bls12381.DecompressG2(b)
		if err != nil {
			return nil, fmt.Errorf("%w: g2 point %d: %v", ErrInvalidSetup, i, err)
		}
		out[i] = *p
	}
	return out, nil
}

func decodeHexPoint(s string, wantLen int) ([]byte, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("want %d bytes, got %d", wantLen, len(b))
	}
	return b, nil
}

// monomialToLagrangeG1 converts the first FieldElementsPerBlob monomial-SRS
// points into Lagrange-basis commit-key points via a size-n inverse NTT
// run directly over G1 group elements (the group is additive over the same
// Fr exponent structure the NTT butterfly network uses, so the scalar NTT
// algorithm applies unchanged with Fr add/scalar-mul swapped for G1
// point add/scalar-mul).
func monomialToLagrangeG1(monomial []bls12381.G1Affine) ([]bls12381.G1Affine, error) {
	d, err := polynomial.NewDomain(uint64(len(monomial)))
	if err != nil {
		return nil, err
	}
	jac := make([]bls12381.G1Jacobian, len(monomial))
	for i := range monomial {
		jac[i] = *new(bls12381.G1Jacobian).FromAffine(&monomial[i])
	}
	out := g1InverseNTT(jac, d)
	affine := make([]bls12381.G1Affine, len(out))
	for i := range out {
		affine[i] = *out[i].ToAffine()
	}
	return affine, nil
}
