package bls12381

import "testing"

func TestG1GeneratorOnCurve(t *testing.T) {
	g := G1Generator()
	if !g.IsOnCurve() {
		t.Fatal("G1 generator must satisfy the curve equation")
	}
	if !g.IsInSubgroup() {
		t.Fatal("G1 generator must lie in the prime-order subgroup")
	}
}

func TestG1AdditiveProperties(t *testing.T) {
	g := new(G1Jacobian).FromAffine(G1Generator())
	double := new(G1Jacobian).Double(g)
	sum := new(G1Jacobian).Add(g, g)
	if !double.ToAffine().Equal(sum.ToAffine()) {
		t.Fatal("double(G) must equal G + G")
	}

	three := new(G1Jacobian).Add(double, g)
	threeViaScalar := new(G1Jacobian).ScalarMul(g, NewFrFromUint64(3))
	if !three.ToAffine().Equal(threeViaScalar.ToAffine()) {
		t.Fatal("3*G via repeated addition must equal 3*G via scalar multiplication")
	}
}

func TestG1CompressedSerializationRoundTrip(t *testing.T) {
	g := new(G1Jacobian).FromAffine(G1Generator()).ScalarMul(new(G1Jacobian).FromAffine(G1Generator()), NewFrFromUint64(12345)).ToAffine()
	enc := CompressG1(g)
	dec, err := DecompressG1(enc[:])
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(dec) {
		t.Fatal("G1 compressed round-trip changed the point")
	}
}

func TestG1InfinitySerialization(t *testing.T) {
	inf := new(G1Affine).Infinity()
	enc := CompressG1(inf)
	dec, err := DecompressG1(enc[:])
	if err != nil {
		t.Fatal(err)
	}
	if !dec.IsInfinity {
		t.Fatal("infinity encoding must decode back to infinity")
	}
}

func TestMultiScalarMulMatchesSequentialSum(t *testing.T) {
	g := G1Generator()
	points := make([]G1Affine, 5)
	scalars := make([]Fr, 5)
	expected := new(G1Jacobian)
	expected.X.Zero()
	expected.Y.One()
	expected.Z.Zero()
	for i := range points {
		points[i] = *g
		scalars[i] = *NewFrFromUint64(uint64(i + 1))
		term := new(G1Jacobian).ScalarMul(new(G1Jacobian).FromAffine(g), &scalars[i])
		expected.Add(expected, term)
	}
	got, err := MultiScalarMul(points, scalars)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(expected.ToAffine()) {
		t.Fatal("MultiScalarMul must match the sequential weighted sum")
	}
}

func TestMultiScalarMulMismatchedLengths(t *testing.T) {
	_, err := MultiScalarMul(make([]G1Affine, 2), make([]Fr, 3))
	if err == nil {
		t.Fatal("expected an error for mismatched points/scalars lengths")
	}
}
