package kzg

import (
	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
	"github.com/jtraglia/peerdas-kzg/polynomial"
)

// g1NTT and g1InverseNTT mirror polynomial.NTT/InverseNTT exactly, but over
// G1 group elements instead of Fr scalars: the Cooley-Tukey butterfly
// network only needs an abelian group plus scalar multiplication by the
// domain's roots of unity, both of which G1 provides, so the same
// bit-reversal + staged-butterfly structure applies unchanged. This is the
// conversion step the trusted setup loader uses to go from a monomial-basis
// SRS to the Lagrange-basis commit key without ever forming field-element
// divisions over group elements.
func g1NTT(values []bls12381.G1Jacobian, d *polynomial.Domain) []bls12381.G1Jacobian {
	return g1NTTWithRoots(values, d.Roots)
}

func g1InverseNTT(values []bls12381.G1Jacobian, d *polynomial.Domain) []bls12381.G1Jacobian {
	out := g1NTTWithRoots(values, d.RootsInv)
	sizeInvBig := d.SizeInv
	for i := range out {
		out[i] = *new(bls12381.G1Jacobian).ScalarMul(&out[i], &sizeInvBig)
	}
	return out
}

func g1NTTWithRoots(values []bls12381.G1Jacobian, roots []bls12381.Fr) []bls12381.G1Jacobian {
	n := uint64(len(values))
	out := make([]bls12381.G1Jacobian, n)
	copy(out, values)
	g1BitReverse(out)

	rootStride := uint64(len(roots)) / n
	for size := uint64(2); size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := uint64(0); start < n; start += size {
			for i := uint64(0); i < half; i++ {
				root := roots[i*step*rootStride]
				u := out[start+i]
				t := *new(bls12381.G1Jacobian).ScalarMul(&out[start+i+half], &root)

				var sum, diff bls12381.G1Jacobian
				sum.Add(&u, &t)
				var negT bls12381.G1Jacobian
				negT.Neg(&t)
				diff.Add(&u, &negT)
				out[start+i] = sum
				out[start+i+half] = diff
			}
		}
	}
	return out
}

func g1BitReverse(values []bls12381.G1Jacobian) {
	n := uint64(len(values))
	logN := uint(0)
	for (uint64(1) << logN) < n {
		logN++
	}
	for i := uint64(0); i < n; i++ {
		j := reverseBits64(i, logN)
		if i < j {
			values[i], values[j] = values[j], values[i]
		}
	}
}

func reverseBits64(x uint64, bits uint) uint64 {
	var out uint64
	for i := uint(0); i < bits; i++ {
		out |= ((x >> i) & 1) << (bits - 1 - i)
	}
	return out
}
