package polynomial

import (
	"fmt"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
)

// NTT computes the forward number-theoretic transform of values (length
// must equal d.Size) in place order, returning the evaluations of the
// polynomial with those coefficients at every point of d's domain, via the
// standard iterative radix-2 Cooley-Tukey butterfly network.
func NTT(d *Domain, values []bls12381.Fr) ([]bls12381.Fr, error) {
	if uint64(len(values)) != d.Size {
		return nil, fmt.Errorf("polynomial: NTT: expected %d values, got %d", d.Size, len(values))
	}
	out := make([]bls12381.Fr, len(values))
	copy(out, values)
	nttInPlace(out, d.Roots, d.Size)
	return out, nil
}

// InverseNTT computes the inverse transform, recovering coefficients from
// evaluations.
func InverseNTT(d *Domain, values []bls12381.Fr) ([]bls12381.Fr, error) {
	if uint64(len(values)) != d.Size {
		return nil, fmt.Errorf("polynomial: InverseNTT: expected %d values, got %d", d.Size, len(values))
	}
	out := make([]bls12381.Fr, len(values))
	copy(out, values)
	nttInPlace(out, d.RootsInv, d.Size)
	for i := range out {
		out[i] = *new(bls12381.Fr).Mul(&out[i], &d.SizeInv)
	}
	return out, nil
}

// nttInPlace runs the iterative bit-reversal + butterfly Cooley-Tukey NTT
// over values using the supplied table of roots (roots[i] = root^i for the
// transform's primitive root), the layout go-ethereum's FFT settings use
// for blob-sized transforms.
func nttInPlace(values []bls12381.Fr, roots []bls12381.Fr, n uint64) {
	bitReverse(values)
	rootStride := uint64(len(roots)) / n

	for size := uint64(2); size <= n; size <<= 1 {
		half := size / 2
		step := n / size
		for start := uint64(0); start < n; start += size {
			for i := uint64(0); i < half; i++ {
				root := roots[i*step*rootStride]
				u := values[start+i]
				var t bls12381.Fr
				t.Mul(&values[start+i+half], &root)

				var sum, diff bls12381.Fr
				sum.Add(&u, &t)
				diff.Sub(&u, &t)
				values[start+i] = sum
				values[start+i+half] = diff
			}
		}
	}
}

func bitReverse(values []bls12381.Fr) {
	n := uint64(len(values))
	logN := uint(0)
	for (uint64(1) << logN) < n {
		logN++
	}
	for i := uint64(0); i < n; i++ {
		j := reverseBits(i, logN)
		if i < j {
			values[i], values[j] = values[j], values[i]
		}
	}
}

func reverseBits(x uint64, bits uint) uint64 {
	var out uint64
	for i := uint(0); i < bits; i++ {
		out |= ((x >> i) & 1) << (bits - 1 - i)
	}
	return out
}

// CosetNTT evaluates the polynomial with the given coefficients at the
// points of a coset of d's domain shifted by shift.
func CosetNTT(d *Domain, coeffs []bls12381.Fr, shift *bls12381.Fr) ([]bls12381.Fr, error) {
	shifted := make([]bls12381.Fr, len(coeffs))
	power := new(bls12381.Fr).One()
	for i := range coeffs {
		shifted[i] = *new(bls12381.Fr).Mul(&coeffs[i], power)
		power.Mul(power, shift)
	}
	return NTT(d, shifted)
}

// InverseCosetNTT inverts CosetNTT: given evaluations on a shifted coset,
// recover the polynomial's coefficients.
func InverseCosetNTT(d *Domain, values []bls12381.Fr, shift *bls12381.Fr) ([]bls12381.Fr, error) {
	coeffs, err := InverseNTT(d, values)
	if err != nil {
		return nil, err
	}
	shiftInv := new(bls12381.Fr).Inverse(shift)
	power := new(bls12381.Fr).One()
	for i := range coeffs {
		coeffs[i] = *new(bls12381.Fr).Mul(&coeffs[i], power)
		power.Mul(power, shiftInv)
	}
	return coeffs, nil
}
