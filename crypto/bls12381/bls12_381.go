// Package bls12381 implements the field, curve and pairing arithmetic for
// BLS12-381, ported in the spirit of go-ethereum's crypto/bls12381 package
// (itself a Go port of kilic/bls12-381): fixed-size limb arrays in
// Montgomery form, Jacobian group coordinates, and an optimal ate pairing
// with a shared final exponentiation for multi-pairing checks.
//
// Every exported operation that accepts externally-supplied bytes validates
// its input (canonical field encoding, on-curve, correct subgroup) before
// doing any further arithmetic, per the propagation policy that input
// errors must surface before cryptographic work begins.
package bls12381

import "math/big"

func mustBig(dec string) *big.Int {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("bls12381: invalid constant " + dec)
	}
	return v
}

// padBytes left-pads b with zeros until it is n bytes long.
func padBytes(b []byte, n int) []byte {
	if len(b) >= n {
		return b[len(b)-n:]
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}
