// Package polynomial implements polynomial arithmetic over the BLS12-381
// scalar field: forward/inverse NTTs, coset NTTs for Reed-Solomon
// extension, and barycentric evaluation, mirroring the layout of
// go-ethereum's crypto/kzg util.go domain-construction helpers but
// generalized to the variable domain sizes FK20 and cell recovery need
// (blob domain, extended domain, and per-cell coset).
package polynomial

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/jtraglia/peerdas-kzg/crypto/bls12381"
)

// primitiveRootGenerator is a known generator of the multiplicative group
// Fr* for BLS12-381, the same constant go-ethereum's crypto/kzg/util.go starts its
// domain construction from.
const primitiveRootGenerator = 7

// Domain holds the n-th roots of unity (n a power of two) used to run an
// NTT of size n, plus n^-1 for the inverse transform.
type Domain struct {
	Size      uint64
	Root      bls12381.Fr   // a primitive n-th root of unity
	RootInv   bls12381.Fr   // Root^-1
	Roots     []bls12381.Fr // Root^0, Root^1, ..., Root^(n-1)
	RootsInv  []bls12381.Fr // RootInv^0, ..., RootInv^(n-1)
	SizeInv   bls12381.Fr   // n^-1 mod r
}

var (
	domainCacheMu sync.Mutex
	domainCache   = map[uint64]*Domain{}
)

// NewDomain returns the Domain of the given power-of-two size, computing
// and caching it on first use since the same handful of sizes (the blob
// domain, the extended domain, the per-cell domain) are reused across
// every commitment and proof operation.
func NewDomain(size uint64) (*Domain, error) {
	if size == 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("polynomial: domain size %d is not a power of two", size)
	}
	domainCacheMu.Lock()
	defer domainCacheMu.Unlock()
	if d, ok := domainCache[size]; ok {
		return d, nil
	}

	root, err := rootOfUnity(size)
	if err != nil {
		return nil, err
	}
	rootInv := new(bls12381.Fr).Inverse(root)

	roots := make([]bls12381.Fr, size)
	rootsInv := make([]bls12381.Fr, size)
	roots[0] = *new(bls12381.Fr).One()
	rootsInv[0] = *new(bls12381.Fr).One()
	for i := uint64(1); i < size; i++ {
		roots[i] = *new(bls12381.Fr).Mul(&roots[i-1], root)
		rootsInv[i] = *new(bls12381.Fr).Mul(&rootsInv[i-1], rootInv)
	}

	sizeInv := new(bls12381.Fr).Inverse(bls12381.NewFrFromUint64(size))

	d := &Domain{
		Size:     size,
		Root:     *root,
		RootInv:  *rootInv,
		Roots:    roots,
		RootsInv: rootsInv,
		SizeInv:  *sizeInv,
	}
	domainCache[size] = d
	return d, nil
}

// rootOfUnity returns a primitive size-th root of unity in Fr by raising
// the fixed generator of Fr* to (r-1)/size.
func rootOfUnity(size uint64) (*bls12381.Fr, error) {
	rMinus1 := new(big.Int).Sub(bls12381.FrModulus(), big.NewInt(1))
	sizeBig := new(big.Int).SetUint64(size)
	exp := new(big.Int).Div(rMinus1, sizeBig)
	if new(big.Int).Mod(rMinus1, sizeBig).Sign() != 0 {
		return nil, fmt.Errorf("polynomial: size %d does not divide r-1", size)
	}
	gen := bls12381.NewFrFromUint64(primitiveRootGenerator)
	root := new(bls12381.Fr).Exp(gen, exp)
	return root, nil
}

// CosetShift returns the Fr element representing the standard shift used to
// build a multiplicative coset of the domain (the generator itself, as
// go-ethereum's extended-blob construction uses).
func CosetShift() *bls12381.Fr {
	return bls12381.NewFrFromUint64(primitiveRootGenerator)
}
