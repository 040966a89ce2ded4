package generator

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform random integers for pool indexing. Implementations
// must return values in [0, n). Tests substitute a deterministic source.
type Source interface {
	IntN(n int) (int, error)
}

// cryptoSource draws from crypto/rand; rand.Int rejects biased values, so the
// result is uniform.
type cryptoSource struct{}

func (cryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
