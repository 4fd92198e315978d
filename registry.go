package goPassword

import (
	"sort"

	"github.com/MrEthical07/goPassword/hash"
)

// registry is the immutable algorithm id to hasher map. It is populated by
// Builder.Build and never mutated afterwards, so concurrent reads from
// arbitrarily many verification goroutines need no synchronization.
type registry struct {
	hashers map[AlgorithmID]hash.Hasher
}

func (r *registry) resolve(id AlgorithmID) (hash.Hasher, bool) {
	h, ok := r.hashers[id]
	return h, ok
}

func (r *registry) ids() []AlgorithmID {
	out := make([]AlgorithmID, 0, len(r.hashers))
	for id := range r.hashers {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
