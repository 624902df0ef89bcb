// Package comparisons checks the trees against well known ordered containers
// and benchmarks them against those and a few concurrent hash maps.
package comparisons

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash"
)

const (
	benchmarkItemCount = 1 << 14
	oracleOps          = 30000
	oracleValRange     = 5000
)

var rg = *rand.New(rand.NewSource(0))

// scattered returns n distinct keys spread over the int range by xxhash, so
// the insertion order is random but the same on every run.
func scattered(n int) []int {
	res := make([]int, 0, n)
	seen := make(map[int]struct{}, n)
	var buf [8]byte
	for i := uint64(0); len(res) < n; i++ {
		binary.LittleEndian.PutUint64(buf[:], i)
		k := int(xxhash.Sum64(buf[:]) >> 2)
		if _, in := seen[k]; !in {
			seen[k] = struct{}{}
			res = append(res, k)
		}
	}
	return res
}
