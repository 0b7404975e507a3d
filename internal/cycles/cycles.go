// Package cycles decomposes permutations into disjoint cycles and groups
// them by length for the eigen-ring display: a length-k cycle contributes
// the k-th roots of unity to the permutation matrix's spectrum.
package cycles

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/SeamusWaldron/permcube/internal/perm"
)

// Cycle is one orbit of positions, in the order they are visited from its
// smallest position.
type Cycle []int

// Decompose splits p into disjoint cycles. Positions are scanned left to
// right; each unvisited position starts a cycle that follows i -> p[i].
// Fixed points are kept only when includeFixed is set. The result is sorted
// by descending length, ties keeping discovery order.
func Decompose(p perm.Perm, includeFixed bool) ([]Cycle, error) {
	if err := perm.Validate(p); err != nil {
		return nil, err
	}
	var out []Cycle
	seen := make([]bool, len(p))
	for i := range p {
		if seen[i] {
			continue
		}
		var c Cycle
		for j := i; !seen[j]; j = p[j] {
			seen[j] = true
			c = append(c, j)
		}
		if len(c) > 1 || includeFixed {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return len(out[a]) > len(out[b])
	})
	return out, nil
}

// Buckets maps cycle length to the cycles of that length.
type Buckets struct {
	lengths []int
	byLen   map[int][]Cycle
}

// BucketByLength groups cycles by length. Lengths keep first-seen order and
// cycles keep input order within a bucket.
func BucketByLength(cs []Cycle) Buckets {
	b := Buckets{byLen: make(map[int][]Cycle)}
	for _, c := range cs {
		k := len(c)
		if _, ok := b.byLen[k]; !ok {
			b.lengths = append(b.lengths, k)
		}
		b.byLen[k] = append(b.byLen[k], c)
	}
	return b
}

// Lengths returns the bucket keys in first-seen order.
func (b Buckets) Lengths() []int {
	return append([]int(nil), b.lengths...)
}

// Get returns the cycles of length k.
func (b Buckets) Get(k int) []Cycle {
	return b.byLen[k]
}

// Len returns the number of buckets.
func (b Buckets) Len() int {
	return len(b.lengths)
}

// SumBucketSizes counts every position across all cycles in all buckets.
// With fixed points included this is perm.Size for any valid permutation.
func SumBucketSizes(b Buckets) int {
	total := 0
	for _, cs := range b.byLen {
		for _, c := range cs {
			total += len(c)
		}
	}
	return total
}

// RootsOfUnityAngles returns the k angles 2*pi*j/k for j = 0..k-1, in
// radians, 0 at +x and counter-clockwise.
func RootsOfUnityAngles(k int) []float64 {
	if k <= 0 {
		return nil
	}
	out := make([]float64, k)
	for j := range out {
		out[j] = 2 * math.Pi * float64(j) / float64(k)
	}
	return out
}

// Order returns the order of the permutation the cycles came from: the
// least common multiple of their lengths.
func Order(cs []Cycle) int {
	order := 1
	for _, c := range cs {
		order = lcm(order, len(c))
	}
	return order
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// Signature renders the cycle type as "length^count" terms, longest first,
// e.g. "4^5 1^28".
func Signature(b Buckets) string {
	lengths := b.Lengths()
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	parts := make([]string, len(lengths))
	for i, k := range lengths {
		parts[i] = fmt.Sprintf("%d^%d", k, len(b.byLen[k]))
	}
	return strings.Join(parts, " ")
}
