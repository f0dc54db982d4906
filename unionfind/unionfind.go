package unionfind

import "fmt"

// Set is a disjoint-set forest over a fixed universe of members.
// Members are mapped to dense indices once, so Reset can reuse the same key set.
type Set[T comparable] struct {
	index   map[T]int // member -> dense index
	members []T       // dense index -> member
	parent  []int     // parent index, roots point to themselves
	rank    []int     // upper bound on tree height, only meaningful for roots
}

// New creates a Set where every member starts in its own singleton set.
// Duplicate members are ignored.
func New[T comparable](members []T) *Set[T] {
	s := &Set[T]{
		index:   make(map[T]int, len(members)),
		members: make([]T, 0, len(members)),
		parent:  make([]int, 0, len(members)),
		rank:    make([]int, 0, len(members)),
	}
	for _, m := range members {
		if _, ok := s.index[m]; ok {
			continue
		}
		s.index[m] = len(s.members)
		s.parent = append(s.parent, len(s.members))
		s.rank = append(s.rank, 0)
		s.members = append(s.members, m)
	}
	return s
}

// Len returns the number of members in the universe.
func (s *Set[T]) Len() int {
	return len(s.members)
}

// Find returns the index of the root of x's set, compressing the path from x to the root.
// It panics if x is not a member.
func (s *Set[T]) Find(x T) int {
	i, ok := s.index[x]
	if !ok {
		panic(fmt.Sprintf("unionfind: %v is not a member", x))
	}
	return s.root(i)
}

func (s *Set[T]) root(i int) int {
	r := i
	for s.parent[r] != r {
		r = s.parent[r]
	}
	for s.parent[i] != r {
		next := s.parent[i]
		s.parent[i] = r
		i = next
	}
	return r
}

// Union merges the sets containing x and y. The lower-rank root is attached under the
// higher-rank one; on a tie the surviving root's rank grows by one.
func (s *Set[T]) Union(x, y T) {
	rx := s.Find(x)
	ry := s.Find(y)
	if rx == ry {
		return
	}

	if s.rank[rx] < s.rank[ry] {
		s.parent[rx] = ry
		return
	}
	s.parent[ry] = rx
	if s.rank[rx] == s.rank[ry] {
		s.rank[rx]++
	}
}

// Connected reports whether x and y are in the same set.
func (s *Set[T]) Connected(x, y T) bool {
	return s.Find(x) == s.Find(y)
}

// Reset puts every member back into its own singleton set.
func (s *Set[T]) Reset() {
	for i := range s.parent {
		s.parent[i] = i
		s.rank[i] = 0
	}
}

// Representatives returns one member per distinct set, in member order.
func (s *Set[T]) Representatives() []T {
	out := make([]T, 0, len(s.members))
	for i, p := range s.parent {
		if p == i {
			out = append(out, s.members[i])
		}
	}
	return out
}
