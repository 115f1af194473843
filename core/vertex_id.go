// SPDX-License-Identifier: MIT

package core

import (
	"math/bits"
	"sort"
	"strings"
	"sync"
)

// MaxOriginals is the maximum number of original vertices in one Universe.
// Exhaustive twin-width and isomorphism search are only feasible far below it.
const MaxOriginals = 64

// Universe registers original vertex names and assigns each a stable index.
// It is append-only and shared by a graph and every snapshot derived from it.
type Universe struct {
	mu    sync.RWMutex
	names []string
	index map[string]int
}

// NewUniverse returns an empty Universe.
func NewUniverse() *Universe {
	return &Universe{index: make(map[string]int)}
}

// register returns the index of name, adding it if needed.
func (u *Universe) register(name string) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if i, ok := u.index[name]; ok {
		return i, nil
	}
	if len(u.names) >= MaxOriginals {
		return 0, ErrTooManyVertices
	}
	u.index[name] = len(u.names)
	u.names = append(u.names, name)

	return len(u.names) - 1, nil
}

// Index returns the index of an original name.
func (u *Universe) Index(name string) (int, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	i, ok := u.index[name]

	return i, ok
}

// Name returns the original name stored at index i.
func (u *Universe) Name(i int) string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	if i < 0 || i >= len(u.names) {
		return ""
	}

	return u.names[i]
}

// Len returns the number of registered names.
func (u *Universe) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return len(u.names)
}

// Singleton returns the VertexID of the original vertex called name.
func (u *Universe) Singleton(name string) (VertexID, bool) {
	i, ok := u.Index(name)
	if !ok {
		return VertexID{}, false
	}

	return VertexID{set: 1 << uint(i), u: u}, true
}

// VertexID identifies a vertex by the set of original vertices it subsumes.
// It is comparable and usable as a map key. The zero value identifies nothing.
type VertexID struct {
	set uint64
	u   *Universe
}

// IsZero reports whether id is the zero VertexID.
func (id VertexID) IsZero() bool { return id.set == 0 }

// Len returns the number of original vertices in the set.
func (id VertexID) Len() int { return bits.OnesCount64(id.set) }

// Composite reports whether id represents more than one original vertex.
func (id VertexID) Composite() bool { return id.Len() > 1 }

// Universe returns the registry the indices refer to.
func (id VertexID) Universe() *Universe { return id.u }

// Union returns the set union of id and other.
// Both must come from the same Universe.
func (id VertexID) Union(other VertexID) VertexID {
	u := id.u
	if u == nil {
		u = other.u
	}

	return VertexID{set: id.set | other.set, u: u}
}

// Overlaps reports whether id and other share an original vertex.
func (id VertexID) Overlaps(other VertexID) bool {
	return id.u == other.u && id.set&other.set != 0
}

// Contains reports whether the original vertex called name is in the set.
func (id VertexID) Contains(name string) bool {
	if id.u == nil {
		return false
	}
	i, ok := id.u.Index(name)

	return ok && id.set&(1<<uint(i)) != 0
}

// Members returns the original names in the set, sorted.
func (id VertexID) Members() []string {
	if id.u == nil {
		return nil
	}
	out := make([]string, 0, id.Len())
	for s := id.set; s != 0; s &= s - 1 {
		out = append(out, id.u.Name(bits.TrailingZeros64(s)))
	}
	sort.Strings(out)

	return out
}

// String returns the label of id: the original name for a singleton,
// "{a,b,...}" with sorted members for a composite.
func (id VertexID) String() string {
	m := id.Members()
	switch len(m) {
	case 0:
		return ""
	case 1:
		return m[0]
	}

	return "{" + strings.Join(m, ",") + "}"
}

// Less orders VertexIDs by label, then by bitset.
func (id VertexID) Less(other VertexID) bool {
	a, b := id.String(), other.String()
	if a != b {
		return a < b
	}

	return id.set < other.set
}

// sortedIDs returns the keys of m ordered by bitset.
func sortedIDs[T any](m map[VertexID]T) []VertexID {
	out := make([]VertexID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].set < out[j].set })

	return out
}

// sortByLabel orders ids by label in place.
func sortByLabel(ids []VertexID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })
}
