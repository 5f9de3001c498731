package json

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectInsertAndGet(t *testing.T) {
	o := NewObject()
	o.Insert("a", NewInt(1))
	o.Insert("b", NewInt(2))

	v, ok := o.Get("a")
	require.True(t, ok)
	require.Equal(t, int64(1), v.numValue.Int64())

	v, ok = o.Get("b")
	require.True(t, ok)
	require.Equal(t, int64(2), v.numValue.Int64())

	_, ok = o.Get("missing")
	require.False(t, ok)
}

func TestObjectInsertOverwritesExisting(t *testing.T) {
	o := NewObject()
	o.Insert("a", NewInt(1))
	o.Insert("a", NewInt(2))

	require.Equal(t, 1, o.Len())
	v, ok := o.Get("a")
	require.True(t, ok)
	require.Equal(t, int64(2), v.numValue.Int64())
}

func TestObjectIterationIsInsertionOrder(t *testing.T) {
	o := NewObject()
	keys := []string{"z", "a", "m", "b"}
	for i, k := range keys {
		o.Insert(k, NewInt(int64(i)))
	}

	it := o.Iter()
	var got []string
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}

	require.Equal(t, keys, got)
}

func TestObjectIterIsDoubleEnded(t *testing.T) {
	o := NewObject()
	o.Insert("a", NewInt(1))
	o.Insert("b", NewInt(2))
	o.Insert("c", NewInt(3))

	it := o.Iter()
	require.Equal(t, 3, it.Len())

	k, _, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, "a", k)

	k, _, ok = it.Prev()
	require.True(t, ok)
	require.Equal(t, "c", k)

	k, _, ok = it.Next()
	require.True(t, ok)
	require.Equal(t, "b", k)

	_, _, ok = it.Next()
	require.False(t, ok)
}

func TestObjectRemove(t *testing.T) {
	o := NewObject()
	o.Insert("a", NewInt(1))
	o.Insert("b", NewInt(2))
	o.Insert("c", NewInt(3))

	v, ok := o.Remove("b")
	require.True(t, ok)
	require.Equal(t, int64(2), v.numValue.Int64())
	require.Equal(t, 2, o.Len())

	_, ok = o.Get("b")
	require.False(t, ok)

	// insertion order of survivors is preserved
	it := o.Iter()
	var got []string
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	require.Equal(t, []string{"a", "c"}, got)
}

func TestObjectClear(t *testing.T) {
	o := NewObject()
	o.Insert("a", NewInt(1))
	o.Clear()
	require.True(t, o.IsEmpty())
	require.Equal(t, 0, o.Len())
}

func TestObjectIndexMissingIsNull(t *testing.T) {
	o := NewObject()
	v := o.Index("missing")
	require.True(t, v.IsNull())
}

func TestObjectEqual(t *testing.T) {
	a := NewObject()
	a.Insert("x", NewInt(1))
	a.Insert("y", NewInt(2))

	b := NewObject()
	b.Insert("y", NewInt(2))
	b.Insert("x", NewInt(1))

	require.True(t, a.Equal(b), "objects with the same entries in different insertion order should be Equal")
}

// treeDepth walks the hashed binary tree (not the insertion-order vector)
// starting at index 0 and returns its maximum depth.
func treeDepth(o *Object) int {
	var walk func(idx int32) int
	walk = func(idx int32) int {
		if idx == noChild {
			return 0
		}
		node := o.nodes[idx]
		left := walk(node.left)
		right := walk(node.right)
		if left > right {
			return 1 + left
		}
		return 1 + right
	}
	if len(o.nodes) == 0 {
		return 0
	}
	return walk(0)
}

// TestObjectTreeStaysBalancedAcrossHashCollisionProneKeys is the spec.md §8
// end-to-end scenario: inserting "10000056".."10000059" in order must
// iterate back out in that same order, and the underlying tree must not
// degenerate into a linear chain.
func TestObjectTreeStaysBalancedAcrossHashCollisionProneKeys(t *testing.T) {
	keys := []string{"10000056", "10000057", "10000058", "10000059"}

	o := NewObject()
	for i, k := range keys {
		o.Insert(k, NewInt(int64(i)))
	}

	it := o.Iter()
	var got []string
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	require.Equal(t, keys, got, "iteration order must match insertion order")

	maxDepth := int(math.Ceil(math.Log2(float64(len(keys))))) + 1
	if depth := treeDepth(o); depth > maxDepth {
		t.Errorf("tree depth = %d, want <= %d (not a linear chain)", depth, maxDepth)
	}
}

func TestObjectWithCapacityPreallocates(t *testing.T) {
	o := NewObjectWithCapacity(16)
	require.Equal(t, 0, o.Len())
	require.GreaterOrEqual(t, cap(o.nodes), 16)
}
