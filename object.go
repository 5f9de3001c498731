package json

// noChild marks an absent left/right edge. Go has no niche optimisation for
// an Option<NonZeroU32> the way the original Rust Object does, so spec.md
// §9's documented fallback applies: a plain int32 with -1 meaning "none".
const noChild int32 = -1

// objectNode is a single Object entry: key, FNV-1a hash of the key, value,
// and two indices into the same backing slice for the hashed binary tree
// overlay.
type objectNode struct {
	key   string
	hash  uint64
	value Value
	left  int32
	right int32
}

// Object is an ordered string-keyed map. Insertion order is preserved in
// the backing slice; a hashed binary tree over that same slice gives
// lookup better than linear time without disturbing iteration order.
//
// The tree is a lookup overlay only: iterating an Object always walks the
// slice in insertion order, regardless of the tree's shape.
type Object struct {
	nodes []objectNode
}

// NewObject returns an empty Object. No allocation happens until the first
// insert.
func NewObject() *Object {
	return &Object{}
}

// NewObjectWithCapacity returns an empty Object with room preallocated for
// capacity entries, mirroring original_source's Object::with_capacity (used
// by the parser when it opens a `{`).
func NewObjectWithCapacity(capacity int) *Object {
	return &Object{nodes: make([]objectNode, 0, capacity)}
}

// hashKey computes the 64-bit FNV-1a hash of key, used purely to route
// lookups through the tree; it has no cryptographic purpose.
func hashKey(key string) uint64 {
	var hash uint64 = 0xcbf29ce484222325
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= 0x100000001b3
	}
	return hash
}

// findResult distinguishes a hit (existing index) from a miss that can be
// grown by attaching a new node to the returned parent slot.
type findResult struct {
	hit        bool
	index      int
	parentSlot *int32
}

// find descends the tree comparing hashes first, then keys, so that the
// common case of a hash mismatch never touches the key bytes.
func (o *Object) find(key string, hash uint64) findResult {
	idx := 0
	for idx < len(o.nodes) {
		node := &o.nodes[idx]
		switch {
		case hash == node.hash && key == node.key:
			return findResult{hit: true, index: idx}
		case hash < node.hash:
			if node.left == noChild {
				return findResult{parentSlot: &node.left}
			}
			idx = int(node.left)
		default:
			if node.right == noChild {
				return findResult{parentSlot: &node.right}
			}
			idx = int(node.right)
		}
	}
	return findResult{}
}

// Insert adds a new key/value pair, or overwrites the value of an existing
// key, and returns the entry's index in insertion order.
func (o *Object) Insert(key string, value Value) int {
	hash := hashKey(key)
	result := o.find(key, hash)
	if result.hit {
		o.nodes[result.index].value = value
		return result.index
	}

	idx := int32(len(o.nodes))
	if result.parentSlot != nil {
		*result.parentSlot = idx
	}
	o.nodes = append(o.nodes, objectNode{key: key, hash: hash, value: value, left: noChild, right: noChild})
	return int(idx)
}

// Get returns the value stored under key, and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	result := o.find(key, hashKey(key))
	if !result.hit {
		return Value{}, false
	}
	return o.nodes[result.index].value, true
}

// GetPtr returns a pointer to the stored value for in-place mutation, or
// nil if key is absent.
func (o *Object) GetPtr(key string) *Value {
	result := o.find(key, hashKey(key))
	if !result.hit {
		return nil
	}
	return &o.nodes[result.index].value
}

// Remove deletes key, returning its value and whether it was present.
//
// Because tree edges reference slice indices, removing a node in place
// would invalidate every edge pointing past it. The policy (spec.md §4.3,
// §9) is instead to rebuild: walk the old slice in insertion order and
// reinsert every node but the removed one. This is O(n log n) and is
// accepted because removal is rare for serialised JSON payloads.
func (o *Object) Remove(key string) (Value, bool) {
	result := o.find(key, hashKey(key))
	if !result.hit {
		return Value{}, false
	}

	removedIndex := result.index
	old := o.nodes
	o.nodes = make([]objectNode, 0, cap(old))

	var removed Value
	for i, node := range old {
		if i == removedIndex {
			removed = node.value
			continue
		}
		o.Insert(node.key, node.value)
	}

	return removed, true
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.nodes)
}

// IsEmpty reports whether the Object has no entries.
func (o *Object) IsEmpty() bool {
	return len(o.nodes) == 0
}

// Clear wipes all entries. Backing capacity is retained.
func (o *Object) Clear() {
	o.nodes = o.nodes[:0]
}

// Index returns the value at key, or a shared Null Value if key is absent.
// This mirrors JSON's usual bag ergonomics: missing keys read as null
// rather than panicking or erroring.
func (o *Object) Index(key string) Value {
	if v, ok := o.Get(key); ok {
		return v
	}
	return Value{kind: KindNull}
}

// IndexMut returns a pointer to the value at key, inserting a Null entry
// first if key is absent.
func (o *Object) IndexMut(key string) *Value {
	if p := o.GetPtr(key); p != nil {
		return p
	}
	o.Insert(key, Value{kind: KindNull})
	return o.GetPtr(key)
}

// ObjectIter walks an Object's entries in insertion order. It is
// double-ended and knows its own length, matching the Rust Iter/IterMut
// contract in spec.md §4.3.
type ObjectIter struct {
	nodes []objectNode
	front int
	back  int
}

// Iter returns an iterator over o's entries in insertion order.
func (o *Object) Iter() *ObjectIter {
	return &ObjectIter{nodes: o.nodes, front: 0, back: len(o.nodes)}
}

// EmptyObjectIter returns an iterator that always yields nothing, so that
// callers indexing a non-Object can return an iterator without a
// conditional allocation.
func EmptyObjectIter() *ObjectIter {
	return &ObjectIter{}
}

// Len reports how many entries remain unvisited.
func (it *ObjectIter) Len() int {
	return it.back - it.front
}

// Next returns the next entry in insertion order, or ok=false when
// exhausted.
func (it *ObjectIter) Next() (key string, value Value, ok bool) {
	if it.front >= it.back {
		return "", Value{}, false
	}
	node := it.nodes[it.front]
	it.front++
	return node.key, node.value, true
}

// Prev returns the last remaining entry in insertion order, or ok=false
// when exhausted.
func (it *ObjectIter) Prev() (key string, value Value, ok bool) {
	if it.front >= it.back {
		return "", Value{}, false
	}
	it.back--
	node := it.nodes[it.back]
	return node.key, node.value, true
}

// Equal compares two Objects as unordered bags: same length, and every key
// in o maps to an equal value in other.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for _, node := range o.nodes {
		otherValue, ok := other.Get(node.key)
		if !ok || !otherValue.Equal(node.value) {
			return false
		}
	}
	return true
}

// clone returns a copy of o with its own node slice. The copy is shallow:
// Array and Object values nested inside the entries are shared with o.
func (o *Object) clone() *Object {
	if o == nil {
		return nil
	}
	nodes := make([]objectNode, len(o.nodes))
	copy(nodes, o.nodes)
	return &Object{nodes: nodes}
}
