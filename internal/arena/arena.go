// Package arena provides ordered key sequences backed by a free-list
// slab of nodes addressed by stable integer handles.
//
// The policies keep a map[K]→Handle next to each sequence, which gives
// O(1) membership, move-to-front, and erase without pointer aliasing:
// a Handle stays valid while the node is allocated, even across
// Transfer between lists sharing the same Arena.
package arena

// Handle addresses a node inside an Arena. Handles are stable for the
// lifetime of the node (until Remove/PopBack releases it, or the Arena
// is Reset).
type Handle int32

// None is the null handle.
const None Handle = -1

type node[K comparable] struct {
	key  K
	prev Handle
	next Handle
}

// Arena is a slab of list nodes with a free list for reuse.
// Several Lists may draw their nodes from one Arena; a node belongs to
// at most one List at a time.
type Arena[K comparable] struct {
	nodes []node[K]
	free  Handle // head of the free chain, linked via next
}

// New returns an Arena with room for sizeHint nodes before growing.
func New[K comparable](sizeHint int) *Arena[K] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Arena[K]{
		nodes: make([]node[K], 0, sizeHint),
		free:  None,
	}
}

// Key returns the key stored at h. h must be allocated.
func (a *Arena[K]) Key(h Handle) K { return a.nodes[h].key }

// Reset releases every node at once. Lists built on the arena must be
// reset by their owners as well; their handles become invalid.
func (a *Arena[K]) Reset() {
	a.nodes = a.nodes[:0]
	a.free = None
}

func (a *Arena[K]) alloc(k K) Handle {
	if h := a.free; h != None {
		a.free = a.nodes[h].next
		a.nodes[h] = node[K]{key: k, prev: None, next: None}
		return h
	}
	a.nodes = append(a.nodes, node[K]{key: k, prev: None, next: None})
	return Handle(len(a.nodes) - 1)
}

func (a *Arena[K]) release(h Handle) {
	var zero K
	a.nodes[h] = node[K]{key: zero, prev: None, next: a.free}
	a.free = h
}

// List is an ordered key sequence: front is MRU, back is LRU.
// The zero value is NOT ready to use; construct with NewList.
type List[K comparable] struct {
	head Handle
	tail Handle
	n    int
}

// NewList returns an empty list. Nodes are owned by the Arena the list
// is used with; a list must only ever be used with a single Arena.
func NewList[K comparable]() List[K] {
	return List[K]{head: None, tail: None}
}

// Len returns the number of nodes in the list.
func (l *List[K]) Len() int { return l.n }

// Front returns the MRU handle, or None when empty.
func (l *List[K]) Front() Handle { return l.head }

// Back returns the LRU handle, or None when empty.
func (l *List[K]) Back() Handle { return l.tail }

// Reset empties the list without releasing nodes; pair with Arena.Reset.
func (l *List[K]) Reset() {
	l.head, l.tail, l.n = None, None, 0
}

// PushFront allocates a node for k and inserts it at MRU.
func (a *Arena[K]) PushFront(l *List[K], k K) Handle {
	h := a.alloc(k)
	a.linkFront(l, h)
	return h
}

// MoveToFront promotes h to the MRU position of its list.
func (a *Arena[K]) MoveToFront(l *List[K], h Handle) {
	if l.head == h {
		return
	}
	a.unlink(l, h)
	a.linkFront(l, h)
}

// Transfer moves h from src to the MRU position of dst.
// The handle stays valid, so key→Handle maps need no update.
func (a *Arena[K]) Transfer(src, dst *List[K], h Handle) {
	a.unlink(src, h)
	a.linkFront(dst, h)
}

// Remove detaches h from l, releases the node, and returns its key.
func (a *Arena[K]) Remove(l *List[K], h Handle) K {
	k := a.nodes[h].key
	a.unlink(l, h)
	a.release(h)
	return k
}

// Keys appends the keys of l in MRU→LRU order to dst and returns it.
func (a *Arena[K]) Keys(l *List[K], dst []K) []K {
	for h := l.head; h != None; h = a.nodes[h].next {
		dst = append(dst, a.nodes[h].key)
	}
	return dst
}

// PopBack removes and returns the LRU key, or ok=false when empty.
func (a *Arena[K]) PopBack(l *List[K]) (K, bool) {
	if l.tail == None {
		var zero K
		return zero, false
	}
	return a.Remove(l, l.tail), true
}

func (a *Arena[K]) linkFront(l *List[K], h Handle) {
	a.nodes[h].prev = None
	a.nodes[h].next = l.head
	if l.head != None {
		a.nodes[l.head].prev = h
	}
	l.head = h
	if l.tail == None {
		l.tail = h
	}
	l.n++
}

func (a *Arena[K]) unlink(l *List[K], h Handle) {
	p, nx := a.nodes[h].prev, a.nodes[h].next
	if p != None {
		a.nodes[p].next = nx
	} else {
		l.head = nx
	}
	if nx != None {
		a.nodes[nx].prev = p
	} else {
		l.tail = p
	}
	a.nodes[h].prev, a.nodes[h].next = None, None
	l.n--
}
