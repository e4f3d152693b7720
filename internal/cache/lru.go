package cache

// lruNode is a node in a doubly-linked LRU list.
type lruNode[V any] struct {
	value V
	prev  *lruNode[V]
	next  *lruNode[V]
}

// lruList is a doubly-linked list for LRU eviction.
// The head is the most recently used, the tail the least recently used.
type lruList[V any] struct {
	head *lruNode[V]
	tail *lruNode[V]
	len  int
}

func newLRUList[V any]() *lruList[V] {
	return &lruList[V]{}
}

// Len returns the number of nodes in the list.
func (l *lruList[V]) Len() int {
	return l.len
}

// PushFront adds a new node at the front and returns it.
func (l *lruList[V]) PushFront(v V) *lruNode[V] {
	node := &lruNode[V]{value: v}
	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		node.next = l.head
		l.head.prev = node
		l.head = node
	}
	l.len++
	return node
}

// MoveToFront marks node as the most recently used.
func (l *lruList[V]) MoveToFront(node *lruNode[V]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

// Remove removes a node from the list.
func (l *lruList[V]) Remove(node *lruNode[V]) {
	if node == nil {
		return
	}
	l.unlink(node)
}

// Oldest returns the least recently used node, or nil for an empty list.
func (l *lruList[V]) Oldest() *lruNode[V] {
	return l.tail
}

// Clear removes all nodes from the list.
func (l *lruList[V]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

// unlink removes a node from the list and clears its links.
func (l *lruList[V]) unlink(node *lruNode[V]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
