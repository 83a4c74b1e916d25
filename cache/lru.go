package cache

// lruNode is an element of an lruList.
type lruNode[K any] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is a doubly linked list of keys, most recently used first.
// The zero value is an empty list. It is not safe for concurrent use;
// the owning shard's lock guards it.
type lruList[K any] struct {
	head, tail *lruNode[K]
	n          int
}

func (l *lruList[K]) len() int { return l.n }

// pushFront inserts key as the most recently used element.
func (l *lruList[K]) pushFront(key K) *lruNode[K] {
	node := &lruNode[K]{key: key}
	l.linkFront(node)
	l.n++
	return node
}

// moveToFront marks node as most recently used.
func (l *lruList[K]) moveToFront(node *lruNode[K]) {
	if l.head == node {
		return
	}
	l.unlink(node)
	l.linkFront(node)
}

// remove deletes node from the list.
func (l *lruList[K]) remove(node *lruNode[K]) {
	l.unlink(node)
	l.n--
}

// removeOldest deletes and returns the least recently used key.
func (l *lruList[K]) removeOldest() (K, bool) {
	node := l.tail
	if node == nil {
		var zero K
		return zero, false
	}
	l.remove(node)
	return node.key, true
}

func (l *lruList[K]) linkFront(node *lruNode[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
}

func (l *lruList[K]) unlink(node *lruNode[K]) {
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
	node.prev, node.next = nil, nil
}
