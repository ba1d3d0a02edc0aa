package repository

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-process CacheRepository with LRU eviction and an
// optional TTL. A zero ttl keeps entries until they are evicted.
type MemoryCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
	now     func() time.Time
}

type memoryItem struct {
	key       string
	value     string
	expiresAt time.Time
}

func NewMemoryCache(maxSize int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		now:     time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return "", false
	}

	item := elem.Value.(*memoryItem)
	if m.expired(item) {
		m.removeElement(elem)
		return "", false
	}

	m.lru.MoveToFront(elem)
	return item.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := &memoryItem{key: key, value: value}
	if m.ttl > 0 {
		item.expiresAt = m.now().Add(m.ttl)
	}

	if elem, ok := m.items[key]; ok {
		elem.Value = item
		m.lru.MoveToFront(elem)
		return nil
	}

	m.items[key] = m.lru.PushFront(item)

	// Expulsar el menos usado si se supera el tamaño
	if m.maxSize > 0 && m.lru.Len() > m.maxSize {
		if oldest := m.lru.Back(); oldest != nil {
			m.removeElement(oldest)
		}
	}
	return nil
}

// Len reports how many results are cached, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

func (m *MemoryCache) expired(item *memoryItem) bool {
	return !item.expiresAt.IsZero() && m.now().After(item.expiresAt)
}

func (m *MemoryCache) removeElement(elem *list.Element) {
	m.lru.Remove(elem)
	delete(m.items, elem.Value.(*memoryItem).key)
}
