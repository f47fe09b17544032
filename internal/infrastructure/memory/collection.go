package memory

import (
	"sync"

	"subversepay.backend/pkg/utils"
)

// collection is an ordered, lock-guarded slice of records. Readers always get
// copies so stored state only changes through update and append.
type collection[T any] struct {
	mu    sync.RWMutex
	items []*T
	clone func(*T) *T
}

func shallowClone[T any](item *T) *T {
	cp := *item
	return &cp
}

func newCollection[T any](items []*T, clone func(*T) *T) *collection[T] {
	if clone == nil {
		clone = shallowClone[T]
	}
	c := &collection[T]{items: make([]*T, 0, len(items)), clone: clone}
	for _, item := range items {
		c.items = append(c.items, clone(item))
	}
	return c
}

func (c *collection[T]) snapshot(keep func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := utils.Filter(c.items, keep)
	for i, item := range out {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) find(match func(*T) bool) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return c.clone(item), true
		}
	}
	return nil, false
}

func (c *collection[T]) update(match func(*T) bool, mutate func(*T)) (*T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if match(item) {
			mutate(item)
			return c.clone(item), true
		}
	}
	return nil, false
}

func (c *collection[T]) append(item *T) {
	cp := c.clone(item)

	c.mu.Lock()
	c.items = append(c.items, cp)
	c.mu.Unlock()
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
