// Package cache LRU кэш ограниченного размера для общих данных процесса (таблица курсов валют).
package cache

import (
	"container/list"
	"sync"
)

// entry Элемент очереди кэша.
type entry struct {
	key   string
	value any
}

// LRU Кэш с вытеснением давно не использованных значений.
// Get меняет порядок очереди, поэтому чтение тоже под полной блокировкой.
type LRU struct {
	mu       sync.Mutex
	capacity int
	queue    *list.List // Спереди - последнее использованное значение.
	items    map[string]*list.Element
}

// NewLRU Создание кэша. Емкость меньше 1 считается равной 1.
func NewLRU(capacity int) *LRU {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU{
		capacity: capacity,
		queue:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// Add Сохранение значения по ключу.
func (c *LRU) Add(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.items[key]; ok {
		element.Value.(*entry).value = value
		c.queue.MoveToFront(element)
		return
	}
	for c.queue.Len() >= c.capacity {
		c.evictOldest()
	}
	c.items[key] = c.queue.PushFront(&entry{key: key, value: value})
}

// Get Значение по ключу или nil.
func (c *LRU) Get(key string) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.items[key]
	if !ok {
		return nil
	}
	c.queue.MoveToFront(element)
	return element.Value.(*entry).value
}

// Remove Удаление значения по ключу.
func (c *LRU) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.items[key]; ok {
		c.removeElement(element)
	}
}

// Len Количество значений в кэше.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *LRU) evictOldest() {
	if element := c.queue.Back(); element != nil {
		c.removeElement(element)
	}
}

func (c *LRU) removeElement(element *list.Element) {
	e := c.queue.Remove(element).(*entry)
	delete(c.items, e.key)
}

// keys Ключи от последнего использованного к самому старому.
func (c *LRU) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := make([]string, 0, c.queue.Len())
	for element := c.queue.Front(); element != nil; element = element.Next() {
		res = append(res, element.Value.(*entry).key)
	}
	return res
}
