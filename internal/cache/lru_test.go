package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LRU_Add_ShouldMoveExistingKeyToFront(t *testing.T) {
	lru := NewLRU(3)
	lru.Add("rates:USD", 1)
	lru.Add("rates:EUR", 2)
	lru.Add("rates:CNY", 3)

	lru.Add("rates:USD", 10)

	assert.Equal(t, []string{"rates:USD", "rates:CNY", "rates:EUR"}, lru.keys())
	assert.Equal(t, 10, lru.Get("rates:USD"))
	assert.Equal(t, 3, lru.Len())
}

func Test_LRU_Add_ShouldEvictOldest_WhenFull(t *testing.T) {
	lru := NewLRU(2)
	lru.Add("a", 1)
	lru.Add("b", 2)
	lru.Get("a")

	lru.Add("c", 3)

	assert.Nil(t, lru.Get("b"))
	assert.Equal(t, 1, lru.Get("a"))
	assert.Equal(t, 3, lru.Get("c"))
	assert.Equal(t, 2, lru.Len())
}

func Test_LRU_Get_ShouldReturnNil_WhenNoKey(t *testing.T) {
	lru := NewLRU(3)
	lru.Add("a", 1)

	assert.Nil(t, lru.Get("b"))
	assert.Equal(t, []string{"a"}, lru.keys())
}

func Test_LRU_Remove(t *testing.T) {
	lru := NewLRU(3)
	lru.Add("a", 1)
	lru.Add("b", 2)

	lru.Remove("a")
	lru.Remove("missing")

	assert.Nil(t, lru.Get("a"))
	assert.Equal(t, []string{"b"}, lru.keys())
}

func Test_NewLRU_ShouldKeepOneValue_WhenCapacityIsZero(t *testing.T) {
	lru := NewLRU(0)
	lru.Add("a", 1)
	lru.Add("b", 2)

	assert.Equal(t, 1, lru.Len())
	assert.Equal(t, 2, lru.Get("b"))
}

func Test_LRU_ShouldBeSafeForConcurrentUse(t *testing.T) {
	lru := NewLRU(10)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key%d", i)
			lru.Add(key, i)
			lru.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, lru.Len())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, lru.Get(fmt.Sprintf("key%d", i)))
	}
}
