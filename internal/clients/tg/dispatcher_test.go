package tg

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_shardIndex_ShouldStayInRange(t *testing.T) {
	for _, key := range []int64{0, 1, 7, 123456789, -1, -100500} {
		ind := shardIndex(key, 8)
		assert.GreaterOrEqual(t, ind, 0)
		assert.Less(t, ind, 8)
		assert.Equal(t, ind, shardIndex(key, 8))
	}
}

func Test_dispatcher_ShouldKeepOrderForOneKey(t *testing.T) {
	d := newDispatcher(4, 10)

	var mu sync.Mutex
	var got []int
	for i := 0; i < 100; i++ {
		i := i
		d.Dispatch(context.Background(), 42, func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	d.Stop()

	assert.Len(t, got, 100)
	for i := range got {
		assert.Equal(t, i, got[i])
	}
}

func Test_dispatcher_ShouldNotBlockOtherKeys(t *testing.T) {
	d := newDispatcher(2, 10)
	defer d.Stop()

	blocked := make(chan struct{})
	d.Dispatch(context.Background(), 0, func() { <-blocked })

	done := make(chan struct{})
	d.Dispatch(context.Background(), 1, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("задача другого пользователя не выполнена")
	}
	close(blocked)
}

func Test_dispatcher_Dispatch_ShouldReturn_WhenQueueFullAndContextCancelled(t *testing.T) {
	d := newDispatcher(1, 1)
	blocked := make(chan struct{})
	defer func() {
		close(blocked)
		d.Stop()
	}()
	// Обработчик занят, очередь заполнена.
	started := make(chan struct{})
	assert.True(t, d.Dispatch(context.Background(), 0, func() {
		close(started)
		<-blocked
	}))
	<-started
	assert.True(t, d.Dispatch(context.Background(), 0, func() {}))

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan bool)
	go func() {
		result <- d.Dispatch(ctx, 0, func() {})
	}()
	cancel()

	select {
	case queued := <-result:
		assert.False(t, queued)
	case <-time.After(time.Second):
		t.Fatal("постановка задачи не прервана отменой контекста")
	}
}
