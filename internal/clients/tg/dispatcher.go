package tg

import (
	"context"
	"sync"
)

// dispatcher Распределение задач по обработчикам по ключу (идентификатору пользователя).
// Задачи с одним ключом выполняются по порядку одним обработчиком.
type dispatcher struct {
	shards []chan func()
	wg     sync.WaitGroup
}

func newDispatcher(workers int, queueSize int) *dispatcher {
	if workers < 1 {
		workers = 1
	}
	d := &dispatcher{shards: make([]chan func(), workers)}
	for i := range d.shards {
		d.shards[i] = make(chan func(), queueSize)
		d.wg.Add(1)
		go d.run(d.shards[i])
	}
	return d
}

func (d *dispatcher) run(jobs <-chan func()) {
	defer d.wg.Done()
	for job := range jobs {
		job()
	}
}

// Dispatch Постановка задачи в очередь обработчика ключа. Ждет места в заполненной очереди
// до отмены контекста; false - задача не поставлена.
func (d *dispatcher) Dispatch(ctx context.Context, key int64, job func()) bool {
	select {
	case d.shards[shardIndex(key, len(d.shards))] <- job:
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop Завершение после выполнения всех поставленных задач.
func (d *dispatcher) Stop() {
	for _, shard := range d.shards {
		close(shard)
	}
	d.wg.Wait()
}

func shardIndex(key int64, shards int) int {
	return int(uint64(key) % uint64(shards))
}
