// Package dialog Пошаговый диалог ввода личных финансов: состояние пользователя и переходы между шагами.
package dialog

import (
	"fmt"
	"sync"

	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// Stage Шаг диалога.
type Stage int

const (
	Idle Stage = iota
	AwaitCategory1
	AwaitExpenses1
	AwaitCategory2
	AwaitExpenses2
	AwaitCategory3
	AwaitExpenses3
)

var stageNames = [...]string{"Idle", "AwaitCategory1", "AwaitExpenses1", "AwaitCategory2", "AwaitExpenses2", "AwaitCategory3", "AwaitExpenses3"}

func (s Stage) String() string {
	if s < Idle || s > AwaitExpenses3 {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Slot Номер слота категории (0..2), к которому относится шаг; -1 для Idle.
func (s Stage) Slot() int {
	if s <= Idle || s > AwaitExpenses3 {
		return -1
	}
	return int(s-AwaitCategory1) / 2
}

// IsCategory Шаг ожидает название категории.
func (s Stage) IsCategory() bool {
	return s.Slot() >= 0 && (s-AwaitCategory1)%2 == 0
}

// IsExpenses Шаг ожидает сумму расходов.
func (s Stage) IsExpenses() bool {
	return s.Slot() >= 0 && (s-AwaitCategory1)%2 == 1
}

// Next Следующий шаг. После AwaitExpenses3 - Idle (данные сохраняются).
func (s Stage) Next() Stage {
	if s <= Idle || s >= AwaitExpenses3 {
		return Idle
	}
	return s + 1
}

// Session Состояние диалога пользователя.
// Buffer содержит только значения уже пройденных шагов текущего диалога.
type Session struct {
	Stage  Stage
	Buffer [types.CategoriesCount]types.CategorySlot
}

// SessionStore Хранилище состояний диалогов.
type SessionStore interface {
	// Acquire Захват состояния пользователя. Блокирует, пока состояние захвачено другим обработчиком.
	Acquire(userID int64) SessionLease
}

// SessionLease Захваченное состояние пользователя. Release обязателен.
type SessionLease interface {
	Session() Session
	Save(session Session)
	Release()
}

// memoryEntry Состояние одного пользователя.
type memoryEntry struct {
	mu      sync.Mutex
	refs    int // Под MemorySessionStore.mu.
	session Session
}

// MemorySessionStore Хранилище состояний в памяти процесса.
// Пользователи не блокируют друг друга; для одного пользователя захват последовательный.
type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[int64]*memoryEntry
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		entries: make(map[int64]*memoryEntry),
	}
}

// Acquire Захват состояния пользователя.
func (m *MemorySessionStore) Acquire(userID int64) SessionLease {
	m.mu.Lock()
	entry, ok := m.entries[userID]
	if !ok {
		entry = &memoryEntry{}
		m.entries[userID] = entry
	}
	entry.refs++
	m.mu.Unlock()

	entry.mu.Lock()
	return &memoryLease{store: m, userID: userID, entry: entry}
}

// Len Количество пользователей с активным или захваченным состоянием.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// release Освобождение состояния; запись в Idle без ожидающих удаляется.
func (m *MemorySessionStore) release(userID int64, entry *memoryEntry) {
	idle := entry.session.Stage == Idle
	entry.mu.Unlock()

	m.mu.Lock()
	defer m.mu.Unlock()
	entry.refs--
	if entry.refs == 0 && idle {
		delete(m.entries, userID)
	}
}

type memoryLease struct {
	store    *MemorySessionStore
	userID   int64
	entry    *memoryEntry
	released bool
}

func (l *memoryLease) Session() Session {
	return l.entry.session
}

func (l *memoryLease) Save(session Session) {
	if session.Stage == Idle {
		session = Session{}
	}
	l.entry.session = session
}

func (l *memoryLease) Release() {
	if l.released {
		return
	}
	l.released = true
	l.store.release(l.userID, l.entry)
}
