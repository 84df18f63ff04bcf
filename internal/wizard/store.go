package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store потокобезопасное in-memory хранилище сессий мастера
// Черновики живут только в памяти и не переживают рестарт сервиса
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewStore создает новое хранилище сессий с заданным idle TTL
func NewStore(ttl time.Duration, logger Logger) *Store {
	return &Store{
		sessions:     make(map[string]*Session),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новую сессию мастера
func (st *Store) Create(staffID string) *Session {
	session := newSession(uuid.NewString(), staffID, st.timeProvider.Now())

	st.mu.Lock()
	st.sessions[session.id] = session
	st.mu.Unlock()

	return session
}

// Get возвращает сессию по ID
func (st *Store) Get(sessionID string) (*Session, error) {
	st.mu.RLock()
	session, ok := st.sessions[sessionID]
	st.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete удаляет сессию
func (st *Store) Delete(sessionID string) {
	st.mu.Lock()
	delete(st.sessions, sessionID)
	st.mu.Unlock()
}

// Len возвращает количество живых сессий
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// RunSweeper запускает периодическую очистку простаивающих сессий
// Блокирует до закрытия stopCh, запускать в отдельной горутине
func (st *Store) RunSweeper(stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.sweep()
		case <-stopCh:
			return
		}
	}
}

// sweep удаляет сессии, простаивающие дольше TTL
// Сессии в состоянии отправки не трогаем независимо от возраста
func (st *Store) sweep() {
	deadline := st.timeProvider.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, session := range st.sessions {
		if session.IdleSince().After(deadline) {
			continue
		}
		if func() bool {
			session.mu.Lock()
			defer session.mu.Unlock()
			return session.state == StateSubmitting
		}() {
			continue
		}
		delete(st.sessions, id)
		removed++
	}

	if removed > 0 {
		st.logger.Info("wizard store: swept %d idle sessions, %d remain", removed, len(st.sessions))
	}
}
