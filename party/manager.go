// party/manager.go
package party

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/wfunc/partymediator/logger"
)

var (
	ErrPartyNotFound = errors.New("party not found")
)

// Manager 管理所有队伍
type Manager struct {
	parties  map[string]*Party
	order    []string // creation order
	observer Observer
	mutex    sync.RWMutex
}

// NewManager creates a manager. Every party it creates reports to observer,
// which may be nil.
func NewManager(observer Observer) *Manager {
	return &Manager{
		parties:  make(map[string]*Party),
		observer: observer,
	}
}

// CreateParty 创建一个新队伍并添加到管理器
func (m *Manager) CreateParty(name string) *Party {
	m.mutex.Lock()
	p := NewParty(uuid.New().String(), name, m.observer)
	m.parties[p.ID] = p
	m.order = append(m.order, p.ID)
	count := len(m.parties)
	m.mutex.Unlock()

	logger.Log.Infow("party created", "party", p.ID, "name", name)
	m.reportActive(count)
	return p
}

// GetParty 从管理器中获取一个队伍
func (m *Manager) GetParty(id string) (*Party, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	p, exists := m.parties[id]
	return p, exists
}

// RemoveParty drops the party from the manager. Its members keep their
// reference to it; there is no leave operation.
func (m *Manager) RemoveParty(id string) error {
	m.mutex.Lock()
	if _, exists := m.parties[id]; !exists {
		m.mutex.Unlock()
		return ErrPartyNotFound
	}
	delete(m.parties, id)
	m.order = lo.Without(m.order, id)
	count := len(m.parties)
	m.mutex.Unlock()

	m.reportActive(count)
	return nil
}

// Parties returns all parties in creation order.
func (m *Manager) Parties() []*Party {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return lo.Map(m.order, func(id string, _ int) *Party {
		return m.parties[id]
	})
}

func (m *Manager) reportActive(count int) {
	if m.observer != nil {
		m.observer.PartiesActive(count)
	}
}
