package store

import (
	"sync"

	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/utils"
)

// Manager hands out one CartStore per session key, rehydrating from the
// database on first access. It is created at app start and passed explicitly
// to whatever needs cart access; there is no ambient singleton.
type Manager struct {
	db *gorm.DB

	mu     sync.Mutex
	stores map[string]*CartStore
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		db:     db,
		stores: make(map[string]*CartStore),
	}
}

// Get returns the cart store for a session, opening it if needed.
func (m *Manager) Get(sessionKey string) *CartStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cs, ok := m.stores[sessionKey]; ok {
		return cs
	}
	cs := openCartStore(m.db, sessionKey)
	m.stores[sessionKey] = cs
	return cs
}

// Drop evicts a session's store and deletes its persisted row. Used when a
// browsing session ends; a session that never had a cart leaves no row
// behind.
func (m *Manager) Drop(sessionKey string) {
	m.mu.Lock()
	delete(m.stores, sessionKey)
	m.mu.Unlock()

	if err := m.db.Delete(&models.CartRecord{}, "session_key = ?", sessionKey).Error; err != nil {
		utils.ErrorLogger.Printf("cart %s: delete persisted record: %v", sessionKey, err)
	}
}
