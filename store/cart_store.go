// Package store owns cart state for the lifetime of a browsing session.
// Every mutation persists synchronously to the carts table; rehydration
// tolerates missing or corrupted rows by starting empty.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/utils"
)

// CartStore holds the line items and the applied promo slot for one session.
// Mutations are serialized by a per-store mutex, so a quantity update always
// sees a consistent prior state even with two tabs open.
type CartStore struct {
	db         *gorm.DB
	sessionKey string

	mu       sync.Mutex
	items    []models.CartItem
	promo    *models.PromoDescriptor
	applySeq uint64
}

func openCartStore(db *gorm.DB, sessionKey string) *CartStore {
	cs := &CartStore{db: db, sessionKey: sessionKey}
	cs.rehydrate()
	return cs
}

// rehydrate loads the persisted cart row. Absent or malformed data must not
// crash: it is logged and treated as an empty cart.
func (cs *CartStore) rehydrate() {
	var record models.CartRecord
	err := cs.db.First(&record, "session_key = ?", cs.sessionKey).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("cart %s: read failed, starting empty: %v", cs.sessionKey, err)
		}
		return
	}

	if record.Items != "" {
		var items []models.CartItem
		if err := json.Unmarshal([]byte(record.Items), &items); err != nil {
			utils.ErrorLogger.Printf("cart %s: malformed items, starting empty: %v", cs.sessionKey, err)
		} else {
			cs.items = items
		}
	}

	if record.Promo != "" {
		var promo models.PromoDescriptor
		if err := json.Unmarshal([]byte(record.Promo), &promo); err != nil {
			utils.ErrorLogger.Printf("cart %s: malformed promo, dropping it: %v", cs.sessionKey, err)
		} else if promo.Code != "" {
			cs.promo = &promo
		}
	}
}

// persist writes the current state. A storage failure is logged and the
// in-memory state kept, so the shopper does not lose the cart mid-session.
func (cs *CartStore) persist() {
	itemsJSON, err := json.Marshal(cs.items)
	if err != nil {
		utils.ErrorLogger.Printf("cart %s: marshal items: %v", cs.sessionKey, err)
		return
	}

	promoJSON := ""
	if cs.promo != nil {
		b, err := json.Marshal(cs.promo)
		if err != nil {
			utils.ErrorLogger.Printf("cart %s: marshal promo: %v", cs.sessionKey, err)
			return
		}
		promoJSON = string(b)
	}

	record := models.CartRecord{
		SessionKey: cs.sessionKey,
		Items:      string(itemsJSON),
		Promo:      promoJSON,
		UpdatedAt:  time.Now(),
	}
	if err := cs.db.Save(&record).Error; err != nil {
		utils.ErrorLogger.Printf("cart %s: persist failed: %v", cs.sessionKey, err)
	}
}

// AddCombo merges a combo into the cart, incrementing quantity when the line
// already exists.
func (cs *CartStore) AddCombo(combo models.Combo) {
	cs.addLine(models.CartItem{
		ItemID:        combo.ID,
		Variant:       models.VariantCombo,
		Name:          combo.Name,
		Description:   combo.Description,
		UnitPrice:     combo.Price,
		OriginalPrice: combo.OriginalPrice,
		ImageURL:      combo.ImageURL,
		Quantity:      1,
	})
}

// AddDrink merges a drink into the cart.
func (cs *CartStore) AddDrink(drink models.Drink) {
	cs.addLine(models.CartItem{
		ItemID:      drink.ID,
		Variant:     models.VariantDrink,
		Name:        drink.Name,
		Description: drink.Description,
		UnitPrice:   drink.Price,
		ImageURL:    drink.ImageURL,
		Category:    drink.Category,
		Quantity:    1,
	})
}

func (cs *CartStore) addLine(line models.CartItem) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].ItemID == line.ItemID && cs.items[i].Variant == line.Variant {
			cs.items[i].Quantity++
			cs.persist()
			return
		}
	}
	cs.items = append(cs.items, line)
	cs.persist()
}

// UpdateQuantity sets a line's quantity exactly. A quantity of zero or less
// removes the line.
func (cs *CartStore) UpdateQuantity(itemID string, variant models.ItemVariant, quantity int) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if quantity <= 0 {
		cs.removeLine(itemID, variant)
		cs.persist()
		return
	}
	for i := range cs.items {
		if cs.items[i].ItemID == itemID && cs.items[i].Variant == variant {
			cs.items[i].Quantity = quantity
			cs.persist()
			return
		}
	}
}

// RemoveItem deletes a line; no-op when absent.
func (cs *CartStore) RemoveItem(itemID string, variant models.ItemVariant) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.removeLine(itemID, variant)
	cs.persist()
}

func (cs *CartStore) removeLine(itemID string, variant models.ItemVariant) {
	for i := range cs.items {
		if cs.items[i].ItemID == itemID && cs.items[i].Variant == variant {
			cs.items = append(cs.items[:i], cs.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart and the promo slot as one atomic reset. Checkout
// completion and the explicit clear action both go through here.
func (cs *CartStore) Clear() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.items = nil
	cs.promo = nil
	cs.applySeq++
	cs.persist()
}

// BeginPromoApply reserves an apply attempt and returns its sequence number.
// The in-flight validation result is committed only if the slot is still
// waiting on that exact attempt.
func (cs *CartStore) BeginPromoApply() uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.applySeq++
	return cs.applySeq
}

// CommitPromoApply installs the validated promo if seq is still current.
// A stale result (promo removed or cart cleared meanwhile) is discarded.
func (cs *CartStore) CommitPromoApply(seq uint64, promo models.PromoDescriptor) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if seq != cs.applySeq {
		return false
	}
	cs.promo = &promo
	cs.persist()
	return true
}

// RemovePromo clears the promo slot. Idempotent.
func (cs *CartStore) RemovePromo() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.promo = nil
	cs.applySeq++
	cs.persist()
}

// Items returns a copy of the line items.
func (cs *CartStore) Items() []models.CartItem {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items := make([]models.CartItem, len(cs.items))
	copy(items, cs.items)
	return items
}

// Promo returns a copy of the applied promo, or nil.
func (cs *CartStore) Promo() *models.PromoDescriptor {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.promo == nil {
		return nil
	}
	p := *cs.promo
	return &p
}

// IsEmpty reports whether the cart has no line items.
func (cs *CartStore) IsEmpty() bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.items) == 0
}
