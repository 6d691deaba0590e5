package services_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/services"
	"github.com/brasacombo/storefront-app/store"
)

func setupCheckoutDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.CartRecord{}, &models.OrderSnapshot{}); err != nil {
		t.Fatal(err)
	}
	return db
}

// capturingGateway records the form fields the checkout hands off.
type capturingGateway struct {
	mu     sync.Mutex
	fields url.Values
	done   chan struct{}
}

func newCapturingGateway(t *testing.T) (*services.GatewayService, *capturingGateway) {
	capture := &capturingGateway{done: make(chan struct{}, 1)}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		capture.mu.Lock()
		capture.fields = r.PostForm
		capture.mu.Unlock()
		capture.done <- struct{}{}
	}))
	t.Cleanup(server.Close)

	gateway := services.NewGatewayService(&services.GatewayConfig{
		CheckoutURL: server.URL,
		Timeout:     5 * time.Second,
	})
	return gateway, capture
}

func (cg *capturingGateway) wait(t *testing.T) url.Values {
	select {
	case <-cg.done:
	case <-time.After(5 * time.Second):
		t.Fatal("gateway handoff never arrived")
	}
	cg.mu.Lock()
	defer cg.mu.Unlock()
	return cg.fields
}

func validDeliveryForm() services.CheckoutRequest {
	return services.CheckoutRequest{
		Name:         "Maria Silva",
		Phone:        "(11) 99999-9999",
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Centro",
		ZipCode:      "01234-567",
		DeliveryType: models.DeliveryTypeDelivery,
	}
}

func TestValidateRejectsSingleTokenName(t *testing.T) {
	cs := services.NewCheckoutService(setupCheckoutDB(t), nil, nil)

	form := validDeliveryForm()
	form.Name = "Maria"

	errs := cs.Validate(form)
	assert.Contains(t, errs, "name")
}

func TestValidateRejectsBadPhone(t *testing.T) {
	cs := services.NewCheckoutService(setupCheckoutDB(t), nil, nil)

	for _, phone := range []string{"", "11999999999 x", "(11)99999-9999", "(11) 999-9999"} {
		form := validDeliveryForm()
		form.Phone = phone
		errs := cs.Validate(form)
		assert.Contains(t, errs, "phone", "phone %q", phone)
	}
}

func TestValidateRequiresAddressOnlyForDelivery(t *testing.T) {
	cs := services.NewCheckoutService(setupCheckoutDB(t), nil, nil)

	blank := services.CheckoutRequest{
		Name:         "Maria Silva",
		Phone:        "(11) 99999-9999",
		DeliveryType: models.DeliveryTypeDelivery,
	}
	errs := cs.Validate(blank)
	assert.Contains(t, errs, "street")
	assert.Contains(t, errs, "number")
	assert.Contains(t, errs, "neighborhood")
	assert.Contains(t, errs, "zip_code")

	// The same blank address never blocks a pickup order
	blank.DeliveryType = models.DeliveryTypePickup
	assert.Empty(t, cs.Validate(blank))
}

func TestValidateRejectsBadZipCode(t *testing.T) {
	cs := services.NewCheckoutService(setupCheckoutDB(t), nil, nil)

	form := validDeliveryForm()
	form.ZipCode = "1234-567"

	errs := cs.Validate(form)
	assert.Contains(t, errs, "zip_code")
}

func TestSubmitReturnsToEditingOnFieldErrors(t *testing.T) {
	db := setupCheckoutDB(t)
	carts := store.NewManager(db)
	gateway, _ := newCapturingGateway(t)
	cs := services.NewCheckoutService(db, carts, gateway)

	cart := carts.Get("sess-1")
	cart.AddCombo(models.Combo{ID: "1", Name: "Combo Clássico", Price: 24.90})

	form := validDeliveryForm()
	form.Name = "Maria"

	result, err := cs.Submit("sess-1", form)
	assert.NoError(t, err)
	assert.Equal(t, services.StateEditing, result.State)
	assert.NotEmpty(t, result.FieldErrors)

	// No transition happened: cart untouched, nothing persisted
	assert.False(t, cart.IsEmpty())
	var count int64
	db.Model(&models.OrderSnapshot{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	db := setupCheckoutDB(t)
	carts := store.NewManager(db)
	gateway, _ := newCapturingGateway(t)
	cs := services.NewCheckoutService(db, carts, gateway)

	result, err := cs.Submit("sess-1", validDeliveryForm())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrEmptyCart)
}

func TestSubmitBuildsSnapshotAndClearsCart(t *testing.T) {
	db := setupCheckoutDB(t)
	carts := store.NewManager(db)
	gateway, capture := newCapturingGateway(t)
	cs := services.NewCheckoutService(db, carts, gateway)

	cart := carts.Get("sess-1")
	combo := models.Combo{ID: "1", Name: "Combo Clássico", Price: 24.90, OriginalPrice: 32.90}
	cart.AddCombo(combo)
	cart.AddCombo(combo)

	result, err := cs.Submit("sess-1", validDeliveryForm())
	assert.NoError(t, err)
	assert.Equal(t, services.StateSubmitted, result.State)

	order := result.Order
	if assert.NotNil(t, order) {
		assert.Regexp(t, `^PED\d+-[0-9a-f]{8}$`, order.OrderID)
		assert.InDelta(t, 49.80, order.Subtotal, 1e-9)
		assert.InDelta(t, 8.99, order.DeliveryFee, 1e-9)
		assert.InDelta(t, 58.79, order.Total, 1e-9)
		assert.Zero(t, order.Discount)
		assert.Empty(t, order.PromoCode)
	}

	// Snapshot persisted and decodable
	var persisted models.OrderSnapshot
	assert.NoError(t, db.First(&persisted, "order_id = ?", order.OrderID).Error)
	items, err := persisted.LineItems()
	assert.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, 2, items[0].Quantity)
	}

	// Cart cleared after successful handoff
	assert.True(t, cart.IsEmpty())
	assert.Nil(t, cart.Promo())

	// Gateway received the flattened field set with fixed-2-decimal money
	fields := capture.wait(t)
	assert.Equal(t, order.OrderID, fields.Get("order_id"))
	assert.Equal(t, "Maria Silva", fields.Get("customer_name"))
	assert.Equal(t, "49.80", fields.Get("subtotal"))
	assert.Equal(t, "8.99", fields.Get("delivery_fee"))
	assert.Equal(t, "58.79", fields.Get("total"))
	assert.Equal(t, "delivery", fields.Get("delivery_type"))
	assert.Contains(t, fields.Get("customer_address"), "Rua das Flores, 123")
	assert.Contains(t, fields.Get("customer_address"), "CEP: 01234-567")
}

func TestSubmitWithPromoAppliesDiscountAndFreeDelivery(t *testing.T) {
	db := setupCheckoutDB(t)
	carts := store.NewManager(db)
	gateway, capture := newCapturingGateway(t)
	cs := services.NewCheckoutService(db, carts, gateway)

	cart := carts.Get("sess-1")
	combo := models.Combo{ID: "1", Name: "Combo Clássico", Price: 24.90}
	cart.AddCombo(combo)
	cart.AddCombo(combo)
	seq := cart.BeginPromoApply()
	cart.CommitPromoApply(seq, models.PromoDescriptor{Code: "PROMO3", DiscountPercent: 15, FreeDelivery: true})

	result, err := cs.Submit("sess-1", validDeliveryForm())
	assert.NoError(t, err)

	order := result.Order
	assert.InDelta(t, 7.47, order.Discount, 1e-9)
	assert.Zero(t, order.DeliveryFee)
	assert.InDelta(t, 42.33, order.Total, 1e-9)
	assert.Equal(t, "PROMO3", order.PromoCode)

	fields := capture.wait(t)
	assert.Equal(t, "PROMO3", fields.Get("promo_code"))
	assert.Equal(t, "7.47", fields.Get("promo_discount"))
	assert.Equal(t, "0.00", fields.Get("delivery_fee"))
	assert.Equal(t, "42.33", fields.Get("total"))
}

func TestSubmitPickupSkipsAddressAndFee(t *testing.T) {
	db := setupCheckoutDB(t)
	carts := store.NewManager(db)
	gateway, capture := newCapturingGateway(t)
	cs := services.NewCheckoutService(db, carts, gateway)

	cart := carts.Get("sess-1")
	cart.AddCombo(models.Combo{ID: "5", Name: "Combo Família", Price: 59.90})

	form := services.CheckoutRequest{
		Name:         "João Pereira",
		Phone:        "(21) 98888-7777",
		DeliveryType: models.DeliveryTypePickup,
	}

	result, err := cs.Submit("sess-1", form)
	assert.NoError(t, err)

	order := result.Order
	assert.Zero(t, order.DeliveryFee)
	assert.Empty(t, order.Street)
	assert.Equal(t, "Retirada no local", order.ComposedAddress())

	fields := capture.wait(t)
	assert.Equal(t, "Retirada no local", fields.Get("customer_address"))
	assert.Equal(t, "pickup", fields.Get("delivery_type"))
}

func TestSubmitsFromDifferentSessionsGetDistinctOrderIDs(t *testing.T) {
	db := setupCheckoutDB(t)
	carts := store.NewManager(db)

	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(sink.Close)
	gateway := services.NewGatewayService(&services.GatewayConfig{
		CheckoutURL: sink.URL,
		Timeout:     5 * time.Second,
	})
	cs := services.NewCheckoutService(db, carts, gateway)

	sessions := []string{"sess-a", "sess-b", "sess-c"}
	for _, sess := range sessions {
		carts.Get(sess).AddCombo(models.Combo{ID: "1", Name: "Combo Clássico", Price: 24.90})
	}

	// Back-to-back submissions land within the same millisecond; each must
	// still persist under its own id.
	seen := make(map[string]bool)
	for _, sess := range sessions {
		result, err := cs.Submit(sess, validDeliveryForm())
		assert.NoError(t, err)
		assert.Equal(t, services.StateSubmitted, result.State)
		assert.False(t, seen[result.Order.OrderID], "order id %s reused", result.Order.OrderID)
		seen[result.Order.OrderID] = true
	}

	var count int64
	db.Model(&models.OrderSnapshot{}).Count(&count)
	assert.Equal(t, int64(len(sessions)), count)
}

func TestNormalizePhoneAndZipCode(t *testing.T) {
	assert.Equal(t, "(11) 99999-9999", services.NormalizePhone("11999999999"))
	assert.Equal(t, "(11) 9999-9999", services.NormalizePhone("1199999999"))
	assert.Equal(t, "(11) 99999-9999", services.NormalizePhone("(11) 99999-9999"))
	assert.Equal(t, "01234-567", services.NormalizeZipCode("01234567"))
	assert.Equal(t, "01234-567", services.NormalizeZipCode("01234-567"))
}
