package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/pricing"
	"github.com/brasacombo/storefront-app/store"
	"github.com/brasacombo/storefront-app/utils"
)

// Checkout states. A submission either reaches submitted or returns to
// editing with field errors attached; there are no other transitions.
type CheckoutState string

const (
	StateEditing    CheckoutState = "editing"
	StateSubmitting CheckoutState = "submitting"
	StateSubmitted  CheckoutState = "submitted"
)

// ErrEmptyCart guards submission: another tab may have cleared the cart
// between render and submit.
var ErrEmptyCart = errors.New("seu carrinho está vazio")

var (
	phoneRe   = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)
	zipCodeRe = regexp.MustCompile(`^\d{5}-?\d{3}$`)
)

// CheckoutRequest is the customer form as submitted.
type CheckoutRequest struct {
	Name         string              `json:"name"`
	Phone        string              `json:"phone"`
	Street       string              `json:"street"`
	Number       string              `json:"number"`
	Complement   string              `json:"complement"`
	Neighborhood string              `json:"neighborhood"`
	ZipCode      string              `json:"zip_code"`
	DeliveryType models.DeliveryType `json:"delivery_type"`
}

// Checkout is the outcome of one submission attempt.
type Checkout struct {
	State       CheckoutState         `json:"state"`
	FieldErrors map[string]string     `json:"field_errors,omitempty"`
	Order       *models.OrderSnapshot `json:"order,omitempty"`
}

// NormalizePhone groups a bare digit string into the national phone format,
// mirroring the input mask on the checkout form. Already-formatted or
// unparseable input is returned unchanged for validation to judge.
func NormalizePhone(value string) string {
	digits := digitsOnly(value)
	switch len(digits) {
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:6], digits[6:])
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[0:2], digits[2:7], digits[7:])
	default:
		return strings.TrimSpace(value)
	}
}

// NormalizeZipCode inserts the CEP hyphen into a bare 8-digit string.
func NormalizeZipCode(value string) string {
	digits := digitsOnly(value)
	if len(digits) == 8 {
		return digits[0:5] + "-" + digits[5:]
	}
	return strings.TrimSpace(value)
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CheckoutService assembles order snapshots from the cart and the pricing
// calculator, persists them and hands them to the payment gateway.
type CheckoutService struct {
	db      *gorm.DB
	carts   *store.Manager
	gateway *GatewayService
}

func NewCheckoutService(db *gorm.DB, carts *store.Manager, gateway *GatewayService) *CheckoutService {
	return &CheckoutService{db: db, carts: carts, gateway: gateway}
}

// Validate checks the form synchronously and returns a field -> message map.
// Address fields only matter when the order is a delivery; under pickup they
// never block submission. An empty map means the form is valid.
func (cs *CheckoutService) Validate(req CheckoutRequest) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs["name"] = "Nome completo é obrigatório"
	} else if len(strings.Fields(name)) < 2 {
		errs["name"] = "Digite seu nome completo"
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		errs["phone"] = "Telefone é obrigatório"
	} else if !phoneRe.MatchString(phone) {
		errs["phone"] = "Formato: (11) 99999-9999"
	}

	if req.DeliveryType == models.DeliveryTypeDelivery {
		if strings.TrimSpace(req.Street) == "" {
			errs["street"] = "Rua é obrigatória"
		}
		if strings.TrimSpace(req.Number) == "" {
			errs["number"] = "Número é obrigatório"
		}
		if strings.TrimSpace(req.Neighborhood) == "" {
			errs["neighborhood"] = "Bairro é obrigatório"
		}
		zip := strings.TrimSpace(req.ZipCode)
		if zip == "" {
			errs["zip_code"] = "CEP é obrigatório"
		} else if !zipCodeRe.MatchString(zip) {
			errs["zip_code"] = "Formato: 12345-678"
		}
	}

	return errs
}

// Submit runs one attempt of the checkout state machine. Validation failures
// return to editing with the field errors; an empty cart rejects outright
// with no transition. On success the snapshot is persisted, handed to the
// gateway and the cart cleared.
func (cs *CheckoutService) Submit(sessionKey string, req CheckoutRequest) (*Checkout, error) {
	if req.DeliveryType == "" {
		req.DeliveryType = models.DeliveryTypeDelivery
	}
	req.Phone = NormalizePhone(req.Phone)
	req.ZipCode = NormalizeZipCode(req.ZipCode)

	if errs := cs.Validate(req); len(errs) > 0 {
		return &Checkout{State: StateEditing, FieldErrors: errs}, nil
	}

	cart := cs.carts.Get(sessionKey)
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	checkout := &Checkout{State: StateSubmitting}

	promo := cart.Promo()
	quote := pricing.Calculate(items, promo, req.DeliveryType)

	order := &models.OrderSnapshot{
		OrderID:       newOrderID(),
		SessionKey:    sessionKey,
		CustomerName:  strings.TrimSpace(req.Name),
		CustomerPhone: strings.TrimSpace(req.Phone),
		DeliveryType:  req.DeliveryType,
		Subtotal:      quote.Subtotal,
		Discount:      quote.Discount,
		DeliveryFee:   quote.DeliveryFee,
		Total:         quote.Total,
		CreatedAt:     time.Now(),
	}
	if req.DeliveryType == models.DeliveryTypeDelivery {
		order.Street = strings.TrimSpace(req.Street)
		order.Number = strings.TrimSpace(req.Number)
		order.Complement = strings.TrimSpace(req.Complement)
		order.Neighborhood = strings.TrimSpace(req.Neighborhood)
		order.ZipCode = strings.TrimSpace(req.ZipCode)
	}
	if promo != nil {
		order.PromoCode = promo.Code
	}

	itemsJSON, err := marshalItems(items)
	if err != nil {
		return nil, err
	}
	order.Items = itemsJSON

	if err := cs.db.Create(order).Error; err != nil {
		return nil, err
	}

	// Fire-and-forget handoff; the contract ends at a well-formed field set.
	cs.gateway.SubmitOrder(order, items)

	cart.Clear()

	utils.InfoLogger.Printf("order %s submitted (%s, total %s)",
		order.OrderID, order.DeliveryType, pricing.FormatAmount(order.Total))

	checkout.State = StateSubmitted
	checkout.Order = order
	return checkout, nil
}

func marshalItems(items []models.CartItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// newOrderID derives an identifier from the submission timestamp, keeping
// the PED-prefixed numbers printed on receipts. The random suffix keeps ids
// unique across sessions submitting within the same millisecond.
func newOrderID() string {
	return fmt.Sprintf("PED%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
