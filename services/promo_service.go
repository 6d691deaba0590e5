package services

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/pricing"
)

var (
	ErrEmptyPromoCode   = errors.New("digite um código promocional")
	ErrInvalidPromoCode = errors.New("código inválido. Tente PROMO3")
)

// PromoService validates promotional codes against a fixed rule table. The
// delay before resolving is deliberate so callers can show a pending state;
// the duration is tunable and not part of the contract.
type PromoService struct {
	delay time.Duration
	rules map[string]models.PromoDescriptor
}

func NewPromoService() *PromoService {
	delay := 800 * time.Millisecond
	if raw := os.Getenv("PROMO_VALIDATE_DELAY_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		}
	}
	return &PromoService{
		delay: delay,
		rules: map[string]models.PromoDescriptor{
			"PROMO3": {
				Code:            "PROMO3",
				DiscountPercent: pricing.PromoDiscountPercent,
				FreeDelivery:    true,
				Description:     "15% de desconto + frete grátis",
			},
		},
	}
}

// Validate normalizes the raw code and resolves it against the rule table.
// Unknown codes are a user-facing rejection, not a fault.
func (ps *PromoService) Validate(ctx context.Context, rawCode string) (*models.PromoDescriptor, error) {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return nil, ErrEmptyPromoCode
	}

	select {
	case <-time.After(ps.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	promo, ok := ps.rules[code]
	if !ok {
		return nil, ErrInvalidPromoCode
	}
	return &promo, nil
}
