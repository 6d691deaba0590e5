package services_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brasacombo/storefront-app/services"
	"github.com/brasacombo/storefront-app/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	// Keep the deliberate validation latency out of the test run
	os.Setenv("PROMO_VALIDATE_DELAY_MS", "0")
	os.Exit(m.Run())
}

func TestValidateAcceptsPromo3(t *testing.T) {
	ps := services.NewPromoService()

	promo, err := ps.Validate(context.Background(), "PROMO3")

	assert.NoError(t, err)
	if assert.NotNil(t, promo) {
		assert.Equal(t, "PROMO3", promo.Code)
		assert.InDelta(t, 15.0, promo.DiscountPercent, 1e-9)
		assert.True(t, promo.FreeDelivery)
	}
}

func TestValidateNormalizesInput(t *testing.T) {
	ps := services.NewPromoService()

	for _, raw := range []string{"promo3", "  PROMO3  ", "Promo3"} {
		promo, err := ps.Validate(context.Background(), raw)
		assert.NoError(t, err, "input %q", raw)
		if assert.NotNil(t, promo) {
			assert.Equal(t, "PROMO3", promo.Code)
		}
	}
}

func TestValidateRejectsUnknownCode(t *testing.T) {
	ps := services.NewPromoService()

	promo, err := ps.Validate(context.Background(), "DESCONTO50")

	assert.Nil(t, promo)
	assert.ErrorIs(t, err, services.ErrInvalidPromoCode)
}

func TestValidateRejectsEmptyCode(t *testing.T) {
	ps := services.NewPromoService()

	promo, err := ps.Validate(context.Background(), "   ")

	assert.Nil(t, promo)
	assert.ErrorIs(t, err, services.ErrEmptyPromoCode)
}

func TestValidateHonorsContextCancellation(t *testing.T) {
	os.Setenv("PROMO_VALIDATE_DELAY_MS", "5000")
	defer os.Setenv("PROMO_VALIDATE_DELAY_MS", "0")
	ps := services.NewPromoService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	promo, err := ps.Validate(ctx, "PROMO3")

	assert.Nil(t, promo)
	assert.ErrorIs(t, err, context.Canceled)
}
