package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/pricing"
)

func promo3() *models.PromoDescriptor {
	return &models.PromoDescriptor{
		Code:            "PROMO3",
		DiscountPercent: pricing.PromoDiscountPercent,
		FreeDelivery:    true,
		Description:     "15% de desconto + frete grátis",
	}
}

func comboLine(price float64, qty int) models.CartItem {
	return models.CartItem{
		ItemID:    "1",
		Variant:   models.VariantCombo,
		Name:      "Combo Clássico",
		UnitPrice: price,
		Quantity:  qty,
	}
}

func TestDeliveryFeeBelowThreshold(t *testing.T) {
	// 2x 24.90 = 49.80, just below the 50.00 free-delivery threshold
	items := []models.CartItem{comboLine(24.90, 2)}

	quote := pricing.Calculate(items, nil, models.DeliveryTypeDelivery)

	assert.InDelta(t, 49.80, quote.Subtotal, 1e-9)
	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 8.99, quote.DeliveryFee, 1e-9)
	assert.InDelta(t, 58.79, quote.Total, 1e-9)
}

func TestDeliveryFeeAtThreshold(t *testing.T) {
	items := []models.CartItem{comboLine(25.00, 2)}

	quote := pricing.Calculate(items, nil, models.DeliveryTypeDelivery)

	assert.InDelta(t, 50.00, quote.Subtotal, 1e-9)
	assert.Zero(t, quote.DeliveryFee)
	assert.True(t, quote.FreeDelivery)
}

func TestPromoDiscountAndFreeDelivery(t *testing.T) {
	items := []models.CartItem{comboLine(24.90, 2)}

	quote := pricing.Calculate(items, promo3(), models.DeliveryTypeDelivery)

	assert.InDelta(t, 49.80, quote.Subtotal, 1e-9)
	assert.InDelta(t, 7.47, quote.Discount, 1e-9)
	assert.Zero(t, quote.DeliveryFee)
	assert.InDelta(t, 42.33, quote.Total, 1e-9)
}

func TestPromoFreeDeliveryIgnoresSubtotal(t *testing.T) {
	// Free delivery from the promo applies regardless of subtotal
	for _, price := range []float64{5.00, 49.99, 200.00} {
		quote := pricing.Calculate([]models.CartItem{comboLine(price, 1)}, promo3(), models.DeliveryTypeDelivery)
		assert.Zero(t, quote.DeliveryFee, "price %.2f", price)
		assert.InDelta(t, price*0.15, quote.Discount, 1e-9)
	}
}

func TestPickupNeverPaysDelivery(t *testing.T) {
	items := []models.CartItem{comboLine(35.90, 2)} // 71.80 gross

	withPromo := pricing.Calculate(items, promo3(), models.DeliveryTypePickup)
	withoutPromo := pricing.Calculate([]models.CartItem{comboLine(10.00, 1)}, nil, models.DeliveryTypePickup)

	assert.Zero(t, withPromo.DeliveryFee)
	assert.Zero(t, withoutPromo.DeliveryFee)
	assert.False(t, withoutPromo.FreeDelivery, "pickup is not flagged as free delivery")
}

func TestSubtotalSumsCombosAndDrinks(t *testing.T) {
	items := []models.CartItem{
		comboLine(24.90, 1),
		{ItemID: "drink-1", Variant: models.VariantDrink, UnitPrice: 4.90, Quantity: 3},
	}

	quote := pricing.Calculate(items, nil, models.DeliveryTypeDelivery)

	assert.InDelta(t, 24.90+3*4.90, quote.Subtotal, 1e-9)
}

func TestEmptyCartQuote(t *testing.T) {
	quote := pricing.Calculate(nil, nil, models.DeliveryTypeDelivery)

	assert.Zero(t, quote.Subtotal)
	assert.Zero(t, quote.Discount)
	assert.InDelta(t, 8.99, quote.DeliveryFee, 1e-9)
	assert.Zero(t, pricing.ItemCount(nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "49.80", pricing.FormatAmount(49.80))
	assert.Equal(t, "0.00", pricing.FormatAmount(0))
	assert.Equal(t, "7.47", pricing.FormatAmount(7.47))
}
