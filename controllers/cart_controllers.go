package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/middlewares"
	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/pricing"
	"github.com/brasacombo/storefront-app/services"
	"github.com/brasacombo/storefront-app/store"
	"github.com/brasacombo/storefront-app/utils"
)

type CartController struct {
	DB     *gorm.DB
	Carts  *store.Manager
	Promos *services.PromoService
}

func NewCartController(db *gorm.DB, carts *store.Manager, promos *services.PromoService) *CartController {
	return &CartController{DB: db, Carts: carts, Promos: promos}
}

// cartPayload is what every cart endpoint returns: the lines, the promo slot
// and a fresh quote, so all views read the same derived totals.
func (cc *CartController) cartPayload(cart *store.CartStore, deliveryType models.DeliveryType) gin.H {
	items := cart.Items()
	promo := cart.Promo()
	quote := pricing.Calculate(items, promo, deliveryType)

	return gin.H{
		"items":      items,
		"promo":      promo,
		"item_count": pricing.ItemCount(items),
		"quote":      quote,
	}
}

func deliveryTypeFromQuery(c *gin.Context) models.DeliveryType {
	if c.Query("delivery_type") == string(models.DeliveryTypePickup) {
		return models.DeliveryTypePickup
	}
	return models.DeliveryTypeDelivery
}

// GetCart -> current cart contents plus derived totals
func (cc *CartController) GetCart(c *gin.Context) {
	cart := cc.Carts.Get(middlewares.SessionKey(c))
	utils.RespondJSON(c, http.StatusOK, "Cart", cc.cartPayload(cart, deliveryTypeFromQuery(c)))
}

// AddItem -> merge a catalog item into the cart (quantity +1 on repeats)
func (cc *CartController) AddItem(c *gin.Context) {
	type reqBody struct {
		ItemID  string             `json:"item_id" binding:"required"`
		Variant models.ItemVariant `json:"variant" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := cc.Carts.Get(middlewares.SessionKey(c))

	switch req.Variant {
	case models.VariantCombo:
		var combo models.Combo
		if err := cc.DB.First(&combo, "id = ?", req.ItemID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("combo %q não encontrado", req.ItemID))
			return
		}
		cart.AddCombo(combo)
	case models.VariantDrink:
		var drink models.Drink
		if err := cc.DB.First(&drink, "id = ?", req.ItemID).Error; err != nil {
			utils.RespondError(c, http.StatusNotFound, fmt.Errorf("bebida %q não encontrada", req.ItemID))
			return
		}
		cart.AddDrink(drink)
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("variante %q inválida", req.Variant))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item adicionado", cc.cartPayload(cart, deliveryTypeFromQuery(c)))
}

// UpdateItem -> set a line's quantity exactly; zero or less removes it
func (cc *CartController) UpdateItem(c *gin.Context) {
	type reqBody struct {
		Variant  models.ItemVariant `json:"variant" binding:"required"`
		Quantity int                `json:"quantity"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := cc.Carts.Get(middlewares.SessionKey(c))
	cart.UpdateQuantity(c.Param("item_id"), req.Variant, req.Quantity)

	utils.RespondJSON(c, http.StatusOK, "Quantidade atualizada", cc.cartPayload(cart, deliveryTypeFromQuery(c)))
}

// DeleteItem -> remove a line; no-op when absent
func (cc *CartController) DeleteItem(c *gin.Context) {
	variant := models.ItemVariant(c.Query("variant"))
	if variant != models.VariantCombo && variant != models.VariantDrink {
		utils.RespondError(c, http.StatusBadRequest, errors.New("informe variant=combo ou variant=drink"))
		return
	}

	cart := cc.Carts.Get(middlewares.SessionKey(c))
	cart.RemoveItem(c.Param("item_id"), variant)

	utils.RespondJSON(c, http.StatusOK, "Item removido", cc.cartPayload(cart, deliveryTypeFromQuery(c)))
}

// ClearCart -> empty the cart and drop the applied promo in one reset
func (cc *CartController) ClearCart(c *gin.Context) {
	cart := cc.Carts.Get(middlewares.SessionKey(c))
	cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Carrinho esvaziado", cc.cartPayload(cart, deliveryTypeFromQuery(c)))
}

// ApplyPromo -> validate a promo code and install it in the singleton slot.
// The validation has a deliberate latency; if the cart is cleared or the
// promo removed while it runs, the stale result is discarded.
func (cc *CartController) ApplyPromo(c *gin.Context) {
	type reqBody struct {
		Code string `json:"code"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cart := cc.Carts.Get(middlewares.SessionKey(c))
	seq := cart.BeginPromoApply()

	promo, err := cc.Promos.Validate(c.Request.Context(), req.Code)
	if err != nil {
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
		return
	}

	if !cart.CommitPromoApply(seq, *promo) {
		utils.RespondError(c, http.StatusConflict, errors.New("o carrinho mudou durante a validação, tente novamente"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Código %s aplicado!", promo.Code),
		cc.cartPayload(cart, deliveryTypeFromQuery(c)))
}

// RemovePromo -> clear the promo slot; idempotent
func (cc *CartController) RemovePromo(c *gin.Context) {
	cart := cc.Carts.Get(middlewares.SessionKey(c))
	cart.RemovePromo()
	utils.RespondJSON(c, http.StatusOK, "Código promocional removido", cc.cartPayload(cart, deliveryTypeFromQuery(c)))
}
