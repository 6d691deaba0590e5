package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brasacombo/storefront-app/middlewares"
	"github.com/brasacombo/storefront-app/services"
	"github.com/brasacombo/storefront-app/utils"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

func NewCheckoutController(checkout *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Checkout: checkout}
}

// Submit -> run one checkout attempt. Field errors return the form to
// editing; an empty cart is rejected outright.
func (cc *CheckoutController) Submit(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := cc.Checkout.Submit(middlewares.SessionKey(c), req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.RespondError(c, http.StatusConflict, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if result.State == services.StateEditing {
		utils.RespondFieldErrors(c, http.StatusUnprocessableEntity,
			"Por favor, corrija os campos destacados", result.FieldErrors)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Pedido confirmado", result)
}
