package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/middlewares"
	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/utils"
)

// Initial delivery estimate shown on the confirmation view, in minutes. The
// remaining time is derived from the snapshot's creation instant on each
// read; nothing in the core ticks a clock.
const estimatedMinutes = 25

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// GetOrderByID -> the confirmation view. Read-only and idempotent: the
// snapshot is not consumed by reading it. A missing snapshot is a not-found
// state with a start-over hint, never a crash.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")
	sessionKey := middlewares.SessionKey(c)

	var order models.OrderSnapshot
	err := oc.DB.First(&order, "order_id = ? AND session_key = ?", orderID, sessionKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondJSON(c, http.StatusNotFound, "Pedido não encontrado", gin.H{
				"recovery": "Fazer Novo Pedido",
			})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	items, err := order.LineItems()
	if err != nil {
		utils.ErrorLogger.Printf("order %s: decode items: %v", order.OrderID, err)
		items = nil
	}

	remaining := estimatedMinutes - int(time.Since(order.CreatedAt).Minutes())
	if remaining < 0 {
		remaining = 0
	}

	utils.RespondJSON(c, http.StatusOK, "Detalhes do pedido", gin.H{
		"order":             order,
		"items":             items,
		"address":           order.ComposedAddress(),
		"estimated_minutes": remaining,
		"display": gin.H{
			"subtotal":     utils.FormatCurrencyBRL(order.Subtotal),
			"discount":     utils.FormatCurrencyBRL(order.Discount),
			"delivery_fee": utils.FormatCurrencyBRL(order.DeliveryFee),
			"total":        utils.FormatCurrencyBRL(order.Total),
		},
	})
}
