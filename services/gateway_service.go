package services

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/brasacombo/storefront-app/models"
	"github.com/brasacombo/storefront-app/pricing"
	"github.com/brasacombo/storefront-app/utils"
)

// GatewayConfig holds the payment gateway configuration.
type GatewayConfig struct {
	CheckoutURL string
	Timeout     time.Duration
}

// GatewayService hands completed orders to the external payment gateway as a
// flattened form POST. The handoff is one-way: the storefront's contract
// ends once a well-formed field set has been sent, and the response is never
// awaited for correctness.
type GatewayService struct {
	config     *GatewayConfig
	httpClient *http.Client
}

var (
	gatewayService *GatewayService
	gatewayOnce    sync.Once
)

// GetGatewayService returns the singleton gateway client, configured from
// the environment.
func GetGatewayService() *GatewayService {
	gatewayOnce.Do(func() {
		checkoutURL := os.Getenv("GATEWAY_CHECKOUT_URL")
		if checkoutURL == "" {
			utils.InfoLogger.Println("GATEWAY_CHECKOUT_URL is empty, using sandbox endpoint")
			checkoutURL = "https://seu-gateway-teste.example/checkout"
		}

		timeout := 30 * time.Second
		if raw := os.Getenv("GATEWAY_TIMEOUT_SECONDS"); raw != "" {
			if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
				timeout = time.Duration(secs) * time.Second
			}
		}

		gatewayService = NewGatewayService(&GatewayConfig{
			CheckoutURL: checkoutURL,
			Timeout:     timeout,
		})
	})
	return gatewayService
}

// NewGatewayService builds a gateway client with an explicit config. Tests
// use this to point the handoff at a local server.
func NewGatewayService(config *GatewayConfig) *GatewayService {
	return &GatewayService{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// BuildFields flattens an order snapshot into the gateway's field set. All
// monetary values are fixed two-decimal strings.
func (gs *GatewayService) BuildFields(order *models.OrderSnapshot, items []models.CartItem) url.Values {
	type gatewayItem struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity int     `json:"quantity"`
		Price    float64 `json:"price"`
	}
	gatewayItems := make([]gatewayItem, 0, len(items))
	for _, item := range items {
		gatewayItems = append(gatewayItems, gatewayItem{
			ID:       item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.UnitPrice,
		})
	}
	itemsJSON, err := json.Marshal(gatewayItems)
	if err != nil {
		utils.ErrorLogger.Printf("order %s: marshal gateway items: %v", order.OrderID, err)
		itemsJSON = []byte("[]")
	}

	fields := url.Values{}
	fields.Set("order_id", order.OrderID)
	fields.Set("customer_name", order.CustomerName)
	fields.Set("customer_phone", order.CustomerPhone)
	fields.Set("customer_address", order.ComposedAddress())
	fields.Set("delivery_type", string(order.DeliveryType))
	fields.Set("items", string(itemsJSON))
	fields.Set("subtotal", pricing.FormatAmount(order.Subtotal))
	fields.Set("delivery_fee", pricing.FormatAmount(order.DeliveryFee))
	fields.Set("promo_code", order.PromoCode)
	fields.Set("promo_discount", pricing.FormatAmount(order.Discount))
	fields.Set("total", pricing.FormatAmount(order.Total))
	return fields
}

// SubmitOrder sends the field set to the gateway without blocking the
// checkout flow. Failures are logged and otherwise ignored.
func (gs *GatewayService) SubmitOrder(order *models.OrderSnapshot, items []models.CartItem) {
	fields := gs.BuildFields(order, items)

	go func() {
		resp, err := gs.httpClient.Post(
			gs.config.CheckoutURL,
			"application/x-www-form-urlencoded",
			strings.NewReader(fields.Encode()),
		)
		if err != nil {
			utils.ErrorLogger.Printf("order %s: gateway handoff failed: %v", order.OrderID, err)
			return
		}
		defer resp.Body.Close()
		utils.InfoLogger.Printf("order %s: gateway handoff status %d", order.OrderID, resp.StatusCode)
	}()
}
