package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brasacombo/storefront-app/controllers"
	"github.com/brasacombo/storefront-app/middlewares"
	"github.com/brasacombo/storefront-app/services"
	"github.com/brasacombo/storefront-app/store"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	carts := store.NewManager(db)
	promos := services.NewPromoService()
	checkoutSvc := services.NewCheckoutService(db, carts, services.GetGatewayService())

	sessionCtrl := controllers.NewSessionController(db, carts)
	catalogCtrl := controllers.NewCatalogController(db)
	cartCtrl := controllers.NewCartController(db, carts, promos)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/catalog/combos", catalogCtrl.GetAllCombos)
	r.GET("/catalog/drinks", catalogCtrl.GetAllDrinks)

	// Session creation gets the strict limiter
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/sessions", sessionCtrl.CreateSession)
	}

	// ----------------------------------------------------------------
	//                      SESSION ROUTES
	// ----------------------------------------------------------------
	sess := r.Group("/")
	sess.Use(middlewares.SessionMiddleware())
	{
		sess.DELETE("/sessions", sessionCtrl.EndSession)

		sess.GET("/cart", cartCtrl.GetCart)
		sess.POST("/cart/items", cartCtrl.AddItem)
		sess.PATCH("/cart/items/:item_id", cartCtrl.UpdateItem)
		sess.DELETE("/cart/items/:item_id", cartCtrl.DeleteItem)
		sess.DELETE("/cart", cartCtrl.ClearCart)

		sess.POST("/cart/promo", cartCtrl.ApplyPromo)
		sess.DELETE("/cart/promo", cartCtrl.RemovePromo)

		sess.POST("/checkout", checkoutCtrl.Submit)
		sess.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	}

	return r
}
