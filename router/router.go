package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-engine/controllers"
	"github.com/yeremiapane/restaurant-engine/engine"
	"github.com/yeremiapane/restaurant-engine/middlewares"
)

// SetupRouter wires every engine operation onto its route. Handlers are
// stateless; the engine serializes access to the store.
func SetupRouter(e *engine.Engine) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 100).RateLimit())

	customerCtrl := controllers.NewCustomerController(e)
	reservationCtrl := controllers.NewReservationController(e)
	tableCtrl := controllers.NewTableController(e)
	menuCtrl := controllers.NewMenuController(e)
	orderCtrl := controllers.NewOrderController(e)
	billingCtrl := controllers.NewBillingController(e)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// CUSTOMERS
	r.POST("/customers", customerCtrl.GetOrCreateCustomer)
	r.GET("/customers/:customer_id/orders", customerCtrl.GetCustomerOrders)
	r.POST("/customers/:customer_id/tab", customerCtrl.AddToTab)

	// RESERVATIONS
	r.GET("/reservations", reservationCtrl.GetReservations)
	r.POST("/reservations", reservationCtrl.CreateReservation)

	// TABLES
	r.GET("/tables", tableCtrl.GetAllTables)
	r.GET("/tables/availability", tableCtrl.CheckAvailability)
	r.POST("/tables/release", tableCtrl.ReleaseTable)
	r.POST("/tables/:table_id/assign", tableCtrl.AssignTable)

	// MENU
	r.GET("/menu", menuCtrl.GetMenu)

	// ORDERS
	r.POST("/orders", orderCtrl.CreateOrder)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	// BILLS
	r.POST("/bills", billingCtrl.GenerateBill)
	r.GET("/bills/:bill_id", billingCtrl.GetBillByID)
	r.POST("/bills/:bill_id/pay", billingCtrl.ProcessPayment)

	// Event stream for dashboards
	r.GET("/ws", controllers.EventsHandler)

	return r
}
