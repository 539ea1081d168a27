package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	PaymentWebhook(c *ginext.Context)

	CreateHold(c *ginext.Context)
	CreateTopUp(c *ginext.Context)

	CreateClient(c *ginext.Context)
	GetWallet(c *ginext.Context)
	GetClientBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)

	CreateSlot(c *ginext.Context)
	ListSlots(c *ginext.Context)
	CreateGroup(c *ginext.Context)
	ListGroups(c *ginext.Context)

	ListStuckTransactions(c *ginext.Context)
	ForceBooking(c *ginext.Context)
	CancelTransaction(c *ginext.Context)
	TrainingCompleted(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	payments := router.Group("/payments")
	{
		payments.POST("/webhook", h.PaymentWebhook)
		payments.POST("/webhook/:provider", h.PaymentWebhook)
	}

	api := router.Group("/api")
	{
		// Holds
		api.POST("/holds", h.CreateHold)
		api.POST("/wallet/topups", h.CreateTopUp)

		// Clients
		api.POST("/clients", h.CreateClient)
		api.GET("/clients/:id/wallet", h.GetWallet)
		api.GET("/clients/:id/bookings", h.GetClientBookings)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Schedule
		api.POST("/slots", h.CreateSlot)
		api.GET("/slots", h.ListSlots)
		api.POST("/groups", h.CreateGroup)
		api.GET("/groups", h.ListGroups)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/transactions/stuck", h.ListStuckTransactions)
		admin.POST("/transactions/:id/force-booking", h.ForceBooking)
		admin.POST("/transactions/:id/cancel", h.CancelTransaction)
		admin.POST("/clients/:id/training-completed", h.TrainingCompleted)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
