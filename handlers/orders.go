package handlers

import (
	"net/http"
	"strconv"

	"pizza-storefront-api/config"
	"pizza-storefront-api/middleware"
	"pizza-storefront-api/services"

	"github.com/gin-gonic/gin"
)

// Checkout converts the caller's cart into an order
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, err := services.NewCheckoutService(config.DB).PlaceOrder(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Your order has been placed successfully!",
		"order_id": order.ID,
		"total":    order.TotalAmount,
		"order":    order,
	})
}

// GetMyOrders returns the caller's order history, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)

	orders, err := services.NewOrderService(config.DB).ListForUser(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns one of the caller's orders with its detail lines
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := services.NewOrderService(config.DB).DetailForUser(userID, uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
