package handlers

import (
	"net/http"
	"strconv"

	"pizza-storefront-api/config"
	"pizza-storefront-api/errs"
	"pizza-storefront-api/middleware"
	"pizza-storefront-api/models"
	"pizza-storefront-api/services"
	"pizza-storefront-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ── Order management (admin only) ───────────────────────────────────────────

// AdminGetAllOrders returns all orders with status filter and a status summary
func AdminGetAllOrders(c *gin.Context) {
	var userID uint
	if v := c.Query("user_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		userID = uint(parsed)
	}

	orders, err := services.NewOrderService(config.DB).ListAll(models.OrderStatus(c.Query("status")), userID)
	if err != nil {
		fail(c, err)
		return
	}

	// Dashboard summary: count per status, revenue over delivered orders
	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.TotalAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// AdminGetOrder returns any order with its detail lines
func AdminGetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := services.NewOrderService(config.DB).Detail(uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// AdminUpdateOrderStatus moves an order along the status workflow
func AdminUpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := services.NewOrderService(config.DB).UpdateStatus(uint(orderID), req.Status, middleware.GetUserID(c), req.Note)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":           "Order status updated",
		"order_id":          order.ID,
		"current_status":    order.Status,
		"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
	})
}

// AdminGetAllUsers returns all users — admin only
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		fail(c, errs.Translate(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
