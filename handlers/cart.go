package handlers

import (
	"net/http"
	"strconv"

	"pizza-storefront-api/config"
	"pizza-storefront-api/middleware"
	"pizza-storefront-api/services"

	"github.com/gin-gonic/gin"
)

// The cart endpoints keep the AJAX response shape the storefront front end
// binds to: {success, message, cart_count|count|total}.

type AddToCartRequest struct {
	FoodID   uint `json:"food_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart puts an item in the caller's cart, merging with an existing line
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid food item or quantity"})
		return
	}

	count, err := services.NewCartService(config.DB).AddItem(userID, req.FoodID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Item added to your cart",
		"cart_count": count,
	})
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItem sets the quantity of one of the caller's cart lines
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	lineID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid cart item"})
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid cart item or quantity"})
		return
	}

	subtotal, total, err := services.NewCartService(config.DB).SetQuantity(userID, uint(lineID), req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Cart updated successfully",
		"subtotal": subtotal,
		"total":    total,
	})
}

// RemoveCartItem deletes one of the caller's cart lines
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	lineID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid cart item"})
		return
	}

	svc := services.NewCartService(config.DB)
	if err := svc.RemoveItem(userID, uint(lineID)); err != nil {
		fail(c, err)
		return
	}

	count, err := svc.Count(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Item removed from your cart",
		"cart_count": count,
	})
}

// GetCart returns the caller's cart lines with live prices and the grand total
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	entries, total, err := services.NewCartService(config.DB).GetCart(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cart":    entries,
		"total":   total,
	})
}

// GetCartCount returns the caller's cart badge count
func GetCartCount(c *gin.Context) {
	userID := middleware.GetUserID(c)

	count, err := services.NewCartService(config.DB).Count(userID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
	})
}
