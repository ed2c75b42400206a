package handlers

import (
	"net/http"
	"strconv"

	"pizza-storefront-api/config"
	"pizza-storefront-api/services"
	"pizza-storefront-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the available catalog, optionally filtered by category (public)
func GetMenu(c *gin.Context) {
	svc := services.NewCatalogService(config.DB)
	items, err := svc.ListAvailable(c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// GetFoodItem returns a single catalog entry (public)
func GetFoodItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
		return
	}
	item, err := services.NewCatalogService(config.DB).GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"food": item})
}

// GetCategories returns the distinct categories of available items (public)
func GetCategories(c *gin.Context) {
	categories, err := services.NewCatalogService(config.DB).Categories()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetStateMachineInfo returns the order status workflow for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []string{"delivered", "cancelled"},
		"description":     "Order Lifecycle State Machine",
	})
}
