package handlers

import (
	"net/http"
	"time"

	"pizza-storefront-api/config"
	"pizza-storefront-api/services"

	"github.com/gin-gonic/gin"
)

// GetActiveBanners returns the banners currently in their active window (public)
func GetActiveBanners(c *gin.Context) {
	banners, err := services.NewBannerService(config.DB).ListActive(time.Now())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(banners), "banners": banners})
}
