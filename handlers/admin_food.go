package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"pizza-storefront-api/config"
	"pizza-storefront-api/imageproc"
	"pizza-storefront-api/models"
	"pizza-storefront-api/services"

	"github.com/gin-gonic/gin"
)

// ── Catalog management (admin only) ─────────────────────────────────────────

type FoodItemForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Category    string  `form:"category" binding:"required"`
	Available   bool    `form:"available"`
}

// AdminListFood returns the whole catalog, including disabled items
func AdminListFood(c *gin.Context) {
	items, err := services.NewFoodAdminService(config.DB).ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// AdminCreateFood adds a catalog entry from a multipart form with an optional
// image. The image is written to disk first; if the DB insert fails the file
// is removed again so no orphan is left behind.
func AdminCreateFood(c *gin.Context) {
	var req FoodItemForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.FoodItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Available:   req.Available,
	}

	var savedFile string
	if fh, err := c.FormFile("image"); err == nil {
		savedFile, err = imageproc.SaveUpload(fh, config.FoodUploadDir(), imageproc.FoodWidth, imageproc.FoodHeight)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ImageURL = "/uploads/food/" + savedFile
	}

	if err := services.NewFoodAdminService(config.DB).Create(&item); err != nil {
		imageproc.Remove(config.FoodUploadDir(), savedFile)
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Food item created", "food": item})
}

// AdminUpdateFood edits a catalog entry; a newly uploaded image replaces the
// old file only after the DB write succeeds.
func AdminUpdateFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
		return
	}

	svc := services.NewFoodAdminService(config.DB)
	var item models.FoodItem
	if err := config.DB.First(&item, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Food item not found"})
		return
	}

	var req FoodItemForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldImage := item.ImageURL
	var savedFile string
	if fh, err := c.FormFile("image"); err == nil {
		savedFile, err = imageproc.SaveUpload(fh, config.FoodUploadDir(), imageproc.FoodWidth, imageproc.FoodHeight)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ImageURL = "/uploads/food/" + savedFile
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.Available = req.Available

	if err := svc.Update(&item); err != nil {
		imageproc.Remove(config.FoodUploadDir(), savedFile)
		fail(c, err)
		return
	}
	if savedFile != "" && oldImage != "" {
		imageproc.Remove(config.FoodUploadDir(), strings.TrimPrefix(oldImage, "/uploads/food/"))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Food item updated", "food": item})
}

// AdminDeleteFood removes a catalog entry; items referenced by past orders are
// disabled instead so order history stays intact.
func AdminDeleteFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid food id"})
		return
	}

	hardDeleted, err := services.NewFoodAdminService(config.DB).Delete(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	message := "Food item is referenced by past orders and was disabled instead of deleted"
	if hardDeleted {
		message = "Food item deleted"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "deleted": hardDeleted})
}
