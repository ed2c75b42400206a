package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"pizza-storefront-api/config"
	"pizza-storefront-api/imageproc"
	"pizza-storefront-api/models"
	"pizza-storefront-api/services"

	"github.com/gin-gonic/gin"
)

// ── Banner management (admin only) ──────────────────────────────────────────

type BannerForm struct {
	Title     string `form:"title" binding:"required"`
	Link      string `form:"link"`
	Position  int    `form:"position"`
	IsActive  bool   `form:"is_active"`
	StartDate string `form:"start_date"` // YYYY-MM-DD, optional
	EndDate   string `form:"end_date"`   // YYYY-MM-DD, optional
}

func parseBannerDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AdminListBanners returns every banner in position order
func AdminListBanners(c *gin.Context) {
	banners, err := services.NewBannerService(config.DB).ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(banners), "banners": banners})
}

// AdminCreateBanner uploads a banner image, normalizes it to the 1400x480
// frame and records it. The file write happens first; a failed DB insert
// removes the file again.
func AdminCreateBanner(c *gin.Context) {
	var req BannerForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseBannerDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := parseBannerDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select an image file"})
		return
	}
	savedFile, err := imageproc.SaveUpload(fh, config.BannerUploadDir(), imageproc.BannerWidth, imageproc.BannerHeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	banner := models.Banner{
		Title:     req.Title,
		ImagePath: "/uploads/banners/" + savedFile,
		Link:      req.Link,
		Position:  req.Position,
		IsActive:  req.IsActive,
		StartDate: start,
		EndDate:   end,
	}
	if err := services.NewBannerService(config.DB).Create(&banner); err != nil {
		imageproc.Remove(config.BannerUploadDir(), savedFile)
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Banner created", "banner": banner})
}

// AdminUpdateBanner edits a banner; a replacement image follows the same
// write-then-record pattern, and the old file is removed only after the DB
// update succeeds.
func AdminUpdateBanner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner id"})
		return
	}

	svc := services.NewBannerService(config.DB)
	banner, err := svc.GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req BannerForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseBannerDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date, expected YYYY-MM-DD"})
		return
	}
	end, err := parseBannerDate(req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date, expected YYYY-MM-DD"})
		return
	}

	oldImage := banner.ImagePath
	var savedFile string
	if fh, err := c.FormFile("image"); err == nil {
		savedFile, err = imageproc.SaveUpload(fh, config.BannerUploadDir(), imageproc.BannerWidth, imageproc.BannerHeight)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		banner.ImagePath = "/uploads/banners/" + savedFile
	}

	banner.Title = req.Title
	banner.Link = req.Link
	banner.Position = req.Position
	banner.IsActive = req.IsActive
	banner.StartDate = start
	banner.EndDate = end

	if err := svc.Update(banner); err != nil {
		imageproc.Remove(config.BannerUploadDir(), savedFile)
		fail(c, err)
		return
	}
	if savedFile != "" && oldImage != "" {
		imageproc.Remove(config.BannerUploadDir(), strings.TrimPrefix(oldImage, "/uploads/banners/"))
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner updated", "banner": banner})
}

// AdminDeleteBanner removes a banner and its stored image
func AdminDeleteBanner(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid banner id"})
		return
	}

	svc := services.NewBannerService(config.DB)
	banner, err := svc.GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	if err := svc.Delete(banner.ID); err != nil {
		fail(c, err)
		return
	}
	imageproc.Remove(config.BannerUploadDir(), strings.TrimPrefix(banner.ImagePath, "/uploads/banners/"))

	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted", "banner_id": banner.ID})
}
