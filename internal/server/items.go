package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lostective/lostective/internal/store"
	"github.com/lostective/lostective/pkg/models"
)

// capitalize upper-cases the first byte of an ASCII word ("lost" -> "Lost").
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// handleReportLost accepts a lost item report and schedules the matching
// pipeline in the background. The response never waits on matching.
func (s *Server) handleReportLost(c *gin.Context) {
	s.handleReport(c, models.TypeLost)
}

// handleReportFound accepts a found item report; same flow as lost reports.
func (s *Server) handleReportFound(c *gin.Context) {
	s.handleReport(c, models.TypeFound)
}

func (s *Server) handleReport(c *gin.Context, itemType models.ItemType) {
	item := &models.Item{
		Name:          c.PostForm("item_name"),
		Description:   c.PostForm("description"),
		Type:          itemType,
		Date:          c.PostForm("date"),
		Time:          c.PostForm("time"),
		Location:      c.PostForm("location"),
		ContactInfo:   c.PostForm("contact_info"),
		Priority:      c.PostForm("priority") == "true",
		WantsCall:     c.PostForm("wants_call") == "true",
		ReporterEmail: c.GetString("email"),
	}

	if item.Name == "" || item.Description == "" || item.ContactInfo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_name, description and contact_info are required"})
		return
	}

	imageURL, err := s.saveUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item.ImageURL = imageURL

	itemID, err := s.items.Insert(c.Request.Context(), item)
	if err != nil {
		log.Printf("Warning: failed to insert %s report: %v", itemType, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save report"})
		return
	}

	// Matching is fire-and-forget; the reporter gets their id immediately.
	s.runner.Submit("match-"+itemID, func(ctx context.Context) {
		result := s.pipeline.Run(ctx, itemID)
		log.Printf("Matching pipeline for item %s finished: method=%s matches=%d action=%s",
			itemID, result.Method, len(result.Matches), result.Action)
	})

	resp := gin.H{
		"message":   fmt.Sprintf("%s item reported successfully", capitalize(string(itemType))),
		"item_id":   itemID,
		"image_url": imageURL,
	}
	if itemType == models.TypeLost {
		if qrData, err := s.qr.DataURI(itemID); err == nil {
			resp["qr_code"] = qrData
		} else {
			log.Printf("Warning: QR generation failed for item %s: %v", itemID, err)
		}
	}
	c.JSON(http.StatusOK, resp)
}

// saveUpload stores an optional image attachment under the upload dir with a
// random filename, returning its public path. A missing file is not an error.
func (s *Server) saveUpload(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("invalid image upload: %w", err)
	}
	return s.storeImage(c, file)
}

func (s *Server) storeImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	filename := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	dst := filepath.Join(s.cfg.Server.UploadDir, filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return "/uploads/" + filename, nil
}

// handleListItems returns all items in the browse-page shape.
func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.items.List(c.Request.Context())
	if err != nil {
		log.Printf("Warning: failed to list items: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list items"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, gin.H{
			"id":           item.ID,
			"name":         item.Name,
			"description":  item.Description,
			"status":       capitalize(string(item.Type)),
			"location":     item.Location,
			"date":         item.Date,
			"ownerName":    item.ReporterEmail,
			"ownerContact": item.ContactInfo,
			"image_url":    item.ImageURL,
			"is_claimed":   item.IsClaimed,
			"priority":     item.Priority,
		})
	}
	c.JSON(http.StatusOK, out)
}

// handleGetItem returns one item's details.
func (s *Server) handleGetItem(c *gin.Context) {
	item, err := s.items.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		log.Printf("Warning: item lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type claimRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Proof  string `json:"proof" binding:"required"`
}

// handleClaimItem marks an item claimed and notifies both parties in the
// background.
func (s *Server) handleClaimItem(c *gin.Context) {
	var req claimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}

	item, err := s.items.FindByID(c.Request.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		log.Printf("Warning: item lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}

	if item.IsClaimed {
		c.JSON(http.StatusConflict, gin.H{"error": "item has already been claimed"})
		return
	}

	claim := &models.Claim{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Proof: req.Proof,
	}
	if err := s.items.Claim(c.Request.Context(), req.ItemID, claim); err != nil {
		log.Printf("Warning: failed to claim item %s: %v", req.ItemID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit claim"})
		return
	}

	s.runner.Submit("claim-"+req.ItemID, func(ctx context.Context) {
		s.notifier.NotifyClaim(ctx, item, claim)
	})

	c.JSON(http.StatusOK, gin.H{
		"message":        "Claim submitted successfully. Owner has been notified.",
		"item_id":        req.ItemID,
		"notified_owner": item.ReporterEmail != "",
		"called_owner":   item.WantsCall && item.ContactInfo != "",
	})
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message" binding:"required"`
	Date    string `json:"date"`
}

// handleFeedback stores a visitor feedback message.
func (s *Server) handleFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	fb := &models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Date:    req.Date,
	}
	if err := s.feedback.Insert(c.Request.Context(), fb); err != nil {
		log.Printf("Warning: failed to store feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback received"})
}
