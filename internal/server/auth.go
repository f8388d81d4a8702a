package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lostective/lostective/internal/auth"
	"github.com/lostective/lostective/internal/store"
	"github.com/lostective/lostective/pkg/models"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// handleLogin authenticates a user, registering them on first contact when a
// name is supplied.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	user, err := s.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Printf("Warning: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	if errors.Is(err, store.ErrNotFound) {
		if req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required for signup"})
			return
		}

		hashed, err := auth.HashPassword(req.Password)
		if err != nil {
			log.Printf("Warning: password hashing failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
			return
		}

		newUser := &models.User{Name: req.Name, Email: req.Email, Password: hashed}
		if err := s.users.Insert(c.Request.Context(), newUser); err != nil {
			log.Printf("Warning: user insert failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
			return
		}

		token, err := s.tokens.CreateToken(req.Email)
		if err != nil {
			log.Printf("Warning: token creation failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "signup failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "User registered successfully",
			"email":        req.Email,
			"name":         req.Name,
			"access_token": token,
		})
		return
	}

	if !auth.VerifyPassword(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	token, err := s.tokens.CreateToken(user.Email)
	if err != nil {
		log.Printf("Warning: token creation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"email":        user.Email,
		"name":         user.Name,
		"access_token": token,
	})
}
