package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/accountd/internal/common"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// registerHandler creates a new account. All failures, duplicate email or
// username included, collapse into one generic 500 so nothing about existing
// accounts leaks to the caller.
func (s *Server) registerHandler(c *gin.Context) {

	s.logger.Info(c.Request.Context(), "Registration request")

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed."})
		return
	}

	account, err := s.accounts.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		s.logger.Error(c.Request.Context(), err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed."})
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "username", account.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully."})
}

// loginHandler authenticates by email and password and returns a bearer token.
func (s *Server) loginHandler(c *gin.Context) {

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed."})
		return
	}

	token, err := s.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		case errors.Is(err, common.ErrorUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		default:
			s.logger.Error(c.Request.Context(), err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// meHandler returns the account of the authenticated caller.
func (s *Server) meHandler(c *gin.Context) {

	userID := c.GetString(userIDKey)

	account, err := s.accounts.GetByID(c.Request.Context(), userID)
	if err != nil {
		s.logger.Error(c.Request.Context(), err.Error(), "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
		return
	}

	c.JSON(http.StatusOK, account)
}

func (s *Server) pingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
