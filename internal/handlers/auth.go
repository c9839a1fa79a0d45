package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WellingtonFilho7/family-dashboard-sub000/internal/auth"
)

type LoginLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type RedeemRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type RedeemResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// RequestLoginLink mails a single-use sign-in link to an allow-listed admin
// address. The response is identical for unknown addresses so the endpoint
// does not leak the allow-list.
func RequestLoginLink(links *auth.LoginLinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		if err := links.RequestLink(c.Request.Context(), req.Email); err != nil {
			if !errors.Is(err, auth.ErrEmailNotAllowed) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send login link"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "If that address is registered, a sign-in link is on its way"})
	}
}

// RedeemLoginLink exchanges a mailed code for a session token
func RedeemLoginLink(links *auth.LoginLinkService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RedeemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		token, err := links.Redeem(c.Request.Context(), req.Email, req.Code)
		if err != nil {
			if errors.Is(err, auth.ErrLinkInvalid) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Login link is invalid or expired"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem login link"})
			}
			return
		}

		c.JSON(http.StatusOK, RedeemResponse{Token: token, Email: req.Email})
	}
}
