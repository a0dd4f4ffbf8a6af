package http

import (
	"errors"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chesswire/internal/auth"
)

// GuestTokenRequest binds a display name to a token.
type GuestTokenRequest struct {
	Name string `json:"name" binding:"required"`
}

// GuestTokenResponse carries the issued token.
type GuestTokenResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// GuestTokenHandler issues guest display-name tokens, rate limited per
// minute across the process.
func GuestTokenHandler(authService *auth.Service, perMinute int, logger *zerolog.Logger) gin.HandlerFunc {
	limiter := newRateLimiter(perMinute)
	limiter.startReset(make(chan struct{}))

	return func(c *gin.Context) {
		if !limiter.allow() {
			c.JSON(stdhttp.StatusTooManyRequests, ErrorResponse{Error: "too many requests"})
			return
		}

		var req GuestTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "name is required"})
			return
		}

		token, err := authService.GuestToken(req.Name)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidName) {
				c.JSON(stdhttp.StatusBadRequest, ErrorResponse{Error: "invalid display name"})
				return
			}
			logger.Error().Err(err).Msg("issue guest token")
			c.JSON(stdhttp.StatusInternalServerError, ErrorResponse{Error: "internal error"})
			return
		}

		c.JSON(stdhttp.StatusOK, GuestTokenResponse{Token: token, Name: req.Name})
	}
}
