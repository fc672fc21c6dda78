package httpserver

import (
	"net/http"

	authsvc "shop-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func registerHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authsvc.RegisterInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "register failed", gin.H{"binding": err.Error()})
			return
		}
		user, err := auth.Register(c.Request.Context(), req)
		if err != nil {
			respondDomainError(c, err, "register failed")
			return
		}
		respondSuccess(c, http.StatusCreated, "register successful", user)
	}
}

func loginHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "login failed", gin.H{"binding": err.Error()})
			return
		}
		user, token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondDomainError(c, err, "login failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "login successful",
			"data":    user,
			"token":   token,
		})
	}
}

func logoutHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Logout(c.Request.Context(), bearerToken(c)); err != nil {
			respondDomainError(c, err, "logout failed")
			return
		}
		respondSuccess(c, http.StatusOK, "logout successful", nil)
	}
}

func sessionStartHandler(sessions SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, sessionID, err := sessions.Start(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "session start failed", nil)
			return
		}
		respondSuccess(c, http.StatusCreated, "session started", gin.H{
			"session_token": token,
			"session_id":    sessionID,
			"expires_in":    sessions.TTLSeconds(),
		})
	}
}
