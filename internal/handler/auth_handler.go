package handler

import (
	"time"

	"restaurant-forum-backend/internal/middleware"
	"restaurant-forum-backend/internal/service"
	"restaurant-forum-backend/pkg/apperr"
	"restaurant-forum-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type SignUpRequest struct {
	Name          string `json:"name" binding:"required,max=50"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	PasswordCheck string `json:"password_check" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignUp handles user registration
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.authService.SignUp(req.Name, req.Email, req.Password, req.PasswordCheck)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

// SignIn handles user authentication. The issued token is returned in the
// body for API clients and set as an HttpOnly cookie for the page flow.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, apperr.Validation("invalid request body"))
		return
	}

	token, user, err := h.authService.SignIn(req.Email, req.Password)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,   // name
		token,                          // value
		int(30*24*time.Hour.Seconds()), // maxAge in seconds (30 days)
		"/",                            // path
		"",                             // domain (empty means current domain)
		false,                          // secure (set to true in production with HTTPS)
		true,                           // httpOnly
	)

	utils.SuccessResponse(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout destroys the caller's token row and clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.authService.SignOut(user.ID); err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)

	utils.SuccessResponse(c, gin.H{"message": "logged out successfully"})
}
