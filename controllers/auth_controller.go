package controllers

import (
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/signup
func (h *AuthController) Signup(c *gin.Context) {
	var req services.SignupIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Signup(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.CreatedMsg(c, gin.H{"user": user, "token": token}, "Account created successfully")
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKMsg(c, gin.H{"user": user, "token": token}, "Login successful")
}

// POST /auth/logout. Tokens are stateless; the client just drops its copy.
func (h *AuthController) Logout(c *gin.Context) {
	resp.OKMsg(c, nil, "Logged out successfully")
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "not authenticated")
		return
	}
	user, err := h.Svc.GetProfile(uid)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}
