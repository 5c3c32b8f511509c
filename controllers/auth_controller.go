package controllers

import (
	"github.com/NemesisID/PreviewOnly-Dash/pkg/resp"
	"github.com/NemesisID/PreviewOnly-Dash/services"
	"github.com/NemesisID/PreviewOnly-Dash/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController { return &AuthController{Svc: svc} }

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Svc.Profile(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role})
}
