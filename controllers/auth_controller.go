package controllers

import (
	"errors"

	"github.com/TanthaiP001/spprosupply/configs"
	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/middlewares"
	"github.com/TanthaiP001/spprosupply/pkg/resp"
	"github.com/TanthaiP001/spprosupply/services"
	"github.com/TanthaiP001/spprosupply/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc *services.AuthService
	Cfg *configs.Config
}

func NewAuthController(svc *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Svc: svc, Cfg: cfg}
}

func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"firstName":  u.FirstName,
		"lastName":   u.LastName,
		"phone":      u.Phone,
		"address":    u.Address,
		"district":   u.District,
		"province":   u.Province,
		"postalCode": u.PostalCode,
		"role":       u.Role,
		"createdAt":  u.CreatedAt,
		"updatedAt":  u.UpdatedAt,
	}
}

// ออก CSRF token ใหม่ + เซ็ต cookie แล้วคืนค่าให้ client cache ไว้
func (a *AuthController) issueCSRF(c *gin.Context) string {
	token := middlewares.GenerateCSRFToken(a.Cfg.CSRFSecret)
	utils.SetCSRFTokenCookie(c, token, int(a.Cfg.CSRFTokenTTL.Seconds()))
	return token
}

// POST /api/users/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	user, err := a.Svc.Register(services.RegisterRequest{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, "อีเมลนี้ถูกใช้งานแล้ว")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการสมัครสมาชิก", err)
		return
	}

	resp.Created(c, gin.H{
		"message":   "สมัครสมาชิกสำเร็จ",
		"user":      userJSON(user),
		"csrfToken": a.issueCSRF(c),
	})
}

// POST /api/users/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกชื่อผู้ใช้/อีเมลและรหัสผ่าน")
		return
	}

	user, pair, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "ชื่อผู้ใช้/อีเมลหรือรหัสผ่านไม่ถูกต้อง")
			return
		}
		resp.ServerError(c, "เกิดข้อผิดพลาดในการเข้าสู่ระบบ", err)
		return
	}

	utils.SetAccessTokenCookie(c, pair.AccessToken, int(a.Cfg.AccessTokenTTL.Seconds()))
	utils.SetRefreshTokenCookie(c, pair.RefreshToken, int(a.Cfg.RefreshTokenTTL.Seconds()))

	resp.OK(c, gin.H{
		"message":   "เข้าสู่ระบบสำเร็จ",
		"user":      userJSON(user),
		"csrfToken": a.issueCSRF(c),
	})
}

// POST /api/users/logout เคลียร์ cookie ทุกตัว
func (a *AuthController) Logout(c *gin.Context) {
	utils.ClearAllAuthCookies(c)
	resp.OK(c, gin.H{"message": "ออกจากระบบสำเร็จ"})
}

// POST /api/users/refresh
// อ่าน refresh cookie → ตรวจ → ยืนยัน user ยังอยู่ → ออก access token ใหม่
// พังตรงไหนก็ตาม = เคลียร์ cookie ให้หมดแล้ว 401
func (a *AuthController) Refresh(c *gin.Context) {
	refreshToken := utils.GetRefreshTokenCookie(c)
	if refreshToken == "" {
		resp.Unauthorized(c, "Refresh token not found")
		return
	}

	accessToken, err := a.Svc.Refresh(refreshToken)
	if err != nil {
		utils.ClearAllAuthCookies(c)
		if errors.Is(err, services.ErrUserNotFound) {
			resp.Unauthorized(c, "User not found")
			return
		}
		resp.Unauthorized(c, "Invalid refresh token")
		return
	}

	utils.SetAccessTokenCookie(c, accessToken, int(a.Cfg.AccessTokenTTL.Seconds()))
	resp.OK(c, gin.H{"message": "Token refreshed successfully"})
}

// GET /api/users/profile
func (a *AuthController) GetProfile(c *gin.Context) {
	user, err := a.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "ไม่พบข้อมูลผู้ใช้")
		return
	}
	resp.OK(c, gin.H{"user": userJSON(user)})
}

// PUT /api/users/profile
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	user, err := a.Svc.UpdateProfile(utils.CurrentUserID(c), req)
	if err != nil {
		resp.ServerError(c, "เกิดข้อผิดพลาดในการอัปเดตข้อมูล", err)
		return
	}
	resp.OK(c, gin.H{"message": "อัปเดตข้อมูลสำเร็จ", "user": userJSON(user)})
}

// GET /api/csrf-token ให้ client ขอ token ใหม่ก่อนยิง request ที่แก้ข้อมูล
func (a *AuthController) CSRFToken(c *gin.Context) {
	resp.OK(c, gin.H{"csrfToken": a.issueCSRF(c)})
}
