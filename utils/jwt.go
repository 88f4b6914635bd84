package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPayload คือข้อมูลผู้ใช้ที่ฝังอยู่ใน token ทั้งสองชนิด
type TokenPayload struct {
	UserID uint
	Email  string
	Role   string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Claims เป็น custom JWT claims ที่เราจะใช้ในระบบ
type Claims struct {
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"type,omitempty"` // "refresh" เฉพาะ refresh token
	jwt.RegisteredClaims
}

// GenerateAccessToken สร้าง access token อายุสั้น
func GenerateAccessToken(p TokenPayload, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: p.UserID,
		Email:  p.Email,
		Role:   p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateRefreshToken สร้าง refresh token อายุยาว เซ็นด้วย secret คนละตัว
// และฝัง type marker ไว้กันเอา access token มาใช้แทน
func GenerateRefreshToken(p TokenPayload, refreshSecret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    p.UserID,
		Email:     p.Email,
		Role:      p.Role,
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(refreshSecret))
}

func GenerateTokenPair(p TokenPayload, secret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*TokenPair, error) {
	access, err := GenerateAccessToken(p, secret, accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := GenerateRefreshToken(p, refreshSecret, refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func parseClaims(tokenStr, secret string) *Claims {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// VerifyAccessToken คืน payload หรือ nil ถ้า token หมดอายุ/ผิด secret/เพี้ยน
func VerifyAccessToken(tokenStr, secret string) *TokenPayload {
	claims := parseClaims(tokenStr, secret)
	if claims == nil || claims.TokenType != "" {
		return nil
	}
	return &TokenPayload{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
}

// VerifyRefreshToken เหมือน VerifyAccessToken แต่บังคับ type marker ด้วย
func VerifyRefreshToken(tokenStr, refreshSecret string) *TokenPayload {
	claims := parseClaims(tokenStr, refreshSecret)
	if claims == nil || claims.TokenType != "refresh" {
		return nil
	}
	return &TokenPayload{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
}
