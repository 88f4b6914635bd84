package utils

import (
	"testing"
	"time"
)

var testPayload = TokenPayload{UserID: 7, Email: "user@example.com", Role: "user"}

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(testPayload, "secret-a", 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	got := VerifyAccessToken(token, "secret-a")
	if got == nil {
		t.Fatal("expected valid token")
	}
	if got.UserID != testPayload.UserID || got.Email != testPayload.Email || got.Role != testPayload.Role {
		t.Errorf("payload mismatch: %+v", got)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testPayload, "secret-a", 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if VerifyAccessToken(token, "secret-b") != nil {
		t.Error("token verified with wrong secret")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken(testPayload, "secret-a", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if VerifyAccessToken(token, "secret-a") != nil {
		t.Error("expired token verified")
	}
}

func TestRefreshTokenNotAcceptedAsAccess(t *testing.T) {
	// access กับ refresh ใช้คนละ secret และ refresh มี type กำกับ
	refresh, err := GenerateRefreshToken(testPayload, "refresh-secret", 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if VerifyAccessToken(refresh, "secret-a") != nil {
		t.Error("refresh token accepted as access token")
	}
	if VerifyAccessToken(refresh, "refresh-secret") != nil {
		t.Error("refresh token accepted as access token even with refresh secret")
	}
	if VerifyRefreshToken(refresh, "refresh-secret") == nil {
		t.Error("refresh token rejected by VerifyRefreshToken")
	}
}

func TestAccessTokenNotAcceptedAsRefresh(t *testing.T) {
	access, err := GenerateAccessToken(testPayload, "shared", 15*time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if VerifyRefreshToken(access, "shared") != nil {
		t.Error("access token accepted as refresh token")
	}
}

func TestVerifyGarbage(t *testing.T) {
	if VerifyAccessToken("not-a-jwt", "secret-a") != nil {
		t.Error("garbage token verified")
	}
	if VerifyRefreshToken("", "secret-a") != nil {
		t.Error("empty token verified")
	}
}
