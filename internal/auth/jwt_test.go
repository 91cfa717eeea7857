package auth

import (
	"testing"

	"github.com/sealteck/doortrack/internal/config"
	"github.com/sealteck/doortrack/internal/constant"
)

// Generate a token pair and verify both tokens round-trip with the role and
// token type intact.
func TestJWT(t *testing.T) {
	jwtService := NewJwt(config.AuthConfig{JWT_SECRET: "test-secret"}, nil)

	payload := JWTPayload{
		ID:        "id1234",
		Email:     "inspector@sealteck.test",
		FirstName: "Test",
		LastName:  "Inspector",
		Role:      constant.RoleInspector,
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	if err != nil {
		t.Fatalf("An error occurred during refresh token and access token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Fatalf("An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("Refresh token type = %s, want %s", refreshClaims.Type, constant.JWT_TYPE_REFRESH)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Fatalf("An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("Access token type = %s, want %s", accessClaims.Type, constant.JWT_TYPE_ACCESS)
	}
	if accessClaims.User != payload {
		t.Errorf("Access token payload = %+v, want %+v", accessClaims.User, payload)
	}
}

func TestVerifyJwtTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJwt(config.AuthConfig{JWT_SECRET: "secret-a"}, nil)
	verifier := NewJwt(config.AuthConfig{JWT_SECRET: "secret-b"}, nil)

	_, accessToken, err := issuer.GenerateRefreshAndAccessToken(JWTPayload{ID: "id1", Email: "a@b.c", FirstName: "A", LastName: "B", Role: constant.RoleAdmin})
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	if _, err := verifier.VerifyJwtToken(*accessToken); err == nil {
		t.Errorf("VerifyJwtToken accepted a token signed with a different secret")
	}
}
