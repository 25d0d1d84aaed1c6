package auth

import (
	"call-lab/domain"
	"call-lab/errors"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	tokenIssuer  = "call-lab"
	hkdfInfo     = "call-lab kit token v1"
	signingKeyNb = 32
)

// KitClaims defines the structure of the data stored inside a calling token.
type KitClaims struct {
	AppID    uint32 `json:"app_id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	RoomID   string `json:"room_id,omitempty"`
	jwt.RegisteredClaims
}

// KitTokenIssuer signs calling tokens locally from the application's server
// secret, the same way the provider's test-token helper does.
type KitTokenIssuer struct {
	secret   []byte
	duration time.Duration
}

func NewKitTokenIssuer(serverSecret string, duration time.Duration) *KitTokenIssuer {
	return &KitTokenIssuer{secret: []byte(serverSecret), duration: duration}
}

// IssueToken creates a signed token scoped to (app, user, display name) and,
// when ConversationID is set, to a single room.
func (k *KitTokenIssuer) IssueToken(ctx context.Context, request domain.TokenRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateTokenRequest(request); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidTokenRequest, err)
	}
	key, err := k.signingKey(request.AppID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &KitClaims{
		AppID:    request.AppID,
		UserID:   request.UserID,
		UserName: request.DisplayName,
		RoomID:   request.ConversationID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   request.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(k.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidateToken parses and validates the signature and expiration of a calling token.
func (k *KitTokenIssuer) ValidateToken(appID uint32, tokenString string) (*KitClaims, error) {
	key, err := k.signingKey(appID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(tokenString, &KitClaims{}, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*KitClaims); ok && token.Valid && claims.AppID == appID {
		return claims, nil
	}
	return nil, jwt.ErrSignatureInvalid
}

// signingKey derives a per-application HMAC key from the server secret.
func (k *KitTokenIssuer) signingKey(appID uint32) ([]byte, error) {
	if len(k.secret) == 0 {
		return nil, fmt.Errorf("%w: empty server secret", errors.ErrTokenIssuance)
	}
	salt := []byte(strconv.FormatUint(uint64(appID), 10))
	key := make([]byte, signingKeyNb)
	if _, err := io.ReadFull(hkdf.New(sha256.New, k.secret, salt, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrTokenIssuance, err)
	}
	return key, nil
}
