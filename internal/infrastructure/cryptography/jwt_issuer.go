package cryptography

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jack0rich/BigdataServer/internal/domain/users"
)

// JWTIssuerName identifies tokens minted by this gateway.
const JWTIssuerName = "cluster-gateway"

// sessionClaims are the JWT claims carried by a gateway session token.
type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// jwtIssuer implements users.TokenIssuer with HS256.
type jwtIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewJWTIssuer creates a TokenIssuer from a base64-encoded HMAC secret.
func NewJWTIssuer(secretBase64 string, expiry time.Duration) (users.TokenIssuer, error) {
	secret, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT secret: %w", err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("JWT secret must not be empty")
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	return &jwtIssuer{secret: secret, expiry: expiry}, nil
}

// Issue signs a session token for the user.
func (i *jwtIssuer) Issue(userID, username string) (*users.Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(i.expiry)

	claims := sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    JWTIssuerName,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &users.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    userID,
		Username:  username,
	}, nil
}

// Verify parses and validates a session token.
func (i *jwtIssuer) Verify(tokenString string) (*users.Session, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	session := &users.Session{
		Token:    tokenString,
		UserID:   claims.Subject,
		Username: claims.Username,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
