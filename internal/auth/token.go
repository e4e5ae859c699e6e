package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// UserClaim is the identity embedded in every token. The password hash is
// deliberately absent.
type UserClaim struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Claims describes the JWT payload.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// TokenManager handles issuing and validating JWT tokens. Login tokens get
// the long session window; refresh tokens replace them with a fixed window
// on every authorized request.
type TokenManager struct {
	secret     []byte
	loginTTL   time.Duration
	refreshTTL time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, loginTTL, refreshTTL time.Duration) *TokenManager {
	if loginTTL <= 0 {
		loginTTL = 24 * 60 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), loginTTL: loginTTL, refreshTTL: refreshTTL}
}

// GenerateLoginToken signs a token with the session window handed out at
// sign-in.
func (tm *TokenManager) GenerateLoginToken(user UserClaim) (string, time.Time, error) {
	return tm.generate(user, tm.loginTTL)
}

// GenerateRefreshToken signs the fixed-window replacement token minted on
// every authorized request.
func (tm *TokenManager) GenerateRefreshToken(user UserClaim) (string, time.Time, error) {
	return tm.generate(user, tm.refreshTTL)
}

func (tm *TokenManager) generate(user UserClaim, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := &Claims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates signature and expiry and returns the claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
