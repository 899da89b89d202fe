package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"awards-cms-go/pkg/config"
	"awards-cms-go/pkg/model"
)

// ErrInvalidCredentials is returned for a wrong username, password or
// TOTP code. Callers get the same error for each so responses do not
// reveal which part failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrTOTPRequired signals that credentials were correct but the second
// factor is missing
var ErrTOTPRequired = errors.New("totp_required")

const sessionTTL = 24 * time.Hour

// AuthService authenticates the configured admin and issues session tokens
type AuthService struct {
	adminUser     string
	adminPass     string
	adminPassHash string
	totpSecret    string
	jwtSecret     []byte
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		adminUser:     cfg.AdminUser,
		adminPass:     cfg.AdminPass,
		adminPassHash: cfg.AdminPassHash,
		totpSecret:    cfg.TOTPSecret,
		jwtSecret:     []byte(cfg.JWTSecret),
	}
}

// secureCompare reports whether two strings are equal without leaking
// timing information. Inputs are hashed first so length differences do
// not short-circuit the comparison.
func secureCompare(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}

// checkPassword verifies the password against the bcrypt hash when one
// is configured, otherwise against the plain configured value
func (s *AuthService) checkPassword(password string) bool {
	if s.adminPassHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassHash), []byte(password)) == nil
	}
	return secureCompare(password, s.adminPass)
}

// HashPassword creates a bcrypt hash suitable for ADMIN_PASS_HASH
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// Login authenticates the admin and returns a session token
func (s *AuthService) Login(creds model.UserCredentials) (string, error) {
	userOK := secureCompare(creds.Username, s.adminUser)
	passOK := s.checkPassword(creds.Password)
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	if s.totpSecret != "" {
		if creds.TOTPCode == "" {
			return "", ErrTOTPRequired
		}
		if !ValidateTOTP(s.totpSecret, creds.TOTPCode) {
			return "", ErrInvalidCredentials
		}
	}

	return s.GenerateJWT(creds.Username)
}

// GenerateJWT creates a new session token for the authenticated admin
func (s *AuthService) GenerateJWT(username string) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = username
	claims["exp"] = time.Now().Add(sessionTTL).Unix()

	return token.SignedString(s.jwtSecret)
}

// VerifySessionToken validates a session token and returns the username
func VerifySessionToken(tokenString, jwtSecret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return "", errors.New("invalid session claims")
	}
	return username, nil
}
