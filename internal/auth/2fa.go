package auth

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"net/url"
	"strings"

	"github.com/pquerna/otp/totp"
)

// TOTPSecretSize is the size of the TOTP secret
const TOTPSecretSize = 20

// GenerateTOTPSecret generates a new random TOTP secret
func GenerateTOTPSecret() (string, error) {
	secret := make([]byte, TOTPSecretSize)
	_, err := rand.Read(secret)
	if err != nil {
		return "", err
	}

	// Convert to base32 (requirements for Google Authenticator)
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}

// GenerateTOTPQRCodeURL generates a URL for QR code that can be scanned by Google Authenticator
func GenerateTOTPQRCodeURL(secret, accountName, issuer string) string {
	secret = strings.TrimSpace(secret)

	// Create a standard TOTP URL
	return fmt.Sprintf(
		"otpauth://totp/%s:%s?algorithm=SHA1&digits=6&issuer=%s&period=30&secret=%s",
		url.QueryEscape(issuer),
		url.QueryEscape(accountName),
		url.QueryEscape(issuer),
		secret,
	)
}

// ValidateTOTP checks if the provided TOTP code is valid for the given secret
func ValidateTOTP(secret, code string) bool {
	return totp.Validate(code, strings.TrimSpace(secret))
}
