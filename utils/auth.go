package utils

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AdminTokenValidity is the lifetime of an issued admin bearer token.
const AdminTokenValidity = 12 * time.Hour

// HashPassword creates a bcrypt hash of the password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a password against a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// VerifyCredentials checks the supplied pair against the configured admin
// identity. Both legs are always evaluated and the result carries no hint of
// which one failed, so a caller cannot probe for valid usernames.
func VerifyCredentials(username, password, wantUsername, passwordHash string) bool {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUsername)) == 1
	passwordOK := CheckPassword(password, passwordHash)
	return usernameOK && passwordOK
}

// GenerateAdminToken creates a signed JWT carrying the admin username
func GenerateAdminToken(username, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(AdminTokenValidity).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ValidateAdminToken validates signature and expiry and returns the username
// claim. Missing, malformed, expired and badly signed tokens all fail the
// same way.
func ValidateAdminToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}

	username, ok := claims["username"].(string)
	if !ok {
		return "", errors.New("invalid username in token")
	}
	return username, nil
}
