// Package auth implements the credential gate in front of the
// expense creation route.
//
// The reference username and password hash are configured once at
// process start. Session continuity across requests is handled by a
// signed cookie session, so the gate itself holds no per-user state.
package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is returned for every failed credential check. It
// deliberately does not reveal which of username and password was wrong.
var ErrUnauthorized = errors.New("the provided credentials are not valid")

// sessionUserKey is the session key holding the logged-in username.
const sessionUserKey = "username"

// Gate verifies submitted credentials against the reference values
// that were configured at process start.
type Gate struct {
	username     string
	passwordHash string
}

// NewGate returns a Gate for the reference username and bcrypt password hash.
func NewGate(username, passwordHash string) Gate {
	return Gate{
		username:     username,
		passwordHash: passwordHash,
	}
}

// Verify checks the submitted username and password against the
// configured reference values.
//
// The bcrypt comparison runs in every case so that a username mismatch
// is not observable through response timing.
func (g Gate) Verify(username, password string) error {
	usernameMatches := subtle.ConstantTimeCompare([]byte(g.username), []byte(username)) == 1
	err := bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password))

	if !usernameMatches || err != nil {
		return ErrUnauthorized
	}

	return nil
}

// HashPassword returns the bcrypt hash for a password. It is used when
// provisioning the reference credentials.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Login stores the authenticated username in the cookie session.
func Login(c *gin.Context, username string) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, username)
	return session.Save()
}

// Logout removes the login state from the cookie session.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}

// SessionUser returns the logged-in username for the request, if any.
func SessionUser(c *gin.Context) (string, bool) {
	session := sessions.Default(c)
	username, ok := session.Get(sessionUserKey).(string)
	if !ok || username == "" {
		return "", false
	}

	return username, true
}

// SessionRequired only lets requests with a logged-in session through.
func SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionUser(c); !ok {
			httputil.NewError(c, http.StatusUnauthorized, ErrUnauthorized)
			c.Abort()
			return
		}

		c.Next()
	}
}
