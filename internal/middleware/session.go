package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/localnerve/reviewdb/internal/types"
)

// SessionCookie is the cookie name carrying the opaque session id.
const SessionCookie = "reviewdb_session"

// sessionUserKey is the session data key holding the account id.
const sessionUserKey = "userID"

// NewSessionStore creates the cookie session store. Sessions live in process
// memory; a restart invalidates every session, which is acceptable for this
// service.
func NewSessionStore(ttl time.Duration) *session.Store {
	return session.New(session.Config{
		Expiration:     ttl,
		KeyLookup:      "cookie:" + SessionCookie,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// LoginUser binds the account id to the request session and sets the cookie.
func LoginUser(store *session.Store, c *fiber.Ctx, userID uint64) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// LogoutUser destroys the request session and expires the cookie. A request
// without a live session is a no-op.
func LogoutUser(store *session.Store, c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if sess.Fresh() {
		return nil
	}
	return sess.Destroy()
}

// AuthUser requires a logged-in session and stores the account id in the
// request context under "userID".
func AuthUser(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return err
		}
		userID, ok := sess.Get(sessionUserKey).(uint64)
		if !ok {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Session cookie \"" + SessionCookie + "\" not found or expired",
				Type:    "user.authorization",
			}
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}
