package context

import "github.com/labstack/echo/v4"

// KeyUserEmail is the key for the signed-in user's email in echo.Context.
const KeyUserEmail ContextKey = "user_email"

// SetUserEmail stores the signed-in user's email.
func SetUserEmail(c echo.Context, email string) {
	c.Set(string(KeyUserEmail), email)
}

// GetUserEmail returns the email set by the auth middleware, or "".
func GetUserEmail(c echo.Context) string {
	email, _ := c.Get(string(KeyUserEmail)).(string)

	return email
}
