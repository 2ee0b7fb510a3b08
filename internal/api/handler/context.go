package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// rejectForeignSubject answers 403 when the token validated by the Auth
// middleware belongs to someone other than username. Routes outside the
// middleware carry no username in context and always pass. The bool reports
// whether a response has been written.
func rejectForeignSubject(c echo.Context, username string) (bool, error) {
	subject, _ := c.Get("username").(string)
	if subject == "" || subject == username {
		return false, nil
	}
	return true, c.JSON(http.StatusForbidden, messageResponse{Message: "Token does not match username"})
}
