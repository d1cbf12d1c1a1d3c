package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumopress/user-directory/internal/core/domain"
)

// ctxAuth extracts the claims injected by the Auth middleware into an
// explicit AuthContext, failing fast before any service call. Both the
// role and the uid claim must be present; a token without a subject is
// rejected with 401.
func ctxAuth(c echo.Context) (domain.AuthContext, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.AuthContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return domain.AuthContext{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject identity")
	}

	return domain.AuthContext{SubjectID: uid, Role: role}, nil
}
