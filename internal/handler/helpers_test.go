package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/seportal/uniportal/internal/auth"
	"github.com/seportal/uniportal/internal/middleware"
	"github.com/seportal/uniportal/internal/models"
)

var (
	studentPrincipal = auth.Principal{UserID: 7, StudentID: "6401234", Name: "Ploy S.", Role: models.RoleStudent, Year: 3}
	adminPrincipal   = auth.Principal{UserID: 1, Name: "Registrar", Role: models.RoleAdmin}
)

func newTestContext(method, target, body string, p auth.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = middleware.NewRequestValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	auth.WithPrincipal(c, p)
	return c, rec
}
