package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestValidateContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		contentType string
		expectErr   bool
	}{
		{name: "JSON", body: `{"kind":"item_created"}`, contentType: echo.MIMEApplicationJSON},
		{name: "charset 포함", body: `{}`, contentType: "application/json; charset=UTF-8"},
		{name: "대소문자 무시", body: `{}`, contentType: "Application/JSON"},
		{name: "본문 없음", body: "", contentType: ""},
		{name: "헤더 누락", body: `{}`, contentType: "", expectErr: true},
		{name: "다른 형식", body: `a=b`, contentType: echo.MIMEApplicationForm, expectErr: true},
		{name: "접두사만 일치", body: `{}`, contentType: "application/json-patch+json", expectErr: true},
		{name: "잘못된 헤더", body: `{}`, contentType: "application/json; =", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())

			err := ValidateContentType(echo.MIMEApplicationJSON)(func(c echo.Context) error {
				return nil
			})(c)

			if tt.expectErr {
				assert.ErrorIs(t, err, ErrUnsupportedMediaType)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateContentType_NoAllowedTypes(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { ValidateContentType() })
}
