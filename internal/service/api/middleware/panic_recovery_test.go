package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// TestPanicRecovery 전역 로거를 사용하므로 병렬로 실행하지 않습니다.
func TestPanicRecovery(t *testing.T) {
	buf := new(bytes.Buffer)
	applog.SetOutput(buf)
	defer applog.SetOutput(os.Stdout)

	sentinel := errors.New("handler error")

	tests := []struct {
		name  string
		value any
		check func(t *testing.T, err error)
	}{
		{
			name:  "에러 값",
			value: sentinel,
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, sentinel) },
		},
		{
			name:  "문자열 값",
			value: "boom",
			check: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.Internal))
				assert.Contains(t, err.Error(), "boom")
			},
		},
	}

	t.Run("ErrAbortHandler는 복구하지 않음", func(t *testing.T) {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			_ = PanicRecovery()(func(echo.Context) error { panic(http.ErrAbortHandler) })(c)
		})
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			e := echo.New()
			var handled error
			e.HTTPErrorHandler = func(err error, c echo.Context) { handled = err }

			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			assert.NotPanics(t, func() {
				_ = PanicRecovery()(func(echo.Context) error { panic(tt.value) })(c)
			})

			tt.check(t, handled)
			assert.Contains(t, buf.String(), "패닉 복구")
		})
	}
}
