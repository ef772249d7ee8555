package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
)

// PanicRecovery 핸들러(또는 이후 미들웨어)에서 발생한 패닉을 500 에러로 바꾸는 미들웨어를 반환합니다.
//
// http.ErrAbortHandler는 net/http가 연결을 끊는 신호이므로 복구하지 않고 다시 패닉을 발생시킵니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(r)
				}

				err := NewErrPanicRecovered(r)

				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"method":     c.Request().Method,
					"path":       c.Request().URL.Path,
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"error":      err,
					"stack":      string(debug.Stack()),
				}).Error("핸들러 실행 중 패닉 복구")

				c.Error(err)
				returnErr = nil
			}()

			return next(c)
		}
	}
}
