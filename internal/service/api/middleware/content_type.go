package middleware

import (
	"mime"
	"slices"

	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 본문이 있는 요청의 미디어 타입이 allowed 중 하나인지 검사하는 미들웨어를 반환합니다.
//
// charset 등의 파라미터와 대소문자는 무시합니다. 허용되지 않으면 415 Unsupported Media Type을 반환합니다.
func ValidateContentType(allowed ...string) echo.MiddlewareFunc {
	if len(allowed) == 0 {
		panic("[ValidateContentType] 허용할 Content-Type이 하나 이상 필요합니다")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || !slices.Contains(allowed, mediaType) {
				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"path":       req.URL.Path,
					"allowed":    allowed,
					"actual":     contentType,
				}).Warn("지원하지 않는 Content-Type 요청")

				return ErrUnsupportedMediaType
			}

			return next(c)
		}
	}
}
