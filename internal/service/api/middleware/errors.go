package middleware

import (
	"net/http"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/api/constants"
	"github.com/labstack/echo/v4"
)

// ErrUnsupportedMediaType 요청 본문의 Content-Type을 처리할 수 없을 때 반환하는 415 에러입니다.
var ErrUnsupportedMediaType = echo.NewHTTPError(http.StatusUnsupportedMediaType, constants.ErrMsgUnsupportedMediaType)

// NewErrPanicRecovered 복구한 패닉 값을 Internal 에러로 변환합니다. 값이 error이면 원인으로 보존합니다.
func NewErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "핸들러 실행 중 패닉이 발생했습니다")
	}
	return apperrors.Newf(apperrors.Internal, "핸들러 실행 중 패닉이 발생했습니다: %v", r)
}
