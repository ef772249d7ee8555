package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewUnauthorizedError 401 Unauthorized 에러를 생성합니다
func NewUnauthorizedError(message string) error {
	return newHTTPError(http.StatusUnauthorized, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// FromAppError 애플리케이션 에러를 에러 종류에 맞는 HTTP 에러로 변환합니다.
// 응답 메시지에는 가장 바깥쪽 AppError의 메시지만 담고, 원인 에러는 포함하지 않습니다.
func FromAppError(err error) error {
	var code int
	switch apperrors.UnderlyingType(err) {
	case apperrors.InvalidInput, apperrors.ParsingFailed:
		code = http.StatusBadRequest
	case apperrors.Unauthorized:
		code = http.StatusUnauthorized
	case apperrors.Forbidden:
		code = http.StatusForbidden
	case apperrors.NotFound:
		code = http.StatusNotFound
	case apperrors.Conflict:
		code = http.StatusConflict
	case apperrors.NotImplemented:
		code = http.StatusNotImplemented
	case apperrors.Timeout, apperrors.Unavailable:
		code = http.StatusServiceUnavailable
	default:
		code = http.StatusInternalServerError
	}

	message := err.Error()
	if appErr, ok := err.(*apperrors.AppError); ok {
		message = appErr.Message()
	}

	return newHTTPError(code, message)
}

// Success 표준 성공 응답(200 OK)을 JSON 형식으로 반환합니다.
func Success(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse{
		ResultCode: 0,
		Message:    "성공",
	})
}
