package delivery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/pkg/strutil"
)

// maxBodySnippetBytes Error.BodySnippet에 담는 응답 본문 최대 크기
const maxBodySnippetBytes = 512

// Error 메시지 전송 실패를 나타내는 단일 에러 타입입니다.
//
// 네트워크 오류, 타임아웃, 2xx 이외의 응답 등 전송 과정에서 발생한 모든 실패는 이 타입으로 정규화됩니다.
// Cause는 항상 apperrors.AppError 이며, 에러 타입으로 재시도 가능 여부를 판단할 수 있습니다.
//   - Timeout / Unavailable: 타임아웃, 연결 실패, 5xx, 429
//   - ExecutionFailed: 그 밖의 4xx 등 대상 서비스가 요청을 거부한 경우
type Error struct {
	URL         string // 마스킹된 요청 URL
	StatusCode  int    // 응답을 받지 못했으면 0
	Status      string
	BodySnippet string
	Cause       error
}

func (e *Error) Error() string {
	msg := "메시지 전송 실패"
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %s)", e.Status)
	}
	if e.URL != "" {
		msg += " URL: " + e.URL
	}
	if e.BodySnippet != "" {
		msg += ", Body: " + e.BodySnippet
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Type 실패 원인의 에러 타입을 반환합니다.
func (e *Error) Type() apperrors.ErrorType {
	return apperrors.UnderlyingType(e.Cause)
}

// Temporary 재시도하면 성공할 가능성이 있는 실패인지 여부를 반환합니다.
func (e *Error) Temporary() bool {
	return e.Type().Temporary()
}

// AsError 에러 체인에서 *Error를 찾아 반환합니다.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Submit Transport로 요청을 보내고 결과를 분류합니다.
// 2xx 응답이면 응답을 반환하고, 그 밖의 모든 경우에는 *Error를 반환합니다.
func Submit(ctx context.Context, t Transport, req *Request) (*Response, error) {
	maskedURL := strutil.MaskURL(req.URL)

	resp, err := t.Post(ctx, req)
	if err != nil {
		return nil, &Error{URL: maskedURL, Cause: classifyTransportError(err)}
	}
	if resp == nil {
		return nil, &Error{URL: maskedURL, Cause: apperrors.New(apperrors.ExecutionFailed, "Transport가 응답 없이 종료되었습니다")}
	}

	if !resp.IsSuccess() {
		status := resp.Status
		if status == "" {
			status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
		}

		return nil, &Error{
			URL:         maskedURL,
			StatusCode:  resp.StatusCode,
			Status:      status,
			BodySnippet: strutil.Truncate(string(resp.Body), maxBodySnippetBytes),
			Cause:       apperrors.Newf(statusErrorType(resp.StatusCode), "대상 서비스가 요청을 처리하지 못했습니다. 상태 코드: %d", resp.StatusCode),
		}
	}

	return resp, nil
}

// PostJSON v를 JSON 본문으로 전송합니다. 요청 본문 생성에 실패한 경우에도 *Error를 반환합니다.
func PostJSON(ctx context.Context, t Transport, rawURL string, v any) (*Response, error) {
	req, err := NewJSONRequest(rawURL, v)
	if err != nil {
		return nil, &Error{URL: strutil.MaskURL(rawURL), Cause: err}
	}
	return Submit(ctx, t, req)
}

// statusErrorType 5xx 와 429 는 일시적인 장애(Unavailable), 그 밖의 상태 코드는 요청 거부(ExecutionFailed)로 분류합니다.
func statusErrorType(statusCode int) apperrors.ErrorType {
	if statusCode >= 500 || statusCode == http.StatusTooManyRequests {
		return apperrors.Unavailable
	}
	return apperrors.ExecutionFailed
}

// classifyTransportError Transport 고유의 에러 타입이 상위로 노출되지 않도록 AppError로 감쌉니다.
func classifyTransportError(err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	err = MaskURLError(err)

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return apperrors.Wrap(err, apperrors.Timeout, "대상 서비스의 응답 시간이 초과되었습니다")
	default:
		return apperrors.Wrap(err, apperrors.Unavailable, "대상 서비스에 연결할 수 없습니다")
	}
}

// MaskURLError 에러 체인에 *url.Error가 있으면 요청 URL을 마스킹한 *url.Error로 바꿔 반환합니다.
// 웹훅 경로나 봇 토큰이 담긴 원본 URL은 에러 메시지에 남기지 않습니다.
func MaskURLError(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: strutil.MaskURL(urlErr.URL),
		Err: urlErr.Err,
	}
}
