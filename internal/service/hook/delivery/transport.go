// Package delivery 훅 메시지를 외부 서비스로 전송하는 Transport와,
// 전송 결과를 단일 에러 타입(*Error)으로 분류하는 기능을 제공합니다.
package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
)

const (
	contentTypeJSON = "application/json; charset=utf-8"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Request 외부 서비스로 보낼 POST 요청입니다.
type Request struct {
	URL         string
	Header      http.Header
	ContentType string
	Body        []byte
}

// Response 외부 서비스의 응답입니다. Body는 Transport 설정에 따라 앞부분만 담길 수 있습니다.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Latency    time.Duration
}

// IsSuccess 2xx 응답인지 여부를 반환합니다.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport 실제 네트워크 호출을 수행하는 좁은 계약입니다.
// 구현체는 상태 코드를 해석하지 않으며, 결과 분류는 Submit이 담당합니다.
type Transport interface {
	Post(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc 일반 함수를 Transport로 사용할 수 있게 하는 어댑터입니다.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Post(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// NewJSONRequest v를 JSON으로 직렬화한 요청을 생성합니다.
func NewJSONRequest(rawURL string, v any) (*Request, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "메시지 본문을 JSON으로 변환하는 데 실패했습니다")
	}

	return &Request{
		URL:         rawURL,
		Header:      make(http.Header),
		ContentType: contentTypeJSON,
		Body:        body,
	}, nil
}

// NewFormRequest 폼 인코딩된 본문을 가진 요청을 생성합니다.
func NewFormRequest(rawURL string, values url.Values) *Request {
	return &Request{
		URL:         rawURL,
		Header:      make(http.Header),
		ContentType: contentTypeForm,
		Body:        []byte(values.Encode()),
	}
}

// JoinURL 기본 URL 뒤에 경로를 붙입니다. 중복되거나 누락된 슬래시를 정리합니다.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
