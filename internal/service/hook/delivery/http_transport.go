package delivery

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout          = 10 * time.Second
	defaultUserAgent        = "team-hooks/1.0"
	defaultMaxResponseBytes = 4 * 1024

	// maxDrainBytes 커넥션 재사용을 위해 응답 본문을 비울 때 읽는 최대 바이트 수
	maxDrainBytes = 64 * 1024
)

// Options HTTPTransport 설정입니다. 0 값 필드는 기본값을 사용합니다.
type Options struct {
	Timeout          time.Duration // 요청 하나의 최대 소요 시간 (기본값: 10s)
	RateLimit        float64       // 초당 최대 요청 수 (0 이하: 제한 없음)
	RateBurst        int           // 순간 허용 요청 수 (기본값: 1)
	UserAgent        string
	MaxResponseBytes int64 // Response.Body에 담을 최대 바이트 수 (기본값: 4KB)
}

// HTTPTransport net/http 기반의 Transport 구현체입니다.
//
// 호출자의 컨텍스트가 취소되어도 이미 시작한 요청은 중단하지 않고 Timeout까지 진행합니다.
// 이미 전송된 HTTP 요청은 되돌릴 수 없기 때문입니다. 컨텍스트 취소는 요청 시작 전(속도 제한 대기 중)에만 반영됩니다.
type HTTPTransport struct {
	client           *http.Client
	limiter          *rate.Limiter
	userAgent        string
	maxResponseBytes int64
}

func NewHTTPTransport(opts Options) *HTTPTransport {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.MaxResponseBytes <= 0 {
		opts.MaxResponseBytes = defaultMaxResponseBytes
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &HTTPTransport{
		client:           &http.Client{Timeout: opts.Timeout},
		limiter:          limiter,
		userAgent:        opts.UserAgent,
		maxResponseBytes: opts.MaxResponseBytes,
	}
}

func (t *HTTPTransport) Post(ctx context.Context, req *Request) (*Response, error) {
	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, apperrors.Wrap(err, apperrors.Unavailable, "전송 속도 제한 대기 중 요청이 취소되었습니다")
		}
	}

	httpReq, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodPost, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, apperrors.Wrap(MaskURLError(err), apperrors.InvalidInput, "전송 요청을 생성하는 데 실패했습니다")
	}

	for k, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(k, v)
		}
	}
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, MaskURLError(err)
	}
	defer drainAndCloseBody(resp.Body)

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, t.maxResponseBytes))
	latency := time.Since(start)
	if readErr != nil {
		return nil, apperrors.Wrap(readErr, apperrors.Unavailable, "응답 본문을 읽는 데 실패했습니다")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       body,
		Latency:    latency,
	}, nil
}

// drainAndCloseBody Keep-Alive 커넥션을 재사용할 수 있도록 남은 본문을 일정량 비운 뒤 닫습니다.
func drainAndCloseBody(body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes))
	_ = body.Close()
}
