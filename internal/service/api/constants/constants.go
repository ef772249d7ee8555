// Package constants API 서버 전반에서 공유하는 상수를 정의합니다.
package constants

import "time"

// 로그 발생 위치(컴포넌트) 식별을 위한 상수입니다.
const (
	ComponentService      = "api.service"
	ComponentHandler      = "api.handler"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
	ComponentAccessLog    = "api.access"
)

// 인증
const (
	// HeaderAppKey 애플리케이션 인증용 HTTP 헤더 키 (권장 방식)
	HeaderAppKey = "X-App-Key"

	// QueryParamAppKey 애플리케이션 인증용 쿼리 파라미터 키 (레거시)
	QueryParamAppKey = "app_key"
)

// 서버 설정 기본값
const (
	// DefaultRequestTimeout HTTP 요청 하나의 최대 처리 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기. 이벤트 본문(rendered_body)을 포함하므로 여유 있게 잡는다.
	DefaultMaxBodySize = "2M"

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultWriteTimeout      = 75 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRateLimitPerSecond IP별 초당 허용 요청 수
	DefaultRateLimitPerSecond = 20

	// DefaultRateLimitBurst IP별 버스트 허용량
	DefaultRateLimitBurst = 40
)

// 헬스체크
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	// DependencyHookService 헬스체크 응답에서 훅 서비스를 가리키는 의존성 이름
	DependencyHookService = "hook_service"
)

// 클라이언트에게 반환되는 표준 에러 메시지
const (
	ErrMsgNotFound             = "페이지를 찾을 수 없습니다."
	ErrMsgInternalServer       = "내부 서버 오류가 발생했습니다."
	ErrMsgTooManyRequests      = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgUnsupportedMediaType = "지원하지 않는 Content-Type 형식입니다"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	QueryParamAppKey,
	"api_key",
	"password",
	"token",
	"secret",
}
