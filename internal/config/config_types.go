package config

import (
	"fmt"
	"time"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.HTTP, "HTTP"); err != nil {
		return err
	}

	if err := checkStruct(v, c.Dispatch, "Dispatch"); err != nil {
		return err
	}

	if err := c.validateHooks(v); err != nil {
		return err
	}

	if err := checkStruct(v, c.API, "API"); err != nil {
		return err
	}

	return nil
}

func (c *AppConfig) validateHooks(v *validator.Validate) error {
	// Hooks 중복 ID 검사
	if err := checkUniqueField(v, c.Hooks, "ID", "Hook"); err != nil {
		return err
	}

	for i, h := range c.Hooks {
		if err := checkStruct(v, h, fmt.Sprintf("Hook[%d:'%s']", i, h.ID)); err != nil {
			return err
		}
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 에러를 발생시키지는 않으며, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	warnings = append(warnings, c.API.VerifyRecommendations()...)

	if len(c.EnabledHooks()) == 0 {
		warnings = append(warnings, "활성화된 훅이 없습니다. 수신한 이벤트는 어디에도 전달되지 않습니다")
	}

	return warnings
}

// EnabledHooks 비활성화(disabled)되지 않은 훅 설정만 선언 순서대로 반환합니다.
func (c *AppConfig) EnabledHooks() []HookConfig {
	var hooks []HookConfig
	for _, h := range c.Hooks {
		if !h.Disabled {
			hooks = append(hooks, h)
		}
	}
	return hooks
}

// HTTPConfig 훅 대상 서비스로 요청을 보내는 HTTP 클라이언트 설정
type HTTPConfig struct {
	Timeout time.Duration `json:"timeout" validate:"gt=0"`

	// RateLimit 초당 최대 요청 수 (0이면 제한 없음)
	RateLimit float64 `json:"rate_limit" validate:"gte=0"`
	RateBurst int     `json:"rate_burst" validate:"gte=0"`

	UserAgent string `json:"user_agent"`
}

// DispatchConfig 이벤트 발송 설정
type DispatchConfig struct {
	MaxConcurrency int `json:"max_concurrency" validate:"min=1,max=64"`
}

// HookConfig 훅 하나의 설정입니다. Properties는 Service로 지정한 훅 종류의 속성 정의에 따라 검증됩니다.
type HookConfig struct {
	ID         string         `json:"id" validate:"required"`
	Service    string         `json:"service" validate:"required"`
	Disabled   bool           `json:"disabled"`
	Properties map[string]any `json:"properties"`
}

// APIConfig 이벤트 수신 REST API 서버 설정
type APIConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`

	// AppKey API 호출 시 app_key로 전달해야 하는 인증 키
	AppKey string `json:"app_key"`
}

func (c *APIConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	if c.AppKey == "" {
		warnings = append(warnings, "API 키(app_key)가 설정되지 않았습니다. API 서버를 시작할 수 없습니다")
	}

	return warnings
}

// newErrAppKeyRequired API 서버 시작 시 app_key가 없을 때 반환하는 에러를 생성합니다.
func newErrAppKeyRequired() error {
	return apperrors.New(apperrors.InvalidInput, "API 키(app_key)가 설정되지 않았습니다")
}

// RequireAppKey API 서버 구동에 필요한 app_key가 설정되어 있는지 확인합니다.
func (c *APIConfig) RequireAppKey() error {
	if c.AppKey == "" {
		return newErrAppKeyRequired()
	}
	return nil
}
