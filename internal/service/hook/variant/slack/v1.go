package slack

import (
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
)

// NameV1 팀 이름과 통합 토큰을 사용하던 폐기된 Slack 훅 종류 이름
const NameV1 = "slack_v1"

func init() {
	variant.MustRegister(variant.Default(), SpecV1())
}

// SpecV1 slack_v1 훅 종류 선언을 반환합니다.
//
// 기존 설정을 읽을 수 있도록 등록만 유지하며, 모든 이벤트 처리는 variant.ErrNotImplemented로 실패합니다.
func SpecV1() variant.Spec[*Notifier] {
	schema := sharedSchema().Merge(
		property.NewSchema().
			Define("teamname").
			Define("integration_token").
			Validate("teamname", property.Presence()).
			Validate("integration_token", property.Presence()),
	)

	return variant.Spec[*Notifier]{
		Name:        NameV1,
		ServiceName: ServiceName,
		Deprecated:  true,
		Schema:      schema,
		New: func(cfg *property.Configuration, env variant.Env) (*Notifier, error) {
			return newNotifier(cfg, "", env.Transport)
		},
		Handlers: handlers(),
	}
}
