package slack

import (
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
)

// NameV2 Incoming Webhook URL을 사용하는 Slack 훅 종류 이름
const NameV2 = "slack_v2"

func init() {
	variant.MustRegister(variant.Default(), SpecV2())
}

// SpecV2 slack_v2 훅 종류 선언을 반환합니다.
func SpecV2() variant.Spec[*Notifier] {
	schema := sharedSchema().Merge(
		property.NewSchema().
			Define("webhook_url").
			Validate("webhook_url",
				property.Presence(),
				property.AbsoluteURL(property.AllowBlank()),
			),
	)

	return variant.Spec[*Notifier]{
		Name:        NameV2,
		ServiceName: ServiceName,
		Schema:      schema,
		New: func(cfg *property.Configuration, env variant.Env) (*Notifier, error) {
			return newNotifier(cfg, cfg.String("webhook_url"), env.Transport)
		},
		Handlers: handlers(),
		Ping:     (*Notifier).ping,
	}
}
