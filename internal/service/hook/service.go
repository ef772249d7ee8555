// Package hook 설정된 훅들을 생성하고, 수신한 이벤트를 훅들에 전달하는 서비스를 제공합니다.
package hook

import (
	"context"

	"github.com/darkkaiser/team-hooks/internal/config"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/delivery"
	"github.com/darkkaiser/team-hooks/internal/service/hook/dispatcher"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	applog "github.com/darkkaiser/team-hooks/pkg/log"

	// 훅 종류 등록 (init)
	_ "github.com/darkkaiser/team-hooks/internal/service/hook/variant/chatwork"
	_ "github.com/darkkaiser/team-hooks/internal/service/hook/variant/slack"
	_ "github.com/darkkaiser/team-hooks/internal/service/hook/variant/telegram"
)

// component 로깅용 컴포넌트 이름
const component = "hook.service"

// Info 설정된 훅 하나의 공개 정보
type Info struct {
	ID           contract.HookID      `json:"id"`
	Variant      string               `json:"variant"`
	ServiceName  string               `json:"service_name"`
	Deprecated   bool                 `json:"deprecated"`
	Capabilities []contract.EventKind `json:"capabilities"`
}

type Option func(*Service)

// WithRegistry 훅 종류를 조회할 Registry를 지정합니다. (기본값: variant.Default())
func WithRegistry(r *variant.Registry) Option {
	return func(s *Service) {
		s.registry = r
	}
}

// WithTransport 훅이 사용할 Transport를 지정합니다. (기본값: 설정 기반 HTTPTransport)
func WithTransport(t delivery.Transport) Option {
	return func(s *Service) {
		s.transport = t
	}
}

// Service 설정된 훅 목록을 보관하고 이벤트 발송과 테스트 메시지 전송을 처리합니다.
//
// 생성 이후 훅 목록은 변경되지 않으므로 여러 고루틴에서 동시에 사용할 수 있습니다.
type Service struct {
	registry   *variant.Registry
	transport  delivery.Transport
	dispatcher *dispatcher.Dispatcher

	hooks []variant.Hook
	index map[contract.HookID]variant.Hook
}

// NewService 설정의 훅 목록으로 Service를 생성합니다.
//
// 비활성화된 훅은 건너뛰며, 하나라도 설정 검증에 실패하면 Service를 만들지 않습니다.
func NewService(appConfig *config.AppConfig, opts ...Option) (*Service, error) {
	s := &Service{
		registry:   variant.Default(),
		dispatcher: dispatcher.New(dispatcher.WithMaxConcurrency(appConfig.Dispatch.MaxConcurrency)),
		index:      make(map[contract.HookID]variant.Hook),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.transport == nil {
		s.transport = delivery.NewHTTPTransport(delivery.Options{
			Timeout:   appConfig.HTTP.Timeout,
			RateLimit: appConfig.HTTP.RateLimit,
			RateBurst: appConfig.HTTP.RateBurst,
			UserAgent: appConfig.HTTP.UserAgent,
		})
	}

	env := variant.Env{Transport: s.transport}

	for _, hc := range appConfig.Hooks {
		id := contract.HookID(hc.ID)

		if hc.Disabled {
			applog.WithComponentAndFields(component, applog.Fields{
				"hook_id": id,
				"variant": hc.Service,
			}).Info("비활성화된 훅이므로 건너뜀")
			continue
		}

		if _, exists := s.index[id]; exists {
			return nil, newErrDuplicateHookID(id)
		}

		h, err := s.registry.New(id, hc.Service, hc.Properties, env)
		if err != nil {
			return nil, newErrHookInitFailed(err)
		}

		if h.Descriptor().Deprecated {
			applog.WithComponentAndFields(component, applog.Fields{
				"hook_id": id,
				"variant": hc.Service,
			}).Warn("폐기된 훅 종류가 설정되어 있습니다. 이 훅으로는 이벤트가 전달되지 않으니 새 버전으로 전환해 주세요")
		}

		s.hooks = append(s.hooks, h)
		s.index[id] = h
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"hooks": len(s.hooks),
	}).Info("훅 서비스 초기화 완료")

	return s, nil
}

// Dispatch 이벤트를 모든 훅에 전달하고 결과를 반환합니다.
func (s *Service) Dispatch(ctx context.Context, event *contract.Event) dispatcher.Report {
	return s.dispatcher.Dispatch(ctx, event, s.hooks)
}

// Ping 지정된 훅으로 테스트 메시지를 보냅니다.
// 전송 실패는 로그로만 남기며, 훅을 찾을 수 없을 때만 에러를 반환합니다.
func (s *Service) Ping(ctx context.Context, id contract.HookID) error {
	h, ok := s.index[id]
	if !ok {
		return newErrHookNotFound(id)
	}

	h.Ping(ctx)

	return nil
}

// Hooks 설정된 훅의 정보를 설정 순서대로 반환합니다.
func (s *Service) Hooks() []Info {
	infos := make([]Info, 0, len(s.hooks))
	for _, h := range s.hooks {
		d := h.Descriptor()
		infos = append(infos, Info{
			ID:           h.ID(),
			Variant:      d.Name,
			ServiceName:  d.ServiceName,
			Deprecated:   d.Deprecated,
			Capabilities: d.Capabilities(),
		})
	}
	return infos
}

// Variants 사용할 수 있는 모든 훅 종류를 이름 순으로 반환합니다.
func (s *Service) Variants() []*variant.Descriptor {
	return s.registry.Descriptors()
}
