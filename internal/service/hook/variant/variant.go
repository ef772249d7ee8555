// Package variant 훅 종류(Variant)의 공통 계약과 Registry를 제공합니다.
//
// Variant는 Spec으로 선언합니다. Spec의 핸들러 테이블(이벤트 종류 → 핸들러)이 곧 그 Variant가
// 처리할 수 있는 이벤트 목록(Capabilities)이 되므로, 처리 가능한 이벤트를 별도로 관리하지 않습니다.
package variant

import (
	"context"

	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/delivery"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
)

// component 로깅용 컴포넌트 이름
const component = "hook.variant"

// Hook 설정이 완료된 훅 인스턴스입니다.
type Hook interface {
	ID() contract.HookID

	Descriptor() *Descriptor

	// Handles 이벤트 종류를 처리할 수 있는지 여부를 반환합니다.
	Handles(kind contract.EventKind) bool

	// Handle 이벤트를 메시지로 만들어 전송합니다.
	// 전송 실패는 *delivery.Error, 폐기된 Variant는 ErrNotImplemented를 반환합니다.
	Handle(ctx context.Context, event *contract.Event) error

	// Ping 설정 확인용 테스트 메시지를 보냅니다. 전송 결과와 관계없이 에러를 반환하지 않습니다.
	Ping(ctx context.Context)
}

// Handler 이벤트 하나를 처리하는 함수입니다. 보통 메서드 표현식((*T).itemCreated)으로 지정합니다.
type Handler[H any] func(h H, ctx context.Context, event *contract.Event) error

// Env Variant 구현체가 생성될 때 전달받는 외부 의존성입니다.
type Env struct {
	Transport delivery.Transport
}

// Spec Variant 선언입니다.
type Spec[H any] struct {
	// Name 설정 파일에서 훅 종류를 지정할 때 사용하는 고유 이름 (예: "slack_v2")
	Name string

	// ServiceName 사용자에게 표시하는 서비스 이름 (예: "Slack")
	ServiceName string

	// Deprecated 기존 설정을 읽을 수 있도록 남겨 둔 폐기된 Variant 여부
	Deprecated bool

	Schema *property.Schema

	// New 검증된 설정으로 Variant 구현체를 생성합니다.
	New func(cfg *property.Configuration, env Env) (H, error)

	Handlers map[contract.EventKind]Handler[H]

	// Ping nil이면 Ping은 아무 일도 하지 않습니다.
	Ping func(h H, ctx context.Context) error
}

func (s *Spec[H]) validate() error {
	switch {
	case s.Name == "":
		return newErrInvalidSpec(s.Name, "이름이 비어 있습니다")
	case s.ServiceName == "":
		return newErrInvalidSpec(s.Name, "서비스 이름이 비어 있습니다")
	case s.Schema == nil:
		return newErrInvalidSpec(s.Name, "Schema가 nil입니다")
	case s.New == nil:
		return newErrInvalidSpec(s.Name, "생성 함수(New)가 nil입니다")
	case len(s.Handlers) == 0:
		return newErrInvalidSpec(s.Name, "핸들러가 하나도 없습니다")
	}

	for kind, h := range s.Handlers {
		if !kind.IsValid() {
			return newErrInvalidSpec(s.Name, "알 수 없는 이벤트 종류입니다: "+kind.String())
		}
		if h == nil {
			return newErrInvalidSpec(s.Name, "핸들러가 nil입니다: "+kind.String())
		}
	}

	return nil
}

// Descriptor Variant의 정적 정보입니다. Registry에 등록될 때 Spec으로부터 만들어집니다.
type Descriptor struct {
	Name        string
	ServiceName string
	Deprecated  bool

	// Schema 등록 이후에는 변경하지 않아야 합니다.
	Schema *property.Schema

	capabilities map[contract.EventKind]struct{}
}

func newDescriptor[H any](spec *Spec[H]) *Descriptor {
	caps := make(map[contract.EventKind]struct{}, len(spec.Handlers))
	for kind := range spec.Handlers {
		caps[kind] = struct{}{}
	}

	return &Descriptor{
		Name:         spec.Name,
		ServiceName:  spec.ServiceName,
		Deprecated:   spec.Deprecated,
		Schema:       spec.Schema,
		capabilities: caps,
	}
}

// Handles 이벤트 종류가 Capabilities에 포함되는지 여부를 반환합니다.
func (d *Descriptor) Handles(kind contract.EventKind) bool {
	_, ok := d.capabilities[kind]
	return ok
}

// Capabilities 처리 가능한 이벤트 종류 목록을 AllEventKinds 순서로 반환합니다.
func (d *Descriptor) Capabilities() []contract.EventKind {
	kinds := make([]contract.EventKind, 0, len(d.capabilities))
	for _, kind := range contract.AllEventKinds() {
		if d.Handles(kind) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
