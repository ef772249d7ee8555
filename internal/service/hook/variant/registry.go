package variant

import (
	"context"
	"maps"
	"slices"
	"sync"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
)

// factory 검증된 설정으로 Hook을 생성하는 함수
type factory func(id contract.HookID, cfg *property.Configuration, env Env) (Hook, error)

type entry struct {
	descriptor *Descriptor
	build      factory
}

// Registry 등록된 모든 Variant를 관리하는 저장소입니다.
//
// Variant 패키지들은 init()에서 기본 Registry(Default)에 자신을 등록합니다.
// 등록은 애플리케이션 시작 시점에 끝나며, 이후에는 조회만 일어납니다.
type Registry struct {
	entries map[string]*entry
	mu      sync.RWMutex
}

var defaultRegistry = NewRegistry()

// Default 전역 기본 Registry를 반환합니다.
func Default() *Registry {
	return defaultRegistry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Register Variant를 Registry에 등록합니다.
//
// 핸들러 테이블은 복사되어 저장되므로, 등록 후 원본 Spec을 수정해도 Registry에는 영향을 주지 않습니다.
func Register[H any](r *Registry, spec Spec[H]) error {
	if err := spec.validate(); err != nil {
		return err
	}

	handlers := maps.Clone(spec.Handlers)
	spec.Handlers = handlers

	descriptor := newDescriptor(&spec)

	build := func(id contract.HookID, cfg *property.Configuration, env Env) (Hook, error) {
		impl, err := spec.New(cfg, env)
		if err != nil {
			return nil, err
		}

		return &hook[H]{
			id:         id,
			descriptor: descriptor,
			impl:       impl,
			handlers:   handlers,
			ping:       spec.Ping,
		}, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[spec.Name]; exists {
		return newErrDuplicateVariant(spec.Name)
	}
	r.entries[spec.Name] = &entry{descriptor: descriptor, build: build}

	applog.WithComponentAndFields(component, applog.Fields{
		"variant":      spec.Name,
		"service":      spec.ServiceName,
		"deprecated":   spec.Deprecated,
		"capabilities": descriptor.Capabilities(),
	}).Debug("훅 종류 등록 완료")

	return nil
}

// MustRegister Variant를 등록하며, 실패 시 패닉을 발생시킵니다. 주로 init()에서 호출합니다.
func MustRegister[H any](r *Registry, spec Spec[H]) {
	if err := Register(r, spec); err != nil {
		panic(err.Error())
	}
}

// Lookup 이름으로 Variant 정보를 조회합니다.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.descriptor, true
}

// Descriptors 등록된 모든 Variant 정보를 이름 순으로 반환합니다.
func (r *Registry) Descriptors() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Sorted(maps.Keys(r.entries))
	descriptors := make([]*Descriptor, 0, len(names))
	for _, name := range names {
		descriptors = append(descriptors, r.entries[name].descriptor)
	}
	return descriptors
}

// New 원시 속성값으로 훅을 생성합니다.
//
// 속성값은 Variant의 Schema로 검증되며, 검증에 실패하면 훅을 만들지 않습니다.
// 이때 반환되는 에러는 InvalidInput 타입이며, errors.As로 property.ValidationErrors를 꺼낼 수 있습니다.
func (r *Registry) New(id contract.HookID, name string, raw map[string]any, env Env) (Hook, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if env.Transport == nil {
		return nil, apperrors.New(apperrors.Internal, "훅을 생성하려면 Transport가 필요합니다")
	}

	r.mu.RLock()
	e, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return nil, newErrVariantNotFound(name)
	}

	cfg, err := e.descriptor.Schema.Build(raw)
	if err != nil {
		return nil, newErrInvalidConfiguration(id, name, err)
	}

	h, err := e.build(id, cfg, env)
	if err != nil {
		return nil, newErrInvalidConfiguration(id, name, err)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"hook_id":    id,
		"variant":    name,
		"deprecated": e.descriptor.Deprecated,
	}).Debug("훅 생성 완료")

	return h, nil
}

// hook Spec으로 선언된 Variant의 Hook 구현체입니다.
type hook[H any] struct {
	id         contract.HookID
	descriptor *Descriptor
	impl       H
	handlers   map[contract.EventKind]Handler[H]
	ping       func(h H, ctx context.Context) error
}

func (h *hook[H]) ID() contract.HookID {
	return h.id
}

func (h *hook[H]) Descriptor() *Descriptor {
	return h.descriptor
}

func (h *hook[H]) Handles(kind contract.EventKind) bool {
	return h.descriptor.Handles(kind)
}

func (h *hook[H]) Handle(ctx context.Context, event *contract.Event) error {
	if event == nil {
		return apperrors.New(apperrors.InvalidInput, "이벤트가 nil입니다")
	}

	// 폐기된 Variant는 이벤트 종류와 관계없이 실패합니다.
	if h.descriptor.Deprecated {
		return newErrNotImplemented(h.descriptor.Name, event.Kind())
	}

	handler, ok := h.handlers[event.Kind()]
	if !ok {
		return newErrUnsupportedEvent(h.descriptor.Name, event.Kind())
	}

	return handler(h.impl, ctx, event)
}

func (h *hook[H]) Ping(ctx context.Context) {
	logger := applog.WithComponentAndFields(component, applog.Fields{
		"hook_id": h.id,
		"variant": h.descriptor.Name,
	})

	if h.descriptor.Deprecated || h.ping == nil {
		logger.Debug("Ping을 지원하지 않는 훅입니다. 요청을 무시합니다")
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("Ping 처리 중 패닉이 발생하여 복구하였습니다")
		}
	}()

	if err := h.ping(h.impl, ctx); err != nil {
		logger.WithError(err).Warn("Ping 메시지 전송 실패")
		return
	}

	logger.Info("Ping 메시지 전송 완료")
}
