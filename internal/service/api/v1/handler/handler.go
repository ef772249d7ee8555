// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook"
	"github.com/darkkaiser/team-hooks/internal/service/hook/dispatcher"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
)

// HookService v1 핸들러가 사용하는 훅 서비스 기능입니다. *hook.Service가 구현합니다.
type HookService interface {
	Dispatch(ctx context.Context, event *contract.Event) dispatcher.Report
	Ping(ctx context.Context, id contract.HookID) error
	Hooks() []hook.Info
	Variants() []*variant.Descriptor
}

// Handler v1 API 요청을 처리하고 훅 서비스를 호출하는 핸들러입니다.
type Handler struct {
	hookService HookService
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// Panics:
//   - hookService가 nil인 경우
func NewHandler(hookService HookService) *Handler {
	if hookService == nil {
		panic("HookService는 필수입니다")
	}

	return &Handler{
		hookService: hookService,
	}
}
