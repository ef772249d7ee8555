// Package mocks v1 핸들러 테스트를 위한 HookService Mock 구현체를 제공합니다.
//
//	m := mocks.NewMockHookService()
//	m.On("Ping", mock.Anything, contract.HookID("slack-1")).Return(nil)
package mocks

import (
	"context"

	"github.com/darkkaiser/team-hooks/internal/service/api/v1/handler"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook"
	"github.com/darkkaiser/team-hooks/internal/service/hook/dispatcher"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	"github.com/stretchr/testify/mock"
)

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ handler.HookService = (*MockHookService)(nil)

// MockHookService HookService 인터페이스의 Mock 구현체 (Testify 사용)
type MockHookService struct {
	mock.Mock
}

// NewMockHookService 새로운 MockHookService 인스턴스를 생성합니다.
func NewMockHookService() *MockHookService {
	return &MockHookService{}
}

func (m *MockHookService) Dispatch(ctx context.Context, event *contract.Event) dispatcher.Report {
	args := m.Called(ctx, event)
	return args.Get(0).(dispatcher.Report)
}

func (m *MockHookService) Ping(ctx context.Context, id contract.HookID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHookService) Hooks() []hook.Info {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]hook.Info)
}

func (m *MockHookService) Variants() []*variant.Descriptor {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*variant.Descriptor)
}
