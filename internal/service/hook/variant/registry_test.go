package variant

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/delivery"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVariant struct {
	token   string
	handled []contract.EventKind
	pings   int
	pingErr error
	panics  bool
}

func (f *fakeVariant) handle(_ context.Context, event *contract.Event) error {
	f.handled = append(f.handled, event.Kind())
	return nil
}

func (f *fakeVariant) ping(_ context.Context) error {
	f.pings++
	if f.panics {
		panic("boom")
	}
	return f.pingErr
}

func newFakeSpec(name string, deprecated bool, impl *fakeVariant) Spec[*fakeVariant] {
	return Spec[*fakeVariant]{
		Name:        name,
		ServiceName: "Fake",
		Deprecated:  deprecated,
		Schema:      property.NewSchema().Define("token").Validate("token", property.Presence()),
		New: func(cfg *property.Configuration, env Env) (*fakeVariant, error) {
			impl.token = cfg.String("token")
			return impl, nil
		},
		Handlers: map[contract.EventKind]Handler[*fakeVariant]{
			contract.EventItemCreated:    (*fakeVariant).handle,
			contract.EventProjectUpdated: (*fakeVariant).handle,
		},
		Ping: (*fakeVariant).ping,
	}
}

func okEnv() Env {
	return Env{Transport: delivery.TransportFunc(func(ctx context.Context, req *delivery.Request) (*delivery.Response, error) {
		return &delivery.Response{StatusCode: http.StatusOK}, nil
	})}
}

func TestRegister_ValidatesSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(s *Spec[*fakeVariant])
	}{
		{"이름 없음", func(s *Spec[*fakeVariant]) { s.Name = "" }},
		{"서비스 이름 없음", func(s *Spec[*fakeVariant]) { s.ServiceName = "" }},
		{"Schema 없음", func(s *Spec[*fakeVariant]) { s.Schema = nil }},
		{"생성 함수 없음", func(s *Spec[*fakeVariant]) { s.New = nil }},
		{"핸들러 없음", func(s *Spec[*fakeVariant]) { s.Handlers = nil }},
		{"nil 핸들러", func(s *Spec[*fakeVariant]) { s.Handlers[contract.EventItemUpdated] = nil }},
		{"알 수 없는 이벤트", func(s *Spec[*fakeVariant]) { s.Handlers["unknown"] = (*fakeVariant).handle }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := newFakeSpec("fake", false, &fakeVariant{})
			tt.modify(&spec)

			err := Register(NewRegistry(), spec)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.Internal))
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NoError(t, Register(r, newFakeSpec("fake", false, &fakeVariant{})))

	err := Register(r, newFakeSpec("fake", false, &fakeVariant{}))
	assert.True(t, apperrors.Is(err, apperrors.Conflict))
	assert.Panics(t, func() { MustRegister(r, newFakeSpec("fake", false, &fakeVariant{})) })
}

func TestRegistry_CapabilitiesComeFromHandlers(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	spec := newFakeSpec("fake", false, &fakeVariant{})
	MustRegister(r, spec)

	// 등록 이후 원본 핸들러 테이블을 바꿔도 영향이 없다.
	spec.Handlers[contract.EventMemberAdded] = (*fakeVariant).handle

	d, ok := r.Lookup("fake")
	require.True(t, ok)
	assert.Equal(t, []contract.EventKind{contract.EventItemCreated, contract.EventProjectUpdated}, d.Capabilities())
	assert.True(t, d.Handles(contract.EventItemCreated))
	assert.False(t, d.Handles(contract.EventMemberAdded))
	assert.Equal(t, "Fake", d.ServiceName)

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_Descriptors(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	MustRegister(r, newFakeSpec("b", false, &fakeVariant{}))
	MustRegister(r, newFakeSpec("a", true, &fakeVariant{}))

	descriptors := r.Descriptors()
	require.Len(t, descriptors, 2)
	assert.Equal(t, "a", descriptors[0].Name)
	assert.True(t, descriptors[0].Deprecated)
	assert.Equal(t, "b", descriptors[1].Name)
}

func TestRegistry_New(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	MustRegister(r, newFakeSpec("fake", false, &fakeVariant{}))

	t.Run("성공", func(t *testing.T) {
		t.Parallel()

		h, err := r.New("hook-1", "fake", map[string]any{"token": "abc"}, okEnv())
		require.NoError(t, err)
		assert.Equal(t, contract.HookID("hook-1"), h.ID())
		assert.Equal(t, "fake", h.Descriptor().Name)
		assert.True(t, h.Handles(contract.EventProjectUpdated))
	})

	t.Run("설정 검증 실패", func(t *testing.T) {
		t.Parallel()

		_, err := r.New("hook-1", "fake", map[string]any{"token": " "}, okEnv())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))

		var verrs property.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.True(t, verrs.Has("token", property.RulePresence))
	})

	t.Run("등록되지 않은 종류", func(t *testing.T) {
		t.Parallel()

		_, err := r.New("hook-1", "missing", nil, okEnv())
		assert.ErrorIs(t, err, ErrVariantNotFound)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
	})

	t.Run("빈 ID", func(t *testing.T) {
		t.Parallel()

		_, err := r.New(" ", "fake", map[string]any{"token": "abc"}, okEnv())
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})

	t.Run("Transport 없음", func(t *testing.T) {
		t.Parallel()

		_, err := r.New("hook-1", "fake", map[string]any{"token": "abc"}, Env{})
		assert.True(t, apperrors.Is(err, apperrors.Internal))
	})

	t.Run("생성 함수 실패", func(t *testing.T) {
		t.Parallel()

		r := NewRegistry()
		spec := newFakeSpec("broken", false, &fakeVariant{})
		spec.New = func(*property.Configuration, Env) (*fakeVariant, error) {
			return nil, errors.New("decode failed")
		}
		MustRegister(r, spec)

		_, err := r.New("hook-1", "broken", map[string]any{"token": "abc"}, okEnv())
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})
}

func TestHook_Handle(t *testing.T) {
	t.Parallel()

	impl := &fakeVariant{}
	r := NewRegistry()
	MustRegister(r, newFakeSpec("fake", false, impl))

	h, err := r.New("hook-1", "fake", map[string]any{"token": "abc"}, okEnv())
	require.NoError(t, err)

	require.NoError(t, h.Handle(context.Background(), contract.NewItemCreated(contract.User{ID: "alice"}, contract.Item{})))
	assert.Equal(t, []contract.EventKind{contract.EventItemCreated}, impl.handled)
	assert.Equal(t, "abc", impl.token)

	err = h.Handle(context.Background(), contract.NewMemberAdded(contract.User{}, contract.User{}, contract.Team{}))
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
	assert.Len(t, impl.handled, 1)

	err = h.Handle(context.Background(), nil)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestHook_Handle_Deprecated(t *testing.T) {
	t.Parallel()

	impl := &fakeVariant{}
	r := NewRegistry()
	MustRegister(r, newFakeSpec("legacy", true, impl))

	h, err := r.New("hook-1", "legacy", map[string]any{"token": "abc"}, okEnv())
	require.NoError(t, err)

	events := []*contract.Event{
		contract.NewItemCreated(contract.User{ID: "alice"}, contract.Item{}),
		contract.NewProjectUpdated(contract.User{}, contract.Project{}),
		contract.NewMemberAdded(contract.User{}, contract.User{}, contract.Team{}),
	}
	for _, event := range events {
		err := h.Handle(context.Background(), event)
		assert.ErrorIs(t, err, ErrNotImplemented, "kind=%s", event.Kind())
		assert.True(t, apperrors.Is(err, apperrors.NotImplemented))
	}
	assert.Empty(t, impl.handled)

	h.Ping(context.Background())
	assert.Zero(t, impl.pings)
}

func TestHook_Ping_NeverPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		impl *fakeVariant
	}{
		{"성공", &fakeVariant{}},
		{"전송 실패", &fakeVariant{pingErr: &delivery.Error{StatusCode: http.StatusInternalServerError, Cause: apperrors.New(apperrors.Unavailable, "down")}}},
		{"패닉", &fakeVariant{panics: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry()
			MustRegister(r, newFakeSpec("fake", false, tt.impl))
			h, err := r.New("hook-1", "fake", map[string]any{"token": "abc"}, okEnv())
			require.NoError(t, err)

			assert.NotPanics(t, func() { h.Ping(context.Background()) })
			assert.Equal(t, 1, tt.impl.pings)
		})
	}
}

func TestHook_Ping_WithoutPingFunc(t *testing.T) {
	t.Parallel()

	impl := &fakeVariant{}
	spec := newFakeSpec("fake", false, impl)
	spec.Ping = nil

	r := NewRegistry()
	MustRegister(r, spec)
	h, err := r.New("hook-1", "fake", map[string]any{"token": "abc"}, okEnv())
	require.NoError(t, err)

	assert.NotPanics(t, func() { h.Ping(context.Background()) })
	assert.Zero(t, impl.pings)
}
