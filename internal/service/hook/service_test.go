package hook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/team-hooks/internal/config"
	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/delivery"
	"github.com/darkkaiser/team-hooks/internal/service/hook/dispatcher"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder 훅 대상 서비스(Slack, ChatWork) 대역. 요청 경로만 기록합니다.
type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mu.Lock()
	r.paths = append(r.paths, req.URL.Path)
	r.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (r *recorder) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newTestConfig(serverURL string) *config.AppConfig {
	return &config.AppConfig{
		HTTP:     config.HTTPConfig{Timeout: 5 * time.Second},
		Dispatch: config.DispatchConfig{MaxConcurrency: 2},
		Hooks: []config.HookConfig{
			{ID: "slack-1", Service: "slack_v2", Properties: map[string]any{"webhook_url": serverURL + "/slack"}},
			{ID: "legacy", Service: "slack_v1", Properties: map[string]any{"teamname": "qiita", "integration_token": "t"}},
			{ID: "chatwork-1", Service: "chatwork_v1", Properties: map[string]any{"room_id": 1, "token": "abc", "base_url": serverURL}},
			{ID: "off", Service: "telegram_v1", Disabled: true},
		},
	}
}

func newTestService(t *testing.T) (*Service, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	s, err := NewService(newTestConfig(server.URL))
	require.NoError(t, err)

	return s, rec
}

func TestNewService_Hooks(t *testing.T) {
	t.Parallel()

	s, _ := newTestService(t)

	hooks := s.Hooks()
	require.Len(t, hooks, 3)

	assert.Equal(t, contract.HookID("slack-1"), hooks[0].ID)
	assert.Equal(t, "Slack", hooks[0].ServiceName)
	assert.NotContains(t, hooks[0].Capabilities, contract.EventProjectCommentCreated)

	assert.Equal(t, "slack_v1", hooks[1].Variant)
	assert.True(t, hooks[1].Deprecated)

	assert.Equal(t, "ChatWork", hooks[2].ServiceName)
	assert.Len(t, hooks[2].Capabilities, len(contract.AllEventKinds()))

	names := make([]string, 0)
	for _, d := range s.Variants() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"chatwork_v1", "slack_v1", "slack_v2", "telegram_v1"}, names)
}

func TestService_Dispatch(t *testing.T) {
	t.Parallel()

	alice := contract.User{ID: "alice", Name: "Alice"}

	t.Run("모든 훅이 처리하는 이벤트", func(t *testing.T) {
		t.Parallel()

		s, rec := newTestService(t)
		item := contract.Item{Title: "Hello", URL: "https://team.example.com/items/1"}

		report := s.Dispatch(context.Background(), contract.NewItemCreated(alice, item))

		require.Len(t, report.Outcomes, 3)
		assert.Equal(t, dispatcher.Delivered, report.Outcomes[0].Status)
		assert.Equal(t, dispatcher.Failed, report.Outcomes[1].Status)
		assert.ErrorIs(t, report.Outcomes[1].Err, variant.ErrNotImplemented)
		assert.Equal(t, dispatcher.Delivered, report.Outcomes[2].Status)

		assert.ElementsMatch(t, []string{"/slack", "/v1/rooms/1/messages"}, rec.Paths())
	})

	t.Run("Slack이 처리하지 않는 이벤트", func(t *testing.T) {
		t.Parallel()

		s, rec := newTestService(t)
		project := contract.Project{Name: "Roadmap", URL: "https://team.example.com/projects/1"}

		report := s.Dispatch(context.Background(), contract.NewProjectCommentCreated(alice, contract.Comment{Project: project}))

		assert.Equal(t, dispatcher.Counts{Delivered: 1, Skipped: 2}, report.Summary())
		assert.NoError(t, report.Err())
		assert.Equal(t, []string{"/v1/rooms/1/messages"}, rec.Paths())
	})
}

func TestService_Dispatch_IsolatesMixedOutcomes(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	okServer := httptest.NewServer(rec)
	t.Cleanup(okServer.Close)

	failServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"errors":["internal error"]}`))
	}))
	t.Cleanup(failServer.Close)

	cfg := &config.AppConfig{
		HTTP:     config.HTTPConfig{Timeout: 5 * time.Second},
		Dispatch: config.DispatchConfig{MaxConcurrency: 2},
		Hooks: []config.HookConfig{
			{ID: "chatwork-1", Service: "chatwork_v1", Properties: map[string]any{"room_id": 1, "token": "abc", "base_url": okServer.URL}},
			{ID: "slack-1", Service: "slack_v2", Properties: map[string]any{"webhook_url": okServer.URL + "/slack"}},
			{ID: "chatwork-fail", Service: "chatwork_v1", Properties: map[string]any{"room_id": 3, "token": "secret-token", "base_url": failServer.URL}},
			{ID: "chatwork-4", Service: "chatwork_v1", Properties: map[string]any{"room_id": 4, "token": "abc", "base_url": okServer.URL}},
			{
				ID:      "telegram-5",
				Service: "telegram_v1",
				Properties: map[string]any{
					"bot_token":    "123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11",
					"chat_id":      "-1001",
					"api_endpoint": okServer.URL + "/bot%s/%s",
				},
			},
		},
	}

	s, err := NewService(cfg)
	require.NoError(t, err)

	// Slack은 프로젝트 댓글 이벤트를 처리하지 않으므로 건너뛴다.
	project := contract.Project{Name: "Roadmap", URL: "https://team.example.com/projects/1"}
	event := contract.NewProjectCommentCreated(contract.User{ID: "alice", Name: "Alice"}, contract.Comment{Project: project})

	report := s.Dispatch(context.Background(), event)

	require.Len(t, report.Outcomes, 5)

	wants := []struct {
		id     contract.HookID
		status dispatcher.Status
	}{
		{"chatwork-1", dispatcher.Delivered},
		{"slack-1", dispatcher.Skipped},
		{"chatwork-fail", dispatcher.Failed},
		{"chatwork-4", dispatcher.Delivered},
		{"telegram-5", dispatcher.Delivered},
	}
	for i, want := range wants {
		o := report.Outcomes[i]
		assert.Equal(t, want.id, o.HookID, "index=%d", i)
		assert.Equal(t, want.status, o.Status, "hook=%s err=%v", o.HookID, o.Err)
		if want.status != dispatcher.Failed {
			assert.NoError(t, o.Err, "hook=%s", o.HookID)
		}
	}

	failed := report.Outcomes[2]
	de, ok := delivery.AsError(failed.Err)
	require.True(t, ok, "err=%v", failed.Err)
	assert.Equal(t, http.StatusInternalServerError, de.StatusCode)
	assert.Equal(t, apperrors.Unavailable, de.Type())
	assert.True(t, de.Temporary())
	assert.Contains(t, de.BodySnippet, "internal error")
	assert.NotContains(t, failed.Err.Error(), "secret-token")

	assert.Equal(t, dispatcher.Counts{Delivered: 3, Failed: 1, Skipped: 1}, report.Summary())
	assert.ErrorIs(t, report.Err(), failed.Err)
	assert.ElementsMatch(t, []string{
		"/v1/rooms/1/messages",
		"/v1/rooms/4/messages",
		"/bot123456789:ABC-DEF1234ghIkl-zyx57W2v1u123ew11/sendMessage",
	}, rec.Paths())
}

func TestService_Ping(t *testing.T) {
	t.Parallel()

	s, rec := newTestService(t)

	require.NoError(t, s.Ping(context.Background(), "slack-1"))
	assert.Equal(t, []string{"/slack"}, rec.Paths())

	// 폐기된 훅은 아무것도 보내지 않는다.
	require.NoError(t, s.Ping(context.Background(), "legacy"))
	assert.Len(t, rec.Paths(), 1)

	err := s.Ping(context.Background(), "off")
	assert.ErrorIs(t, err, ErrHookNotFound)
	assert.True(t, apperrors.Is(err, apperrors.NotFound))
}

func TestNewService_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		hooks  []config.HookConfig
		assert func(t *testing.T, err error)
	}{
		{
			name:  "속성 검증 실패",
			hooks: []config.HookConfig{{ID: "slack-1", Service: "slack_v2"}},
			assert: func(t *testing.T, err error) {
				var verrs property.ValidationErrors
				require.True(t, errors.As(err, &verrs))
				assert.True(t, verrs.Has("webhook_url", property.RulePresence))
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			},
		},
		{
			name:  "등록되지 않은 훅 종류",
			hooks: []config.HookConfig{{ID: "x", Service: "hipchat_v1"}},
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, variant.ErrVariantNotFound)
			},
		},
		{
			name: "중복 훅 ID",
			hooks: []config.HookConfig{
				{ID: "a", Service: "slack_v1", Properties: map[string]any{"teamname": "q", "integration_token": "t"}},
				{ID: "a", Service: "slack_v1", Properties: map[string]any{"teamname": "q", "integration_token": "t"}},
			},
			assert: func(t *testing.T, err error) {
				assert.True(t, apperrors.Is(err, apperrors.Conflict))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &config.AppConfig{Dispatch: config.DispatchConfig{MaxConcurrency: 1}, Hooks: tt.hooks}
			s, err := NewService(cfg)
			require.Error(t, err)
			assert.Nil(t, s)
			tt.assert(t, err)
		})
	}
}
