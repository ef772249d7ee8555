package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/darkkaiser/team-hooks/internal/service/api/v1/handler"
	"github.com/darkkaiser/team-hooks/internal/service/api/v1/handler/mocks"
	"github.com/darkkaiser/team-hooks/internal/service/api/v1/model/response"
	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook"
	"github.com/darkkaiser/team-hooks/internal/service/hook/dispatcher"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant/chatwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
	return he
}

func TestNewHandler_NilService(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { handler.NewHandler(nil) })
}

func TestDispatchEventHandler(t *testing.T) {
	t.Parallel()

	const body = `{
		"kind": "item_created",
		"actor": {"id": "alice", "name": "Alice"},
		"item": {"title": "Design Doc", "url": "https://team.example.com/items/1"}
	}`

	m := mocks.NewMockHookService()
	m.On("Dispatch", mock.Anything, mock.MatchedBy(func(e *contract.Event) bool {
		return e.Kind() == contract.EventItemCreated && e.Item().Title == "Design Doc" && e.Actor().ID == "alice"
	})).Return(dispatcher.Report{
		Event: contract.EventItemCreated,
		Outcomes: []dispatcher.Outcome{
			{HookID: "slack-1", Variant: "slack_v2", Status: dispatcher.Delivered, Duration: 120 * time.Millisecond},
			{HookID: "chatwork-1", Variant: "chatwork_v1", Status: dispatcher.Failed, Err: apperrors.New(apperrors.Unavailable, "rate limited")},
			{HookID: "tg", Variant: "telegram_v1", Status: dispatcher.Skipped},
		},
	}).Once()

	c, rec := newContext(http.MethodPost, "/api/v1/events", body)
	require.NoError(t, handler.NewHandler(m).DispatchEventHandler(c))
	m.AssertExpectations(t)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.DispatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, contract.EventItemCreated, resp.Event)
	assert.Equal(t, dispatcher.Counts{Delivered: 1, Failed: 1, Skipped: 1}, resp.Summary)
	require.Len(t, resp.Outcomes, 3)

	assert.Equal(t, "delivered", resp.Outcomes[0].Status)
	assert.EqualValues(t, 120, resp.Outcomes[0].DurationMs)
	assert.Empty(t, resp.Outcomes[0].Error)

	assert.Equal(t, "failed", resp.Outcomes[1].Status)
	assert.Contains(t, resp.Outcomes[1].Error, "rate limited")
	assert.Equal(t, apperrors.Unavailable.String(), resp.Outcomes[1].ErrorType)

	assert.Equal(t, "skipped", resp.Outcomes[2].Status)
}

func TestDispatchEventHandler_BadRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "잘못된 JSON", body: `{"kind": `},
		{name: "알 수 없는 이벤트 종류", body: `{"kind": "wiki_created", "actor": {"id": "alice"}}`},
		{name: "리소스 누락", body: `{"kind": "item_created", "actor": {"id": "alice"}}`},
		{name: "actor 누락", body: `{"kind": "item_created", "item": {"title": "t", "url": "https://team.example.com/items/1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mocks.NewMockHookService()
			c, _ := newContext(http.MethodPost, "/api/v1/events", tt.body)

			err := handler.NewHandler(m).DispatchEventHandler(c)
			requireHTTPError(t, err, http.StatusBadRequest)
			m.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
		})
	}
}

func TestListHooksHandler(t *testing.T) {
	t.Parallel()

	m := mocks.NewMockHookService()
	m.On("Hooks").Return([]hook.Info{
		{ID: "slack-1", Variant: "slack_v2", ServiceName: "Slack", Capabilities: []contract.EventKind{contract.EventItemCreated}},
	})

	c, rec := newContext(http.MethodGet, "/api/v1/hooks", "")
	require.NoError(t, handler.NewHandler(m).ListHooksHandler(c))

	assert.JSONEq(t, `{"hooks":[{"id":"slack-1","variant":"slack_v2","service_name":"Slack","deprecated":false,"capabilities":["item_created"]}]}`, rec.Body.String())
}

func TestListVariantsHandler(t *testing.T) {
	t.Parallel()

	r := variant.NewRegistry()
	variant.MustRegister(r, chatwork.Spec())

	m := mocks.NewMockHookService()
	m.On("Variants").Return(r.Descriptors())

	c, rec := newContext(http.MethodGet, "/api/v1/variants", "")
	require.NoError(t, handler.NewHandler(m).ListVariantsHandler(c))

	var resp response.VariantListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Variants, 1)

	v := resp.Variants[0]
	assert.Equal(t, "chatwork_v1", v.Name)
	assert.Equal(t, "ChatWork", v.ServiceName)
	assert.Len(t, v.Capabilities, len(contract.AllEventKinds()))

	names := make([]string, 0, len(v.Properties))
	for _, p := range v.Properties {
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "room_id")
	assert.Contains(t, names, "token")
}

func TestPingHookHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockHookService()
		m.On("Ping", mock.Anything, contract.HookID("slack-1")).Return(nil).Once()

		c, rec := newContext(http.MethodPost, "/api/v1/hooks/slack-1/ping", "")
		c.SetParamNames("id")
		c.SetParamValues("slack-1")

		require.NoError(t, handler.NewHandler(m).PingHookHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		m.AssertExpectations(t)
	})

	t.Run("설정되지 않은 훅", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockHookService()
		m.On("Ping", mock.Anything, contract.HookID("unknown")).Return(hook.ErrHookNotFound)

		c, _ := newContext(http.MethodPost, "/api/v1/hooks/unknown/ping", "")
		c.SetParamNames("id")
		c.SetParamValues("unknown")

		err := handler.NewHandler(m).PingHookHandler(c)
		requireHTTPError(t, err, http.StatusNotFound)
	})

	t.Run("빈 ID", func(t *testing.T) {
		t.Parallel()

		m := mocks.NewMockHookService()
		c, _ := newContext(http.MethodPost, "/api/v1/hooks/%20/ping", "")
		c.SetParamNames("id")
		c.SetParamValues(" ")

		err := handler.NewHandler(m).PingHookHandler(c)
		requireHTTPError(t, err, http.StatusBadRequest)
		m.AssertNotCalled(t, "Ping", mock.Anything, mock.Anything)
	})
}
