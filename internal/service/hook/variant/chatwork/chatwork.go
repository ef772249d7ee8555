// Package chatwork ChatWork 채팅방에 메시지를 보내는 훅 종류(chatwork_v1)를 제공합니다.
package chatwork

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/delivery"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant/summary"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/tidwall/gjson"
)

// component 로깅용 컴포넌트 이름
const component = "hook.chatwork"

const (
	Name        = "chatwork_v1"
	ServiceName = "ChatWork"

	DefaultBaseURL = "https://api.chatwork.com"

	// tokenHeader ChatWork API 토큰을 전달하는 헤더
	tokenHeader = "X-ChatWorkToken"
)

func init() {
	variant.MustRegister(variant.Default(), Spec())
}

type properties struct {
	RoomID  string `json:"room_id"`
	Token   string `json:"token"`
	BaseURL string `json:"base_url"`
}

// Notifier ChatWork 메시지 전송기입니다.
type Notifier struct {
	endpoint  string
	token     string
	transport delivery.Transport
}

// Spec chatwork_v1 훅 종류 선언을 반환합니다.
func Spec() variant.Spec[*Notifier] {
	schema := property.NewSchema().
		Define("room_id").
		Define("token").
		Define("base_url", property.WithDefault(DefaultBaseURL)).
		Validate("room_id", property.Presence()).
		Validate("token", property.Presence()).
		Validate("base_url", property.Presence(), property.AbsoluteURL(property.AllowBlank()))

	handlers := make(map[contract.EventKind]variant.Handler[*Notifier])
	for _, kind := range contract.AllEventKinds() {
		handlers[kind] = (*Notifier).notify
	}

	return variant.Spec[*Notifier]{
		Name:        Name,
		ServiceName: ServiceName,
		Schema:      schema,
		New:         newNotifier,
		Handlers:    handlers,
		Ping:        (*Notifier).ping,
	}
}

func newNotifier(cfg *property.Configuration, env variant.Env) (*Notifier, error) {
	p, err := property.Decode[properties](cfg)
	if err != nil {
		return nil, err
	}

	return &Notifier{
		endpoint:  delivery.JoinURL(p.BaseURL, fmt.Sprintf("/v1/rooms/%s/messages", url.PathEscape(strings.TrimSpace(p.RoomID)))),
		token:     p.Token,
		transport: env.Transport,
	}, nil
}

func (n *Notifier) ping(ctx context.Context) error {
	return n.send(ctx, summary.PingText)
}

func (n *Notifier) notify(ctx context.Context, event *contract.Event) error {
	return n.send(ctx, format(summary.Of(event)))
}

func (n *Notifier) send(ctx context.Context, text string) error {
	// ChatWork API v1 메시지 작성(POST /rooms/{room_id}/messages)의 본문 필드 이름은 "message"가 아니라 "body"이다.
	req := delivery.NewFormRequest(n.endpoint, url.Values{"body": {text}})
	req.Header.Set(tokenHeader, n.token)

	resp, err := delivery.Submit(ctx, n.transport, req)
	if err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"status_code": resp.StatusCode,
		"message_id":  gjson.GetBytes(resp.Body, "message_id").String(),
		"latency_ms":  resp.Latency.Milliseconds(),
	}).Debug("ChatWork 메시지 전송 완료")

	return nil
}

// format 요약을 ChatWork 정보 블록([info][title]...[/title]...[/info]) 형식으로 만듭니다.
func format(s summary.Summary) string {
	var lines []string
	for _, line := range []string{s.Title, s.URL} {
		if line != "" {
			lines = append(lines, line)
		}
	}
	if s.Excerpt != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, s.Excerpt)
	}

	return "[info][title]" + s.Headline + "[/title]" + strings.Join(lines, "\n") + "[/info]"
}
