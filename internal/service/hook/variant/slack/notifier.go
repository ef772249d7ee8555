// Package slack Slack Incoming Webhook으로 첨부(attachments) 형식의 메시지를 보내는 훅 종류를 제공합니다.
//
// 모든 Slack 훅 종류는 Notifier를 공유하며, 종류마다 다른 것은 속성(Schema)과 전송 URL뿐입니다.
//   - slack_v2: Incoming Webhook URL (webhook_url)
//   - slack_v1: 팀 이름과 통합 토큰 기반의 폐기된 훅 (teamname, integration_token)
package slack

import (
	"context"
	"fmt"
	"regexp"

	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/delivery"
	"github.com/darkkaiser/team-hooks/internal/service/hook/markup"
	"github.com/darkkaiser/team-hooks/internal/service/hook/property"
	"github.com/darkkaiser/team-hooks/internal/service/hook/variant"
	applog "github.com/darkkaiser/team-hooks/pkg/log"
	"github.com/darkkaiser/team-hooks/pkg/strutil"
)

// component 로깅용 컴포넌트 이름
const component = "hook.slack"

const (
	ServiceName = "Slack"

	DefaultUsername = "Qiita:Team"
	DefaultIconURL  = "https://cdn.qiita.com/media/qiita-team-slack-icon.png"

	pingText = "Test message sent from Qiita:Team"
)

var iconEmojiPattern = regexp.MustCompile(`^:[^:]+:$`)

// sharedSchema 모든 Slack 훅 종류가 공유하는 속성입니다. 종류별 Schema는 Merge로 합쳐서 만듭니다.
func sharedSchema() *property.Schema {
	return property.NewSchema().
		Define("username", property.WithDefault(DefaultUsername)).
		Define("icon_emoji").
		Validate("username", property.Presence()).
		Validate("icon_emoji", property.Format(iconEmojiPattern, property.AllowBlank()))
}

// identity 메시지 발신자 표시 정보
type identity struct {
	Username  string `json:"username"`
	IconEmoji string `json:"icon_emoji"`
}

type attachment struct {
	Fallback   string `json:"fallback"`
	Pretext    string `json:"pretext"`
	AuthorName string `json:"author_name,omitempty"`
	AuthorLink string `json:"author_link,omitempty"`
	AuthorIcon string `json:"author_icon,omitempty"`
	Title      string `json:"title,omitempty"`
	TitleLink  string `json:"title_link,omitempty"`
	Text       string `json:"text,omitempty"`
}

// message Slack으로 보내는 요청 본문입니다. icon_emoji와 icon_url 중 하나만 채워집니다.
type message struct {
	Username    string       `json:"username"`
	IconEmoji   string       `json:"icon_emoji,omitempty"`
	IconURL     string       `json:"icon_url,omitempty"`
	Attachments []attachment `json:"attachments"`
}

// Notifier Slack 훅 종류들이 공유하는 메시지 작성 및 전송 로직입니다.
type Notifier struct {
	identity  identity
	url       string
	transport delivery.Transport
}

func newNotifier(cfg *property.Configuration, url string, t delivery.Transport) (*Notifier, error) {
	id, err := property.Decode[identity](cfg)
	if err != nil {
		return nil, err
	}

	return &Notifier{identity: *id, url: url, transport: t}, nil
}

// handlers Slack 훅 종류가 처리하는 이벤트와 핸들러입니다. project_comment_created는 처리하지 않습니다.
func handlers() map[contract.EventKind]variant.Handler[*Notifier] {
	return map[contract.EventKind]variant.Handler[*Notifier]{
		contract.EventItemCreated:         (*Notifier).itemCreated,
		contract.EventItemUpdated:         (*Notifier).itemUpdated,
		contract.EventItemBecameCoediting: (*Notifier).itemBecameCoediting,
		contract.EventCommentCreated:      (*Notifier).commentCreated,
		contract.EventMemberAdded:         (*Notifier).memberAdded,
		contract.EventProjectCreated:      (*Notifier).projectCreated,
		contract.EventProjectUpdated:      (*Notifier).projectUpdated,
		contract.EventProjectArchived:     (*Notifier).projectArchived,
		contract.EventProjectActivated:    (*Notifier).projectActivated,
	}
}

func (n *Notifier) ping(ctx context.Context) error {
	return n.send(ctx, attachment{Fallback: pingText, Pretext: pingText})
}

func (n *Notifier) itemCreated(ctx context.Context, event *contract.Event) error {
	user, item := event.User(), event.Item()
	a := withAuthor(summary(fmt.Sprintf("%s created a new post", userLink(user))), user)
	a.Title = item.Title
	a.TitleLink = item.URL
	a.Text = markup.ToSlack(item.RenderedBody)
	return n.send(ctx, a)
}

func (n *Notifier) itemUpdated(ctx context.Context, event *contract.Event) error {
	return n.send(ctx, summary(fmt.Sprintf("%s updated %s", userLink(event.User()), itemLink(event.Item()))))
}

func (n *Notifier) itemBecameCoediting(ctx context.Context, event *contract.Event) error {
	return n.send(ctx, summary(fmt.Sprintf("%s changed %s to coedit mode", userLink(event.User()), itemLink(event.Item()))))
}

func (n *Notifier) commentCreated(ctx context.Context, event *contract.Event) error {
	item := event.Item()

	var fallback string
	if item.Coediting {
		fallback = fmt.Sprintf("New comment on %s", itemLink(item))
	} else {
		fallback = fmt.Sprintf("New comment on %s's %s", userLink(item.User), itemLink(item))
	}

	a := withAuthor(summary(fallback), event.User())
	a.Text = markup.ToSlack(event.Comment().RenderedBody)
	return n.send(ctx, a)
}

func (n *Notifier) memberAdded(ctx context.Context, event *contract.Event) error {
	return n.send(ctx, summary(fmt.Sprintf("%s is added to the %s team", userLink(event.Member()), teamLink(event.Team()))))
}

func (n *Notifier) projectCreated(ctx context.Context, event *contract.Event) error {
	return n.sendProject(ctx, event, "created")
}

func (n *Notifier) projectUpdated(ctx context.Context, event *contract.Event) error {
	return n.sendProject(ctx, event, "updated")
}

func (n *Notifier) projectArchived(ctx context.Context, event *contract.Event) error {
	return n.sendProject(ctx, event, "archived")
}

func (n *Notifier) projectActivated(ctx context.Context, event *contract.Event) error {
	return n.sendProject(ctx, event, "activated")
}

func (n *Notifier) sendProject(ctx context.Context, event *contract.Event, verb string) error {
	user := event.User()
	fallback := fmt.Sprintf("%s %s %s project", userLink(user), verb, projectLink(event.Project()))
	return n.send(ctx, withAuthor(summary(fallback), user))
}

func (n *Notifier) send(ctx context.Context, a attachment) error {
	resp, err := delivery.PostJSON(ctx, n.transport, n.url, n.compose(a))
	if err != nil {
		return err
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"url":         strutil.MaskURL(n.url),
		"status_code": resp.StatusCode,
		"latency_ms":  resp.Latency.Milliseconds(),
	}).Debug("Slack 메시지 전송 완료")

	return nil
}

// compose 발신자 정보를 붙여 요청 본문을 만듭니다.
// icon_emoji가 설정되어 있으면 icon_emoji를, 아니면 기본 아이콘 URL을 사용합니다.
func (n *Notifier) compose(a attachment) message {
	msg := message{
		Username:    n.identity.Username,
		Attachments: []attachment{a},
	}
	if strutil.IsBlank(n.identity.IconEmoji) {
		msg.IconURL = DefaultIconURL
	} else {
		msg.IconEmoji = n.identity.IconEmoji
	}
	return msg
}

func summary(fallback string) attachment {
	return attachment{Fallback: fallback, Pretext: fallback}
}

func withAuthor(a attachment, user contract.User) attachment {
	a.AuthorName = "@" + user.ID
	a.AuthorLink = user.URL
	a.AuthorIcon = user.ProfileImageURL
	return a
}

func userLink(u contract.User) string {
	return link(u.URL, u.Name)
}

func itemLink(i contract.Item) string {
	return link(i.URL, i.Title)
}

func projectLink(p contract.Project) string {
	return link(p.URL, p.Name)
}

func teamLink(t contract.Team) string {
	return link(t.URL, t.Name)
}

func link(url, text string) string {
	return "<" + url + "|" + text + ">"
}
