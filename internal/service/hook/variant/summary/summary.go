// Package summary 줄 단위 텍스트만 지원하는 채팅 서비스(ChatWork, Telegram 등)를 위해
// 이벤트를 서식 없는 요약으로 정리합니다.
package summary

import (
	"fmt"

	"github.com/darkkaiser/team-hooks/internal/service/contract"
	"github.com/darkkaiser/team-hooks/internal/service/hook/markup"
	"github.com/darkkaiser/team-hooks/pkg/strutil"
)

// maxExcerptBytes 본문 발췌의 최대 크기
const maxExcerptBytes = 500

// PingText 설정 확인용 테스트 메시지
const PingText = "Test message sent from Qiita:Team"

// Summary 이벤트 하나를 설명하는 텍스트 묶음입니다.
type Summary struct {
	// Headline 행위자와 동작을 설명하는 한 줄 (예: "Alice created a new post")
	Headline string

	// Title 대상 리소스의 제목 (없으면 빈 문자열)
	Title string

	// URL 대상 리소스의 링크
	URL string

	// Excerpt 본문 또는 댓글의 앞부분 (일반 텍스트)
	Excerpt string
}

// Of 이벤트의 요약을 만듭니다.
func Of(event *contract.Event) Summary {
	user := event.User().DisplayName()

	kind := event.Kind()
	if kind.IsProjectEvent() {
		p := event.Project()
		return Summary{Headline: fmt.Sprintf("%s %s %s project", user, projectVerb(kind), p.Name), URL: p.URL}
	}

	switch kind {
	case contract.EventItemCreated:
		item := event.Item()
		return Summary{
			Headline: fmt.Sprintf("%s created a new post", user),
			Title:    item.Title,
			URL:      item.URL,
			Excerpt:  excerpt(item.RenderedBody),
		}

	case contract.EventItemUpdated:
		item := event.Item()
		return Summary{Headline: fmt.Sprintf("%s updated %s", user, item.Title), URL: item.URL}

	case contract.EventItemBecameCoediting:
		item := event.Item()
		return Summary{Headline: fmt.Sprintf("%s changed %s to coedit mode", user, item.Title), URL: item.URL}

	case contract.EventCommentCreated:
		item := event.Item()
		headline := fmt.Sprintf("New comment on %s's %s", item.User.DisplayName(), item.Title)
		if item.Coediting {
			headline = fmt.Sprintf("New comment on %s", item.Title)
		}
		return commented(headline, user, event.Comment(), item.URL)

	case contract.EventProjectCommentCreated:
		p := event.Project()
		return commented(fmt.Sprintf("New comment on %s project", p.Name), user, event.Comment(), p.URL)

	case contract.EventMemberAdded:
		t := event.Team()
		return Summary{Headline: fmt.Sprintf("%s is added to the %s team", event.Member().DisplayName(), t.Name), URL: t.URL}

	default:
		return Summary{Headline: fmt.Sprintf("%s: %s", kind, user)}
	}
}

func commented(headline, commenter string, c contract.Comment, fallbackURL string) Summary {
	url := c.URL
	if url == "" {
		url = fallbackURL
	}
	return Summary{
		Headline: headline,
		Title:    "by " + commenter,
		URL:      url,
		Excerpt:  excerpt(c.RenderedBody),
	}
}

func projectVerb(kind contract.EventKind) string {
	switch kind {
	case contract.EventProjectCreated:
		return "created"
	case contract.EventProjectUpdated:
		return "updated"
	case contract.EventProjectArchived:
		return "archived"
	default:
		return "activated"
	}
}

func excerpt(rendered string) string {
	return strutil.Truncate(markup.ToPlainText(rendered), maxExcerptBytes)
}
