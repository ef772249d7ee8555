package contract

import (
	"strings"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/iancoleman/strcase"
)

// EventKind 훅으로 전달되는 도메인 이벤트의 종류입니다. 값은 와이어 포맷(snake_case) 이름과 같습니다.
type EventKind string

const (
	EventItemCreated           EventKind = "item_created"
	EventItemUpdated           EventKind = "item_updated"
	EventItemBecameCoediting   EventKind = "item_became_coediting"
	EventCommentCreated        EventKind = "comment_created"
	EventProjectCommentCreated EventKind = "project_comment_created"
	EventMemberAdded           EventKind = "member_added"
	EventProjectCreated        EventKind = "project_created"
	EventProjectUpdated        EventKind = "project_updated"
	EventProjectArchived       EventKind = "project_archived"
	EventProjectActivated      EventKind = "project_activated"
)

var allEventKinds = []EventKind{
	EventItemCreated,
	EventItemUpdated,
	EventItemBecameCoediting,
	EventCommentCreated,
	EventProjectCommentCreated,
	EventMemberAdded,
	EventProjectCreated,
	EventProjectUpdated,
	EventProjectArchived,
	EventProjectActivated,
}

// eventKindAliases 외부 연동 서비스 정의에서 사용하던 이벤트 이름
var eventKindAliases = map[string]EventKind{
	"item_comment_created": EventCommentCreated,
	"team_member_added":    EventMemberAdded,
}

// AllEventKinds 카탈로그에 정의된 모든 이벤트 종류를 정의 순서대로 반환합니다.
func AllEventKinds() []EventKind {
	kinds := make([]EventKind, len(allEventKinds))
	copy(kinds, allEventKinds)
	return kinds
}

// ParseEventKind 문자열을 EventKind로 변환합니다.
// snake_case, kebab-case, CamelCase 표기와 별칭(item_comment_created, team_member_added)을 모두 허용합니다.
func ParseEventKind(s string) (EventKind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", apperrors.New(apperrors.InvalidInput, "이벤트 종류가 비어 있습니다")
	}

	name := strcase.ToSnake(trimmed)
	if alias, ok := eventKindAliases[name]; ok {
		return alias, nil
	}

	kind := EventKind(name)
	if !kind.IsValid() {
		return "", apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 이벤트 종류입니다: '%s'", s)
	}

	return kind, nil
}

func (k EventKind) IsValid() bool {
	switch k {
	case EventItemCreated, EventItemUpdated, EventItemBecameCoediting,
		EventCommentCreated, EventProjectCommentCreated, EventMemberAdded,
		EventProjectCreated, EventProjectUpdated, EventProjectArchived, EventProjectActivated:
		return true
	default:
		return false
	}
}

func (k EventKind) Validate() error {
	if !k.IsValid() {
		return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 이벤트 종류입니다: '%s'", string(k))
	}
	return nil
}

// IsProjectEvent 프로젝트(Project) 리소스를 대상으로 하는 이벤트인지 여부를 반환합니다.
func (k EventKind) IsProjectEvent() bool {
	switch k {
	case EventProjectCreated, EventProjectUpdated, EventProjectArchived, EventProjectActivated:
		return true
	default:
		return false
	}
}

func (k EventKind) String() string {
	return string(k)
}
