package contract

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// EventRequest API나 CLI로 전달되는 이벤트의 JSON 표현입니다.
//
//	{
//	  "kind": "item_created",
//	  "actor": {"id": "alice", "url": "https://team.example.com/alice"},
//	  "item": {"title": "Design Doc", "url": "https://team.example.com/items/1", "rendered_body": "<p>hi</p>"}
//	}
type EventRequest struct {
	Kind    string   `json:"kind" validate:"required"`
	Actor   User     `json:"actor"`
	Item    *Item    `json:"item,omitempty"`
	Comment *Comment `json:"comment,omitempty"`
	Project *Project `json:"project,omitempty"`
	Member  *User    `json:"member,omitempty"`
	Team    *Team    `json:"team,omitempty"`
}

var requestValidator = sync.OnceValue(func() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 필드명(예: rendered_body)이 나오도록 한다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
})

// ToEvent 요청을 검증한 뒤 불변 Event로 변환합니다. 검증 실패 시 InvalidInput 에러를 반환합니다.
func (r *EventRequest) ToEvent() (*Event, error) {
	if err := checkResource(r, "이벤트 요청"); err != nil {
		return nil, err
	}

	kind, err := ParseEventKind(r.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case EventItemCreated, EventItemUpdated, EventItemBecameCoediting:
		if r.Item == nil {
			return nil, newErrMissingResource(kind, "item")
		}
		item := *r.Item
		switch kind {
		case EventItemCreated:
			return NewItemCreated(r.Actor, item), nil
		case EventItemUpdated:
			return NewItemUpdated(r.Actor, item), nil
		default:
			return NewItemBecameCoediting(r.Actor, item), nil
		}

	case EventCommentCreated:
		if r.Comment == nil {
			return nil, newErrMissingResource(kind, "comment")
		}
		if err := checkResource(r.Comment.Item, "comment.item"); err != nil {
			return nil, err
		}
		return NewCommentCreated(r.Actor, *r.Comment), nil

	case EventProjectCommentCreated:
		if r.Comment == nil {
			return nil, newErrMissingResource(kind, "comment")
		}
		if err := checkResource(r.Comment.Project, "comment.project"); err != nil {
			return nil, err
		}
		return NewProjectCommentCreated(r.Actor, *r.Comment), nil

	case EventMemberAdded:
		if r.Member == nil {
			return nil, newErrMissingResource(kind, "member")
		}
		if r.Team == nil {
			return nil, newErrMissingResource(kind, "team")
		}
		return NewMemberAdded(r.Actor, *r.Member, *r.Team), nil

	case EventProjectCreated, EventProjectUpdated, EventProjectArchived, EventProjectActivated:
		if r.Project == nil {
			return nil, newErrMissingResource(kind, "project")
		}
		project := *r.Project
		switch kind {
		case EventProjectCreated:
			return NewProjectCreated(r.Actor, project), nil
		case EventProjectUpdated:
			if err := checkResource(project.Editor, "project.editor"); err != nil {
				return nil, err
			}
			return NewProjectUpdated(r.Actor, project), nil
		case EventProjectArchived:
			return NewProjectArchived(r.Actor, project), nil
		default:
			return NewProjectActivated(r.Actor, project), nil
		}
	}

	return nil, newErrUnsupportedEventKind(kind)
}

// checkResource 구조체 태그 규칙으로 검증하고, 첫 번째 위반 항목을 InvalidInput 에러로 변환합니다.
func checkResource(s any, contextName string) error {
	err := requestValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]

		// 최상위 구조체 이름(EventRequest., User. 등)은 제외하고 JSON 경로만 남긴다.
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx != -1 {
			field = field[idx+1:]
		}

		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 값이 올바르지 않습니다: %s (조건: %s)", contextName, field, fe.Tag()))
	}

	return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
}
