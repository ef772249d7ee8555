package contract

// Event 훅으로 전달되는 도메인 이벤트입니다.
//
// 생성 후에는 변경할 수 없으며, 종류별 생성 함수(NewItemCreated 등)로만 만들 수 있습니다.
// 접근자는 모두 값 복사본을 반환하므로 여러 훅이 동시에 읽어도 안전합니다.
type Event struct {
	kind    EventKind
	actor   User
	item    Item
	comment Comment
	project Project
	member  User
	team    Team
}

func NewItemCreated(actor User, item Item) *Event {
	return &Event{kind: EventItemCreated, actor: actor, item: item}
}

func NewItemUpdated(actor User, item Item) *Event {
	return &Event{kind: EventItemUpdated, actor: actor, item: item}
}

func NewItemBecameCoediting(actor User, item Item) *Event {
	return &Event{kind: EventItemBecameCoediting, actor: actor, item: item}
}

// NewCommentCreated 문서에 댓글이 작성된 이벤트를 생성합니다. actor는 댓글 작성자입니다.
func NewCommentCreated(actor User, comment Comment) *Event {
	return &Event{kind: EventCommentCreated, actor: actor, comment: comment, item: comment.Item}
}

// NewProjectCommentCreated 프로젝트에 댓글이 작성된 이벤트를 생성합니다.
func NewProjectCommentCreated(actor User, comment Comment) *Event {
	return &Event{kind: EventProjectCommentCreated, actor: actor, comment: comment, project: comment.Project}
}

// NewMemberAdded 팀에 구성원이 추가된 이벤트를 생성합니다. actor는 구성원을 추가한 사용자입니다.
func NewMemberAdded(actor User, member User, team Team) *Event {
	return &Event{kind: EventMemberAdded, actor: actor, member: member, team: team}
}

func NewProjectCreated(actor User, project Project) *Event {
	return &Event{kind: EventProjectCreated, actor: actor, project: project}
}

// NewProjectUpdated 프로젝트 수정 이벤트를 생성합니다.
// 알림의 주체(User)는 actor가 아니라 project.Editor 입니다.
func NewProjectUpdated(actor User, project Project) *Event {
	return &Event{kind: EventProjectUpdated, actor: actor, project: project}
}

func NewProjectArchived(actor User, project Project) *Event {
	return &Event{kind: EventProjectArchived, actor: actor, project: project}
}

func NewProjectActivated(actor User, project Project) *Event {
	return &Event{kind: EventProjectActivated, actor: actor, project: project}
}

func (e *Event) Kind() EventKind { return e.kind }

// Actor 이벤트를 발생시킨 사용자입니다.
func (e *Event) Actor() User { return e.actor }

// User 알림 메시지에서 행위자로 표시할 사용자를 반환합니다.
// project_updated 이벤트는 항상 프로젝트의 마지막 편집자(Editor)를 반환합니다.
func (e *Event) User() User {
	if e.kind == EventProjectUpdated {
		return e.project.Editor
	}
	return e.actor
}

// Item 이벤트 대상 문서입니다. comment_created 이벤트에서는 댓글이 달린 문서를 반환합니다.
func (e *Event) Item() Item { return e.item }

func (e *Event) Comment() Comment { return e.comment }

// Project 이벤트 대상 프로젝트입니다. project_comment_created 이벤트에서는 댓글이 달린 프로젝트를 반환합니다.
func (e *Event) Project() Project { return e.project }

// Member 팀에 추가된 구성원입니다. (member_added)
func (e *Event) Member() User { return e.member }

// Team 구성원이 추가된 팀입니다. (member_added)
func (e *Event) Team() Team { return e.team }
