package contract

// 리소스 안에 중첩된 리소스는 `validate:"-"` 로 자동 검증에서 제외하고,
// 이벤트 종류에 따라 EventRequest.ToEvent 에서 필요한 경우에만 검증합니다.

// User 팀 구성원입니다.
type User struct {
	ID              string `json:"id" validate:"required"`
	Name            string `json:"name"`
	URL             string `json:"url" validate:"omitempty,url"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,url"`
}

// DisplayName 메시지에 표시할 이름을 반환합니다. (이름이 없으면 ID)
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}

// Item 팀에 작성된 문서(게시글)입니다. User는 문서 작성자입니다.
type Item struct {
	Title        string `json:"title" validate:"required"`
	URL          string `json:"url" validate:"required,url"`
	RenderedBody string `json:"rendered_body"`
	Coediting    bool   `json:"coediting"`
	User         User   `json:"user" validate:"-"`
}

// Comment 문서 또는 프로젝트에 작성된 댓글입니다. 어떤 리소스에 달린 댓글인지는 이벤트 종류로 구분합니다.
type Comment struct {
	URL          string  `json:"url" validate:"omitempty,url"`
	RenderedBody string  `json:"rendered_body"`
	Item         Item    `json:"item" validate:"-"`
	Project      Project `json:"project" validate:"-"`
}

// Project 팀 프로젝트입니다. Editor는 마지막으로 프로젝트를 수정한 사용자입니다.
type Project struct {
	Name   string `json:"name" validate:"required"`
	URL    string `json:"url" validate:"required,url"`
	Editor User   `json:"editor" validate:"-"`
}

// Team 구성원이 추가되는 팀입니다.
type Team struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"omitempty,url"`
}
