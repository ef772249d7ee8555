package contract

import (
	"testing"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = User{ID: "alice", Name: "Alice", URL: "https://team.example.com/alice"}
	bob   = User{ID: "bob", URL: "https://team.example.com/bob"}

	designDoc = Item{Title: "Design Doc", URL: "https://team.example.com/items/1", User: bob}
	roadmap   = Project{Name: "Roadmap", URL: "https://team.example.com/projects/1", Editor: bob}
)

func TestParseEventKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    EventKind
		wantErr bool
	}{
		{"item_created", EventItemCreated, false},
		{"ItemCreated", EventItemCreated, false},
		{"item-became-coediting", EventItemBecameCoediting, false},
		{"  project_updated ", EventProjectUpdated, false},
		{"item_comment_created", EventCommentCreated, false},
		{"ItemCommentCreated", EventCommentCreated, false},
		{"team_member_added", EventMemberAdded, false},
		{"member_added", EventMemberAdded, false},
		{"project_comment_created", EventProjectCommentCreated, false},
		{"", "", true},
		{"item_deleted", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseEventKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllEventKinds(t *testing.T) {
	t.Parallel()

	kinds := AllEventKinds()
	assert.Len(t, kinds, 10)
	for _, k := range kinds {
		assert.True(t, k.IsValid(), k)
		assert.NoError(t, k.Validate())
	}

	// 반환값을 수정해도 카탈로그는 변하지 않는다.
	kinds[0] = "broken"
	assert.Equal(t, EventItemCreated, AllEventKinds()[0])

	assert.Error(t, EventKind("unknown").Validate())
}

func TestEventKind_IsProjectEvent(t *testing.T) {
	t.Parallel()

	assert.True(t, EventProjectArchived.IsProjectEvent())
	assert.False(t, EventProjectCommentCreated.IsProjectEvent())
	assert.False(t, EventItemCreated.IsProjectEvent())
}

func TestEvent_User(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		event *Event
		want  User
	}{
		{"project_updated 는 편집자", NewProjectUpdated(alice, roadmap), bob},
		{"project_created 는 actor", NewProjectCreated(alice, roadmap), alice},
		{"member_added 는 actor", NewMemberAdded(alice, bob, Team{Name: "dev"}), alice},
		{"item_created 는 actor", NewItemCreated(alice, designDoc), alice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.event.User())
		})
	}
}

func TestEvent_Accessors(t *testing.T) {
	t.Parallel()

	comment := Comment{URL: "https://team.example.com/items/1#comment-1", RenderedBody: "<p>LGTM</p>", Item: designDoc}
	e := NewCommentCreated(alice, comment)

	assert.Equal(t, EventCommentCreated, e.Kind())
	assert.Equal(t, alice, e.Actor())
	assert.Equal(t, comment, e.Comment())
	assert.Equal(t, designDoc, e.Item())

	pc := NewProjectCommentCreated(alice, Comment{Project: roadmap})
	assert.Equal(t, roadmap, pc.Project())

	m := NewMemberAdded(alice, bob, Team{Name: "dev"})
	assert.Equal(t, bob, m.Member())
	assert.Equal(t, "dev", m.Team().Name)
}

func TestEvent_AccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	e := NewItemCreated(alice, designDoc)
	item := e.Item()
	item.Title = "changed"

	assert.Equal(t, "Design Doc", e.Item().Title)
}

func TestUser_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alice", alice.DisplayName())
	assert.Equal(t, "bob", bob.DisplayName())
}

func TestHookID(t *testing.T) {
	t.Parallel()

	assert.True(t, HookID("").IsEmpty())
	assert.Error(t, HookID("  ").Validate())
	assert.NoError(t, HookID("slack-main").Validate())
	assert.Equal(t, "slack-main", HookID("slack-main").String())
}
