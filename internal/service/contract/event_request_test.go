package contract

import (
	"encoding/json"
	"testing"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRequest_ToEvent(t *testing.T) {
	t.Parallel()

	item := designDoc
	project := roadmap
	team := Team{Name: "dev"}

	tests := []struct {
		name     string
		req      EventRequest
		wantKind EventKind
		wantErr  string
	}{
		{
			name:     "item_created",
			req:      EventRequest{Kind: "item_created", Actor: alice, Item: &item},
			wantKind: EventItemCreated,
		},
		{
			name:     "별칭 사용",
			req:      EventRequest{Kind: "item_comment_created", Actor: alice, Comment: &Comment{Item: item}},
			wantKind: EventCommentCreated,
		},
		{
			name:     "project_comment_created",
			req:      EventRequest{Kind: "project_comment_created", Actor: alice, Comment: &Comment{Project: project}},
			wantKind: EventProjectCommentCreated,
		},
		{
			name:     "member_added",
			req:      EventRequest{Kind: "team_member_added", Actor: alice, Member: &bob, Team: &team},
			wantKind: EventMemberAdded,
		},
		{
			name:     "project_updated",
			req:      EventRequest{Kind: "project_updated", Actor: alice, Project: &project},
			wantKind: EventProjectUpdated,
		},
		{
			name:     "project_archived",
			req:      EventRequest{Kind: "ProjectArchived", Actor: alice, Project: &project},
			wantKind: EventProjectArchived,
		},
		{
			name:    "kind 누락",
			req:     EventRequest{Actor: alice, Item: &item},
			wantErr: "kind",
		},
		{
			name:    "actor 누락",
			req:     EventRequest{Kind: "item_created", Item: &item},
			wantErr: "actor.id",
		},
		{
			name:    "item 누락",
			req:     EventRequest{Kind: "item_updated", Actor: alice},
			wantErr: "'item'",
		},
		{
			name:    "잘못된 item url",
			req:     EventRequest{Kind: "item_created", Actor: alice, Item: &Item{Title: "t", URL: "not a url"}},
			wantErr: "item.url",
		},
		{
			name:    "댓글 대상 문서 누락",
			req:     EventRequest{Kind: "comment_created", Actor: alice, Comment: &Comment{}},
			wantErr: "comment.item",
		},
		{
			name:    "team 누락",
			req:     EventRequest{Kind: "member_added", Actor: alice, Member: &bob},
			wantErr: "'team'",
		},
		{
			name:    "편집자 누락",
			req:     EventRequest{Kind: "project_updated", Actor: alice, Project: &Project{Name: "p", URL: "https://team.example.com/p"}},
			wantErr: "project.editor",
		},
		{
			name:    "알 수 없는 종류",
			req:     EventRequest{Kind: "item_deleted", Actor: alice},
			wantErr: "item_deleted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, err := tt.req.ToEvent()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, e.Kind())
		})
	}
}

func TestEventRequest_JSON(t *testing.T) {
	t.Parallel()

	raw := `{
		"kind": "project_updated",
		"actor": {"id": "alice"},
		"project": {
			"name": "Roadmap",
			"url": "https://team.example.com/projects/1",
			"editor": {"id": "bob", "profile_image_url": "https://cdn.example.com/bob.png"}
		}
	}`

	var req EventRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	e, err := req.ToEvent()
	require.NoError(t, err)
	assert.Equal(t, "bob", e.User().ID)
	assert.Equal(t, "alice", e.Actor().ID)
	assert.Equal(t, "https://cdn.example.com/bob.png", e.User().ProfileImageURL)
}
