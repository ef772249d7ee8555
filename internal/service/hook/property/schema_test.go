package property

import (
	"errors"
	"regexp"
	"testing"

	apperrors "github.com/darkkaiser/team-hooks/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var emojiPattern = regexp.MustCompile(`^:[^:]+:$`)

func newSlackLikeSchema() *Schema {
	return NewSchema().
		Define("username", WithDefault("Qiita:Team")).
		Define("icon_emoji").
		Define("webhook_url").
		Validate("username", Presence()).
		Validate("icon_emoji", Format(emojiPattern, AllowBlank())).
		Validate("webhook_url", Presence(), AbsoluteURL(AllowBlank()))
}

func TestSchema_Build_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := newSlackLikeSchema().Build(map[string]any{"webhook_url": "https://hooks.slack.com/services/T/B/X"})
	require.NoError(t, err)

	assert.Equal(t, "Qiita:Team", cfg.String("username"))
	assert.False(t, cfg.Has("icon_emoji"))
	_, ok := cfg.Get("icon_emoji")
	assert.False(t, ok)

	// nil 값도 기본값으로 대체된다.
	cfg, err = newSlackLikeSchema().Build(map[string]any{"username": nil, "webhook_url": "https://example.com/x"})
	require.NoError(t, err)
	assert.Equal(t, "Qiita:Team", cfg.String("username"))
}

func TestSchema_Build_ReportsAllViolations(t *testing.T) {
	t.Parallel()

	_, err := newSlackLikeSchema().Build(map[string]any{
		"username":   "  ",
		"icon_emoji": "ok",
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	assert.Equal(t, ValidationErrors{
		{Field: "username", Rule: RulePresence, Message: "값이 비어 있습니다"},
		{Field: "icon_emoji", Rule: RuleFormat, Message: "형식이 올바르지 않습니다"},
		{Field: "webhook_url", Rule: RulePresence, Message: "값이 비어 있습니다"},
	}, verrs)
	assert.Equal(t, []string{"username", "icon_emoji", "webhook_url"}, verrs.Fields())
	assert.True(t, verrs.Has("icon_emoji", RuleFormat))
	assert.False(t, verrs.Has("webhook_url", RuleAbsoluteURL))
	assert.Contains(t, err.Error(), "username: 값이 비어 있습니다")
}

func TestSchema_Build_BlankIsPresenceViolationOnly(t *testing.T) {
	t.Parallel()

	for _, blank := range []any{nil, "", "   "} {
		_, err := newSlackLikeSchema().Build(map[string]any{"webhook_url": blank})

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.True(t, verrs.Has("webhook_url", RulePresence), "value=%q", blank)
		assert.False(t, verrs.Has("webhook_url", RuleAbsoluteURL), "value=%q", blank)
	}
}

func TestSchema_Build_FormatWithoutAllowBlank(t *testing.T) {
	t.Parallel()

	s := NewSchema().Define("code").Validate("code", Format(regexp.MustCompile(`^[a-z]+$`)))

	_, err := s.Build(map[string]any{})
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("code", RuleFormat))
}

func TestSchema_Build_EmojiPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		valid bool
	}{
		{":ok:", true},
		{":white_check_mark:", true},
		{"", true},
		{"ok", false},
		{"::", false},
		{":a:b:", false},
		{":ok", false},
		{" :ok:", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()

			_, err := newSlackLikeSchema().Build(map[string]any{
				"icon_emoji":  tt.value,
				"webhook_url": "https://example.com/hook",
			})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.True(t, verrs.Has("icon_emoji", RuleFormat))
		})
	}
}

func TestSchema_Build_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []map[string]any{
		{},
		{"username": "", "icon_emoji": "bad", "webhook_url": "ftp://x"},
		{"webhook_url": "https://example.com/hook", "icon_emoji": ":ok:"},
	}

	s := newSlackLikeSchema()
	for _, raw := range inputs {
		cfg1, err1 := s.Build(raw)
		cfg2, err2 := s.Build(raw)

		assert.Equal(t, err1, err2)
		if err1 == nil {
			assert.Equal(t, cfg1.Values(), cfg2.Values())
		}
	}
}

func TestSchema_Build_PresenceWithoutDefault(t *testing.T) {
	t.Parallel()

	s := NewSchema().Define("token").Validate("token", Presence())

	for _, raw := range []map[string]any{nil, {}, {"token": nil}, {"token": ""}, {"other": "x"}} {
		_, err := s.Build(raw)
		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, []string{"token"}, verrs.Fields())
	}
}

func TestSchema_Build_IgnoresUnknownKeys(t *testing.T) {
	t.Parallel()

	cfg, err := NewSchema().Define("room_id").Build(map[string]any{"room_id": 1, "extra": "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"room_id": 1}, cfg.Values())
	assert.Equal(t, "1", cfg.String("room_id"))
}

func TestSchema_DefinitionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewSchema().Validate("missing", Presence()) })
	assert.Panics(t, func() { NewSchema().Define("a").Define("a") })
	assert.Panics(t, func() { NewSchema().Define("") })
	assert.Panics(t, func() { Format(nil) })
	assert.Panics(t, func() { Predicate("p", nil, "msg") })
	assert.Panics(t, func() { NewSchema().Define("a").Merge(NewSchema().Define("a")) })
}

func TestSchema_Merge(t *testing.T) {
	t.Parallel()

	shared := NewSchema().Define("username", WithDefault("Qiita:Team")).Validate("username", Presence())
	variant := NewSchema().Define("webhook_url").Validate("webhook_url", Presence())

	merged := shared.Merge(variant)
	assert.Equal(t, []string{"username", "webhook_url"}, merged.Fields())

	// 원본은 변경되지 않는다.
	assert.Equal(t, []string{"username"}, shared.Fields())
	merged.Validate("username", Predicate("short", func(v any) bool { return len(stringify(v)) < 5 }, "too long"))
	_, err := shared.Build(map[string]any{})
	assert.NoError(t, err)

	_, err = merged.Build(map[string]any{"webhook_url": "x"})
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("username", "short"))
}

func TestSchema_Describe(t *testing.T) {
	t.Parallel()

	infos := newSlackLikeSchema().Describe()
	require.Len(t, infos, 3)

	assert.Equal(t, FieldInfo{Name: "username", Default: "Qiita:Team", Required: true, Rules: []string{RulePresence}}, infos[0])
	assert.Equal(t, FieldInfo{Name: "icon_emoji", Rules: []string{RuleFormat}}, infos[1])
	assert.Equal(t, []string{RulePresence, RuleAbsoluteURL}, infos[2].Rules)
	assert.True(t, infos[2].Required)
}

func TestConfiguration_With(t *testing.T) {
	t.Parallel()

	s := newSlackLikeSchema()
	cfg, err := s.Build(map[string]any{"webhook_url": "https://example.com/hook"})
	require.NoError(t, err)

	t.Run("유효한 변경은 새 설정을 만든다", func(t *testing.T) {
		t.Parallel()

		updated, err := cfg.With("icon_emoji", ":tada:")
		require.NoError(t, err)
		assert.Equal(t, ":tada:", updated.String("icon_emoji"))
		assert.False(t, cfg.Has("icon_emoji"))
	})

	t.Run("변경 후 재검증한다", func(t *testing.T) {
		t.Parallel()

		_, err := cfg.With("icon_emoji", "tada")
		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.True(t, verrs.Has("icon_emoji", RuleFormat))
	})

	t.Run("정의되지 않은 필드", func(t *testing.T) {
		t.Parallel()

		_, err := cfg.With("unknown", "x")
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})
}

func TestConfiguration_ValuesIsCopy(t *testing.T) {
	t.Parallel()

	cfg, err := newSlackLikeSchema().Build(map[string]any{"webhook_url": "https://example.com/hook"})
	require.NoError(t, err)

	values := cfg.Values()
	values["username"] = "mutated"

	assert.Equal(t, "Qiita:Team", cfg.String("username"))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	type props struct {
		RoomID string `json:"room_id"`
		Token  string `json:"token"`
	}

	cfg, err := NewSchema().Define("room_id").Define("token").Build(map[string]any{"room_id": 42, "token": "abc"})
	require.NoError(t, err)

	p, err := Decode[props](cfg)
	require.NoError(t, err)
	assert.Equal(t, "42", p.RoomID)
	assert.Equal(t, "abc", p.Token)
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"https 절대 URL", "https://hooks.slack.com/services/T/B/X", true},
		{"http 포트 포함", "http://127.0.0.1:8080/x", true},
		{"대문자 스킴", "HTTPS://example.com", true},
		{"상대 경로", "/services/T/B/X", false},
		{"스킴 없음", "hooks.slack.com/services", false},
		{"지원하지 않는 스킴", "ftp://example.com/x", false},
		{"호스트 없음", "https:///path", false},
		{"mailto", "mailto:someone@example.com", false},
		{"문자열이 아닌 값", 12345, false},
		{"잘못된 퍼센트 인코딩", "https://example.com/%zz", false},
	}

	rule := AbsoluteURL()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, rule.apply(tt.value))
			assert.Equal(t, tt.valid, IsHTTPURL(stringify(tt.value)))
		})
	}
}
