package maputil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatProps struct {
	RoomID  int           `json:"room_id"`
	Token   string        `json:"token"`
	Timeout time.Duration `json:"timeout"`
	Tags    []string      `json:"tags"`
	Notify  bool          `json:"notify"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("느슨한 타입 변환", func(t *testing.T) {
		t.Parallel()

		got, err := Decode[chatProps](map[string]any{
			"room_id": "123",
			"token":   "secret",
			"timeout": "5s",
			"tags":    "a, b ,c",
			"notify":  "true",
			"unknown": "ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, 123, got.RoomID)
		assert.Equal(t, "secret", got.Token)
		assert.Equal(t, 5*time.Second, got.Timeout)
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		assert.True(t, got.Notify)
	})

	t.Run("빈 문자열은 빈 슬라이스", func(t *testing.T) {
		t.Parallel()

		got, err := Decode[chatProps](map[string]any{"tags": "  "})
		require.NoError(t, err)
		assert.Empty(t, got.Tags)
	})

	t.Run("임베디드 구조체 평탄화", func(t *testing.T) {
		t.Parallel()

		type Base struct {
			Token string `json:"token"`
		}
		type props struct {
			Base
			RoomID int `json:"room_id"`
		}
		got, err := Decode[props](map[string]any{"token": "secret", "room_id": 7})
		require.NoError(t, err)
		assert.Equal(t, "secret", got.Token)
		assert.Equal(t, 7, got.RoomID)
	})
}

func TestDecodeTo(t *testing.T) {
	t.Parallel()

	t.Run("nil output", func(t *testing.T) {
		t.Parallel()

		var out *chatProps
		assert.Error(t, DecodeTo(map[string]any{}, out))
	})

	t.Run("기존 값 유지", func(t *testing.T) {
		t.Parallel()

		out := &chatProps{Token: "keep", RoomID: 1}
		require.NoError(t, DecodeTo(map[string]any{"room_id": 2}, out))
		assert.Equal(t, "keep", out.Token)
		assert.Equal(t, 2, out.RoomID)
	})

	t.Run("잘못된 Duration 은 에러", func(t *testing.T) {
		t.Parallel()

		out := &chatProps{}
		assert.Error(t, DecodeTo(map[string]any{"timeout": "soon"}, out))
	})
}
