package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithComponent(t *testing.T) {
	t.Parallel()

	entry := WithComponent("hook.dispatcher")
	assert.Equal(t, "hook.dispatcher", entry.Data["component"])
}

func TestWithComponentAndFields(t *testing.T) {
	t.Parallel()

	fields := Fields{"hook_id": "slack-main", "component": "overridden"}
	entry := WithComponentAndFields("hook.dispatcher", fields)

	assert.Equal(t, "hook.dispatcher", entry.Data["component"])
	assert.Equal(t, "slack-main", entry.Data["hook_id"])

	// 원본 맵은 변경되지 않는다.
	assert.Equal(t, "overridden", fields["component"])
}

func TestSetDebugMode(t *testing.T) {
	resetForTest(t)

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, GetLevel())
	assert.False(t, IsLevelEnabled(DebugLevel))
}
