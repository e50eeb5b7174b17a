package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_STRING", "value")
	assert.Equal(t, "value", OrDefault(log, "NOTES_TEST_STRING", "def"))
	assert.Equal(t, "def", OrDefault(log, "NOTES_TEST_MISSING", "def"))

	t.Setenv("NOTES_TEST_EMPTY", "")
	assert.Equal(t, "def", OrDefault(log, "NOTES_TEST_EMPTY", "def"))
}

func TestTypedDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_INT", "42")
	t.Setenv("NOTES_TEST_BAD_INT", "forty")
	assert.Equal(t, 42, IntDefault(log, "NOTES_TEST_INT", "1"))
	assert.Equal(t, 1, IntDefault(log, "NOTES_TEST_BAD_INT", "1"))

	t.Setenv("NOTES_TEST_DURATION", "90s")
	t.Setenv("NOTES_TEST_BAD_DURATION", "soon")
	assert.Equal(t, 90*time.Second, DurationDefault(log, "NOTES_TEST_DURATION", "1s"))
	assert.Equal(t, time.Second, DurationDefault(log, "NOTES_TEST_BAD_DURATION", "1s"))

	t.Setenv("NOTES_TEST_BOOL", "true")
	t.Setenv("NOTES_TEST_BAD_BOOL", "yes please")
	assert.True(t, BoolDefault(log, "NOTES_TEST_BOOL", "f"))
	assert.False(t, BoolDefault(log, "NOTES_TEST_BAD_BOOL", "f"))
}

func TestMust(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_REQUIRED", "set")
	assert.Equal(t, "set", Must(log, "NOTES_TEST_REQUIRED"))
	assert.Panics(t, func() { Must(log, "NOTES_TEST_NOT_THERE") })
}

func TestListDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_LIST", " 10.0.0.1, ,10.0.0.0/8 ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, ListDefault(log, "NOTES_TEST_LIST", ""))
	assert.Nil(t, ListDefault(log, "NOTES_TEST_MISSING", ""))
}
