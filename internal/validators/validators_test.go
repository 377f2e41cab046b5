package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestText(t *testing.T) {
	assert.NoError(t, Text("name", "Ann", 100))
	assert.True(t, httperr.IsValidation(Text("name", "", 100)))
	assert.True(t, httperr.IsValidation(Text("name", "   ", 100)))
	assert.EqualError(t, Text("name", strings.Repeat("a", 101), 100), "name: must be at most 100 characters")
	// characters, not bytes
	assert.NoError(t, Text("name", strings.Repeat("é", 100), 100))
}

func TestOptionalText(t *testing.T) {
	long := strings.Repeat("x", 256)
	short := "ok"

	assert.NoError(t, OptionalText("notes", nil, 255))
	assert.NoError(t, OptionalText("notes", &short, 255))
	assert.True(t, httperr.IsValidation(OptionalText("notes", &long, 255)))
}

func TestIntRange(t *testing.T) {
	assert.NoError(t, IntRange("duration_min", 5, 5, 240))
	assert.NoError(t, IntRange("duration_min", 240, 5, 240))
	assert.EqualError(t, IntRange("duration_min", 4, 5, 240), "duration_min: must be between 5 and 240")
	assert.Error(t, IntRange("duration_min", 241, 5, 240))
}

func TestFirst(t *testing.T) {
	assert.NoError(t, First(nil, nil))
	err := First(nil, Text("a", "", 10), Text("b", "", 10))
	assert.EqualError(t, err, "a: is required")
}
