package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecret_ZeroValueIsOmitted(t *testing.T) {
	var s Secret
	assert.True(t, s.IsZero())
	assert.False(t, s.Present())
}

func TestSecret_RedactedReportsPresenceButStaysOmitted(t *testing.T) {
	s := RedactedSecret(true)
	assert.True(t, s.IsZero(), "a redacted secret must never be sent back")
	assert.True(t, s.Present())

	none := RedactedSecret(false)
	assert.True(t, none.IsZero())
	assert.False(t, none.Present())
}

func TestSecret_NewValueSerializes(t *testing.T) {
	s := NewSecret("bid=abc123")
	assert.False(t, s.IsZero())
	assert.True(t, s.Present())

	blob, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"bid=abc123"`, string(blob))
}

func TestSecret_OmitzeroInStructs(t *testing.T) {
	blob, err := json.Marshal(CrawlerConfigRequest{Name: "a", GroupURL: "b"})
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "cookie")

	blob, err = json.Marshal(CrawlerConfigRequest{Name: "a", GroupURL: "b", Cookie: NewSecret("c")})
	require.NoError(t, err)
	assert.Contains(t, string(blob), `"cookie":"c"`)
}
