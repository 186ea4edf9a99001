package logging

import (
	"bytes"
	"testing"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want hclog.Level
	}{
		{"", hclog.Warn},
		{"debug", hclog.Debug},
		{" INFO ", hclog.Info},
		{"trace", hclog.Trace},
		{"error", hclog.Error},
		{"off", hclog.Off},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("info", &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("problem generated", "mode", "arithmetic")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "problem generated")
	assert.Contains(t, out, "mode=arithmetic")
	assert.Contains(t, out, Name)
}

func TestNew_Off(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("off", &buf)
	require.NoError(t, err)
	log.Error("boom")
	assert.Empty(t, buf.String())

	_, err = New("chatty", &buf)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	log := Discard()
	log.Error("nothing to see")
	assert.False(t, log.IsDebug())
}
