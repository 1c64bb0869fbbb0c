package logx_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nikolayk812/storefront/internal/core"
	logx "github.com/nikolayk812/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitProduction(t *testing.T) {
	var buf bytes.Buffer
	logx.Init(logx.LoggerOpts{Environment: core.Production, Output: &buf})
	t.Cleanup(func() { logx.Init(logx.LoggerOpts{Environment: core.Testing}) })

	logx.Debug().Msg("hidden")
	logx.Info().Str("username", "alice").Msg("logged in")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "alice", entry["username"])
	assert.Equal(t, "logged in", entry["message"])
}
