package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProdIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("prod", &buf)
	log.Debug("hidden")
	log.Info("visible", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "storefront", rec["service"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewDevIsTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	New("dev", &buf).Debug("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}
