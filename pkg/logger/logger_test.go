package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/battery-supply-chain/pkg/logger"
)

func TestNew_ProductionEscribeJSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf}).Named("session")

	log.Info().Str("user_id", "1").Msg("login")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session", entry["component"])
	assert.Equal(t, "1", entry["user_id"])
	assert.Equal(t, "login", entry["message"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_NivelFiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Debug().Msg("guard")
	log.Info().Msg("login")
	assert.Empty(t, buf.String())

	log.Warn().Msg("no se pudo persistir la sesión")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
