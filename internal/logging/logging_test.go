package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Cleanup(InitDefault)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Options{Level: "DEBUG", Format: "json", Out: &buf})

		log.Debug().Str("code", "token_expired").Msg("rejected")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "debug", entry["level"])
		assert.Equal(t, "token_expired", entry["code"])
		assert.Equal(t, "rejected", entry["message"])
		assert.Contains(t, entry, "time")
	})

	t.Run("console", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Options{Level: "warn", Format: "console", NoColor: true, Out: &buf})

		log.Info().Msg("hidden")
		log.Warn().Msg("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "WRN")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		Init(Options{Level: "loud", Format: "json", Out: &bytes.Buffer{}})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}
