package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitWriterLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := InitWriter(&buf, "lsbsteg", false)
	logger.Debug().Msg("hidden detail")
	logger.Info().Msg("visible")
	assert.NotContains(t, buf.String(), "hidden detail")
	assert.Contains(t, buf.String(), "visible")
	assert.Contains(t, buf.String(), "app=lsbsteg")

	buf.Reset()
	InitWriter(&buf, "lsbsteg", true)
	log.Debug().Int("width", 4).Msg("decoded")
	assert.Contains(t, buf.String(), "decoded")
	assert.Contains(t, buf.String(), "width=4")
}
