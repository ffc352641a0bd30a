package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	log := New(cfg)
	log.Info().Str("mode", "dark").Msg("changed")
	log.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), `"mode":"dark"`)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestFromContext_DisabledWithoutLogger(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	ctx := WithComponent(WithContext(context.Background(), New(cfg)), "portal")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"portal"`)
}

func TestNewWithFile_MirrorsAsJSON(t *testing.T) {
	var console, file bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &console

	log := NewWithFile(cfg, &file)
	log.Warn().Str("hook", "notify-send").Msg("hook failed")

	assert.Contains(t, console.String(), "hook failed")
	assert.Contains(t, file.String(), `"hook":"notify-send"`)
	assert.Contains(t, file.String(), `"level":"warn"`)
}

func TestRecoverAndLog_Repanics(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	ctx := WithContext(context.Background(), New(cfg))

	assert.PanicsWithValue(t, "boom", func() {
		defer RecoverAndLog(ctx)
		panic("boom")
	})
	assert.Contains(t, buf.String(), `"panic":"boom"`)
}
