package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocktake-api/pkg/logger"
)

func TestComponent_EtiquetaElSubsistema(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := log.Component("http").Zerolog().Output(&buf)
	zl.Info().Msg("petición atendida")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"component":"http"`, "cada línea debe llevar el subsistema que la emite")
	assert.Contains(t, out, "petición atendida")
}

func TestComponent_NoModificaElLoggerBase(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info"})
	_ = log.Component("migrate")

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Info().Msg("sin etiqueta")

	assert.NotContains(t, buf.String(), "component", "el logger original no debe heredar la etiqueta")
}

func TestNew_NivelPorDefecto(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "nivel-raro"})

	var buf bytes.Buffer
	zl := log.Zerolog().Output(&buf)
	zl.Debug().Msg("no debería salir")
	zl.Info().Msg("sí debería salir")

	assert.NotContains(t, buf.String(), "no debería salir", "nivel desconocido cae a info")
	assert.Contains(t, buf.String(), "sí debería salir")
}
