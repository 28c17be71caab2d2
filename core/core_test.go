package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forwardblock/go-forwardblock/config"
)

func TestSuppressed(t *testing.T) {
	conf := config.DefaultConfig()
	obs, logs := observer.New(zapcore.DebugLevel)
	p := &Protocol{Config: &conf, Logger: zap.New(obs)}

	p.Suppressed("hidden", errors.New("boom"))
	require.Zero(t, logs.Len())

	conf.Debug = true
	p.Suppressed("shown", errors.New("boom"), zap.Int("index", 3))
	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Equal(t, "shown", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "boom", fields["error"])
	require.Equal(t, "*errors.errorString", fields["type"])
	require.EqualValues(t, 3, fields["index"])
}

func TestLogDefaultsToNop(t *testing.T) {
	conf := config.DefaultConfig()
	conf.Debug = true
	p := &Protocol{Config: &conf}
	require.NotNil(t, p.Log())
	p.Suppressed("no panic", errors.New("boom"))
}

func TestTxFlagString(t *testing.T) {
	require.Equal(t, "transfer(1)", TxFlag{ID: 1, Name: "transfer"}.String())
}
