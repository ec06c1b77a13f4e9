package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_RewritesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("REPORT_FAIL_ON_ERRORS", "")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Features", "Trade"), 0o755))
	handler := filepath.Join(dir, "Features", "Trade", "AcceptTradeHandler.cs")
	service := filepath.Join(dir, "TradeService.cs")
	require.NoError(t, os.WriteFile(handler, []byte(`Fail("Scambio non trovato.");`), 0o644))
	require.NoError(t, os.WriteFile(service, []byte(`Fail("Scambio non trovato.");`), 0o644))

	code, err := run()
	require.NoError(t, err)
	require.Equal(t, 0, code)

	got, err := os.ReadFile(handler)
	require.NoError(t, err)
	require.Equal(t, "Fail(ErrorCodes.TRADE_NOT_FOUND);", string(got))

	got, err = os.ReadFile(service)
	require.NoError(t, err)
	require.Equal(t, `Fail("Scambio non trovato.");`, string(got))
}
