package rattrig_test

import (
	"bytes"
	"log/slog"
	"testing"

	"deedles.dev/rattrig"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	rattrig.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer rattrig.SetLogger(nil)

	// Logging reports the fallback but does not change it.
	require.Zero(t, rattrig.Spread([2]int{0, 0}, [2]int{1, 0}))
	require.Contains(t, buf.String(), "op=spread")

	// Normal calls stay silent.
	buf.Reset()
	require.Equal(t, 1, rattrig.Spread([2]int{1, 0}, [2]int{0, 1}))
	require.Empty(t, buf.String())
}
