//go:build e2e

package verify

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Build with -tags e2e; these tests launch a real headless Chromium.

const palettePage = `<!DOCTYPE html>
<html>
<body>
  <div class="color-palette">
    <button class="color-peg" title="Red" style="background-color: rgb(255, 0, 0);"></button>
    <button class="color-peg" title="Green" style="background-color: rgb(0, 255, 0);"></button>
    <button class="color-peg" style="background-color: rgb(0, 0, 255);"></button>
  </div>
</body>
</html>`

func servePalette(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, palettePage)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRun_ReportsPegsAndCapturesScreenshot(t *testing.T) {
	server := servePalette(t)
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	var buf bytes.Buffer
	v := New(Options{
		URL:            server.URL,
		ScreenshotPath: screenshotPath,
		Out:            &buf,
	})

	require.NoError(t, v.Run(context.Background()))

	// Screenshot must be a valid non-empty PNG
	file, err := os.Open(screenshotPath)
	require.NoError(t, err)
	defer file.Close()

	cfg, err := png.DecodeConfig(file)
	require.NoError(t, err)
	assert.Positive(t, cfg.Width)
	assert.Positive(t, cfg.Height)

	// Count line must match the Button lines, indices from 0 in DOM order
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Found 3 color buttons", lines[0])
	assert.Equal(t, "Button 0: Red - background-color: rgb(255, 0, 0);", lines[1])
	assert.Equal(t, "Button 1: Green - background-color: rgb(0, 255, 0);", lines[2])
	// Missing title attribute prints as the empty string
	assert.Equal(t, "Button 2:  - background-color: rgb(0, 0, 255);", lines[3])
}

func TestRun_OverwritesScreenshot(t *testing.T) {
	server := servePalette(t)
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	run := func() {
		var buf bytes.Buffer
		v := New(Options{
			URL:            server.URL,
			ScreenshotPath: screenshotPath,
			Out:            &buf,
		})
		require.NoError(t, v.Run(context.Background()))
	}

	run()
	first, err := os.Stat(screenshotPath)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	run()
	second, err := os.Stat(screenshotPath)
	require.NoError(t, err)

	assert.True(t, second.ModTime().After(first.ModTime()),
		"second run should overwrite the screenshot")
}

func TestRun_ReadyTimeoutLeavesNoScreenshot(t *testing.T) {
	server := servePalette(t)
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	var buf bytes.Buffer
	v := New(Options{
		URL:            server.URL,
		ReadySelector:  ".never-appears",
		ScreenshotPath: screenshotPath,
		Timeout:        1500,
		Out:            &buf,
	})

	err := v.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "never became ready")

	_, statErr := os.Stat(screenshotPath)
	assert.True(t, os.IsNotExist(statErr), "no screenshot should be written on wait timeout")
	assert.Empty(t, buf.String(), "no report should be written on wait timeout")
}

func TestRun_ConnectionRefused(t *testing.T) {
	screenshotPath := filepath.Join(t.TempDir(), "verification.png")

	var buf bytes.Buffer
	v := New(Options{
		// Reserved port, nothing listens here
		URL:            "http://127.0.0.1:1",
		ScreenshotPath: screenshotPath,
		Timeout:        5000,
		Out:            &buf,
	})

	err := v.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")

	_, statErr := os.Stat(screenshotPath)
	assert.True(t, os.IsNotExist(statErr))
	assert.Empty(t, buf.String())
}

func TestRun_CancelledContext(t *testing.T) {
	server := servePalette(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	v := New(Options{
		URL:            server.URL,
		ScreenshotPath: filepath.Join(t.TempDir(), "verification.png"),
		Out:            &buf,
	})

	err := v.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
