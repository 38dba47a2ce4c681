package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazypager/internal/config"
	"lazypager/internal/domain"
	"lazypager/internal/eventbus"
)

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2024-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}

func parseRoot(t *testing.T, args ...string) (*options, *config.Config) {
	t.Helper()
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(args))

	var opts options
	opts.vertical, _ = cmd.Flags().GetBool("vertical")
	opts.circular, _ = cmd.Flags().GetBool("circular")
	opts.autoplay, _ = cmd.Flags().GetDuration("autoplay")

	cfg := config.DefaultConfig()
	cfg.Circular = true
	cfg.Autoplay = config.AutoplaySetting{Enabled: true, Period: "9s"}
	applyOverrides(cmd, cfg, &opts)
	return &opts, cfg
}

func TestApplyOverrides(t *testing.T) {
	t.Run("no flags keep the file values", func(t *testing.T) {
		_, cfg := parseRoot(t)
		assert.Equal(t, "horizontal", cfg.Direction)
		assert.True(t, cfg.Circular)
		assert.True(t, cfg.Autoplay.Enabled)
		assert.Equal(t, "9s", cfg.Autoplay.Period)
	})

	t.Run("flags win", func(t *testing.T) {
		_, cfg := parseRoot(t, "--vertical", "--circular=false", "--autoplay", "1500ms")
		assert.Equal(t, "vertical", cfg.Direction)
		assert.False(t, cfg.Circular)
		assert.True(t, cfg.Autoplay.Enabled)
		assert.Equal(t, 1500*time.Millisecond, cfg.AutoplayPeriod())
	})

	t.Run("zero autoplay disables", func(t *testing.T) {
		_, cfg := parseRoot(t, "--autoplay", "0s")
		assert.False(t, cfg.Autoplay.Enabled)
		assert.Equal(t, "9s", cfg.Autoplay.Period)
	})
}

func TestRootRejectsExtraArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"a", "b"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()

	got, err := resolveDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	file := filepath.Join(dir, "page.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = resolveDir(file)
	assert.ErrorContains(t, err, "not a directory")

	_, err = resolveDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)

	wd, err := resolveDir("")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(wd))
}

func TestOpenLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	logger, closeLog := openLog(path, true)
	logger.Debug("hello", "k", "v")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	quiet, closeQuiet := openLog("", false)
	defer closeQuiet()
	assert.Equal(t, log.InfoLevel, quiet.GetLevel())
}

func newTestWriter(t *testing.T) (*sessionWriter, config.ConfigService, eventbus.EventBus) {
	t.Helper()
	dir := t.TempDir()
	logger := log.New(&bytes.Buffer{})
	bus := eventbus.NewWithLogger(logger)
	t.Cleanup(bus.Close)

	svc := config.NewConfigService(dir)
	cfg := config.DefaultConfig()
	cfg.PagesDir = dir
	return newSessionWriter(svc, cfg, bus, logger), svc, bus
}

func TestSessionWriterSavesPageChanges(t *testing.T) {
	w, svc, bus := newTestWriter(t)
	unsubscribe := w.subscribe()
	defer unsubscribe()

	bus.Publish(eventbus.PageChangedEvent{Index: 2, Count: 5})

	require.Eventually(t, func() bool {
		cfg, err := svc.Load()
		return err == nil && cfg.Session.LastPage == 2
	}, time.Second, 10*time.Millisecond)
}

func TestSessionWriterSavesSettings(t *testing.T) {
	w, svc, bus := newTestWriter(t)
	unsubscribe := w.subscribe()
	defer unsubscribe()

	bus.Publish(eventbus.ConfigChangedEvent{LastPage: 1, Circular: true, Autoplay: true})

	require.Eventually(t, func() bool {
		cfg, err := svc.Load()
		return err == nil && cfg.Circular && cfg.Autoplay.Enabled && cfg.Session.LastPage == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSessionWriterRecord(t *testing.T) {
	w, svc, _ := newTestWriter(t)

	require.NoError(t, w.record(domain.PagerStatus{CurrentPage: 3, PageCount: 4, Circular: true}))
	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Session.LastPage)
	assert.True(t, cfg.Circular)

	// an empty pager keeps the stored page
	require.NoError(t, w.record(domain.PagerStatus{CurrentPage: -1}))
	cfg, err = svc.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Session.LastPage)
	assert.False(t, cfg.Circular)
}
