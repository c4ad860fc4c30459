package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// useTempLog points the log at a temp dir and returns the file path.
func useTempLog(t *testing.T) string {
	t.Helper()
	resetForTest()
	path := filepath.Join(t.TempDir(), LogDirName, LogFileName)
	orig := getLogPath
	getLogPath = func() (string, error) { return path, nil }
	t.Cleanup(func() {
		getLogPath = orig
		Close()
		resetForTest()
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read debug log: %v", err)
	}
	return string(data)
}

func TestDisabledLoggingIsSilent(t *testing.T) {
	path := useTempLog(t)
	if err := Init(false); err != nil {
		t.Fatalf("Init(false): %v", err)
	}
	if Enabled() {
		t.Fatal("Enabled() = true after Init(false)")
	}

	Log("store: opened", "/tmp/overrides.db")
	Logf("theme %s", "nord")
	Event("resolved", map[string]any{"sheet": "Button"})

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("disabled logging created %s (err=%v)", path, err)
	}
}

func TestEnabledLoggingWritesResolverActivity(t *testing.T) {
	path := useTempLog(t)
	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}

	Logf("store: opened %s", "/tmp/overrides.db")
	Event("resolved", map[string]any{"sheet": "Checkbox", "theme": "nord", "entries": 14})
	Event("store: saved overrides", map[string]any{"widget": "w1", "count": 2})
	Close()

	content := readLog(t, path)
	tests := []string{
		"swatch debug log started",
		"store: opened /tmp/overrides.db",
		"resolved",
		"sheet=Checkbox",
		"theme=nord",
		"entries=14",
		"widget=w1",
		"count=2",
	}
	for _, want := range tests {
		if !strings.Contains(content, want) {
			t.Errorf("debug log missing %q:\n%s", want, content)
		}
	}
}

func TestInitTruncatesPreviousRun(t *testing.T) {
	path := useTempLog(t)
	//nolint:gosec // G301: test directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("resolved sheet=Modal from last run\n"), 0600); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}
	Close()

	if content := readLog(t, path); strings.Contains(content, "last run") {
		t.Fatalf("previous run survived truncation:\n%s", content)
	}
}

func TestCloseIsIdempotentAndSilencesLogging(t *testing.T) {
	path := useTempLog(t)
	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}
	Close()
	Close()

	Log("after close")
	if content := readLog(t, path); strings.Contains(content, "after close") {
		t.Fatalf("logged after Close:\n%s", content)
	}
}

func TestGetLogPathEndsInSwatchDir(t *testing.T) {
	path, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath: %v", err)
	}
	if want := filepath.Join(".swatch", "debug.log"); !strings.HasSuffix(path, want) {
		t.Fatalf("GetLogPath() = %q, want suffix %q", path, want)
	}
}

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = zerolog.Nop()
}
