package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Info("starting HTTP server", "addr", "0.0.0.0:8080")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "starting HTTP server" || entry["addr"] != "0.0.0.0:8080" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewDevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("starting HTTP server", "addr", "0.0.0.0:8080")

	out := buf.String()
	if !strings.Contains(out, `msg="starting HTTP server"`) || !strings.Contains(out, "addr=0.0.0.0:8080") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestNewDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("noisy")
	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed, got %q", buf.String())
	}
}
