package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestCriticalLevelLabel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")

	log.Critical("db: unreachable", "attempt", 1)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected json line, got %q: %v", buf.String(), err)
	}
	if record["level"] != "CRITICAL" {
		t.Fatalf("expected CRITICAL level, got %v", record["level"])
	}
}

func TestBusinessErrorSkipsNilError(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "json")

	log.BusinessError("members.get: not found", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	log.BusinessError("members.get: not found", errors.New("member not found"), "member_id", "m-1")
	if !strings.Contains(buf.String(), `"level":"WARN"`) {
		t.Fatalf("expected WARN record, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"member_id":"m-1"`) {
		t.Fatalf("expected member_id attribute, got %q", buf.String())
	}
}

func TestParseLevelDefaultsToDebugInDevelopment(t *testing.T) {
	if level := parseLevel("", "development"); level != slog.LevelDebug {
		t.Fatalf("expected debug, got %v", level)
	}
	if level := parseLevel("", "production"); level != slog.LevelInfo {
		t.Fatalf("expected info, got %v", level)
	}
	if level := parseLevel("fatal", "production"); level != LevelCritical {
		t.Fatalf("expected critical, got %v", level)
	}
}

func TestSensitiveAttributesRedacted(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "json")

	log.Info("members.create: created", "member_id", "m-1", "pan_number", "ABCDE1234F", "Phone", "9876543210")

	out := buf.String()
	if strings.Contains(out, "ABCDE1234F") || strings.Contains(out, "9876543210") {
		t.Fatalf("expected kyc values redacted, got %q", out)
	}
	if !strings.Contains(out, `"member_id":"m-1"`) {
		t.Fatalf("expected member_id kept, got %q", out)
	}
}

func TestRequestIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "json")

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-42")
	log.Log(ctx, slog.LevelInfo, "http request")

	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Fatalf("expected request_id attribute, got %q", buf.String())
	}

	buf.Reset()
	log.Info("no request")
	if strings.Contains(buf.String(), "request_id") {
		t.Fatalf("expected no request_id without request context, got %q", buf.String())
	}
}
