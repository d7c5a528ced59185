package db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"chitfund-app-go/internal/domain/members"
	"chitfund-app-go/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogSkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	g := newGormLog(logger.New(&buf, slog.LevelDebug, "json"), 0)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM members WHERE id = 'x'", 0
	}, gorm.ErrRecordNotFound)

	if buf.Len() != 0 {
		t.Fatalf("expected no output for record not found, got %q", buf.String())
	}
}

func TestGormLogQueryErrors(t *testing.T) {
	var buf bytes.Buffer
	g := newGormLog(logger.New(&buf, slog.LevelDebug, "json"), 0)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO members", 0
	}, errors.New("connection refused"))

	out := buf.String()
	if !strings.Contains(out, `"level":"ERROR"`) || !strings.Contains(out, "INSERT INTO members") {
		t.Fatalf("expected error record with sql, got %q", out)
	}
}

func TestGormLogSlowQuery(t *testing.T) {
	var buf bytes.Buffer
	g := newGormLog(logger.New(&buf, slog.LevelDebug, "json"), time.Millisecond)

	g.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT SUM(amount) FROM transactions", 1
	}, nil)

	if !strings.Contains(buf.String(), "db: slow query") {
		t.Fatalf("expected slow query warning, got %q", buf.String())
	}
}

func TestGormLogSilentMode(t *testing.T) {
	var buf bytes.Buffer
	g := newGormLog(logger.New(&buf, slog.LevelDebug, "json"), 0).LogMode(gormlogger.Silent)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, errors.New("boom"))
	g.Error(context.Background(), "boom %d", 1)

	if buf.Len() != 0 {
		t.Fatalf("expected silent logger, got %q", buf.String())
	}
}

func TestGormLogOmitsBoundValues(t *testing.T) {
	var buf bytes.Buffer
	gormDB, err := gorm.Open(postgres.Open("host=localhost user=chit dbname=chit sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               newGormLog(logger.New(&buf, slog.LevelDebug, "json"), time.Nanosecond),
	})
	if err != nil {
		t.Fatalf("open dry run db: %v", err)
	}

	pan := "ABCDE1234F"
	aadhaar := "123412341234"
	member := members.Member{
		ID:            "m1",
		MemberCode:    "M1",
		FirstName:     "A",
		LastName:      "B",
		Phone:         "9999999999",
		PANNumber:     &pan,
		AadhaarNumber: &aadhaar,
		Status:        members.StatusActive,
	}
	if err := gormDB.Create(&member).Error; err != nil {
		t.Fatalf("dry run create: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "db: slow query") {
		t.Fatalf("expected slow query record, got %q", out)
	}
	for _, secret := range []string{pan, aadhaar, "9999999999"} {
		if strings.Contains(out, secret) {
			t.Fatalf("expected %q to be kept out of the log, got %q", secret, out)
		}
	}
	if !strings.Contains(out, "$1") {
		t.Fatalf("expected placeholders in logged sql, got %q", out)
	}
}
