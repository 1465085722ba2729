package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func plainConfig() utils.Config {
	return utils.Config{
		Width:              5,
		Height:             5,
		GenerationInterval: time.Millisecond,
		MaxGenerations:     2,
		Pattern:            "blinker",
		Seed:               1,
	}
}

func TestRunPlainPrintsEveryGeneration(t *testing.T) {
	var out bytes.Buffer
	if err := runPlain(context.Background(), plainConfig(), &out); err != nil {
		t.Fatalf("runPlain: %v", err)
	}

	text := out.String()
	for _, gen := range []string{"Gen: 0 |", "Gen: 1 |", "Gen: 2 |"} {
		if !strings.Contains(text, gen) {
			t.Fatalf("missing %q in output:\n%s", gen, text)
		}
	}
	if strings.Contains(text, "Gen: 3 |") {
		t.Fatal("ran past the generation limit")
	}

	if !strings.Contains(text, "Avg Pop: ") || !strings.Contains(text, "Runtime: ") {
		t.Fatalf("performance line missing:\n%s", text)
	}
	if strings.Contains(text, "Bounding box") {
		t.Fatal("bounding box shown without the bounded grid")
	}

	final := strings.LastIndex(text, "Final stats: 2 generations in ")
	if final < 0 || !strings.HasSuffix(text, "Avg Pop: 3.0\n") {
		t.Fatalf("final stats missing:\n%s", text)
	}
	horizontal := "X X X X X\nX X X X X\nX O O O X\nX X X X X\nX X X X X\n"
	if !strings.HasSuffix(text[:final], horizontal) {
		t.Fatalf("last frame is not the starting blinker:\n%s", text)
	}
}

func TestRunPlainShowsBoundingBox(t *testing.T) {
	cfg := plainConfig()
	cfg.UseBoundedGrid = true
	var out bytes.Buffer
	if err := runPlain(context.Background(), cfg, &out); err != nil {
		t.Fatalf("runPlain: %v", err)
	}
	if !strings.Contains(out.String(), "| Bounding box: 3 cells\n") {
		t.Fatalf("bounding box missing:\n%s", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRunPlainReportsWriteErrors(t *testing.T) {
	cfg := plainConfig()
	cfg.MaxGenerations = 0

	done := make(chan error, 1)
	go func() { done <- runPlain(context.Background(), cfg, failingWriter{}) }()

	select {
	case err := <-done:
		if err == nil || !strings.HasPrefix(err.Error(), "[runPlain]") {
			t.Fatalf("err = %v, want a wrapped write error", err)
		}
		if errors.Cause(err).Error() != "disk full" {
			t.Fatalf("cause = %v", errors.Cause(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runPlain kept running after a write error")
	}
}

func TestRunPlainStopsOnCancel(t *testing.T) {
	cfg := plainConfig()
	cfg.MaxGenerations = 0
	cfg.GenerationInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	var out bytes.Buffer
	go func() { done <- runPlain(ctx, cfg, &out) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("runPlain: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("runPlain ignored cancellation")
	}
}

func TestRunPlainRejectsBadPattern(t *testing.T) {
	cfg := plainConfig()
	cfg.Pattern = "spaceship"
	if err := runPlain(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
}
