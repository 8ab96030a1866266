package jusmatch

import (
	"context"
	"testing"

	"github.com/jusmatch/jusmatch-go/internal/shardqueue"
)

type stubExec struct{ stops int }

func (s *stubExec) Submit(context.Context, string, shardqueue.Job) error { return nil }
func (s *stubExec) Barrier(context.Context, string) error                { return nil }
func (s *stubExec) Stop()                                                { s.stops++ }

func TestNew_RequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty base URL")
	}
}

func TestNew(t *testing.T) {
	c, err := New("http://example.com")
	if err != nil || c == nil {
		t.Fatalf("New: c=%v err=%v", c, err)
	}
	defer func() { _ = c.Close() }()
}

func TestCloseIdempotent(t *testing.T) {
	s := &stubExec{}
	c := &Client{exec: s}
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if s.stops != 1 {
		t.Fatalf("executor stop called %d times", s.stops)
	}
}

func TestIsBackPressure(t *testing.T) {
	qf := &shardqueue.QueueFullError{Shard: 1, Length: 8, Capacity: 8}
	if !IsBackPressure(qf) {
		t.Fatal("expected back pressure match")
	}
	if IsBackPressure(context.Canceled) {
		t.Fatal("unexpected back pressure match")
	}
}
