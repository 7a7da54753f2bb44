package server

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestNormalizeAddr(t *testing.T) {
	cases := map[string]string{
		"":               ":8080",
		"9000":           ":9000",
		":9000":          ":9000",
		" 9000 ":         ":9000",
		"127.0.0.1:9000": "127.0.0.1:9000",
	}
	for in, want := range cases {
		if got := normalizeAddr(in); got != want {
			t.Errorf("normalizeAddr(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestNew_TimeoutFallback(t *testing.T) {
	def := DefaultTimeouts()
	cases := []struct {
		name string
		in   Timeouts
		want Timeouts
	}{
		{"all zero uses defaults", Timeouts{}, def},
		{"explicit values kept", Timeouts{ReadHeader: time.Second, Write: 2 * time.Second, Idle: 3 * time.Second},
			Timeouts{ReadHeader: time.Second, Write: 2 * time.Second, Idle: 3 * time.Second}},
		{"only write set", Timeouts{Write: 30 * time.Second},
			Timeouts{ReadHeader: def.ReadHeader, Write: 30 * time.Second, Idle: def.Idle}},
		{"negative treated as unset", Timeouts{Idle: -time.Second},
			Timeouts{ReadHeader: def.ReadHeader, Write: def.Write, Idle: def.Idle}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hs := New("0", http.NotFoundHandler(), tc.in).httpServer
			got := Timeouts{ReadHeader: hs.ReadHeaderTimeout, Write: hs.WriteTimeout, Idle: hs.IdleTimeout}
			if got != tc.want {
				t.Fatalf("timeouts=%+v, want %+v", got, tc.want)
			}
			if hs.MaxHeaderBytes != maxHeaderBytes {
				t.Fatalf("max header bytes=%d", hs.MaxHeaderBytes)
			}
		})
	}
}

func TestRunAndShutdown_FromDifferentGoroutines(t *testing.T) {
	s := New("127.0.0.1:0", http.NotFoundHandler(), Timeouts{})

	errc := make(chan error, 1)
	go func() { errc <- s.Run() }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run returned %v after shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after Shutdown")
	}
}

func TestShutdown_BeforeRun(t *testing.T) {
	s := New("127.0.0.1:0", http.NotFoundHandler(), Timeouts{})
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	// the listener must not start once the server was shut down
	if err := s.Run(); err != nil {
		t.Fatalf("Run after Shutdown returned %v", err)
	}
}
