package exampleboard

import (
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestWithPort(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{name: "valid", port: 9090},
		{name: "min", port: 1},
		{name: "max", port: 65535},
		{name: "zero", port: 0, wantErr: true},
		{name: "too large", port: 65536, wantErr: true},
		{name: "negative", port: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ebConfig{}
			err := WithPort(tt.port)(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WithPort(%d) error = %v, wantErr %v", tt.port, err, tt.wantErr)
			}
			if !tt.wantErr && cfg.port != tt.port {
				t.Errorf("port = %d, want %d", cfg.port, tt.port)
			}
		})
	}
}

func TestWithBrand(t *testing.T) {
	cfg := &ebConfig{}
	if err := WithBrand("Acme")(cfg); err != nil {
		t.Fatalf("WithBrand() error = %v", err)
	}
	if cfg.brand != "Acme" {
		t.Errorf("brand = %q, want %q", cfg.brand, "Acme")
	}
	if err := WithBrand("")(cfg); err == nil {
		t.Error("WithBrand(\"\") expected error, got nil")
	}
}

func TestWithContributeURL(t *testing.T) {
	cfg := &ebConfig{}
	if err := WithContributeURL("https://github.com/acme/examples")(cfg); err != nil {
		t.Fatalf("WithContributeURL() error = %v", err)
	}
	if cfg.contributeURL != "https://github.com/acme/examples" {
		t.Errorf("contributeURL = %q", cfg.contributeURL)
	}
	if err := WithContributeURL("")(cfg); err == nil {
		t.Error("WithContributeURL(\"\") expected error, got nil")
	}
}

func TestWithDefaultApp(t *testing.T) {
	cfg := &ebConfig{}
	if err := WithDefaultApp("counter")(cfg); err != nil {
		t.Fatalf("WithDefaultApp() error = %v", err)
	}
	if cfg.defaultApp != "counter" {
		t.Errorf("defaultApp = %q, want %q", cfg.defaultApp, "counter")
	}
	if err := WithDefaultApp("")(cfg); err == nil {
		t.Error("WithDefaultApp(\"\") expected error, got nil")
	}
}

func TestWithSessionTTL(t *testing.T) {
	tests := []struct {
		name         string
		ttl          time.Duration
		wantInterval time.Duration
		wantErr      bool
	}{
		{name: "one hour", ttl: time.Hour, wantInterval: 5 * time.Minute},
		{name: "short ttl clamps interval", ttl: 2 * time.Second, wantInterval: time.Second},
		{name: "zero", ttl: 0, wantErr: true},
		{name: "negative", ttl: -time.Second, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ebConfig{}
			err := WithSessionTTL(tt.ttl)(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WithSessionTTL(%v) error = %v, wantErr %v", tt.ttl, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.sessionTTL != tt.ttl {
				t.Errorf("sessionTTL = %v, want %v", cfg.sessionTTL, tt.ttl)
			}
			if cfg.sweepInterval != tt.wantInterval {
				t.Errorf("sweepInterval = %v, want %v", cfg.sweepInterval, tt.wantInterval)
			}
		})
	}
}

func TestWithRateLimit(t *testing.T) {
	tests := []struct {
		name    string
		rps     float64
		burst   int
		wantErr bool
	}{
		{name: "valid", rps: 5, burst: 10},
		{name: "fractional", rps: 0.5, burst: 1},
		{name: "zero rps", rps: 0, burst: 10, wantErr: true},
		{name: "zero burst", rps: 5, burst: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ebConfig{}
			err := WithRateLimit(tt.rps, tt.burst)(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WithRateLimit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (cfg.rateLimit != tt.rps || cfg.rateBurst != tt.burst) {
				t.Errorf("rate limit = (%v, %d), want (%v, %d)", cfg.rateLimit, cfg.rateBurst, tt.rps, tt.burst)
			}
		})
	}
}

func TestWithLogger(t *testing.T) {
	cfg := &ebConfig{}
	if err := WithLogger(nil)(cfg); err == nil {
		t.Error("WithLogger(nil) expected error, got nil")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := WithLogger(logger)(cfg); err != nil {
		t.Fatalf("WithLogger() error = %v", err)
	}
	if cfg.logger != logger {
		t.Error("logger was not set")
	}
}

func TestWithSelectCallback_NilIgnored(t *testing.T) {
	cfg := &ebConfig{}
	if err := WithSelectCallback(nil)(cfg); err != nil {
		t.Fatalf("WithSelectCallback(nil) error = %v", err)
	}
	if len(cfg.selectCallbacks) != 0 {
		t.Errorf("len(selectCallbacks) = %d, want 0", len(cfg.selectCallbacks))
	}

	if err := WithSelectCallback(func(SelectEvent) {})(cfg); err != nil {
		t.Fatalf("WithSelectCallback() error = %v", err)
	}
	if len(cfg.selectCallbacks) != 1 {
		t.Errorf("len(selectCallbacks) = %d, want 1", len(cfg.selectCallbacks))
	}
}

func TestWithSections_Appends(t *testing.T) {
	a, _ := NewSection("a", "A")
	b, _ := NewSection("b", "B")
	c, _ := NewSection("c", "C")

	cfg := &ebConfig{}
	for _, opt := range []Option{WithSection(a), WithSections(b, c)} {
		if err := opt(cfg); err != nil {
			t.Fatalf("option error = %v", err)
		}
	}
	if len(cfg.sections) != 3 || cfg.sections[2].ID() != "c" {
		t.Errorf("sections = %+v, want [a b c]", cfg.sections)
	}
}
