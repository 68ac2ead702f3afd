package namesetl_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

func TestPipelineConfig_Validate(t *testing.T) {
	valid := func() namesetl.PipelineConfig {
		return namesetl.PipelineConfig{
			SourceURL: "https://example.com/names.csv",
			CSVPath:   "names.csv",
			StorePath: "names.db",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*namesetl.PipelineConfig)
		wantError bool
	}{
		{"valid config", func(c *namesetl.PipelineConfig) {}, false},
		{"valid with overwrite and force", func(c *namesetl.PipelineConfig) { c.Overwrite, c.Force = true, true }, false},
		{"missing source url", func(c *namesetl.PipelineConfig) { c.SourceURL = "" }, true},
		{"missing csv path", func(c *namesetl.PipelineConfig) { c.CSVPath = "" }, true},
		{"missing store path", func(c *namesetl.PipelineConfig) { c.StorePath = "" }, true},
		{"csv and store collide", func(c *namesetl.PipelineConfig) { c.StorePath = c.CSVPath }, true},
		{"force without overwrite", func(c *namesetl.PipelineConfig) { c.Force = true }, true},
		{"negative retries", func(c *namesetl.PipelineConfig) { c.Retries = -1 }, true},
		{"negative timeout", func(c *namesetl.PipelineConfig) { c.Timeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantError {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				if !errors.Is(err, namesetl.ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestNameRecord_Fields(t *testing.T) {
	rec := namesetl.NameRecord{ID: 7, Name: "Alex", Total: 3000, MaleShare: 0.45, FemaleShare: 0.55, Gap: 0.1}
	got := rec.Fields()
	want := []string{"7", "Alex", "3000", "0.45", "0.55", "0.1"}

	if len(got) != namesetl.FieldCount {
		t.Fatalf("Expected %d fields, got %d", namesetl.FieldCount, len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Field %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNameRecord_Validate(t *testing.T) {
	ok := namesetl.NameRecord{ID: 1, Name: "Alex", Total: 100, MaleShare: 0.5, FemaleShare: 0.5}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inf := ok
	inf.Gap = math.Inf(1)
	if err := inf.Validate(); err != nil {
		t.Errorf("infinity should be storable, got %v", err)
	}

	for _, mutate := range []func(*namesetl.NameRecord){
		func(r *namesetl.NameRecord) { r.MaleShare = math.NaN() },
		func(r *namesetl.NameRecord) { r.FemaleShare = math.NaN() },
		func(r *namesetl.NameRecord) { r.Gap = math.NaN() },
	} {
		rec := ok
		mutate(&rec)
		err := rec.Validate()
		if !errors.Is(err, namesetl.ErrInvalidRecord) {
			t.Errorf("expected ErrInvalidRecord, got %v", err)
		}
	}
}
