package config

import (
	"errors"
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Prefix:       "game",
		APIKey:       "secret",
		SSHKeys:      []string{"laptop"},
		Image:        "ubuntu-24.04",
		InstanceType: "cx22",
		Zone:         "fsn1",
		CloudInit:    "hostname: %HHM_ID%",
		Labels:       map[string]string{"app": "game"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zone optional", func(c *Config) { c.Zone = "" }, ""},
		{"cloud init optional", func(c *Config) { c.CloudInit = "" }, ""},
		{"missing prefix", func(c *Config) { c.Prefix = "" }, "prefix is required"},
		{"missing api key", func(c *Config) { c.APIKey = "" }, "api_key is required"},
		{"missing image", func(c *Config) { c.Image = "" }, "image is required"},
		{"missing instance type", func(c *Config) { c.InstanceType = "" }, "instance_type is required"},
		{"nil labels", func(c *Config) { c.Labels = nil }, "labels must contain at least one entry"},
		{"empty label key", func(c *Config) { c.Labels[""] = "x" }, "empty key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			var cfgErr *Error
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected *Error, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllMissingFields(t *testing.T) {
	t.Parallel()
	err := (&Config{}).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"prefix", "api_key", "image", "instance_type", "labels"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err.Error(), want)
		}
	}
}

func TestWarnings(t *testing.T) {
	t.Parallel()
	cfg := validConfig()
	if w := cfg.Warnings(); len(w) != 0 {
		t.Errorf("expected no warnings, got %v", w)
	}

	cfg.CloudInit = "#!/bin/sh\necho static\n"
	cfg.SSHKeys = nil
	w := cfg.Warnings()
	if len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %v", w)
	}
	if !strings.Contains(w[0], "%HHM_ID%") {
		t.Errorf("first warning should name the placeholder: %q", w[0])
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()
	inner := errors.New("boom")
	err := &Error{Path: "config.toml", Err: inner}
	if err.Error() != "invalid configuration config.toml: boom" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
	if (&Error{Err: inner}).Error() != "invalid configuration: boom" {
		t.Errorf("unexpected message without path")
	}
}
