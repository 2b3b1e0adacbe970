package config

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Discord.CommandPrefix != "!" {
		t.Errorf("expected default prefix '!', got %q", cfg.Discord.CommandPrefix)
	}
	if cfg.Storage.DataFile != "tourney_data.json" {
		t.Errorf("expected default data file, got %q", cfg.Storage.DataFile)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level info, got %q", cfg.Log.Level)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "token-123")
	t.Setenv("COMMAND_PREFIX", "?")
	t.Setenv("TOURNEY_DATA_FILE", "/var/lib/tourneybot/state.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Discord.Token != "token-123" {
		t.Errorf("expected token from env, got %q", cfg.Discord.Token)
	}
	if cfg.Discord.CommandPrefix != "?" {
		t.Errorf("expected prefix '?', got %q", cfg.Discord.CommandPrefix)
	}
	if cfg.Storage.DataFile != "/var/lib/tourneybot/state.json" {
		t.Errorf("expected data file from env, got %q", cfg.Storage.DataFile)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestValidate_MissingToken(t *testing.T) {
	cfg := &Config{
		Discord: DiscordConfig{CommandPrefix: "!"},
		Storage: StorageConfig{DataFile: "tourney_data.json"},
		Log:     LogConfig{Level: "info"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "DISCORD_BOT_TOKEN") {
		t.Errorf("expected token failure, got %v", err)
	}
}

func TestValidate_AggregatesFailures(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "loud"}}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"DISCORD_BOT_TOKEN", "COMMAND_PREFIX", "TOURNEY_DATA_FILE", "LOG_LEVEL"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %s failure in %v", want, err)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := LogConfig{Level: tt.level}.SlogLevel()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
