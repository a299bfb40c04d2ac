package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/scouting-board/internal/config"
	"github.com/riskibarqy/scouting-board/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "scouting-board-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{PyroscopeEnabled: false}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	if got := uptraceDisabledReason(config.Config{}); got != "UPTRACE_ENABLED=false" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if got := uptraceDisabledReason(config.Config{UptraceEnabled: true, UptraceDSN: "  "}); got != "UPTRACE_DSN empty" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if got := uptraceDisabledReason(config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev?grpc=4317"}); got != "" {
		t.Fatalf("expected enabled, got %q", got)
	}
}

func TestProfileTags(t *testing.T) {
	cfg := config.Config{AppEnv: config.EnvDev, ServiceName: "scouting-board-api", ServiceVersion: "1.2.0"}
	cfg.Wyscout.Enabled = true

	tags := profileTags(cfg)
	if tags["player_provider"] != "wyscout" || tags["version"] != "1.2.0" || tags["env"] != config.EnvDev {
		t.Fatalf("unexpected tags: %v", tags)
	}
}
