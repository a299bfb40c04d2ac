package observability

import (
	"fmt"
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/scouting-board/internal/config"
	"github.com/riskibarqy/scouting-board/internal/platform/logging"
)

// mutexProfileFraction samples one in five contention events; the board
// service serialises edits per market, so lock waits are worth profiling.
const mutexProfileFraction = 5

// InitPyroscope starts continuous profiling. The returned stop func restores
// the mutex sampling rate it changed.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	previousFraction := runtime.SetMutexProfileFraction(mutexProfileFraction)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Logger:            pyroscopeLogger{logger: logger.Named("pyroscope")},
		Tags:              profileTags(cfg),
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
		},
	})
	if err != nil {
		runtime.SetMutexProfileFraction(previousFraction)
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
	)

	return func() error {
		defer runtime.SetMutexProfileFraction(previousFraction)
		return profiler.Stop()
	}, nil
}

func profileTags(cfg config.Config) map[string]string {
	return map[string]string{
		"env":             cfg.AppEnv,
		"service":         cfg.ServiceName,
		"version":         cfg.ServiceVersion,
		"player_provider": providerTag(cfg),
	}
}

func providerTag(cfg config.Config) string {
	if cfg.Wyscout.Enabled {
		return "wyscout"
	}
	return "none"
}

// pyroscopeLogger routes the agent's printf-style logs into zap.
type pyroscopeLogger struct {
	logger *logging.Logger
}

func (l pyroscopeLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l pyroscopeLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l pyroscopeLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}
