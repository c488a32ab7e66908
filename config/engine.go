package config

import (
	"main/utils"
	"time"
)

type EngineConfig struct {
	GeneratorURL        string
	GeneratorTimeout    time.Duration
	ResetCheckInterval  time.Duration
	ProgressCacheTTL    time.Duration
	DefaultMissionCount int
}

func LoadEngineConfig() EngineConfig {
	return EngineConfig{
		GeneratorURL:        utils.GetEnvAsString("GENERATOR_URL", "http://localhost:8090"),
		GeneratorTimeout:    utils.GetEnvAsDuration("GENERATOR_TIMEOUT", 10*time.Second),
		ResetCheckInterval:  utils.GetEnvAsDuration("RESET_CHECK_INTERVAL", time.Minute),
		ProgressCacheTTL:    utils.GetEnvAsDuration("PROGRESS_CACHE_TTL", 5*time.Minute),
		DefaultMissionCount: utils.GetEnvAsInt("DEFAULT_MISSION_COUNT", 3),
	}
}
