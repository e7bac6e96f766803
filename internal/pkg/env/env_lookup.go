package env

import (
	"os"
	"strconv"
	"time"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

func TrySetBoolFromEnv(envName string, val *bool) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	if parsed, err := strconv.ParseBool(envVal); err == nil {
		*val = parsed
	}
}

func TrySetDurationFromEnv(envName string, val *time.Duration) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	if parsed, err := time.ParseDuration(envVal); err == nil {
		*val = parsed
	}
}
