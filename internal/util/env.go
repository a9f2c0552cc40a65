package util

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

func GetEnv(key string, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}

	return defaultVal
}

func GetEnvEnum(key string, defaultVal string, allowedValues []string) string {
	if !ContainsString(allowedValues, defaultVal) {
		log.Panic().Str("key", key).Str("value", defaultVal).Msg("Default value is not in the allowed values list.")
	}

	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}

	if !ContainsString(allowedValues, val) {
		log.Error().Str("key", key).Str("value", val).Msg("Value is not allowed. Fallback to default value.")
		return defaultVal
	}

	return val
}

func GetEnvAsInt(key string, defaultVal int) int {
	strVal := GetEnv(key, "")

	if val, err := strconv.Atoi(strVal); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsInt64(key string, defaultVal int64) int64 {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseInt(strVal, 10, 64); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsFloat(key string, defaultVal float64) float64 {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseFloat(strVal, 64); err == nil {
		return val
	}

	return defaultVal
}

func GetEnvAsBool(key string, defaultVal bool) bool {
	strVal := GetEnv(key, "")

	if val, err := strconv.ParseBool(strVal); err == nil {
		return val
	}

	return defaultVal
}

// GetEnvAsDuration parses values like "30s" or "2m". Plain integers are read as seconds.
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	strVal := strings.TrimSpace(GetEnv(key, ""))
	if strVal == "" {
		return defaultVal
	}

	if val, err := time.ParseDuration(strVal); err == nil {
		return val
	}

	if seconds, err := strconv.Atoi(strVal); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultVal
}

// GetEnvAsStringArr reads a separated list, "," by default. Empty items are dropped.
func GetEnvAsStringArr(key string, defaultVal []string, separator ...string) []string {
	strVal := GetEnv(key, "")
	if len(strVal) == 0 {
		return defaultVal
	}

	sep := ","
	if len(separator) >= 1 {
		sep = separator[0]
	}

	parts := strings.Split(strVal, sep)
	res := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}

	return res
}

func GetEnvAsLanguageTag(key string, defaultVal language.Tag) language.Tag {
	strVal := GetEnv(key, "")
	if strVal == "" {
		return defaultVal
	}

	tag, err := language.Parse(strVal)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Str("value", strVal).Msg("Invalid language tag, falling back to default")
		return defaultVal
	}

	return tag
}

func GetEnvAsLogLevel(key string, defaultVal zerolog.Level) zerolog.Level {
	strVal := GetEnv(key, "")
	if strVal == "" {
		return defaultVal
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strVal))
	if err != nil {
		return defaultVal
	}

	return level
}

func ContainsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}

	return false
}
