package config

import (
	"os"
	"regexp"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content []byte) []byte {
	return envVarRegex.ReplaceAllFunc(content, func(match []byte) []byte {
		varName := string(envVarRegex.FindSubmatch(match)[1])
		if value, exists := os.LookupEnv(varName); exists {
			return []byte(value)
		}
		return match
	})
}

// ApplyEnv applies environment overrides on top of file values.
func (c *Config) ApplyEnv() {
	if dir, ok := os.LookupEnv(LogDirEnv); ok && dir != "" {
		c.Logs.Dir = dir
	}
}
