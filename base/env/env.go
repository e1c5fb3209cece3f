package env

import (
	"os"
)

// PodName example: k8s-traitkit-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: staging
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// ConfigPath overrides the default config file location when set
func ConfigPath() string {
	return os.Getenv("TRAITKIT_CONFIG")
}
