package env

import (
	"os"
)

// PodName example: k8ssta-goauction-api-6868d88fbd-bz8zv. Falls back to the
// host name outside kubernetes.
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	host, _ := os.Hostname()
	return host
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api
func AppName() string {
	return os.Getenv("APP_NAME")
}
