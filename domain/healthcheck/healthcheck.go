package healthcheck

import (
	"github.com/x-xyz/goauction/base/ctx"
)

// Report lists the checked backends, "ok" or the failure message each.
type Report map[string]string

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(context ctx.Ctx) (Report, error)
}

// HealthCheckRepo is repository layer of healthCheck. Backends not configured
// for the running storage mode are skipped.
type HealthCheckRepo interface {
	PingDB(context ctx.Ctx) error
	PingCache(context ctx.Ctx) error
	Backends() []string
}
