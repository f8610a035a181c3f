package usecase

import (
	"github.com/x-xyz/goauction/base/ctx"
	hcdomain "github.com/x-xyz/goauction/domain/healthcheck"
	"github.com/x-xyz/goauction/stores/healthcheck/repository"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check pings every configured backend and returns the first failure along
// with the full report.
func (im *impl) Check(context ctx.Ctx) (hcdomain.Report, error) {
	pings := map[string]func(ctx.Ctx) error{
		repository.BackendMongo: im.repo.PingDB,
		repository.BackendRedis: im.repo.PingCache,
	}

	report := hcdomain.Report{}
	var firstErr error
	for _, b := range im.repo.Backends() {
		ping, ok := pings[b]
		if !ok {
			continue
		}
		if err := ping(context); err != nil {
			report[b] = err.Error()
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		report[b] = "ok"
	}
	return report, firstErr
}
