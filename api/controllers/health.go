package controllers

import (
	"context"
	"net/http"

	"github.com/nutriapp/nutriapp-backend/api/responses"
	pkgerrors "github.com/nutriapp/nutriapp-backend/pkg/errors"
	"github.com/nutriapp/nutriapp-backend/pkg/logger"
	"go.uber.org/multierr"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessChecks names the pingable dependencies the readiness probe
// aggregates. A nil entry is skipped, so optional dependencies such as
// Redis simply drop out when not configured.
type ReadinessChecks struct {
	DB    pinger
	Redis pinger
}

func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(checks ReadinessChecks, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		if checks.DB != nil {
			err = multierr.Append(err, checks.DB.Ping(r.Context()))
		}
		if checks.Redis != nil {
			err = multierr.Append(err, checks.Redis.Ping(r.Context()))
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "readiness check"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
