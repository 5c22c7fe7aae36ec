package gemini

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/vfg2006/protrack-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/vfg2006/protrack-api/internal/domain"
	"github.com/vfg2006/protrack-api/pkg/log"
	"github.com/vfg2006/protrack-api/pkg/metrics"
)

const breakerName = "gemini-api"

// newCircuitBreaker abre o circuito após 5 falhas seguidas e tenta de novo depois de 1 minuto.
// Falta de API key e cancelamento pelo chamador não contam como falha do provedor.
func newCircuitBreaker() *gobreaker.CircuitBreaker[*domain.AIInsight] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*domain.AIInsight](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, geminiclient.ErrMissingAPIKey) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.L.WithFields(log.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("gemini: circuit breaker mudou de estado")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
