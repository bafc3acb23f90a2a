// Package refresh implementa el modelo de refresco del producto: un recómputo
// periódico del resumen del dashboard (análogo al polling de 30 segundos de
// las vistas) más invalidación explícita cuando una escritura cambia los
// datos. Los cómputos son idempotentes y baratos, así que no hay cancelación
// ni ordenamiento entre ticks e invalidaciones.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/tallerpro-api/internal/application/dto"
	"github.com/tu-usuario/tallerpro-api/internal/infrastructure/metrics"
	"github.com/tu-usuario/tallerpro-api/pkg/logger"
)

// Computer produce el resumen del dashboard (lo implementa DashboardUseCase).
type Computer interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

// Scheduler recalcula el resumen en cada tick y en cada invalidación, y
// cachea el último resultado exitoso para servirlo sin recomputar.
type Scheduler struct {
	computer Computer
	interval time.Duration
	log      *logger.Logger
	metrics  *metrics.RefreshMetrics // opcional

	mu     sync.RWMutex
	latest *dto.DashboardSummaryDTO

	invalidate chan struct{}
}

// NewScheduler construye el scheduler. metrics puede ser nil.
func NewScheduler(computer Computer, interval time.Duration, log *logger.Logger, m *metrics.RefreshMetrics) *Scheduler {
	return &Scheduler{
		computer:   computer,
		interval:   interval,
		log:        log,
		metrics:    m,
		invalidate: make(chan struct{}, 1),
	}
}

// Run computa una vez al arrancar y luego en cada tick o invalidación,
// hasta que el contexto se cancele. Pensado para correr en su propia goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	s.recompute(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.recompute(ctx)
		case <-s.invalidate:
			s.recompute(ctx)
		}
	}
}

// Invalidate fuerza un recómputo fuera del tick (evento de cambio de datos).
// No bloquea: si ya hay una invalidación pendiente, se colapsan en una.
func (s *Scheduler) Invalidate() {
	select {
	case s.invalidate <- struct{}{}:
	default:
	}
}

// Latest devuelve el último resumen exitoso, o nil si aún no hay ninguno.
func (s *Scheduler) Latest() *dto.DashboardSummaryDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Scheduler) recompute(ctx context.Context) {
	start := time.Now()
	summary, err := s.computer.GetSummary(ctx)
	elapsed := time.Since(start)

	if s.metrics != nil {
		s.metrics.Recomputes.Inc()
		s.metrics.Duration.Observe(elapsed.Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.Failures.Inc()
		}
		// Se conserva el último resumen bueno; el dashboard sigue sirviendo
		// datos posiblemente viejos en lugar de quedarse vacío.
		s.log.Error().Err(err).Msg("recómputo del dashboard")
		return
	}

	s.mu.Lock()
	s.latest = summary
	s.mu.Unlock()

	s.log.Debug().Dur("elapsed", elapsed).Msg("dashboard recalculado")
}
