package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"

	"github.com/jhoicas/hareware-api/pkg/logger"
)

// DefaultContractExpirationSpec todos los días a las 00:05 UTC.
const DefaultContractExpirationSpec = "5 0 * * *"

// ContractExpirer lo implementa usecase.ContractUseCase.
type ContractExpirer interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

// ContractExpirationJob desactiva a diario los contratos cuyo término ya pasó.
type ContractExpirationJob struct {
	expirer ContractExpirer
	spec    string
	timeout time.Duration
	log     *logger.Logger

	runs        *prometheus.CounterVec
	deactivated prometheus.Counter

	cron *cron.Cron
}

// NewContractExpirationJob construye la tarea. reg nil no registra métricas.
func NewContractExpirationJob(expirer ContractExpirer, spec string, log *logger.Logger, reg prometheus.Registerer) *ContractExpirationJob {
	if spec == "" {
		spec = DefaultContractExpirationSpec
	}
	if log == nil {
		log = logger.Nop()
	}
	factory := promauto.With(reg)
	return &ContractExpirationJob{
		expirer: expirer,
		spec:    spec,
		timeout: 2 * time.Minute,
		log:     log.Component("jobs.contract_expiration"),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hareware_contract_expiration_runs_total",
			Help: "Ejecuciones de la tarea de vencimiento de contratos.",
		}, []string{"result"}),
		deactivated: factory.NewCounter(prometheus.CounterOpts{
			Name: "hareware_contracts_deactivated_total",
			Help: "Contratos desactivados por vencimiento.",
		}),
	}
}

// RunOnce ejecuta una pasada.
func (j *ContractExpirationJob) RunOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	n, err := j.expirer.DeactivateExpired(ctx)
	if err != nil {
		j.runs.WithLabelValues("error").Inc()
		j.log.Error().Err(err).Msg("fallo al desactivar contratos vencidos")
		return 0, err
	}
	j.runs.WithLabelValues("ok").Inc()
	j.deactivated.Add(float64(n))
	j.log.Info().Int64("desactivados", n).Msg("contratos vencidos procesados")
	return n, nil
}

// Start programa la tarea en UTC. Devuelve error si la expresión cron es inválida.
func (j *ContractExpirationJob) Start() error {
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(j.spec, func() { _, _ = j.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("cron %q: %w", j.spec, err)
	}
	c.Start()
	j.cron = c
	j.log.Info().Str("spec", j.spec).Msg("tarea programada")
	return nil
}

// Stop detiene el planificador y espera a que termine la ejecución en curso.
func (j *ContractExpirationJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}
