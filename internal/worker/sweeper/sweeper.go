package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-PlaceBooking/internal/usecase/expire_bookings"
)

const (
	// DefaultSchedule расписание по умолчанию
	DefaultSchedule = "@every 1m"

	defaultRunTimeout = 30 * time.Second
)

// Expirer проход автозавершения
type Expirer interface {
	Execute(ctx context.Context) (*expire_bookings.Response, error)
}

// Metrics интерфейс метрик sweeper'а
type Metrics interface {
	IncSweeperRun(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper периодически запускает автозавершение закончившихся бронирований
// Пересекающиеся запуски пропускаются
type Sweeper struct {
	cron     *cron.Cron
	expirer  Expirer
	schedule string
	timeout  time.Duration
	metrics  Metrics
	logger   Logger
}

// New создает sweeper; пустое расписание заменяется DefaultSchedule
func New(schedule string, timeout time.Duration, location *time.Location, expirer Expirer, metrics Metrics, logger Logger) *Sweeper {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if timeout <= 0 {
		timeout = defaultRunTimeout
	}
	if location == nil {
		location = time.Local
	}

	return &Sweeper{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		expirer:  expirer,
		schedule: schedule,
		timeout:  timeout,
		metrics:  metrics,
		logger:   logger,
	}
}

// Start регистрирует задачу и запускает планировщик
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.tick); err != nil {
		return fmt.Errorf("sweeper: invalid schedule %q: %w", s.schedule, err)
	}
	s.cron.Start()
	s.logger.Info("Sweeper: started with schedule %q", s.schedule)
	return nil
}

// Stop останавливает планировщик и ждет завершения текущего прохода или отмены ctx
func (s *Sweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Sweeper: stopped")
	case <-ctx.Done():
		s.logger.Error("Sweeper: stop interrupted: %v", ctx.Err())
	}
}

// RunOnce выполняет один проход и возвращает количество завершенных бронирований
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.expirer.Execute(ctx)
	if err != nil {
		s.metrics.IncSweeperRun("error")
		return 0, err
	}

	s.metrics.IncSweeperRun("ok")
	return resp.Completed, nil
}

func (s *Sweeper) tick() {
	if _, err := s.RunOnce(context.Background()); err != nil {
		s.logger.Error("Sweeper: run failed: %v", err)
	}
}
