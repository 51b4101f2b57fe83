package background

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"slices"
	"sync"
	"time"

	"dashboard/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ErrStopped воркер уже остановлен, задачи больше не запускаются.
var ErrStopped = errors.New("background worker stopped")

// Task определяет интерфейс для фоновых задач, которые могут выполняться периодически.
type Task interface {
	// TTL возвращает интервал между выполнениями задачи.
	TTL() time.Duration

	// Do выполняет логику задачи.
	Do(context.Context) error

	// Info возвращает читаемое описание задачи для логгирования и отладки.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Option func(*options)

type options struct {
	tolerantInit bool
}

// WithTolerantInit ошибки прогрева логируются, но не мешают запуску.
func WithTolerantInit() Option {
	return func(o *options) {
		o.tolerantInit = true
	}
}

// Worker управляет выполнением набора фоновых задач.
type Worker struct {
	log   handlerLogger
	tasks []Task

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

// New создает и запускает Worker для выполнения фоновых задач.
//
// Поведение функции:
//  1. Все задачи сначала выполняются один раз (так называемый "прогрев").
//     Это гарантирует, что при старте все задачи будут выполнены хотя бы один раз.
//  2. Если задача завершается с ошибкой или паникой на этапе прогрева,
//     New возвращает ошибку и Worker не создается. С WithTolerantInit ошибка только логируется.
//  3. Задачи выполняются в фоне, пока не будет вызван Stop или не отменен переданный контекст.
func New(ctx context.Context, log handlerLogger, tasks []Task, opts ...Option) (*Worker, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	workerCtx, cancel := context.WithCancel(ctx)
	worker := &Worker{
		log:    log,
		tasks:  tasks,
		ctx:    workerCtx,
		cancel: cancel,
	}

	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(workerCtx)
	if o.tolerantInit {
		initGroup = &errgroup.Group{}
		initCtx = workerCtx
	}

	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("Initializing",
				logger.NewField("task", task.Info()),
			)

			err := runSafely(initCtx, task)
			if err != nil && o.tolerantInit {
				log.Warn("Task init failed, continuing",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
				return nil
			}
			return err
		})
	}

	if err := initGroup.Wait(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.wg.Add(1)
		go worker.runBackgroundTask(task)
	}

	return worker, nil
}

// Trigger немедленно выполняет задачи с указанными Info (все, если список пуст)
// и ждет их завершения. Расписание периодических запусков не меняется.
func (w *Worker) Trigger(ctx context.Context, infos ...string) error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return ErrStopped
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopAfter := context.AfterFunc(w.ctx, cancel)
	defer stopAfter()

	var group errgroup.Group
	for _, task := range w.tasks {
		if len(infos) > 0 && !slices.Contains(infos, task.Info()) {
			continue
		}
		group.Go(func() error {
			err := runSafely(runCtx, task)
			if err != nil {
				w.log.Error("Triggered task failed",
					logger.NewField("task", task.Info()),
					logger.NewField("error", err),
				)
			}
			return err
		})
	}

	return group.Wait()
}

// Stop останавливает периодические запуски и ждет завершения уже начатых.
// После возврата из Stop ни одна задача не будет запущена.
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
}

func (w *Worker) runBackgroundTask(task Task) {
	defer w.wg.Done()

	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			if w.ctx.Err() != nil {
				continue
			}
			w.executeTaskSafely(task)
		}
	}
}

func (w *Worker) executeTaskSafely(task Task) {
	if err := runSafely(w.ctx, task); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}

func runSafely(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %q panic: %v\n%s", task.Info(), r, debug.Stack())
		}
	}()

	return task.Do(ctx)
}
