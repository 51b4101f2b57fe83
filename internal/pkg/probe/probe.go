package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dashboard/pkg/logger"
	retrierconfig "dashboard/pkg/retrier"
	"dashboard/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

// NewRetrier повторы для проверок при старте. Каждая неудачная попытка пишется в лог.
func NewRetrier(log probeLogger, target string) *backoff_adapter.Retrier {
	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, next time.Duration) {
			log.Info("probe attempt failed",
				logger.NewField("target", target),
				logger.NewField("error", err),
				logger.NewField("retry_in", next),
			)
		},
	})
}

// Reachable проверяет, что сервис по baseURL отвечает. Любой ответ ниже 500 считается живым.
// Недоступность не мешает старту: экраны отметят данные как недоступные
// и восстановятся на следующем опросе, поэтому результат только логируется.
func Reachable(ctx context.Context, log probeLogger, client httpClient, r retrier, name, baseURL string) bool {
	probeLog := log.With(
		logger.NewField("target", name),
		logger.NewField("url", baseURL),
	)

	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return head(ctx, client, baseURL)
	})
	if err != nil {
		probeLog.Warn("backend is unreachable, starting anyway", logger.NewField("error", err))
		return false
	}

	probeLog.Info("backend is reachable")
	return true
}

func head(ctx context.Context, client httpClient, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("build probe request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", baseURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("probe %s: status %d", baseURL, resp.StatusCode)
	}
	return nil
}
