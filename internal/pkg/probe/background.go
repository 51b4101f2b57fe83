package probe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Target struct {
	Name    string
	URL     string
	Retrier retrier
}

// Background проверяет все сервисы параллельно и сразу возвращает управление.
// Канал закрывается, когда закончились все проверки или отменён ctx.
func Background(ctx context.Context, log probeLogger, client httpClient, targets []Target) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		var group errgroup.Group
		for _, t := range targets {
			if t.URL == "" {
				continue
			}
			group.Go(func() error {
				Reachable(ctx, log, client, t.Retrier, t.Name, t.URL)
				return nil
			})
		}
		_ = group.Wait()
	}()

	return done
}
