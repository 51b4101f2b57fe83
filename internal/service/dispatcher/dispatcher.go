package dispatcher

import (
	"context"
	"errors"
	"fmt"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeInvalid = "invalid"
)

type Dispatcher struct {
	log      handlerLogger
	gateways gateways
}

func New(
	log handlerLogger,
	orders OrderGateway,
	deliveries DeliveryGateway,
	users UserGateway,
	notifications NotificationGateway,
) *Dispatcher {
	return &Dispatcher{
		log: log,
		gateways: gateways{
			orders:        orders,
			deliveries:    deliveries,
			users:         users,
			notifications: notifications,
		},
	}
}

// Dispatch выполняет действие от имени экрана.
//
// Ошибка проверки входных данных возвращается как ErrValidation, бэкенд не вызывается
// и сообщение не показывается. Ошибка записи показывает сообщение об ошибке, состояние
// экрана не меняется, возвращается ErrDispatchFailed. После успешной записи показывается
// сообщение об успехе и затронутые данные сразу перечитываются.
func (d *Dispatcher) Dispatch(ctx context.Context, v View, action Action) (entities.Toast, error) {
	log := d.log.With(logger.NewField("action", action.Name()))

	if session := v.Session(); session.User == nil {
		return entities.Toast{}, invalid("", "session has no user")
	}

	if err := action.validate(v); err != nil {
		DispatchTotal.WithLabelValues(action.Name(), outcomeInvalid).Inc()
		return entities.Toast{}, err
	}

	err := action.execute(ctx, d.gateways, v)
	if errors.Is(err, ErrValidation) {
		DispatchTotal.WithLabelValues(action.Name(), outcomeInvalid).Inc()
		return entities.Toast{}, err
	}
	if err != nil {
		DispatchTotal.WithLabelValues(action.Name(), outcomeFailure).Inc()
		log.With(logger.NewField("error", err)).Warn("action failed")

		toast := v.ShowToast(entities.ToastError, action.failureMessage())
		if r, ok := action.(interface{ refetchOnFailure() bool }); ok && r.refetchOnFailure() {
			d.refetch(ctx, log, v, action.affects())
		}
		return toast, fmt.Errorf("%w: %s: %w", ErrDispatchFailed, action.Name(), err)
	}

	DispatchTotal.WithLabelValues(action.Name(), outcomeSuccess).Inc()
	toast := v.ShowToast(entities.ToastSuccess, action.successMessage(v))
	d.refetch(ctx, log, v, action.affects())

	return toast, nil
}

// refetch ошибки перечитывания уже видны в снимке экрана, здесь они только логируются.
func (d *Dispatcher) refetch(ctx context.Context, log logger.Logger, v View, kinds []entities.DataKind) {
	for _, kind := range kinds {
		if err := v.RefreshKind(ctx, kind); err != nil {
			log.With(
				logger.NewField("kind", kind.String()),
				logger.NewField("error", err),
			).Warn("refetch after action failed")
		}
	}
}
