package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dashboard/pkg/logger"

	"github.com/IBM/sarama"
)

// Handler по событию смены статуса заказа сразу перечитывает данные
// затронутых экранов, не дожидаясь следующего опроса.
type Handler struct {
	refresher                Refresher
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, refresher Refresher, timeout time.Duration) *Handler {
	return &Handler{
		refresher:                refresher,
		log:                      log.With(logger.NewField("handler", "order_status_changed")),
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Ребалансировка или остановка группы.
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста сессии).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var payload statusChangedEvent
	if err := json.Unmarshal(message.Value, &payload); err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad message")
		sess.MarkMessage(message, "")
		return false
	}

	event, err := payload.toEntity()
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status.String()),
		logger.NewField("offset", message.Offset),
	)

	refreshed, err := h.refresher.RefreshForOrderEvent(ctx, event)
	if err != nil {
		if sess.Context().Err() != nil {
			msgLog.Warn("session closed during refresh, message will be reprocessed")
			return true
		}
		if errors.Is(err, context.DeadlineExceeded) {
			msgLog.Warn("refresh timed out")
		} else {
			msgLog.With(logger.NewField("error", err)).Warn("refresh failed")
		}
	}

	// Экраны и так догонят состояние на следующем опросе, повторять событие незачем.
	msgLog.Info("processed", logger.NewField("views", refreshed))
	sess.MarkMessage(message, "")
	return false
}
