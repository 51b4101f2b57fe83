package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/handlers/rest/dto"
	"dashboard/internal/service/dispatcher"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Error(w http.ResponseWriter, log handlerLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Error: message})
}

// Outcome ответ на мутацию: 200 с сообщением об успехе, 422 при ошибке
// проверки данных, 502 с сообщением об ошибке, если бэкенд не принял запись.
func Outcome(w http.ResponseWriter, log handlerLogger, toast entities.Toast, err error) {
	switch {
	case err == nil:
		JSON(w, log, http.StatusOK, dto.MutationResponse{Success: true, Toast: dto.FromToast(toast)})
	case errors.Is(err, dispatcher.ErrValidation):
		Error(w, log, http.StatusUnprocessableEntity, validationMessage(err))
	case errors.Is(err, dispatcher.ErrDispatchFailed):
		JSON(w, log, http.StatusBadGateway, dto.MutationResponse{
			Success: false,
			Toast:   dto.FromToast(toast),
			Error:   toast.Message,
		})
	default:
		log.With(logger.NewField("error", err)).Error("dispatch action")
		Error(w, log, http.StatusInternalServerError, "internal error")
	}
}

func validationMessage(err error) string {
	var validationErr *dispatcher.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}
	return err.Error()
}
