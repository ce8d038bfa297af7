package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PlaceBooking/internal/domain"
	"github.com/m04kA/SMC-PlaceBooking/pkg/types"
)

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgUnauthorized  = "требуется авторизация"
)

// ErrorResponse тело ответа с ошибкой
// Kind и Code заполняются для отказов бизнес-логики
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Code  string `json:"code,omitempty"`
}

// DecodeJSON декодирует тело запроса; неизвестные поля - ошибка
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// RespondJSON пишет JSON ответ с кодом статуса
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError пишет ошибку с произвольным кодом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgUnauthorized
	}
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondRejection пишет отказ бизнес-логики {error, kind, code}
// Возвращает false, если err не является отказом (ответ не записан)
func RespondRejection(w http.ResponseWriter, err error) bool {
	rejection, ok := domain.AsRejection(err)
	if !ok {
		return false
	}
	RespondJSON(w, StatusForKind(err), ErrorResponse{
		Error: rejection.Reason,
		Kind:  domain.KindName(err),
		Code:  string(rejection.Code),
	})
	return true
}

// StatusForKind HTTP статус для вида отказа
func StatusForKind(err error) int {
	switch {
	case errors.Is(err, domain.ErrInputFormat):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusConflict
	case errors.Is(err, domain.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PathID извлекает положительный int64 параметр пути
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid path parameter %s=%q", name, raw)
	}
	return id, nil
}

// ParseDate парсит дату YYYY-MM-DD; ошибка - отказ вида InputFormat
func ParseDate(param, raw string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, domain.Reject(domain.ErrInputFormat, domain.CodeInvalidDate,
			fmt.Sprintf("некорректное значение '%s', ожидается дата YYYY-MM-DD", param))
	}
	return date, nil
}

// ParseTime парсит время HH:MM; ошибка - отказ вида InputFormat
func ParseTime(param, raw string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(raw)
	if err != nil {
		return "", domain.Reject(domain.ErrInputFormat, domain.CodeInvalidTime,
			fmt.Sprintf("некорректное значение '%s', ожидается время HH:MM", param))
	}
	return t, nil
}
