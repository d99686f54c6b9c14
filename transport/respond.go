package transport

import (
	"encoding/json"
	"net/http"

	"github.com/houzze/houzze-api/constant"
	"github.com/houzze/houzze-api/utils/errors"
)

// ErrorBody is the JSON error envelope. Errors carries the full violation list
// for validation failures.
type ErrorBody struct {
	Status  string   `json:"status"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

type SuccessBody struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, SuccessBody{Status: "success", Data: data})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, SuccessBody{Status: "success", Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	ce, ok := err.(errors.CustomError)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, ErrorBody{
			Status:  "error",
			Code:    constant.ErrorTypeCode[constant.ErrInternal],
			Message: constant.ErrorTypeMessage[constant.ErrInternal],
		})
		return
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorBody{
		Status:  "error",
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Errors:  ce.ErrorMessages(),
	})
}
