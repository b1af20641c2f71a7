package transport

import (
	"encoding/json"
	"net/http"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/utils/errors"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	if cerr, ok := err.(errors.CustomError); ok {
		writeJSON(w, cerr.ErrorHTTPCode(), Response{
			Success: false,
			Code:    cerr.ErrorCode(),
			Message: cerr.Error(),
		})
		return
	}
	internal := errors.SetCustomError(constant.ErrInternal)
	writeJSON(w, internal.ErrorHTTPCode(), Response{
		Success: false,
		Code:    internal.ErrorCode(),
		Message: internal.Error(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
