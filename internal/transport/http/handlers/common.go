package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	httperrors "github.com/Onekamer/OneKamer-Front-Horizon/internal/transport/http/errors"
)

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeForbidden(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusForbidden, httperrors.APIError{Code: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

func parseIntOrDefault(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return value
}

func parseInt64OrZero(raw string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return value
}
