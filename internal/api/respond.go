// SPDX-License-Identifier: MIT

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// readJSON reads the request body and checks that it is well-formed JSON.
// An empty body is returned as nil when allowEmpty is set.
func readJSON(w http.ResponseWriter, r *http.Request, allowEmpty bool) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if allowEmpty && len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("request body is not valid JSON: %w", ErrMalformedBody)
	}

	return data, nil
}

// writeJSON encodes v with the given status. Encoding happens before the
// header is written, so a value that cannot be encoded becomes a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.cfg.logger.Error("encode response", slog.Any("err", err))
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(errorBody{Detail: "internal server error", Kind: "internal"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.cfg.logger.Debug("write response", slog.Any("err", err))
	}
}

// writeError maps err onto a status and the error body, and logs the reason.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		s.cfg.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path), slog.Any("err", err))
	} else {
		s.cfg.logger.DebugContext(r.Context(), "request rejected",
			slog.String("path", r.URL.Path), slog.String("kind", body.Kind), slog.String("detail", body.Detail))
	}
	s.writeJSON(w, status, body)
}
