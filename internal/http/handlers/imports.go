package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	nethttp "net/http"

	domainimports "roster-data-service/internal/domain/imports"
	"roster-data-service/internal/logging"
	"roster-data-service/internal/reconcile"
)

// maxImportBody caps CSV uploads at 16 MiB.
const maxImportBody = 16 << 20

// ImportActuals reconciles an uploaded actuals CSV against the directory.
func (h *Handler) ImportActuals(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.runImport(w, r, domainimports.KindActuals)
}

// ImportOwnership reconciles an uploaded ownership CSV against the directory.
func (h *Handler) ImportOwnership(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.runImport(w, r, domainimports.KindOwnership)
}

func (h *Handler) runImport(w nethttp.ResponseWriter, r *nethttp.Request, kind domainimports.Kind) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	if h.imports == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "imports not configured", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	payload, cleanup, err := importPayload(r)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	defer cleanup()

	report, err := h.imports.Run(kind, payload)
	if err != nil {
		status := nethttp.StatusBadRequest
		message := "unreadable csv payload"
		if errors.Is(err, reconcile.ErrEmptyDirectory) {
			status = nethttp.StatusServiceUnavailable
			message = "player directory is empty"
		}
		logging.Warn(logger, "import batch rejected",
			slog.String(logging.FieldImportKind, string(kind)),
			slog.Any("err", err),
		)
		writeError(w, r, status, message, logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, report, logger)
}

// importPayload resolves the CSV stream from either a multipart "file" part or
// the raw request body.
func importPayload(r *nethttp.Request) (io.Reader, func(), error) {
	noop := func() {}
	mediaType := r.Header.Get("Content-Type")
	if mediaType != "" {
		if parsed, _, err := mime.ParseMediaType(mediaType); err == nil {
			mediaType = parsed
		}
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxImportBody); err != nil {
			return nil, noop, errors.New("invalid multipart payload")
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, noop, errors.New("missing csv file part")
		}
		return file, func() { _ = file.Close() }, nil
	}

	return nethttp.MaxBytesReader(nil, r.Body, maxImportBody), noop, nil
}
