package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/swingimport/internal/core"
)

// multipartMemory is how much of a multipart body is held in memory before
// spilling to temp files.
const multipartMemory = 4 << 20

// multipartOverhead allows for boundaries and part headers on top of the
// file itself.
const multipartOverhead = 64 << 10

var errNoFile = errors.New("no file provided")

// ParseResponse is the JSON body returned for a parsed export.
type ParseResponse struct {
	ParseID     string      `json:"parseId"`
	FileName    string      `json:"fileName"`
	Shape       core.Shape  `json:"shape"`
	TotalRows   int         `json:"totalRows"`
	DroppedRows int         `json:"droppedRows"`
	DurationMS  int64       `json:"durationMs"`
	Analysis    core.Record `json:"analysis"`
}

// ShapeInfo describes one registered shape.
type ShapeInfo struct {
	Shape       core.Shape `json:"shape"`
	Priority    int        `json:"priority"`
	Description string     `json:"description"`
}

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status  string                  `json:"status"`
	Shapes  int                     `json:"shapes"`
	Parsing core.ParseLimiterStatus `json:"parsing"`
}

// handleParse accepts a multipart upload in the "file" field and returns the
// mapped analysis record.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Parse.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, r, fmt.Errorf("%w: upload exceeds %d bytes", core.ErrFileTooLarge, maxSize), http.StatusRequestEntityTooLarge)
			return
		}
		s.respondError(w, r, fmt.Errorf("%w: %v", errNoFile, err), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, r, errNoFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := s.service.Parse(r.Context(), header.Filename, file)
	if err != nil {
		s.respondError(w, r, err, statusFor(err))
		return
	}

	writeJSON(w, r, http.StatusOK, toParseResponse(result))
}

// handleShapes lists registered shapes in classification order.
func (s *Server) handleShapes(w http.ResponseWriter, r *http.Request) {
	defs := core.Definitions()
	shapes := make([]ShapeInfo, 0, len(defs))
	for _, def := range defs {
		shapes = append(shapes, ShapeInfo{
			Shape:       def.Shape,
			Priority:    def.Priority,
			Description: def.Description,
		})
	}
	writeJSON(w, r, http.StatusOK, shapes)
}

// handleHealth reports liveness along with parse slot usage.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Shapes:  core.ShapeCount(),
		Parsing: s.service.LimiterStatus(),
	}
	status := http.StatusOK
	if resp.Shapes == 0 {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, r, status, resp)
}

func toParseResponse(res *core.Result) ParseResponse {
	return ParseResponse{
		ParseID:     res.ParseID,
		FileName:    res.FileName,
		Shape:       res.Shape,
		TotalRows:   res.TotalRows,
		DroppedRows: res.DroppedRows,
		DurationMS:  res.Duration.Milliseconds(),
		Analysis:    res.Record,
	}
}
