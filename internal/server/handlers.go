package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	barcodegen "github.com/ericlevine/barcodegen"
	"github.com/ericlevine/barcodegen/internal/batch"
)

// EncodeRequest is the body of POST /encode and one job of POST /batch.
type EncodeRequest struct {
	Symbology string `json:"symbology"`
	Payload   string `json:"payload"`
	Format    string `json:"format,omitempty"`
}

// EncodeResponse describes one generated image.
type EncodeResponse struct {
	DataURI  string `json:"data_uri"`
	MIMEType string `json:"mime_type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// BatchRequest is the body of POST /batch.
type BatchRequest struct {
	BatchID     string          `json:"batch_id,omitempty"`
	RequestedBy string          `json:"requested_by,omitempty"`
	Jobs        []EncodeRequest `json:"jobs"`
}

// BatchResult is the outcome of one job.
type BatchResult struct {
	Index int `json:"index"`
	*EncodeResponse
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// BatchResponse is the body returned by POST /batch.
type BatchResponse struct {
	BatchID   string        `json:"batch_id"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Results   []BatchResult `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// toRequest parses the symbology and format names of r.
func (r EncodeRequest) toRequest() (barcodegen.Request, error) {
	s, err := barcodegen.ParseSymbology(r.Symbology)
	if err != nil {
		return barcodegen.Request{}, err
	}
	f, err := barcodegen.ParseOutputFormat(r.Format)
	if err != nil {
		return barcodegen.Request{}, err
	}
	return barcodegen.Request{Symbology: s, Payload: r.Payload, Format: f}, nil
}

func newEncodeResponse(img *barcodegen.Image) *EncodeResponse {
	return &EncodeResponse{
		DataURI:  img.DataURI(),
		MIMEType: img.MIMEType(),
		Width:    img.Width,
		Height:   img.Height,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var body EncodeRequest
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := body.toRequest()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	img, err := s.generator.EncodeRequest(req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newEncodeResponse(img))
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var body BatchRequest
	if err := decodeBody(w, r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	if body.BatchID == "" {
		body.BatchID = uuid.NewString()
	}

	// Jobs with unknown names fail on their own without reaching the
	// processor.
	resp := BatchResponse{BatchID: body.BatchID, Results: make([]BatchResult, len(body.Jobs))}
	var reqs []barcodegen.Request
	var slots []int
	for i, job := range body.Jobs {
		resp.Results[i].Index = i
		req, err := job.toRequest()
		if err != nil {
			resp.Results[i].Error, resp.Results[i].Kind = err.Error(), barcodegen.ErrorKind(err)
			continue
		}
		reqs = append(reqs, req)
		slots = append(slots, i)
	}

	s.logger.Info("batch received",
		"request_id", RequestID(r.Context()),
		"batch_id", body.BatchID,
		"requested_by", body.RequestedBy,
		"jobs", len(body.Jobs),
	)
	results, err := s.processor.Process(r.Context(), reqs)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	for j, res := range results {
		out := &resp.Results[slots[j]]
		if res.Err != nil {
			out.Error, out.Kind = res.Err.Error(), barcodegen.ErrorKind(res.Err)
			continue
		}
		out.EncodeResponse = newEncodeResponse(res.Image)
	}
	for _, res := range resp.Results {
		if res.EncodeResponse != nil {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// errBadRequest marks request bodies that are not valid JSON.
var errBadRequest = errors.New("malformed request body")

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// writeError maps err to a status code: caller mistakes are 400, anything
// else 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	kind := barcodegen.ErrorKind(err)
	switch {
	case errors.Is(err, errBadRequest):
		status, kind = http.StatusBadRequest, "BadRequest"
	case barcodegen.IsInputError(err):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", RequestID(r.Context()), "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

var _ batch.Encoder = (*barcodegen.Generator)(nil)
