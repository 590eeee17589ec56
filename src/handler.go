package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"crosswarped.com/merlin"
)

// errInvalidRequest marks errors caused by the caller's input.
var errInvalidRequest = errors.New("invalid request")

type PoolRequest struct {
	Original        string `json:"original"`
	Used            string `json:"used"`
	PuzzleID        string `json:"puzzleId"`
	IncludeVariants bool   `json:"includeVariants"`
	MaxVariants     int    `json:"maxVariants"`
}

type PoolResponse struct {
	Success   bool             `json:"success"`
	Remaining map[string]int   `json:"remaining,omitempty"`
	Pool      string           `json:"pool"`
	Overused  string           `json:"overused,omitempty"`
	Variants  []merlin.Variant `json:"variants,omitempty"`
	Error     string           `json:"error,omitempty"`
}

type VariantsRequest struct {
	Pool        string `json:"pool"`
	MaxVariants int    `json:"maxVariants"`
}

type VariantsResponse struct {
	Success  bool             `json:"success"`
	Variants []merlin.Variant `json:"variants"`
	Error    string           `json:"error,omitempty"`
}

type server struct {
	puzzles puzzleSource
	log     *zap.SugaredLogger
}

func invalid(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), errInvalidRequest)
}

func checkMaxVariants(n int) error {
	if n < 0 || n > merlin.MaxVariants {
		return invalid("maxVariants must be between 1 and %d", merlin.MaxVariants)
	}
	return nil
}

func (s *server) executePool(ctx context.Context, req PoolRequest) (PoolResponse, error) {
	if err := checkMaxVariants(req.MaxVariants); err != nil {
		return PoolResponse{}, err
	}

	original := req.Original
	if original == "" && req.PuzzleID != "" {
		if s.puzzles == nil {
			return PoolResponse{}, invalid("puzzle lookup is not configured")
		}
		letters, err := s.puzzles.Letters(ctx, req.PuzzleID)
		if err != nil {
			return PoolResponse{}, errors.Wrap(err, "puzzles.Letters")
		}
		s.log.Infow("Loaded puzzle", "puzzle_id", req.PuzzleID, "letters", len(letters))
		original = letters
	}
	if original == "" {
		return PoolResponse{}, invalid("original or puzzleId must be set")
	}

	pad := merlin.NewScratchPad(req.Used)
	remaining := pad.Remaining(original)

	resp := PoolResponse{
		Success:   true,
		Remaining: make(map[string]int, len(remaining)),
		Pool:      merlin.PoolString(remaining),
		Overused:  string(remaining.Negative()),
	}
	for r, n := range remaining {
		resp.Remaining[string(r)] = n
	}
	if req.IncludeVariants {
		resp.Variants = merlin.GenerateVariantsWithOptions(resp.Pool, merlin.Options{Limit: req.MaxVariants})
	}
	return resp, nil
}

func (s *server) executeVariants(req VariantsRequest) (VariantsResponse, error) {
	if err := checkMaxVariants(req.MaxVariants); err != nil {
		return VariantsResponse{}, err
	}
	return VariantsResponse{
		Success:  true,
		Variants: merlin.GenerateVariantsWithOptions(req.Pool, merlin.Options{Limit: req.MaxVariants}),
	}, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, errPuzzleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

// preamble handles CORS and method checks, and reports whether the request should be
// served.
func (s *server) preamble(w http.ResponseWriter, r *http.Request) bool {
	setCORSHeaders(w)

	// CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return false
	}

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return false
	}
	return true
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorw("Error marshaling response", "error", err)
	}
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Mark(errors.Wrap(err, "Invalid JSON"), errInvalidRequest)
	}
	return nil
}

func (s *server) handlePool(w http.ResponseWriter, r *http.Request) {
	if !s.preamble(w, r) {
		return
	}

	var req PoolRequest
	if err := decode(r, &req); err != nil {
		s.log.Warnw("Error parsing JSON body", "error", err)
		s.writeJSON(w, statusFor(err), PoolResponse{Error: err.Error()})
		return
	}

	resp, err := s.executePool(r.Context(), req)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.log.Errorw("Pool request failed", "puzzle_id", req.PuzzleID, "error", err)
		}
		s.writeJSON(w, status, PoolResponse{Error: err.Error()})
		return
	}

	s.log.Debugw("Pool computed",
		"pool", resp.Pool,
		"overused", resp.Overused,
		"variants", len(resp.Variants),
	)
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleVariants(w http.ResponseWriter, r *http.Request) {
	if !s.preamble(w, r) {
		return
	}

	var req VariantsRequest
	if err := decode(r, &req); err != nil {
		s.log.Warnw("Error parsing JSON body", "error", err)
		s.writeJSON(w, statusFor(err), VariantsResponse{Error: err.Error()})
		return
	}

	resp, err := s.executeVariants(req)
	if err != nil {
		s.writeJSON(w, statusFor(err), VariantsResponse{Error: err.Error()})
		return
	}

	s.log.Debugw("Variants generated", "pool", strings.ToUpper(req.Pool), "count", len(resp.Variants))
	s.writeJSON(w, http.StatusOK, resp)
}
