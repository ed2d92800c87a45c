// Package server serves the calculator as a local web page and a small JSON
// API. Every request recomputes from the raw form state; nothing rendered is
// fed back into a calculation.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexiusacademia/stringlift/internal/catalog"
	"github.com/alexiusacademia/stringlift/internal/diagram"
	"github.com/alexiusacademia/stringlift/internal/form"
	"github.com/alexiusacademia/stringlift/internal/lift"
	"github.com/alexiusacademia/stringlift/internal/store"
	"github.com/alexiusacademia/stringlift/internal/units"
)

const maxBodyBytes = 64 << 10

// Server holds the handlers' dependencies.
type Server struct {
	store      *store.Store
	logger     *slog.Logger
	customUnit units.LengthUnit
	digits     int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCustomUnit sets the unit custom diameters are entered in.
func WithCustomUnit(u units.LengthUnit) Option {
	return func(s *Server) { s.customUnit = u }
}

// WithDigits sets the decimals shown for lift values.
func WithDigits(d int) Option {
	return func(s *Server) { s.digits = d }
}

// New returns a server persisting form state in st.
func New(st *store.Store, opts ...Option) *Server {
	s := &Server{
		store:      st,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		customUnit: units.Inch,
		digits:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("GET /schematic.svg", s.handleSchematic)
	mux.HandleFunc("POST /api/lift", s.handleLift)
	mux.HandleFunc("GET /api/state", s.handleGetState)
	mux.HandleFunc("PUT /api/state", s.handlePutState)
	mux.HandleFunc("DELETE /api/state", s.handleDeleteState)
	mux.HandleFunc("POST /api/convert-pressure", s.handleConvertPressure)
	mux.HandleFunc("GET /api/sizes", s.handleSizes)
	return s.logRequests(mux)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// liftResponse is the JSON shape of one calculation.
type liftResponse struct {
	Result      *lift.Result  `json:"result,omitempty"`
	Failure     *form.Failure `json:"failure,omitempty"`
	Lift        string        `json:"lift"`
	Pressure    string        `json:"pressure"`
	Breakdown   string        `json:"breakdown,omitempty"`
	PipePresent bool          `json:"pipe_present"`
}

func (s *Server) calculate(st form.State) (*form.Outcome, liftResponse) {
	out := form.Calculate(st, form.WithCustomUnit(s.customUnit))
	return out, liftResponse{
		Result:      out.Result,
		Failure:     out.Failure,
		Lift:        out.LiftDisplay(s.digits),
		Pressure:    out.PressureDisplay(),
		Breakdown:   out.Breakdown(s.digits),
		PipePresent: form.PipePresent(st, s.customUnit),
	}
}

func (s *Server) handleLift(w http.ResponseWriter, r *http.Request) {
	var st form.State
	if !s.decode(w, r, &st) {
		return
	}
	st = s.incoming(st)
	s.save(st)

	out, resp := s.calculate(st)
	status := http.StatusOK
	if out.Failure != nil {
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, resp)
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	st := s.loadState()
	s.writeJSON(w, http.StatusOK, st)
}

func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	var st form.State
	if !s.decode(w, r, &st) {
		return
	}
	st = s.incoming(st)
	if err := s.store.Save(st); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteState(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type convertRequest struct {
	Pressure string `json:"pressure"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type convertResponse struct {
	Pressure string `json:"pressure"`
	Unit     string `json:"unit"`
}

func (s *Server) handleConvertPressure(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !s.decode(w, r, &req) {
		return
	}
	from, err := units.ParsePressureUnit(req.From)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := units.ParsePressureUnit(req.To)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.writeJSON(w, http.StatusOK, convertResponse{
		Pressure: form.ConvertPressureField(req.Pressure, from, to),
		Unit:     to.String(),
	})
}

type sizeOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (s *Server) handleSizes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]sizeOption{
		"outer": sizeOptions(catalog.OuterSizes),
		"inner": sizeOptions(catalog.InnerSizes),
	})
}

func sizeOptions(sizes []catalog.Size) []sizeOption {
	out := make([]sizeOption, len(sizes))
	for i, sz := range sizes {
		out[i] = sizeOption{Name: sz.Name, Label: sz.Label(), Value: sz.Value()}
	}
	return out
}

func (s *Server) handleSchematic(w http.ResponseWriter, r *http.Request) {
	st := s.loadState()
	out, _ := s.calculate(st)

	data, ok := out.DiagramData(s.digits)
	if !ok {
		// keep the layout, show dashes
		data = diagram.WellDiagramData{
			InnerDiameter: boolToDiameter(form.PipePresent(st, s.customUnit)),
			Pressure:      out.PressureDisplay(),
			Lift:          out.LiftDisplay(s.digits),
		}
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	diagram.WriteWellSVG(w, data)
}

func boolToDiameter(pipe bool) float64 {
	if pipe {
		return 1
	}
	return 0
}

// loadState returns the remembered form in the server's custom unit.
func (s *Server) loadState() form.State {
	st, err := s.store.LoadOrDefault()
	if err != nil {
		s.logger.Warn("load state failed, using defaults", "err", err)
	}
	return st.WithCustomUnit(s.customUnit)
}

// incoming normalizes a submitted form. Custom fields without a unit were
// typed in the server's custom unit.
func (s *Server) incoming(st form.State) form.State {
	if st.CustomUnit == "" {
		st.CustomUnit = s.customUnit.String()
	}
	return st.WithCustomUnit(s.customUnit)
}

func (s *Server) save(st form.State) {
	if err := s.store.Save(st); err != nil {
		s.logger.Warn("save state failed", "err", err)
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
