package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/venturebridge/venturebridge/internal/domain"
	authuc "github.com/venturebridge/venturebridge/internal/usecase/auth"
	chatuc "github.com/venturebridge/venturebridge/internal/usecase/chat"
	healthuc "github.com/venturebridge/venturebridge/internal/usecase/health"
	matchinguc "github.com/venturebridge/venturebridge/internal/usecase/matching"
	profileuc "github.com/venturebridge/venturebridge/internal/usecase/profile"
	verificationuc "github.com/venturebridge/venturebridge/internal/usecase/verification"
)

// maxStoreErrorLen bounds the store error text surfaced on 503 responses.
const maxStoreErrorLen = 120

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server is the HTTP API over the matchmaking use cases.
type Server struct {
	profiles      *profileuc.Service
	matching      *matchinguc.Service
	chat          *chatuc.Service
	verifications *verificationuc.Service
	auth          *authuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	profiles *profileuc.Service,
	matching *matchinguc.Service,
	chat *chatuc.Service,
	verifications *verificationuc.Service,
	auth *authuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		profiles:      profiles,
		matching:      matching,
		chat:          chat,
		verifications: verifications,
		auth:          auth,
		health:        health,
		logger:        logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrInvalidID, http.StatusBadRequest),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound),
		sentinelHandler(domain.ErrAuthFailed, http.StatusUnauthorized),
		storeUnavailableHandler,
	}
	return s
}

// Routes registers every endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/", s.handleRoot)
	r.Get("/test", s.handleDiagnostics)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/schema", s.handleSchema)

	r.Route("/api", func(r chi.Router) {
		r.Post("/startups", s.handleCreateStartup)
		r.Get("/startups", s.handleListStartups)
		r.Get("/startups/{id}", s.handleGetStartup)
		r.Post("/investors", s.handleCreateInvestor)
		r.Get("/investors", s.handleListInvestors)
		r.Get("/investors/{id}", s.handleGetInvestor)
		r.Post("/matchmaking", s.handleMatchmaking)
		r.Post("/chat", s.handleSendMessage)
		r.Get("/chat", s.handleConversation)
		r.Post("/verify", s.handleSubmitVerification)
		r.Post("/auth/google", s.handleGoogleAuth)
	})
}

type idResponse struct {
	ID string `json:"id"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Matchmaking backend is running"})
}

func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.health.Diagnose(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Database != "connected" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, report)
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"schemas": domain.Kinds()})
}

func (s *Server) handleCreateStartup(w http.ResponseWriter, r *http.Request) {
	var st domain.Startup
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	id, err := s.profiles.CreateStartup(r.Context(), &st)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (s *Server) handleListStartups(w http.ResponseWriter, r *http.Request) {
	q := domain.StartupQuery{
		Industry: r.URL.Query().Get("industry"),
		Stage:    r.URL.Query().Get("stage"),
		Text:     r.URL.Query().Get("q"),
	}

	startups, err := s.profiles.ListStartups(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if startups == nil {
		startups = []domain.Startup{}
	}
	writeJSON(w, http.StatusOK, startups)
}

func (s *Server) handleGetStartup(w http.ResponseWriter, r *http.Request) {
	st, err := s.profiles.GetStartup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleCreateInvestor(w http.ResponseWriter, r *http.Request) {
	var inv domain.Investor
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	id, err := s.profiles.CreateInvestor(r.Context(), &inv)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (s *Server) handleListInvestors(w http.ResponseWriter, r *http.Request) {
	q := domain.InvestorQuery{
		Domain:    r.URL.Query().Get("domain"),
		Stage:     r.URL.Query().Get("stage"),
		Geography: r.URL.Query().Get("geo"),
	}

	investors, err := s.profiles.ListInvestors(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if investors == nil {
		investors = []domain.Investor{}
	}
	writeJSON(w, http.StatusOK, investors)
}

func (s *Server) handleGetInvestor(w http.ResponseWriter, r *http.Request) {
	inv, err := s.profiles.GetInvestor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

func (s *Server) handleMatchmaking(w http.ResponseWriter, r *http.Request) {
	var pref domain.MatchPreference
	if err := json.NewDecoder(r.Body).Decode(&pref); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	matches, err := s.matching.Match(r.Context(), &pref)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if matches == nil {
		matches = []domain.Match{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var msg domain.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	id, err := s.chat.Send(r.Context(), &msg)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

func (s *Server) handleConversation(w http.ResponseWriter, r *http.Request) {
	a := r.URL.Query().Get("a")
	b := r.URL.Query().Get("b")

	msgs, err := s.chat.Conversation(r.Context(), a, b)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if msgs == nil {
		msgs = []domain.Message{}
	}
	writeJSON(w, http.StatusOK, msgs)
}

func (s *Server) handleSubmitVerification(w http.ResponseWriter, r *http.Request) {
	var v domain.Verification
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	id, err := s.verifications.Submit(r.Context(), &v)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, idResponse{ID: id})
}

type googleAuthRequest struct {
	IDToken string `json:"id_token"`
}

type googleAuthResponse struct {
	OK      bool                 `json:"ok"`
	Profile domain.GoogleProfile `json:"profile"`
}

func (s *Server) handleGoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}

	profile, err := s.auth.VerifyGoogleToken(r.Context(), req.IDToken)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, googleAuthResponse{OK: true, Profile: profile})
}

// errorResponse is the uniform error body. Fields is present only for
// validation failures.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, fields []domain.FieldError) {
	writeJSON(w, status, errorResponse{Error: message, Fields: fields})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, sentinel.Error(), nil)
		return true
	}
}

// validationHandler surfaces field-level causes on validation failures.
func validationHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrValidation) {
		return false
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, domain.ErrValidation.Error(), verr.Fields)
		return true
	}
	writeError(w, http.StatusBadRequest, domain.ErrValidation.Error(), nil)
	return true
}

// storeUnavailableHandler maps connectivity failures to 503 with a bounded
// message so the client sees the outage class without driver internals.
func storeUnavailableHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrStoreUnavailable) && !errors.Is(err, domain.ErrStoreNotConfigured) {
		return false
	}
	msg := err.Error()
	if len(msg) > maxStoreErrorLen {
		msg = msg[:maxStoreErrorLen]
	}
	writeError(w, http.StatusServiceUnavailable, msg, nil)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error", nil)
}
