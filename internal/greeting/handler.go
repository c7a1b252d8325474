package greeting

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lueurxax/greeter/internal/core/errors"
)

// Query parameter and header constants.
const (
	paramID           = "id"
	paramFrom         = "from"
	paramTo           = "to"
	headerContentType = "Content-Type"
	headerRequestID   = "X-Request-ID"
)

// Log field constants.
const logFieldRequestID = "request_id"

// Response is the JSON body returned by Handler.
type Response struct {
	Greeting  string `json:"greeting,omitempty"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id"`
}

// Handler serves GET /greet?id=1&from=en&to=fr. Without from and to the
// translator's default pair is used.
type Handler struct {
	svc    *Service
	logger *zerolog.Logger
}

// NewHandler creates a greeting HTTP handler.
func NewHandler(svc *Service, logger *zerolog.Logger) *Handler {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Handler{svc: svc, logger: logger}
}

// ServeHTTP handles a single greeting request.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(headerRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	w.Header().Set(headerRequestID, requestID)

	if r.Method != http.MethodGet {
		h.write(w, http.StatusMethodNotAllowed, Response{Error: "method not allowed", RequestID: requestID})

		return
	}

	q := r.URL.Query()

	id, err := strconv.Atoi(q.Get(paramID))
	if err != nil {
		h.write(w, http.StatusBadRequest, Response{Error: "id must be an integer", RequestID: requestID})

		return
	}

	from, to := q.Get(paramFrom), q.Get(paramTo)

	var text string

	if from == "" && to == "" {
		text, err = h.svc.GreetDefault(r.Context(), id)
	} else {
		text, err = h.svc.Greet(r.Context(), id, from, to)
	}

	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, errors.ErrInvalidLanguage) {
			code = http.StatusBadRequest
		}

		h.logger.Error().Err(err).Str(logFieldRequestID, requestID).Int("id", id).Msg("greeting failed")
		h.write(w, code, Response{Error: err.Error(), RequestID: requestID})

		return
	}

	h.write(w, http.StatusOK, Response{Greeting: text, RequestID: requestID})
}

func (h *Handler) write(w http.ResponseWriter, code int, body Response) {
	w.Header().Set(headerContentType, "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn().Err(err).Msg("failed to write greeting response")
	}
}
