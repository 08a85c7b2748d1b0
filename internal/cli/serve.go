package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/jsoncanvas/pkg/cache"
	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	"github.com/matzehuels/jsoncanvas/pkg/canvasjson"
)

// maxBodyBytes caps uploaded canvas documents at 8 MiB.
const maxBodyBytes = 8 << 20

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string        // listen address
	noCache  bool          // disable the result cache
	cacheTTL time.Duration // how long cached results stay valid
}

// newServeCmd creates the serve command, a small HTTP API so other
// tools can validate canvases and resolve nesting without linking Go.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:     ":8347",
		cacheTTL: time.Hour,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the canvas validation API over HTTP",
		Long: `Serve starts an HTTP API for canvas documents:

  POST /api/validate   validate a canvas document (request body)
  POST /api/nesting    resolve group nesting (optional ?group=ID)
  GET  /healthz        liveness probe

Results are cached by document content hash.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "result cache TTL")
	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := newStore(opts.noCache)
	if err != nil {
		logger.Warnf("Cache unavailable, continuing without: %v", err)
		store = cache.NewNullCache()
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(logger, store, opts.cacheTTL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Listening on %s", opts.addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}

// newStore creates the result cache backing the API.
func newStore(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

func newRouter(logger *charmlog.Logger, store cache.Cache, ttl time.Duration) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/validate", handleValidate(logger, store, ttl))
	r.Post("/api/nesting", handleNesting(logger, store, ttl))
	return r
}

// =============================================================================
// Responses
// =============================================================================

// apiError is the machine-readable error shape of the API.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// validateResponse is returned by POST /api/validate.
type validateResponse struct {
	Valid bool      `json:"valid"`
	Nodes int       `json:"nodes"`
	Edges int       `json:"edges"`
	Error *apiError `json:"error,omitempty"`
}

// nestingJSON is the wire form of a resolved group tree.
type nestingJSON struct {
	ID       string        `json:"id"`
	Label    string        `json:"label,omitempty"`
	Children []string      `json:"children"`
	Groups   []nestingJSON `json:"groups,omitempty"`
}

// nestingResponse is returned by POST /api/nesting.
type nestingResponse struct {
	Groups []nestingJSON `json:"groups"`
	Error  *apiError     `json:"error,omitempty"`
}

// errorCode maps a model error onto its API code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, canvas.ErrInvalidJSON):
		return "INVALID_JSON"
	case errors.Is(err, canvas.ErrInvalidNodeType):
		return "INVALID_NODE_TYPE"
	case errors.Is(err, canvas.ErrInvalidNodeAttribute):
		return "INVALID_NODE_ATTRIBUTE"
	case errors.Is(err, canvas.ErrInvalidEdgeAttribute):
		return "INVALID_EDGE_ATTRIBUTE"
	case errors.Is(err, canvas.ErrInvalidColorValue):
		return "INVALID_COLOR_VALUE"
	case errors.Is(err, canvas.ErrNodeIDConflict):
		return "NODE_ID_CONFLICT"
	case errors.Is(err, canvas.ErrEdgeIDConflict):
		return "EDGE_ID_CONFLICT"
	case errors.Is(err, canvas.ErrNodeNotFound):
		return "NODE_NOT_FOUND"
	case errors.Is(err, canvas.ErrOrphanEdge):
		return "ORPHAN_EDGE"
	default:
		return "INVALID_DOCUMENT"
	}
}

// =============================================================================
// Handlers
// =============================================================================

func handleValidate(logger *charmlog.Logger, store cache.Cache, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			return
		}

		key := cache.Key("validate", body)
		if cached, ok, _ := store.Get(r.Context(), key); ok {
			logger.Debugf("validate: cache hit (%d bytes)", len(body))
			var resp validateResponse
			if json.Unmarshal(cached, &resp) == nil {
				writeJSON(w, statusFor(resp.Error), resp)
				return
			}
		}

		resp := validateDocument(body)
		if data, err := json.Marshal(resp); err == nil {
			_ = store.Set(r.Context(), key, data, ttl)
		}
		writeJSON(w, statusFor(resp.Error), resp)
	}
}

func validateDocument(body []byte) validateResponse {
	c, err := canvasjson.Unmarshal(body)
	if err != nil {
		return validateResponse{Error: &apiError{Code: errorCode(err), Message: err.Error()}}
	}
	resp := validateResponse{Nodes: c.NodeCount(), Edges: c.EdgeCount()}
	if err := c.Validate(); err != nil {
		resp.Error = &apiError{Code: errorCode(err), Message: err.Error()}
		return resp
	}
	resp.Valid = true
	return resp
}

func handleNesting(logger *charmlog.Logger, store cache.Cache, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r)
		if err != nil {
			return
		}
		group := r.URL.Query().Get("group")

		key := cache.Key("nesting:"+group, body)
		if cached, ok, _ := store.Get(r.Context(), key); ok {
			logger.Debugf("nesting: cache hit (%d bytes)", len(body))
			var resp nestingResponse
			if json.Unmarshal(cached, &resp) == nil {
				writeJSON(w, statusFor(resp.Error), resp)
				return
			}
		}

		resp := resolveDocument(body, group)
		if data, err := json.Marshal(resp); err == nil {
			_ = store.Set(r.Context(), key, data, ttl)
		}
		writeJSON(w, statusFor(resp.Error), resp)
	}
}

func resolveDocument(body []byte, group string) nestingResponse {
	c, err := canvasjson.Unmarshal(body)
	if err != nil {
		return nestingResponse{Error: &apiError{Code: errorCode(err), Message: err.Error()}}
	}

	var forest []*canvas.Nesting
	if group != "" {
		nest, err := c.Nesting(group)
		if err != nil {
			return nestingResponse{Error: &apiError{Code: errorCode(err), Message: err.Error()}}
		}
		forest = []*canvas.Nesting{nest}
	} else {
		forest = c.NestAll()
	}

	resp := nestingResponse{Groups: make([]nestingJSON, len(forest))}
	for i, nest := range forest {
		resp.Groups[i] = nestingToJSON(nest)
	}
	return resp
}

func nestingToJSON(nest *canvas.Nesting) nestingJSON {
	out := nestingJSON{
		ID:       nest.Group.ID,
		Label:    nest.Group.Label,
		Children: make([]string, len(nest.Children)),
	}
	for i, c := range nest.Children {
		out.Children[i] = c.ID
	}
	for _, sub := range nest.Subgroups {
		out.Groups = append(out.Groups, nestingToJSON(sub))
	}
	return out
}

// =============================================================================
// Helpers
// =============================================================================

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, validateResponse{
			Error: &apiError{Code: "BODY_TOO_LARGE", Message: "request body exceeds limit"},
		})
		return nil, err
	}
	return body, nil
}

func statusFor(e *apiError) int {
	if e == nil {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
