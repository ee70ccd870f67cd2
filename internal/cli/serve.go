package cli

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geonio"
	"github.com/geoncore/geoncore/pkg/graph"
	"github.com/geoncore/geoncore/pkg/graph/tgf"
	"github.com/geoncore/geoncore/pkg/polygonize"
	"github.com/geoncore/geoncore/pkg/wkt"
)

func newStringReader(s string) *strings.Reader { return strings.NewReader(s) }

func readTGFString(s string) (*graph.Graph, error) {
	return tgf.Read(strings.NewReader(s), nil)
}

// server exposes the node and polygonize operations over HTTP for
// callers that would rather not shell out. The geometry core
// is entirely synchronous and holds no shared mutable state across
// calls except what a single request builds itself, so the only
// concurrency concern is serializing access to the process-wide logger;
// mu exists to keep request handling simple to reason about rather than
// because the core needs it.
type server struct {
	mu   sync.Mutex
	opts *rootOptions
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve node and polygonize over HTTP.",
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			srv := &server{opts: opts}

			r := chi.NewRouter()
			r.Use(middleware.RequestID)
			r.Use(middleware.Recoverer)
			r.Post("/node", srv.handleNode)
			r.Post("/polygonize", srv.handlePolygonize)

			logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, r)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}

type nodeRequest struct {
	WKT []string `json:"wkt"`
}

type nodeResponse struct {
	WKT []string `json:"wkt"`
}

func (s *server) handleNode(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req nodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg, err := s.opts.resolve()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var geoms []geom.Geometry
	for _, line := range req.WKT {
		g, err := geonio.ReadWKT(newStringReader(line), nil)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		geoms = append(geoms, g...)
	}

	noded, err := cfg.Noder().Node(extractSegments(geoms))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := nodeResponse{WKT: make([]string, len(noded))}
	for i, seg := range noded {
		resp.WKT[i] = wkt.Write(geom.NewLineString(geom.CoordinateSequence(seg)))
	}
	writeJSON(w, resp)
}

type polygonizeRequest struct {
	TGF string `json:"tgf"`
}

type polygonizeResponse struct {
	WKT     []string `json:"wkt"`
	Dangles int      `json:"dangles"`
}

func (s *server) handlePolygonize(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req polygonizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var g *graph.Graph
	var readErr error
	g, readErr = readTGFString(req.TGF)
	if readErr != nil {
		http.Error(w, readErr.Error(), http.StatusBadRequest)
		return
	}

	res, err := polygonize.Polygonize(g)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := polygonizeResponse{Dangles: len(res.Dangles)}
	for _, p := range res.Polygons {
		resp.WKT = append(resp.WKT, wkt.Write(p))
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
