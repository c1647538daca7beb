// Package server exposes the renderer over HTTP: POST a render request,
// receive the finished frame as PNG.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/publish"
	"github.com/hmartin/go-shader-tracer/pkg/renderer"
	"github.com/hmartin/go-shader-tracer/pkg/scene"
)

// Server handles web requests for the renderer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server on the given port
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = renderer.NewDefaultLogger()
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest is the JSON body of a render call. Zero fields take the
// documented defaults.
type RenderRequest struct {
	Scene  string `json:"scene"`  // scene name, default "cornell"
	Width  int    `json:"width"`  // image width, default 400
	Height int    `json:"height"` // image height, default 400
	Passes int    `json:"passes"` // accumulation passes, default 16
}

// Handler returns the HTTP handler with all API routes registered
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Printf("Starting web server on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders one frame synchronously and returns it as PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}

	req, err := parseRenderRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.New(req.Scene)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config := renderer.DefaultConfig(req.Width, req.Height)
	config.Passes = req.Passes

	cameraConfig := sceneObj.Camera
	cameraConfig.AspectRatio = float64(req.Width) / float64(req.Height)
	camera := renderer.NewCamera(cameraConfig)

	raytracer := renderer.NewRaytracer(sceneObj.World, camera, config)
	progressive := renderer.NewProgressiveRenderer(raytracer, s.logger)

	// Request context cancels the render when the client disconnects
	img, stats, err := progressive.Render(r.Context(), nil)
	if err != nil {
		s.logger.Printf("Render of %s aborted: %v\n", req.Scene, err)
		return
	}

	data, err := publish.EncodePNG(img)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.logger.Printf("Rendered %s %dx%d, %d samples\n",
		req.Scene, req.Width, req.Height, stats.TotalSamples)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Total-Samples", fmt.Sprintf("%d", stats.TotalSamples))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// parseRenderRequest decodes the JSON body, applies defaults and
// validates the ranges
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, fmt.Errorf("invalid request body: %w", err)
		}
	}

	if req.Scene == "" {
		req.Scene = "cornell"
	}

	var err error
	if req.Width, err = defaultIntParam("width", req.Width, 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = defaultIntParam("height", req.Height, 400, 16, 2000); err != nil {
		return nil, err
	}
	if req.Passes, err = defaultIntParam("passes", req.Passes, 16, 1, 10000); err != nil {
		return nil, err
	}
	return req, nil
}

// defaultIntParam substitutes the default for a zero value and validates
// the range
func defaultIntParam(key string, value, defaultValue, min, max int) (int, error) {
	if value == 0 {
		return defaultValue, nil
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, value)
	}
	return value, nil
}
