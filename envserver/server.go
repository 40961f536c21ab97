package envserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bluele/gcache"
	"github.com/mtsuhr/coffee-shop-env/environment"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type Config struct {
	Environment environment.Config
	Logger      *zap.SugaredLogger
	// CacheSize bounds the number of rendered documents kept in memory.
	CacheSize int
	// BuildID is used in ETags; a new ULID is generated when empty.
	BuildID string
}

type Server struct {
	buildID   string
	logger    *zap.SugaredLogger
	env       environment.Config
	documents gcache.Cache
}

func NewServer(config Config) (*Server, error) {
	if err := config.Environment.Validate(); err != nil {
		return nil, err
	}

	size := config.CacheSize
	if size <= 0 {
		size = len(environment.Formats())
	}
	buildID := config.BuildID
	if buildID == "" {
		buildID = ulid.Make().String()
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := &Server{
		buildID: buildID,
		logger:  logger,
		env:     config.Environment,
	}
	s.documents = gcache.New(size).LRU().LoaderFunc(s.render).Build()

	return s, nil
}

func (s *Server) BuildID() string {
	return s.buildID
}

func (s *Server) render(key interface{}) (interface{}, error) {
	var buf bytes.Buffer
	if err := environment.Encode(&buf, s.env, key.(environment.Format)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Server) sendError(w http.ResponseWriter, statusCode int, err string, errDesc string) {
	data, _ := json.Marshal(Error{
		Error:            err,
		ErrorDescription: errDesc,
	})
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, format environment.Format) {
	etag := `"` + s.buildID + "-" + string(format) + `"`

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("ETag", etag)

	doc, err := s.documents.Get(format)
	if err != nil {
		s.logger.Errorf("unable to render environment as %s: %s", format, err)
		s.sendError(w, http.StatusInternalServerError, "server_error", "unable to render environment")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	http.ServeContent(w, r, "", time.Time{}, bytes.NewReader(doc.([]byte)))
}

func (s *Server) EnvironmentJSON(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, environment.FormatJSON)
}

func (s *Server) EnvironmentYAML(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, environment.FormatYAML)
}

func (s *Server) EnvironmentJS(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, environment.FormatJS)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.sendError(w, http.StatusNotFound, "not_found", "resource not found")
}
