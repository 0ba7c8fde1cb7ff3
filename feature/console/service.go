package console

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"

	"console-server/core/gateway"

	"go.uber.org/zap"
)

// headClose marks the injection point in the entry document.
const headClose = "</head>"

// GlobalName is the browser global the console reads at startup.
const GlobalName = "__GATEWAY_CONFIG__"

// Service owns the asset store and the one-time injected entry document.
type Service struct {
	store  *Store
	cfg    gateway.Resolved
	logger *zap.Logger

	// entry holds the injected document once computed. Two early
	// concurrent requests may both compute it; the transform is pure, so
	// either identical result may win the store.
	entry atomic.Pointer[[]byte]
}

// NewService creates a console service for the given store and resolved
// gateway configuration.
func NewService(store *Store, cfg gateway.Resolved, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// payload is the config object embedded into the page. Exactly these two
// fields, nothing more.
type payload struct {
	Endpoint string `json:"endpoint"`
	Token    string `json:"token"`
}

// Inject embeds the gateway config into the entry document, immediately
// before the head close tag. Exactly one substitution is performed; the
// rest of the document is untouched.
func Inject(doc []byte, cfg gateway.Resolved) ([]byte, error) {
	data, err := json.Marshal(payload{Endpoint: cfg.Endpoint, Token: cfg.Token})
	if err != nil {
		return nil, fmt.Errorf("encoding console config: %w", err)
	}

	script := "<script>window." + GlobalName + " = " + string(data) + ";</script>"
	html := strings.Replace(string(doc), headClose, script+headClose, 1)
	return []byte(html), nil
}

// Entry returns the injected entry document, computing it on first use
// and reusing the cached copy afterwards. A failed read is returned to
// the caller and never cached.
func (s *Service) Entry() ([]byte, error) {
	if p := s.entry.Load(); p != nil {
		return *p, nil
	}

	raw, err := s.store.ReadEntry()
	if err != nil {
		return nil, err
	}
	doc, err := Inject(raw, s.cfg)
	if err != nil {
		return nil, err
	}

	s.entry.Store(&doc)
	return doc, nil
}

// Asset returns the raw bytes for a request path, or ErrNotFound.
func (s *Service) Asset(reqPath string) ([]byte, error) {
	return s.store.Read(reqPath)
}
