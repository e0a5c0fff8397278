package assets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-loader/core/asset"
	"asset-loader/core/format"
	"asset-loader/core/loader"
	"asset-loader/core/pool"
	"asset-loader/core/progress"
	"asset-loader/core/source"
	"asset-loader/core/utils"

	"go.uber.org/zap"
)

var (
	// ErrInvalidRequest is returned for malformed load requests.
	ErrInvalidRequest = errors.New("invalid load request")
	// ErrNotFound is returned for unknown handle ids.
	ErrNotFound = errors.New("handle not found")
)

// Service loads documents through the shared loader.
type Service struct {
	loader    *loader.Loader
	spawner   pool.Spawner
	documents *asset.Storage[Document]
	progress  *progress.Counter
	logger    *zap.Logger
}

// NewService creates a document service. spawner runs hot reloads.
func NewService(l *loader.Loader, spawner pool.Spawner, logger *zap.Logger) *Service {
	return &Service{
		loader:    l,
		spawner:   spawner,
		documents: asset.NewStorage[Document]("Document", logger),
		progress:  progress.NewCounter(),
		logger:    logger,
	}
}

// Load queues a document and returns its handle.
func (s *Service) Load(req LoadRequest) (*LoadResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if !s.loader.HasSource(req.Source) {
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidRequest, req.Source)
	}

	kind := req.Format
	if kind == "" {
		kind = utils.FormatFromExtension(req.Name)
	}

	var h asset.Handle[Document]
	switch kind {
	case "json":
		h = loader.LoadFrom(s.loader, req.Name, format.NewJSON[Document](), format.JSONOptions{}, req.Source, s.progress, s.documents)
	case "yaml":
		h = loader.LoadFrom(s.loader, req.Name, format.NewYAML[Document](), format.YAMLOptions{}, req.Source, s.progress, s.documents)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidRequest, kind)
	}

	state, _ := s.documents.State(h)
	return &LoadResponse{Handle: h.ID(), State: state.String()}, nil
}

// Get reports the state of a handle.
func (s *Service) Get(id uint64) (*DocumentStatus, error) {
	h, ok := s.documents.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	state, err := s.documents.State(h)
	status := &DocumentStatus{Handle: id, State: state.String()}
	if err != nil {
		status.Error = err.Error()
	}
	if data, ok := s.documents.Get(h); ok {
		status.Data = data
	}
	return status, nil
}

// Status summarises loading progress.
func (s *Service) Status() Summary {
	summary := Summary{
		Completion: s.progress.Complete().String(),
		Queued:     s.progress.NumAssets(),
		Finished:   s.progress.NumFinished(),
		Failed:     s.progress.NumFailed(),
		Cached:     s.loader.Cached(),
		HotReload:  s.loader.HotReload(),
	}
	for _, id := range s.loader.Sources() {
		summary.Sources = append(summary.Sources, source.DisplayName(id))
	}
	for _, err := range s.progress.Errors() {
		summary.Errors = append(summary.Errors, err.Error())
	}
	return summary
}

// SetHotReload toggles reload records for subsequent loads.
func (s *Service) SetHotReload(enabled bool) {
	s.loader.SetHotReload(enabled)
	s.logger.Info("Hot reload toggled", zap.Bool("enabled", enabled))
}

// Process applies queued results and returns how many were applied.
func (s *Service) Process() int {
	return s.documents.ProcessAll()
}

// Run applies results every processInterval and scans for changed documents every
// reloadInterval until ctx is done. It is the only consumer of the document queue.
func (s *Service) Run(ctx context.Context, processInterval, reloadInterval time.Duration) {
	processTicker := time.NewTicker(processInterval)
	defer processTicker.Stop()
	reloadTicker := time.NewTicker(reloadInterval)
	defer reloadTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.Process()
			return
		case <-processTicker.C:
			s.Process()
		case <-reloadTicker.C:
			if !s.loader.HotReload() {
				continue
			}
			if n := s.documents.HotReload(ctx, s.spawner); n > 0 {
				s.logger.Debug("Started hot reloads", zap.Int("count", n))
			}
		}
	}
}
