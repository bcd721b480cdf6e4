// Package server wires the core components — sources, cache, router,
// sessions — behind a single FindAsset entrypoint, the root composition
// root a cmd/bithorded binary (or any other embedder) drives.
//
// Grounded on the teacher's multiepoch.go: one top-level struct holding
// every subordinate component, a constructor that opens them in dependency
// order, and a Close that tears them down in reverse.
package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	logging "github.com/ipfs/go-log/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/bithorded/bithorded/internal/assetindex"
	"github.com/bithorded/bithorded/internal/assetstore"
	"github.com/bithorded/bithorded/internal/binding"
	"github.com/bithorded/bithorded/internal/cache"
	"github.com/bithorded/bithorded/internal/config"
	"github.com/bithorded/bithorded/internal/dispatch"
	"github.com/bithorded/bithorded/internal/router"
	"github.com/bithorded/bithorded/internal/sessions"
	"github.com/bithorded/bithorded/internal/statuslog"
	"github.com/bithorded/bithorded/internal/telemetry"
	"github.com/bithorded/bithorded/internal/tiger"
)

var log = logging.Logger("server")

var tracer = telemetry.Tracer("bithorded/server")

const defaultDispatcherPool = 8

// sourceRegistrationConcurrency bounds how many sources' directories are
// scanned and linked concurrently at startup.
const sourceRegistrationConcurrency = 4

// Server resolves asset requests from configured local sources, a bounded
// cache, or by forwarding to friends, per §2's component table.
type Server struct {
	instanceID string
	cfg        *config.Config
	dispatcher *dispatch.Dispatcher
	router     *router.Router
	cacheMgr   *cache.CacheManager

	mu       sync.Mutex
	sources  map[string]*assetstore.SourceStore
	sessions *sessions.AssetSessions

	cancel context.CancelFunc
}

// New opens every subordinate component described by cfg: a SourceStore per
// configured source, a CacheManager if cfg.CacheEnabled(), and a Router with
// every configured friend dialed via dial. dial is the caller's connection
// to the (out-of-scope) wire-protocol layer — see internal/router.Dialer.
func New(cfg *config.Config, dial router.Dialer, opts ...config.Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	runtime := config.DefaultRuntime()
	runtime.Apply(opts...)

	ctx, cancel := context.WithCancel(context.Background())
	poolSize := cfg.ParallelOrDefault(defaultDispatcherPool)
	dispatcher := dispatch.New(ctx, poolSize)

	rtr := router.New(opts...)
	for _, friend := range cfg.Friends {
		rtr.AddFriend(ctx, router.FriendConfig{
			Name: friend.Name,
			Addr: friend.Addr,
			Port: friend.Port,
		}, dial)
	}

	var cacheMgr *cache.CacheManager
	if cfg.CacheEnabled() {
		idx := assetindex.New(0)
		m, err := cache.New(cfg.CacheDir, cfg.CacheSizeBytes(), idx, rtr, dispatcher, runtime.LevelsSkipped)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("server: opening cache: %w", err)
		}
		cacheMgr = m
	}

	srv := &Server{
		instanceID: uuid.NewString(),
		cfg:        cfg,
		dispatcher: dispatcher,
		router:     rtr,
		cacheMgr:   cacheMgr,
		sources:    make(map[string]*assetstore.SourceStore),
		cancel:     cancel,
	}
	srv.sessions = sessions.New(srv.openAsset)
	log.Infow("server starting", "instance", srv.instanceID)

	// Registering a source only allocates meta files and starts background
	// hashing per file (cheap, I/O-bound); bound concurrency across sources
	// rather than serializing directory scans one at a time.
	var eg errgroup.Group
	eg.SetLimit(sourceRegistrationConcurrency)
	for _, src := range cfg.Sources {
		src := src
		eg.Go(func() error { return srv.RegisterSource(src.Name, src.Root) })
	}
	if err := eg.Wait(); err != nil {
		srv.Close()
		return nil, err
	}
	return srv, nil
}

// RegisterSource roots a SourceStore at root (creating its meta directory
// alongside it) and links every regular file directly beneath root as a
// source asset. Subdirectories are not scanned — namespace/directory
// semantics are out of scope (§1 Non-goals).
func (s *Server) RegisterSource(name, root string) error {
	_, span := tracer.Start(context.Background(), "RegisterSource",
		trace.WithAttributes(attribute.String("source.name", name), attribute.String("source.root", root)))
	defer span.End()
	recordErr := func(err error) error {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}

	metaDir := filepath.Join(root, ".bithorded-meta")
	store, err := assetstore.NewSourceStore(metaDir, s.dispatcher, config.DefaultRuntime().LevelsSkipped)
	if err != nil {
		return recordErr(fmt.Errorf("server: source %q: %w", name, err))
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return recordErr(fmt.Errorf("server: source %q: reading %q: %w", name, root, err))
	}
	span.SetAttributes(attribute.Int("source.files", len(entries)))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == filepath.Base(metaDir) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		linked, err := store.AddAsset(path)
		if err != nil {
			log.Warnw("failed linking source file", "source", name, "path", path, "err", err)
			continue
		}
		statuslog.LogTransitions(log, path, linked.Asset.Status)
	}

	s.mu.Lock()
	s.sources[name] = store
	s.mu.Unlock()
	log.Infow("source registered", "instance", s.instanceID, "source", name, "root", root, "files", len(entries))
	return nil
}

// FindAsset resolves a request against every configured source first (§4.8:
// a directly stored asset always wins over a cached or forwarded copy),
// falling back to the cache/router chain when no source has it.
func (s *Server) FindAsset(req router.BindRead) (*binding.RequestBinding, error) {
	_, span := tracer.Start(context.Background(), "FindAsset",
		trace.WithAttributes(attribute.Int("request.ids", len(req.IDs))))
	defer span.End()

	rb, err := s.sessions.FindAsset(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return rb, err
}

func (s *Server) openAsset(req sessions.Request) (*binding.RequestBinding, error) {
	br, ok := req.(router.BindRead)
	if !ok {
		return nil, fmt.Errorf("server: unexpected request type %T", req)
	}
	tigerID := br.TigerID()

	if entry, ok := s.findInSources(tigerID); ok {
		return binding.New(entry.Asset), nil
	}

	if s.cacheMgr != nil {
		return s.cacheMgr.FindAsset(br)
	}
	if s.router != nil {
		return s.router.FindAsset(br)
	}
	return nil, nil
}

func (s *Server) findInSources(id tiger.ID) (*assetstore.SourceEntry, bool) {
	if id.Empty() {
		return nil, false
	}
	s.mu.Lock()
	stores := make([]*assetstore.SourceStore, 0, len(s.sources))
	for _, st := range s.sources {
		stores = append(stores, st)
	}
	s.mu.Unlock()
	for _, st := range stores {
		if entry, ok := st.FindAsset(id); ok {
			return entry, true
		}
	}
	return nil, false
}

// PrepareUpload allocates a fresh cache-backed upload slot, delegating to
// the CacheManager (§4.8 prepareUpload). Returns an error if caching is
// disabled.
func (s *Server) PrepareUpload(size int64, tigerID tiger.ID) (*cache.CachedAsset, error) {
	if s.cacheMgr == nil {
		return nil, fmt.Errorf("server: caching is disabled")
	}
	return s.cacheMgr.PrepareUpload(size, tigerID)
}

// DiskUsage reports the cache's current disk usage, or 0 if caching is
// disabled.
func (s *Server) DiskUsage() int64 {
	if s.cacheMgr == nil {
		return 0
	}
	return s.cacheMgr.DiskUsage()
}

// Close tears down the dispatcher, stopping every in-flight hash job, and
// the router's blacklist janitor. Friend reconnect loops are cancelled via
// the context passed to New.
func (s *Server) Close() {
	log.Infow("server stopping", "instance", s.instanceID)
	s.cancel()
	s.router.Close()
	s.dispatcher.Close()
}
