// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package roomsearch

import (
	"context"
	"log/slog"

	"github.com/poiesic/roomsearch/batch"
	"github.com/poiesic/roomsearch/config"
	"github.com/poiesic/roomsearch/core"
	"github.com/poiesic/roomsearch/search"
	"github.com/poiesic/roomsearch/storage"
	"github.com/poiesic/roomsearch/storage/badger"
)

// Directory ties the annotation store to the search configuration.
type Directory struct {
	backend     *badger.Backend
	annotations storage.AnnotationRepository
	config      *config.Config
	logger      *slog.Logger
}

// DirectoryOption configures a Directory.
type DirectoryOption func(*directoryOptions)

type directoryOptions struct {
	config   *config.Config
	logger   *slog.Logger
	inMemory bool
}

// WithConfig sets the abbreviation table and stop words used by searchers.
// Default is config.DefaultConfig().
func WithConfig(cfg *config.Config) DirectoryOption {
	return func(o *directoryOptions) {
		o.config = cfg
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DirectoryOption {
	return func(o *directoryOptions) {
		o.logger = logger
	}
}

// InMemory keeps annotations in memory only; the file path is ignored.
func InMemory() DirectoryOption {
	return func(o *directoryOptions) {
		o.inMemory = true
	}
}

// NewDirectory opens the annotation store at filePath.
func NewDirectory(filePath string, opts ...DirectoryOption) (*Directory, error) {
	// Apply options
	options := &directoryOptions{
		config: config.DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.config == nil {
		options.config = config.DefaultConfig()
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}
	if err := options.config.Validate(); err != nil {
		return nil, err
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory, badger.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	return &Directory{
		backend:     backend,
		annotations: badger.NewAnnotationRepository(backend),
		config:      options.config,
		logger:      options.logger,
	}, nil
}

// Close closes the annotation store.
func (d *Directory) Close() error {
	if err := d.annotations.Close(); err != nil {
		d.logger.Error("error closing annotation repository", "err", err)
		return err
	}

	// Close backend
	if err := d.backend.Close(); err != nil {
		d.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// AnnotationRepository returns the store holding custom and staff tags.
func (d *Directory) AnnotationRepository() storage.AnnotationRepository {
	return d.annotations
}

// Config returns the search configuration.
func (d *Directory) Config() *config.Config {
	return d.config
}

// NewSearcher creates a searcher using the directory's configuration and logger.
// Options are applied after the directory's own.
func (d *Directory) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	all := append([]search.Option{search.WithConfig(d.config), search.WithLogger(d.logger)}, opts...)
	return search.NewSearcher(all...)
}

// NewRunner creates a batch runner over a searcher from NewSearcher.
func (d *Directory) NewRunner(opts ...batch.Option) (*batch.Runner, error) {
	searcher, err := d.NewSearcher()
	if err != nil {
		return nil, err
	}
	all := append([]batch.Option{batch.WithLogger(d.logger)}, opts...)
	return batch.NewRunner(searcher, all...)
}

// Search ranks rooms against q using the current annotations.
func (d *Directory) Search(ctx context.Context, q string, rooms []*core.Room) ([]*core.Room, error) {
	annotations, err := d.annotations.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	searcher, err := d.NewSearcher()
	if err != nil {
		return nil, err
	}
	return searcher.Search(q, rooms, annotations), nil
}
