// Package file loads the static content corpus from TOML documents.
//
// A compact default corpus is embedded in the binary; a user corpus
// directory, when configured, overrides a pool by providing a
// <kind>.toml file of the same shape. Pools are loaded once at process
// start and never reloaded.
package file

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driven"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

//go:embed corpus/*.toml
var corpusFS embed.FS

// Ensure ContentSource implements the interface.
var _ driven.ContentSource = (*ContentSource)(nil)

// ContentSource loads content pools from TOML.
type ContentSource struct {
	// corpusDir optionally overrides embedded pools.
	corpusDir string
}

// NewContentSource creates a content source. corpusDir may be empty,
// in which case only the embedded corpus is used.
func NewContentSource(corpusDir string) *ContentSource {
	return &ContentSource{corpusDir: corpusDir}
}

// tomlItem is the on-disk shape of one content item.
type tomlItem struct {
	ID        string   `toml:"id"`
	Body      string   `toml:"body"`
	Triggers  []string `toml:"triggers"`
	Intensity string   `toml:"intensity"`
	Tone      string   `toml:"tone"`
	House     int      `toml:"house"`
}

// tomlPool is the on-disk shape of one pool document.
type tomlPool struct {
	Items []tomlItem `toml:"item"`
}

// LoadPool loads one pool by kind, preferring the user corpus
// directory over the embedded defaults.
func (s *ContentSource) LoadPool(_ context.Context, kind domain.PoolKind) (domain.ContentPool, error) {
	data, err := s.readPoolFile(kind)
	if err != nil {
		return domain.ContentPool{}, err
	}

	var doc tomlPool
	if err := toml.Unmarshal(data, &doc); err != nil {
		return domain.ContentPool{}, fmt.Errorf("parsing %s corpus: %w", kind, err)
	}

	pool := domain.ContentPool{Kind: kind}
	for _, raw := range doc.Items {
		item, ok := toDomainItem(raw)
		if !ok {
			logger.Warn("Skipping malformed %s item %q", kind, raw.ID)
			continue
		}
		pool.Items = append(pool.Items, item)
	}

	if pool.Len() == 0 {
		return domain.ContentPool{}, fmt.Errorf("loading %s corpus: %w", kind, domain.ErrEmptyPool)
	}

	logger.Debug("Loaded %d %s items", pool.Len(), kind)
	return pool, nil
}

// readPoolFile reads the pool's TOML document from the corpus
// directory or the embedded defaults.
func (s *ContentSource) readPoolFile(kind domain.PoolKind) ([]byte, error) {
	name := string(kind) + ".toml"

	if s.corpusDir != "" {
		path := filepath.Join(s.corpusDir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			logger.Debug("Using user corpus for %s: %s", kind, path)
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading user corpus %s: %w", path, err)
		}
	}

	data, err := corpusFS.ReadFile("corpus/" + name)
	if err != nil {
		return nil, fmt.Errorf("unknown pool %s: %w", kind, domain.ErrNotFound)
	}
	return data, nil
}

// toDomainItem validates and converts a raw item. Items without an id
// or body are malformed; unknown intensities and tones fall back to
// soft/neutral so a typo in the corpus doesn't drop content.
func toDomainItem(raw tomlItem) (domain.ContentItem, bool) {
	if raw.ID == "" || raw.Body == "" {
		return domain.ContentItem{}, false
	}

	item := domain.ContentItem{
		ID:        raw.ID,
		Body:      raw.Body,
		Intensity: domain.DayIntensity(raw.Intensity),
		Tone:      domain.Tone(raw.Tone),
		House:     raw.House,
	}

	switch item.Intensity {
	case domain.IntensitySoft, domain.IntensityMedium, domain.IntensityDeep:
	default:
		item.Intensity = domain.IntensitySoft
	}

	switch item.Tone {
	case domain.ToneNeutral, domain.ToneProtective, domain.ToneChallenge, domain.ToneRelease:
	default:
		item.Tone = domain.ToneNeutral
	}

	if item.House < 0 || item.House > 12 {
		item.House = 0
	}

	for _, t := range raw.Triggers {
		item.Triggers = append(item.Triggers, domain.Trigger(t))
	}

	return item, true
}
