// Package satchel exposes the public entry points for opening the Satchel
// stores while keeping implementation details internal.
// See docs/ARCHITECTURE.md § Public API.
package satchel

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/satchel/internal/sqlite"
	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Version is the current satchel release.
const Version = "0.3.0"

// Stores bundles the two long-lived store handles. Lifecycle is owned by
// the process entry point: open on startup, Close on shutdown.
type Stores struct {
	Org    *sqlite.OrgStore
	Corpus *sqlite.CorpusStore
}

// Open validates cfg and opens both stores. A nil logger disables logging.
//
// Example:
//
//	stores, err := satchel.Open(types.Config{
//	    CorpusPath: "notes.db",
//	    OrgPath:    "organizer.db",
//	}, logger)
//	defer stores.Close()
func Open(cfg types.Config, logger *zap.Logger) (*Stores, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	org, err := sqlite.OpenOrgStore(cfg.OrgPath, logger)
	if err != nil {
		return nil, err
	}

	corpus, err := sqlite.OpenCorpusStore(cfg.CorpusPath, logger)
	if err != nil {
		org.Close()
		return nil, err
	}

	return &Stores{Org: org, Corpus: corpus}, nil
}

// Close releases both store handles. Idempotent.
func (s *Stores) Close() error {
	var firstErr error
	if s.Org != nil {
		if err := s.Org.Close(); err != nil {
			firstErr = err
		}
		s.Org = nil
	}
	if s.Corpus != nil {
		if err := s.Corpus.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.Corpus = nil
	}
	return firstErr
}
