package types

import "errors"

// Config holds the paths for the two Satchel stores. The corpus store is the
// import-populated, read-mostly notes database; the organization store holds
// the curated entities and is owned by this process.
type Config struct {
	CorpusPath string `json:"corpus_path" yaml:"corpus_path"`
	OrgPath    string `json:"org_path" yaml:"org_path"`
}

// Config validation errors.
var (
	ErrCorpusPathEmpty = errors.New("corpus path must not be empty")
	ErrOrgPathEmpty    = errors.New("org path must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.CorpusPath == "" {
		return ErrCorpusPathEmpty
	}
	if c.OrgPath == "" {
		return ErrOrgPathEmpty
	}
	return nil
}
