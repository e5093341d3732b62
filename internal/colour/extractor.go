package colour

import (
	"fmt"
)

// Extraction limits for the number of dominant colours.
const (
	MinExtractColours     = 3
	MaxExtractColours     = 10
	DefaultExtractColours = 5
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract reduces a decoded pixel buffer to count representative colours.
	Extract(pixels []RGB, count int) (*Palette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering in LAB space.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{AlgorithmKMeans}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
func NewExtractor(alg Algorithm, opts ExtractOptions) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansExtractor(opts)
	default:
		return nil, fmt.Errorf("%w: unknown algorithm: %s (valid algorithms: %v)", ErrInvalidParameter, alg, ValidAlgorithms())
	}
}

// ExtractOptions tunes the clustering. Restarts and iterations trade quality
// for speed; Seed makes results reproducible.
type ExtractOptions struct {
	Seed          int64
	MaxSamples    int
	Restarts      int
	MaxIterations int
}

// DefaultExtractOptions returns the default extraction options.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Seed:          42,
		MaxSamples:    10000,
		Restarts:      20,
		MaxIterations: 300,
	}
}

// Validate validates the extraction options.
func (o ExtractOptions) Validate() error {
	if o.MaxSamples < 1 {
		return fmt.Errorf("%w: max samples must be at least 1, got %d", ErrInvalidParameter, o.MaxSamples)
	}
	if o.Restarts < 1 {
		return fmt.Errorf("%w: restarts must be at least 1, got %d", ErrInvalidParameter, o.Restarts)
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("%w: max iterations must be at least 1, got %d", ErrInvalidParameter, o.MaxIterations)
	}
	return nil
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm  Algorithm
	ColorCount int
	Options    ExtractOptions
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:  AlgorithmKMeans,
		ColorCount: DefaultExtractColours,
		Options:    DefaultExtractOptions(),
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("%w: invalid algorithm: %s", ErrInvalidParameter, c.Algorithm)
	}
	if err := ValidateColourCount(c.ColorCount); err != nil {
		return err
	}
	return c.Options.Validate()
}

// ValidateColourCount checks that count is within the supported extraction range.
func ValidateColourCount(count int) error {
	if count < MinExtractColours || count > MaxExtractColours {
		return fmt.Errorf("%w: colour count must be between %d and %d, got %d",
			ErrInvalidParameter, MinExtractColours, MaxExtractColours, count)
	}
	return nil
}

// ExtractDominantColours runs the configured extractor over pixels.
func ExtractDominantColours(pixels []RGB, cfg ExtractorConfig) (*Palette, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	extractor, err := NewExtractor(cfg.Algorithm, cfg.Options)
	if err != nil {
		return nil, err
	}
	return extractor.Extract(pixels, cfg.ColorCount)
}
