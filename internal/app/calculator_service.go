// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/calc-service/internal/domain"
	"github.com/jsamuelsen/calc-service/internal/platform/logging"
	"github.com/jsamuelsen/calc-service/internal/ports"
)

// DefaultCacheTTL bounds how long memoized results are retained.
const DefaultCacheTTL = 5 * time.Minute

// CalculatorService orchestrates calculation use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type CalculatorService struct {
	cache  ports.ResultCache
	ttl    time.Duration
	logger *slog.Logger
}

// CalculatorServiceConfig contains configuration for the calculator service.
type CalculatorServiceConfig struct {
	// Cache memoizes display strings. May be nil to disable memoization.
	Cache ports.ResultCache

	// CacheTTL overrides DefaultCacheTTL when positive.
	CacheTTL time.Duration

	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger
}

// NewCalculatorService creates a new calculator service with the provided dependencies.
func NewCalculatorService(cfg CalculatorServiceConfig) *CalculatorService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &CalculatorService{
		cache:  cfg.Cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Evaluation is the outcome of a single calculation use case.
type Evaluation struct {
	domain.Calculation

	// Cached reports whether the display string came from the result cache.
	Cached bool
}

// Evaluate applies the operation to the raw operands and returns the outcome.
// Evaluation itself never fails: malformed operands and unrecognized
// operations surface inside the display string, not as errors. Cache
// failures degrade to recomputation and are only logged.
func (s *CalculatorService) Evaluate(ctx context.Context, rawA, rawB, operation string) Evaluation {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	op := domain.Operation(operation)
	key := cacheKey(rawA, rawB, op)

	if s.cache != nil {
		display, err := s.cache.Get(ctx, key)

		switch {
		case err == nil:
			logger.Debug("calculation served from cache",
				slog.String("cache_key", key),
			)

			return Evaluation{
				Calculation: domain.Calculation{A: rawA, B: rawB, Operation: op, Display: display},
				Cached:      true,
			}
		case !domain.IsNotFound(err):
			logger.Warn("result cache lookup failed",
				slog.String("cache_key", key),
				slog.Any("error", err),
			)
		}
	}

	calc := domain.NewCalculation(rawA, rawB, op)

	logger.Info("calculation evaluated",
		slog.String("operation", operation),
		slog.String("display", calc.Display),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, calc.Display, s.ttl); err != nil {
			logger.Warn("result cache store failed",
				slog.String("cache_key", key),
				slog.Any("error", err),
			)
		}
	}

	return Evaluation{Calculation: calc, Cached: false}
}

// cacheKey builds an unambiguous, human-readable key for one calculation.
// Raw operands are quoted so operand text containing spaces cannot collide
// with a neighboring key.
func cacheKey(rawA, rawB string, op domain.Operation) string {
	return fmt.Sprintf("%q %s %q", rawA, op, rawB)
}
