package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"retirement-calc/domain"
	"retirement-calc/logger"
	"retirement-calc/repository"
)

type RetirementService struct {
	cache repository.CacheRepository
	log   *logger.Logger
	group singleflight.Group
}

// NewRetirementService creates a RetirementService backed by cache. A nil
// cache disables caching and a nil log discards output.
func NewRetirementService(
	cache repository.CacheRepository,
	log *logger.Logger,
) *RetirementService {
	if cache == nil {
		cache = repository.NoopCache{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &RetirementService{
		cache: cache,
		log:   log.WithComponent(logger.ComponentCalc),
	}
}

// Calculate validates params and returns the projection. Validation
// failures come back as *ValidationError; nothing else fails.
func (s *RetirementService) Calculate(
	ctx context.Context,
	params map[string]any,
) (domain.CalcResult, error) {

	input, invalid := ValidateCalcParams(params)
	if len(invalid) > 0 {
		s.log.DebugContext(ctx, "rejected calculation", logger.FieldInvalid, invalid)
		return domain.CalcResult{}, &ValidationError{Fields: invalid}
	}

	return s.CalculateInput(ctx, input), nil
}

// CalculateInput projects an already validated input, consulting the cache
// first. Identical calculations in flight share one computation.
func (s *RetirementService) CalculateInput(
	ctx context.Context,
	input domain.CalcInput,
) domain.CalcResult {

	key := CacheKey(input)

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.CalcResult
		err := json.Unmarshal([]byte(cached), &result)
		if err == nil {
			return result
		}
		s.log.WarnContext(ctx, "discarding corrupt cache entry",
			logger.FieldCacheKey, key, logger.FieldError, err)
	}

	v, _, _ := s.group.Do(key, func() (any, error) {
		result := Project(input)

		// Guardar el resultado (no crítico si falla)
		payload, err := json.Marshal(result)
		if err == nil {
			err = s.cache.Set(ctx, key, string(payload))
		}
		if err != nil {
			s.log.WarnContext(ctx, "failed to cache calculation",
				logger.FieldCacheKey, key, logger.FieldError, err)
		}
		return result, nil
	})

	return v.(domain.CalcResult)
}

// CacheKey derives a stable key from the coerced input values.
func CacheKey(input domain.CalcInput) string {
	fields := []struct {
		name  string
		value float64
	}{
		{domain.FieldMonthlyCosts, input.MonthlyCosts},
		{domain.FieldYearsInRetirement, input.YearsInRetirement},
		{domain.FieldYearsUntilRetirement, input.YearsUntilRetirement},
		{domain.FieldInflation, input.Inflation},
		{domain.FieldPreRateOfReturn, input.PreRateOfReturn},
		{domain.FieldPostRateOfReturn, input.PostRateOfReturn},
		{domain.FieldTaxRate, input.TaxRate},
		{domain.FieldCurrentTaxDeferredCapital, input.CurrentTaxDeferredCapital},
		{domain.FieldMonthlyIncome, input.MonthlyIncome},
	}

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(f.name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(f.value, 'g', -1, 64))
		b.WriteByte(';')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
