package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"retirement-calc/domain"
)

type MockCache struct {
	mu        sync.Mutex
	Data      map[string]string
	GetCalls  int
	SetCalls  int
	ForceFail bool
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string]string)}
}

func (m *MockCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.ForceFail {
		return errors.New("cache down")
	}
	m.Data[key] = value
	return nil
}

func TestCalculate_StoresResult(t *testing.T) {

	cache := NewMockCache()
	service := NewRetirementService(cache, nil)

	result, err := service.Calculate(context.Background(), validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AnnualSavingsRequired != "11706.07" {
		t.Errorf("expected 11706.07, got %s", result.AnnualSavingsRequired)
	}

	stored, ok := cache.Data[CacheKey(baseInput())]
	if !ok {
		t.Fatalf("expected result to be cached")
	}
	var cached domain.CalcResult
	if err := json.Unmarshal([]byte(stored), &cached); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached != result {
		t.Errorf("expected cached %+v, got %+v", result, cached)
	}
}

func TestCalculate_UsesCachedResult(t *testing.T) {

	cache := NewMockCache()
	canned := domain.CalcResult{
		AtRetirementCapitalRequired: "1.00",
		AnnualSavingsRequired:       "2.00",
		MonthlySavingsRequired:      "3.00",
	}
	payload, _ := json.Marshal(canned)
	cache.Data[CacheKey(baseInput())] = string(payload)

	service := NewRetirementService(cache, nil)
	result, err := service.Calculate(context.Background(), validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != canned {
		t.Errorf("expected cached %+v, got %+v", canned, result)
	}
	if cache.SetCalls != 0 {
		t.Errorf("cache Set should NOT be called on a hit")
	}
}

func TestCalculate_CorruptCacheEntryIsRecomputed(t *testing.T) {

	cache := NewMockCache()
	cache.Data[CacheKey(baseInput())] = "{not json"

	service := NewRetirementService(cache, nil)
	result, err := service.Calculate(context.Background(), validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != Project(baseInput()) {
		t.Errorf("expected fresh projection, got %+v", result)
	}
}

func TestCalculate_CacheFailureIsNotFatal(t *testing.T) {

	cache := NewMockCache()
	cache.ForceFail = true
	service := NewRetirementService(cache, nil)

	result, err := service.Calculate(context.Background(), validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != Project(baseInput()) {
		t.Errorf("expected projection, got %+v", result)
	}
}

func TestCalculate_InvalidParams(t *testing.T) {

	cache := NewMockCache()
	service := NewRetirementService(cache, nil)

	params := validParams()
	delete(params, "taxRate")
	params["monthlyIncome"] = 0.0

	_, err := service.Calculate(context.Background(), params)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Required() != "taxRate, monthlyIncome" {
		t.Errorf("unexpected fields %q", verr.Required())
	}
	if cache.GetCalls != 0 || cache.SetCalls != 0 {
		t.Errorf("cache should NOT be touched on invalid input")
	}
}

func TestCalculate_Concurrent(t *testing.T) {

	service := NewRetirementService(NewMockCache(), nil)
	want := Project(baseInput())

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := service.Calculate(context.Background(), validParams())
			if err != nil || got != want {
				t.Errorf("expected %+v, got %+v (%v)", want, got, err)
			}
		}()
	}
	wg.Wait()
}

func TestCacheKey(t *testing.T) {

	a := baseInput()
	b := baseInput()
	if CacheKey(a) != CacheKey(b) {
		t.Errorf("expected equal keys for equal inputs")
	}

	b.TaxRate = 21
	if CacheKey(a) == CacheKey(b) {
		t.Errorf("expected different keys for different inputs")
	}
}
