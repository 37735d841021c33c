package payment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidPaymentDetails = errors.New("invalid payment details")
	ErrDuplicateMethod       = errors.New("duplicate payment method label")
)

// Strategy settles a payment through one method.
type Strategy interface {
	MethodLabel() string
	Validate(req Request) bool
	// Settle validates the request and returns a human-readable confirmation.
	Settle(ctx context.Context, req Request) (string, error)
}

// Registry maps upper-cased method labels to strategies. It is built once
// and read concurrently afterwards.
type Registry struct {
	strategies map[string]Strategy
}

func NewRegistry(strategies []Strategy) (*Registry, error) {
	r := &Registry{strategies: make(map[string]Strategy, len(strategies))}
	for _, s := range strategies {
		key := normalizeLabel(s.MethodLabel())
		if _, exists := r.strategies[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMethod, key)
		}
		r.strategies[key] = s
	}
	return r, nil
}

func (r *Registry) Lookup(method string) (Strategy, bool) {
	s, ok := r.strategies[normalizeLabel(method)]
	return s, ok
}

func (r *Registry) Labels() []string {
	labels := make([]string, 0, len(r.strategies))
	for k := range r.strategies {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

func normalizeLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
