package payment

import (
	"ortomat-backend/internal/domain/payment"
	"ortomat-backend/internal/usecase/shared"
)

type Registry struct {
	providers map[payment.Provider]shared.PaymentProvider
}

func NewRegistry(providers ...shared.PaymentProvider) *Registry {
	m := make(map[payment.Provider]shared.PaymentProvider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

func (r *Registry) Get(name payment.Provider) (shared.PaymentProvider, bool) {
	p, ok := r.providers[name]
	return p, ok
}
