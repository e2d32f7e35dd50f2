// Package payment abstracts the mobile-money processing capability the
// reconciliation flow delegates to.
package payment

import (
	"math/rand"
	"sync"

	"favour_express/internal/models"
)

// Gateway charges a payment with the provider using the payment method's
// API credentials. A false return means the provider rejected or the
// attempt failed; the caller discards the payment record. A real
// integration would add asynchronous callback handling on top of this.
type Gateway interface {
	Charge(p *models.Payment, clientID, clientSecret string) bool
}

// SimulatedGateway approves a configurable fraction of charges. It stands
// in for the MTN/Orange integrations in development and tests.
type SimulatedGateway struct {
	SuccessRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedGateway(successRate float64, seed int64) *SimulatedGateway {
	return &SimulatedGateway{
		SuccessRate: successRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (g *SimulatedGateway) Charge(_ *models.Payment, _, _ string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.SuccessRate
}
