package payment

import "testing"

func TestSimulatedGatewayAlwaysApprovesAtFullRate(t *testing.T) {
	g := NewSimulatedGateway(1.0, 1)
	for i := 0; i < 100; i++ {
		if !g.Charge(nil, "", "") {
			t.Fatalf("charge %d rejected at success rate 1.0", i)
		}
	}
}

func TestSimulatedGatewayAlwaysRejectsAtZeroRate(t *testing.T) {
	g := NewSimulatedGateway(0, 1)
	for i := 0; i < 100; i++ {
		if g.Charge(nil, "", "") {
			t.Fatalf("charge %d approved at success rate 0", i)
		}
	}
}

func TestSimulatedGatewayIsDeterministicPerSeed(t *testing.T) {
	a := NewSimulatedGateway(0.5, 42)
	b := NewSimulatedGateway(0.5, 42)
	for i := 0; i < 50; i++ {
		if a.Charge(nil, "", "") != b.Charge(nil, "", "") {
			t.Fatalf("sequence diverged at charge %d for identical seeds", i)
		}
	}
}
