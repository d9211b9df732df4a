package component

import "testing"

func TestResourcePairHappyPath(t *testing.T) {
	var p ResourcePair
	h := &Healer{}
	s := &Stealer{}

	steps := []struct {
		name string
		do   func() bool
		want PairPhase
	}{
		{"place_healer", func() bool { return p.PlaceHealer(h) }, PairHealerPresent},
		{"attach_stealer", func() bool { return p.AttachStealer(s) }, PairStealerPursuing},
		{"capture", func() bool { _, ok := p.Capture(); return ok }, PairCarrying},
		{"attack", func() bool { return p.Attack() }, PairAttacking},
		{"release", func() bool { _, ok := p.Release(); return ok }, PairAbsent},
	}

	for _, step := range steps {
		if !step.do() {
			t.Fatalf("%s: transition rejected in phase %s", step.name, p.Phase())
		}
		if p.Phase() != step.want {
			t.Fatalf("%s: expected %s, got %s", step.name, step.want, p.Phase())
		}
		if err := p.Validate(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
	}
}

func TestResourcePairCaptureClearsHealer(t *testing.T) {
	var p ResourcePair
	p.PlaceHealer(&Healer{})
	p.AttachStealer(&Stealer{})

	taken, ok := p.Capture()
	if !ok || taken == nil {
		t.Fatalf("capture failed")
	}
	if p.Healer() != nil {
		t.Fatalf("healer must be gone once the stealer is carrying")
	}
	if p.Stealer().State != StealerCarrying {
		t.Fatalf("expected carrying, got %s", p.Stealer().State)
	}
}

func TestResourcePairRejectsOutOfOrder(t *testing.T) {
	cases := []struct {
		name  string
		setup func(p *ResourcePair)
		try   func(p *ResourcePair) bool
	}{
		{"stealer_without_healer", func(p *ResourcePair) {}, func(p *ResourcePair) bool { return p.AttachStealer(&Stealer{}) }},
		{"second_healer", func(p *ResourcePair) { p.PlaceHealer(&Healer{}) }, func(p *ResourcePair) bool { return p.PlaceHealer(&Healer{}) }},
		{"capture_without_stealer", func(p *ResourcePair) { p.PlaceHealer(&Healer{}) }, func(p *ResourcePair) bool { _, ok := p.Capture(); return ok }},
		{"attack_while_seeking", func(p *ResourcePair) { p.PlaceHealer(&Healer{}); p.AttachStealer(&Stealer{}) }, func(p *ResourcePair) bool { return p.Attack() }},
		{"release_while_seeking", func(p *ResourcePair) { p.PlaceHealer(&Healer{}); p.AttachStealer(&Stealer{}) }, func(p *ResourcePair) bool { _, ok := p.Release(); return ok }},
		{"pickup_while_carrying", func(p *ResourcePair) {
			p.PlaceHealer(&Healer{})
			p.AttachStealer(&Stealer{})
			p.Capture()
		}, func(p *ResourcePair) bool { _, _, ok := p.Pickup(); return ok }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p ResourcePair
			c.setup(&p)
			before := p.Phase()
			if c.try(&p) {
				t.Fatalf("transition should have been rejected")
			}
			if p.Phase() != before {
				t.Fatalf("phase changed from %s to %s", before, p.Phase())
			}
			if err := p.Validate(); err != nil {
				t.Fatalf("%v", err)
			}
		})
	}
}

func TestResourcePairPickupClearsStealer(t *testing.T) {
	var p ResourcePair
	p.PlaceHealer(&Healer{})
	p.AttachStealer(&Stealer{})

	h, s, ok := p.Pickup()
	if !ok || h == nil || s == nil {
		t.Fatalf("pickup should hand back both entities, got %v %v %v", h, s, ok)
	}
	if p.Phase() != PairAbsent || p.Healer() != nil || p.Stealer() != nil {
		t.Fatalf("pair not reset: %s", p.Phase())
	}
}
