package weapon

import (
	"testing"

	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/settings"
)

func patternRecoil() settings.Recoil {
	return settings.Recoil{
		Enabled:        true,
		Vertical:       1,
		RecoverySpeed:  8,
		Duration:       0.15,
		PatternEnabled: true,
		Standing:       1,
		Crouching:      0.5,
		Moving:         2,
	}
}

func TestRecoilStanceMultipliers(t *testing.T) {
	r := NewRecoil(patternRecoil(), 1)
	for _, tc := range []struct {
		name  string
		st    Stance
		pitch float32
	}{
		{"standing", Stance{}, 0.3},
		{"sliding", Stance{Sliding: true, Speed: 10}, 0.15},
		{"moving", Stance{Speed: 5}, 0.6},
	} {
		pitch, yaw := r.Kick(tc.st)
		if !game.Float32ApproxEq(pitch, tc.pitch) || yaw != 0 {
			t.Fatalf("%s: expected kick (%v, 0), got (%v, %v)", tc.name, tc.pitch, pitch, yaw)
		}
	}
}

func TestRecoilRecovers(t *testing.T) {
	r := NewRecoil(patternRecoil(), 1)
	r.Kick(Stance{})
	if !r.Active() {
		t.Fatalf("expected recoil to be active after a shot")
	}

	pitch, _ := r.Update(testDelta)
	if pitch <= 0 {
		t.Fatalf("expected the recoil to keep kicking the camera up, got %v", pitch)
	}
	for i := 0; i < 10; i++ {
		r.Update(testDelta)
	}
	if r.Active() {
		t.Fatalf("expected recoil to be recovered after its duration")
	}
	if pitch, yaw := r.Update(testDelta); pitch != 0 || yaw != 0 {
		t.Fatalf("expected no camera change once recovered, got (%v, %v)", pitch, yaw)
	}
}

func TestRecoilDisabled(t *testing.T) {
	cfg := patternRecoil()
	cfg.Enabled = false
	r := NewRecoil(cfg, 1)
	if pitch, yaw := r.Kick(Stance{}); pitch != 0 || yaw != 0 || r.Active() {
		t.Fatalf("expected disabled recoil not to kick, got (%v, %v)", pitch, yaw)
	}
}

func TestRandomRecoilStaysInBounds(t *testing.T) {
	cfg := patternRecoil()
	cfg.PatternEnabled = false
	cfg.Horizontal = 0.5
	r := NewRecoil(cfg, 7)
	for i := 0; i < 100; i++ {
		pitch, yaw := r.Kick(Stance{})
		if pitch < 0.15-1e-5 || pitch > 0.45+1e-5 {
			t.Fatalf("vertical kick %v out of bounds", pitch)
		}
		if yaw < -0.15-1e-5 || yaw > 0.15+1e-5 {
			t.Fatalf("horizontal kick %v out of bounds", yaw)
		}
	}
}
