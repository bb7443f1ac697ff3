package cea708

import "testing"

func TestFramerateCEA608PairsPerFrame(t *testing.T) {
	t.Parallel()
	if got := NewFramerate(60, 1).CEA608PairsPerFrame(); got != 1 {
		t.Errorf("60/1: got %d, want 1", got)
	}
	if got := NewFramerate(30, 1).CEA608PairsPerFrame(); got != 2 {
		t.Errorf("30/1: got %d, want 2", got)
	}
}

func TestFramerateMaxCCCount(t *testing.T) {
	t.Parallel()
	if got := NewFramerate(60, 1).MaxCCCount(); got != 10 {
		t.Errorf("60/1: got %d, want 10", got)
	}
	if got := NewFramerate(30, 1).MaxCCCount(); got != 20 {
		t.Errorf("30/1: got %d, want 20", got)
	}
}

func TestFramerateFractional(t *testing.T) {
	t.Parallel()
	fps := NewFramerate(30000, 1001)
	if got := fps.MaxCCCount(); got < 19 || got > 21 {
		t.Errorf("30000/1001: got %d, want ~20", got)
	}
}
