package input

import (
	"testing"

	"github.com/dpt/greatescape-core/internal/world"
)

func TestSampleComposesDirectionAndFireLive(t *testing.T) {
	var l Latch
	got := l.Sample(true, false, false, true, true, false)
	want := world.InputUp | world.InputRight | world.InputFire
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSampleSetsKickOnlyOnRisingEdge(t *testing.T) {
	var l Latch
	first := l.Sample(false, false, false, false, false, true)
	if first&world.InputKick == 0 {
		t.Fatalf("expected kick bit set on rising edge")
	}
	held := l.Sample(false, false, false, false, false, true)
	if held&world.InputKick != 0 {
		t.Fatalf("expected kick bit clear while held, got %v", held)
	}
}

func TestSampleRetriggersKickAfterRelease(t *testing.T) {
	var l Latch
	l.Sample(false, false, false, false, false, true)
	l.Sample(false, false, false, false, false, false)
	again := l.Sample(false, false, false, false, false, true)
	if again&world.InputKick == 0 {
		t.Fatalf("expected kick bit set on second rising edge")
	}
}

func TestSampleWithoutKickNeverSetsTheLatchBit(t *testing.T) {
	var l Latch
	got := l.Sample(false, true, false, false, false, false)
	if got&world.InputKick != 0 {
		t.Fatalf("expected kick bit clear, got %v", got)
	}
}
