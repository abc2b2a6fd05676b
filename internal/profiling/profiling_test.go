package profiling

import (
	"strings"
	"testing"
	"time"
)

func track(name string, d time.Duration) {
	stop := Track(name)
	time.Sleep(d)
	stop()
}

func TestSumWithPrefixTotalsMatchingNames(t *testing.T) {
	ResetFrame()
	track("glfw.PollEvents", 2*time.Millisecond)
	track("glfw.SwapBuffers", 2*time.Millisecond)
	track("renderer.Render", 2*time.Millisecond)

	glfw := SumWithPrefix("glfw.")
	if glfw < 4*time.Millisecond {
		t.Errorf("Expected glfw total >= 4ms, got %v", glfw)
	}
	if total := SumWithPrefix(""); total < glfw {
		t.Errorf("Expected empty prefix to cover everything, got %v < %v", total, glfw)
	}
	if other := SumWithPrefix("nosuch."); other != 0 {
		t.Errorf("Expected zero for unmatched prefix, got %v", other)
	}
}

func TestResetFrameClearsTotals(t *testing.T) {
	track("renderer.Render", time.Millisecond)
	ResetFrame()

	if d := SumWithPrefix(""); d != 0 {
		t.Errorf("Expected empty totals after reset, got %v", d)
	}
	if s := TopN(5); s != "" {
		t.Errorf("Expected empty summary after reset, got %q", s)
	}
}

func TestTopNOrdersBySlowest(t *testing.T) {
	ResetFrame()
	track("fast", time.Millisecond)
	track("slow", 10*time.Millisecond)

	s := TopN(1)
	if !strings.HasPrefix(s, "slow:") {
		t.Errorf("Expected slowest task first, got %q", s)
	}
	if strings.Contains(s, "fast") {
		t.Errorf("Expected TopN(1) to drop the faster task, got %q", s)
	}
}
