package monitor

import "testing"

func TestOverdueMessage(t *testing.T) {
	tests := []struct {
		prev, current int
		fire          bool
	}{
		{0, 0, false},
		{2, 2, false},
		{3, 1, false},
		{0, 1, true},
		{1, 4, true},
	}
	for _, tt := range tests {
		msg, fire := overdueMessage(tt.prev, tt.current)
		if fire != tt.fire {
			t.Errorf("overdueMessage(%d, %d) fire = %v, want %v", tt.prev, tt.current, fire, tt.fire)
		}
		if fire && msg == "" {
			t.Errorf("overdueMessage(%d, %d) fired with empty message", tt.prev, tt.current)
		}
	}
}
