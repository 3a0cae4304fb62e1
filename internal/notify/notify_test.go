package notify

import "testing"

func TestShouldNotify(t *testing.T) {
	cases := []struct {
		name      string
		threshold int
		value     int
		want      bool
	}{
		{"above threshold", 10, 15, true},
		{"below threshold", 10, 5, false},
		{"equal to threshold", 10, 10, false},
		{"one above threshold", 10, 11, true},
		{"negative value", 10, -1, false},
		{"negative threshold exceeded", -5, 0, true},
		{"negative threshold equal", -5, -5, false},
		{"negative threshold below", -5, -6, false},
		{"zero threshold", 0, 1, true},
		{"zero threshold zero value", 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := New(tc.threshold)
			if got := n.ShouldNotify(tc.value); got != tc.want {
				t.Errorf("New(%d).ShouldNotify(%d) = %v, want %v", tc.threshold, tc.value, got, tc.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	cases := []struct {
		name      string
		threshold int
		value     int
		want      string
	}{
		{"exceeded", 10, 15, "Threshold exceeded! Value: 15"},
		{"within", 10, 5, "Value within threshold."},
		{"boundary counts as within", 10, 10, "Value within threshold."},
		{"negative value reported", 10, -2, "Value within threshold."},
		{"exceeded includes value", 0, 42, "Threshold exceeded! Value: 42"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := New(tc.threshold)
			if got := n.Message(tc.value); got != tc.want {
				t.Errorf("New(%d).Message(%d) = %q, want %q", tc.threshold, tc.value, got, tc.want)
			}
		})
	}
}

func TestThreshold(t *testing.T) {
	if got := New(25).Threshold(); got != 25 {
		t.Errorf("Threshold() = %d, want 25", got)
	}
}
