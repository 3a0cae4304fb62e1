package update

import "testing"

func TestIsHomebrewPath(t *testing.T) {
	cases := []struct {
		name string
		path string
		want bool
	}{
		{"intel cellar", "/usr/local/Cellar/tally/1.0.0/bin/tally", true},
		{"apple silicon", "/opt/homebrew/bin/tally", true},
		{"linuxbrew", "/home/linuxbrew/.linuxbrew/bin/tally", true},
		{"usr local bin", "/usr/local/bin/tally", false},
		{"go install", "/home/user/go/bin/tally", false},
		{"empty", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isHomebrewPath(tc.path); got != tc.want {
				t.Errorf("isHomebrewPath(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}
