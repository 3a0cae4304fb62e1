// Package notify checks values against a fixed threshold and renders the
// outcome as a message.
package notify

import "fmt"

// Notifier reports whether values exceed an integer threshold. The
// threshold is fixed at construction.
type Notifier struct {
	threshold int
}

// New returns a Notifier with the given threshold.
func New(threshold int) *Notifier {
	return &Notifier{threshold: threshold}
}

// ShouldNotify reports whether value is strictly greater than the threshold.
func (n *Notifier) ShouldNotify(value int) bool {
	return value > n.threshold
}

// Message renders the notification for value.
func (n *Notifier) Message(value int) string {
	if n.ShouldNotify(value) {
		return fmt.Sprintf("Threshold exceeded! Value: %d", value)
	}
	return "Value within threshold."
}

// Threshold returns the configured threshold.
func (n *Notifier) Threshold() int {
	return n.threshold
}
