package models

// Target describes one fuzz harness known to the orchestrator.
//
// Roster order encodes priority: earlier targets cover the surfaces most
// likely to hide exploitable bugs and run first so a short campaign still
// produces signal.
type Target struct {
	Name        string
	Description string
}

// LogName is the per-target log artifact file name. Reruns of the same
// target overwrite it; different targets never collide.
func (t *Target) LogName() string {
	return "fuzz-" + t.Name + ".log"
}
