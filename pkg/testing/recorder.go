package testing

// Recorder accumulates string-valued events so tests can assert on exact
// call sequences.
type Recorder struct {
	events []string
}

// Record appends an event.
func (r *Recorder) Record(event string) {
	r.events = append(r.events, event)
}

// Events returns the recorded sequence.
func (r *Recorder) Events() []string {
	return r.events
}

// Count returns the number of recorded events equal to event, or the total
// when event is empty.
func (r *Recorder) Count(event string) int {
	if event == "" {
		return len(r.events)
	}
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

// Reset clears the recording.
func (r *Recorder) Reset() {
	r.events = nil
}
