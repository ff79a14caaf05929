package mastery

// DefaultMastery is the neutral prior assigned to competencies with no
// recorded history.
const DefaultMastery = 0.5

// Snapshot maps competency IDs to mastery values in [0,1]. It preserves
// insertion order, which the gap detector uses as a stable tie-break.
// A Snapshot is derived state: recomputed on demand, never stored.
type Snapshot struct {
	ids    []string
	values map[string]float64
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{values: make(map[string]float64)}
}

// Set stores a mastery value, preserving the position of the first insertion.
func (s *Snapshot) Set(id string, v float64) {
	if _, ok := s.values[id]; !ok {
		s.ids = append(s.ids, id)
	}
	s.values[id] = v
}

// Get returns the mastery for a competency, defaulting to DefaultMastery
// for IDs absent from the snapshot.
func (s *Snapshot) Get(id string) float64 {
	if v, ok := s.values[id]; ok {
		return v
	}
	return DefaultMastery
}

// Lookup returns the mastery for a competency and whether it is present.
func (s *Snapshot) Lookup(id string) (float64, bool) {
	v, ok := s.values[id]
	return v, ok
}

// IDs returns the competency IDs in insertion order.
func (s *Snapshot) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of competencies in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.ids)
}
