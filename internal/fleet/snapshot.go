package fleet

// Snapshot returns a consistent point-in-time view of every live handle,
// oldest first. Taken under the lock so no partially-applied mutation
// (a spawn mid-commit, a reap mid-removal) is ever visible to a caller.
func (f *Fleet) Snapshot() (out []Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reap()

	out = make([]Snapshot, 0, len(f.handles))
	for _, h := range f.handles {
		out = append(out, Snapshot{
			PID:       h.PID,
			State:     h.State().String(),
			StartedAt: h.StartedAt,
		})
	}
	return
}
