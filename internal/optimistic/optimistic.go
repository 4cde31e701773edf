// Package optimistic implements the optimistic-update-with-rollback
// discipline for local state backed by a durable store: snapshot the current
// value, apply the intended change immediately, issue the durable write, and
// restore the snapshot if the write fails.
package optimistic

// Apply mutates *state through mutate, then calls persist. On persist failure
// the pre-mutation snapshot is restored and the error returned; on success the
// snapshot is discarded.
//
// mutate must return fresh state rather than mutating shared structures in
// place (for slices, append to a copy), or the restored snapshot would alias
// the failed change.
func Apply[S any](state *S, mutate func(S) S, persist func() error) error {
	snapshot := *state
	*state = mutate(*state)
	if err := persist(); err != nil {
		*state = snapshot
		return err
	}
	return nil
}
