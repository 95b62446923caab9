package ports

import "context"

// SyncReport summarizes one pull of remote order state into local storage.
type SyncReport struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// LocalSynchronizer pulls order state from the remote source of truth
// into the local store at the end of a run, so the next sweep sees the
// fresh rows. Optional: when no synchronizer is wired the autopilot
// operates on local state as-is.
type LocalSynchronizer interface {
	SyncFromRemote(ctx context.Context) (SyncReport, error)
}
