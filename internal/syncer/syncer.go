package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/mod/semver"
)

var (
	// ErrAlreadyCurrent signals the local catalog matches the remote.
	ErrAlreadyCurrent = errors.New("catalog is already up to date")
)

// NetworkError wraps a timeout or cancellation of a simulated transfer.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network %s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was a deadline expiry rather
// than an explicit cancellation.
func (e *NetworkError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// Progress reports the stage of a running transfer.
type Progress struct {
	Stage   string
	Message string
}

// CheckResult is the outcome of a catalog version check.
type CheckResult struct {
	LocalVersion    string
	RemoteVersion   string
	UpdateAvailable bool
}

// SyncResult summarizes a completed sync.
type SyncResult struct {
	CatalogVersion string
	Duration       time.Duration
}

// Syncer simulates catalog downloads and profile sync. Transfers carry
// no real payload; they model latency, cancellation, and timeouts so
// the calling layer exercises the same control flow a real backend
// would need. Transfers never touch the progress store, so a cancelled
// one leaves durable state unchanged.
type Syncer struct {
	latency       time.Duration
	timeout       time.Duration
	remoteVersion string
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithLatency sets the simulated transfer latency.
func WithLatency(d time.Duration) Option {
	return func(s *Syncer) { s.latency = d }
}

// WithTimeout sets the per-transfer deadline. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Syncer) { s.timeout = d }
}

// WithRemoteVersion sets the catalog version the simulated remote
// reports.
func WithRemoteVersion(v string) Option {
	return func(s *Syncer) { s.remoteVersion = v }
}

// New creates a Syncer with a 1.5s simulated latency and a 30s timeout.
func New(opts ...Option) *Syncer {
	s := &Syncer{
		latency: 1500 * time.Millisecond,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check compares the local catalog version against the simulated
// remote. Versions are plain semver without the "v" prefix.
func (s *Syncer) Check(ctx context.Context, localVersion string) (*CheckResult, error) {
	if err := s.wait(ctx, "check"); err != nil {
		return nil, err
	}

	result := &CheckResult{
		LocalVersion:  localVersion,
		RemoteVersion: s.remoteVersion,
	}
	if s.remoteVersion != "" {
		result.UpdateAvailable = semver.Compare("v"+s.remoteVersion, "v"+localVersion) > 0
	}
	return result, nil
}

// DownloadCourse simulates downloading one course's content. The
// progress callback receives stage updates; it may be nil.
func (s *Syncer) DownloadCourse(ctx context.Context, courseID string, progress func(Progress)) error {
	report := func(stage, msg string) {
		if progress != nil {
			progress(Progress{Stage: stage, Message: msg})
		}
	}

	report("download", fmt.Sprintf("Downloading %s...", courseID))
	if err := s.wait(ctx, "download"); err != nil {
		return err
	}
	report("done", fmt.Sprintf("Downloaded %s", courseID))
	return nil
}

// Sync simulates a full catalog and profile sync. Returns
// ErrAlreadyCurrent when the remote has nothing newer.
func (s *Syncer) Sync(ctx context.Context, localVersion string, progress func(Progress)) (*SyncResult, error) {
	report := func(stage, msg string) {
		if progress != nil {
			progress(Progress{Stage: stage, Message: msg})
		}
	}
	start := time.Now()

	report("check", "Checking for catalog updates...")
	check, err := s.Check(ctx, localVersion)
	if err != nil {
		return nil, err
	}
	if !check.UpdateAvailable {
		return nil, ErrAlreadyCurrent
	}

	report("sync", fmt.Sprintf("Syncing catalog %s...", check.RemoteVersion))
	if err := s.wait(ctx, "sync"); err != nil {
		return nil, err
	}

	report("done", fmt.Sprintf("Catalog updated to %s", check.RemoteVersion))
	return &SyncResult{
		CatalogVersion: check.RemoteVersion,
		Duration:       time.Since(start),
	}, nil
}

// wait blocks for the simulated latency, honoring cancellation and the
// configured timeout.
func (s *Syncer) wait(ctx context.Context, op string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return &NetworkError{Op: op, Err: ctx.Err()}
	}
}
