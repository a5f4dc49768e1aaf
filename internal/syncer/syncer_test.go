package syncer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastSyncer(opts ...Option) *Syncer {
	base := []Option{WithLatency(5 * time.Millisecond), WithTimeout(time.Second)}
	return New(append(base, opts...)...)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		local  string
		remote string
		want   bool
	}{
		{"newer remote", "1.2.0", "1.3.0", true},
		{"same version", "1.2.0", "1.2.0", false},
		{"older remote", "1.3.0", "1.2.0", false},
		{"major bump", "1.9.9", "2.0.0", true},
		{"no remote", "1.2.0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fastSyncer(WithRemoteVersion(tt.remote))
			result, err := s.Check(context.Background(), tt.local)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.UpdateAvailable)
			assert.Equal(t, tt.local, result.LocalVersion)
		})
	}
}

func TestDownloadCourseReportsProgress(t *testing.T) {
	s := fastSyncer()

	var stages []string
	err := s.DownloadCourse(context.Background(), "es-basics-1", func(p Progress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"download", "done"}, stages)
}

func TestDownloadCourseCancellation(t *testing.T) {
	s := New(WithLatency(5 * time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := s.DownloadCourse(ctx, "es-basics-1", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.False(t, netErr.Timeout())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second, "cancellation must interrupt the transfer")
}

func TestDownloadCourseTimeout(t *testing.T) {
	s := New(WithLatency(5*time.Second), WithTimeout(10*time.Millisecond))

	err := s.DownloadCourse(context.Background(), "es-basics-1", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
	assert.Equal(t, "download", netErr.Op)
}

func TestSyncAlreadyCurrent(t *testing.T) {
	s := fastSyncer(WithRemoteVersion("1.2.0"))

	_, err := s.Sync(context.Background(), "1.2.0", nil)
	assert.ErrorIs(t, err, ErrAlreadyCurrent)
}

func TestSyncSuccess(t *testing.T) {
	s := fastSyncer(WithRemoteVersion("1.3.0"))

	var stages []string
	result, err := s.Sync(context.Background(), "1.2.0", func(p Progress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", result.CatalogVersion)
	assert.Equal(t, []string{"check", "sync", "done"}, stages)
}

func TestSyncCancellationSurfacesNetworkError(t *testing.T) {
	s := New(WithLatency(5 * time.Second), WithRemoteVersion("9.9.9"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Sync(ctx, "1.0.0", nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "check", netErr.Op)
}

func TestNetworkErrorMessage(t *testing.T) {
	err := &NetworkError{Op: "sync", Err: errors.New("boom")}
	assert.Contains(t, err.Error(), "sync")
	assert.Contains(t, err.Error(), "boom")
}
