package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/cogscreen/internal/domain"
	"github.com/abhisek/cogscreen/internal/risk"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testProfile(session string, overall int, at time.Time) *Profile {
	return &Profile{
		Profile: risk.Profile{
			DomainScores:    map[domain.Domain]float64{domain.Memory: 80, domain.Attention: 72.5},
			OverallScore:    overall,
			RiskLevel:       risk.Classify(overall, risk.DefaultThresholds()),
			Strengths:       []string{risk.StrengthKey(domain.Memory)},
			Concerns:        []string{},
			Recommendations: []string{"rec.physical_activity"},
		},
		SessionID: session,
		UpdatedAt: at,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		if n <= last {
			t.Fatalf("sequence %d not greater than %d", n, last)
		}
		last = n
	}
}

func TestProfileGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.ProfileRepo().Get(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProfileSetAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Set(ctx, "u1", testProfile("s1", 86, now)))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.SessionID)
	assert.Equal(t, 86, got.OverallScore)
	assert.Equal(t, risk.LevelLow, got.RiskLevel)
	assert.Equal(t, 72.5, got.DomainScores[domain.Attention])
	assert.True(t, got.UpdatedAt.Equal(now))

	// Set replaces the latest profile.
	require.NoError(t, repo.Set(ctx, "u1", testProfile("s2", 40, now.Add(time.Hour))))
	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "s2", got.SessionID)
	assert.Equal(t, risk.LevelHigh, got.RiskLevel)
}

func TestProfileHistoryAndPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 4; i++ {
		p := testProfile(fmt.Sprintf("s%d", i), 50+i, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Set(ctx, "u1", p))
	}
	require.NoError(t, repo.Set(ctx, "u2", testProfile("other", 90, base)))

	hist, err := repo.History(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 4)
	assert.Equal(t, "s4", hist[0].SessionID)
	assert.Equal(t, "s1", hist[3].SessionID)

	hist, err = repo.History(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "s3", hist[1].SessionID)

	require.NoError(t, repo.Prune(ctx, "u1", 2))
	hist, err = repo.History(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "s4", hist[0].SessionID)
	assert.Equal(t, "s3", hist[1].SessionID)

	// Pruning one user leaves others alone.
	hist, err = repo.History(ctx, "u2", 0)
	require.NoError(t, err)
	assert.Len(t, hist, 1)

	// Fewer entries than keep is a no-op.
	require.NoError(t, repo.Prune(ctx, "u2", 5))
	hist, err = repo.History(ctx, "u2", 0)
	require.NoError(t, err)
	assert.Len(t, hist, 1)
}

func TestSessionEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for _, action := range []string{"start", "phase", "complete"} {
		err := events.AppendSessionEvent(ctx, SessionEventData{
			SessionID: "sess",
			UserID:    "u1",
			Action:    action,
			Phase:     "analysis",
			Detail:    map[string]any{"overall": 86},
		})
		require.NoError(t, err)
	}
	require.NoError(t, events.AppendSessionEvent(ctx, SessionEventData{SessionID: "other", Action: "start"}))

	got, err := events.SessionEvents(ctx, "sess", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "start", got[0].Action)
	assert.Equal(t, "complete", got[2].Action)
	assert.Equal(t, 86.0, got[0].Detail["overall"])
	assert.Less(t, got[0].Sequence, got[1].Sequence)

	after, err := events.SessionEvents(ctx, "sess", QueryOpts{After: got[0].Sequence, Limit: 1})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "phase", after[0].Action)

	other, err := events.SessionEvents(ctx, "other", QueryOpts{})
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Empty(t, other[0].Detail)
}

func TestDefaultDBPath_Env(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("COGSCREEN_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
	info, err := os.Stat(filepath.Dir(p))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("COGSCREEN_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cogscreen", "cogscreen.db"), got)
}

// openTestRedis connects to the server named by COGSCREEN_TEST_REDIS
// (e.g. localhost:6379) or, when unset, to an in-process miniredis.
func openTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("COGSCREEN_TEST_REDIS")
	if addr == "" {
		addr = miniredis.RunT(t).Addr()
	}
	client, err := OpenRedis(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisProfileRepo(t *testing.T) {
	ctx := context.Background()
	client := openTestRedis(t)

	user := "test-" + strings.ReplaceAll(t.Name(), "/", "_")
	t.Cleanup(func() { client.Del(ctx, latestKey(user), historyKey(user)) })

	repo := NewRedisProfileRepo(client)
	_, err := repo.Get(ctx, user)
	require.ErrorIs(t, err, ErrNotFound)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Set(ctx, user, testProfile(fmt.Sprintf("s%d", i), 60+i, now.Add(time.Duration(i)*time.Hour))))
	}

	got, err := repo.Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "s4", got.SessionID)
	assert.Equal(t, 64, got.OverallScore)
	assert.Equal(t, 80.0, got.DomainScores[domain.Memory])
	assert.True(t, now.Add(4*time.Hour).Equal(got.UpdatedAt))

	hist, err := repo.History(ctx, user, 2)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "s4", hist[0].SessionID)
	assert.Equal(t, "s3", hist[1].SessionID)

	require.NoError(t, repo.Prune(ctx, user, 2))
	hist, err = repo.History(ctx, user, 0)
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "s4", hist[0].SessionID)
	assert.Equal(t, "s3", hist[1].SessionID)

	require.NoError(t, repo.Prune(ctx, user, 5))
	hist, err = repo.History(ctx, user, 0)
	require.NoError(t, err)
	assert.Len(t, hist, 2)

	require.NoError(t, repo.Prune(ctx, user, 0))
	hist, err = repo.History(ctx, user, 0)
	require.NoError(t, err)
	assert.Empty(t, hist)

	// Pruning history leaves the latest profile in place.
	got, err = repo.Get(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "s4", got.SessionID)
}

func TestOpenRedis_Unreachable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenRedis(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
