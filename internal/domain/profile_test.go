package domain_test

import (
	"errors"
	"testing"

	"kverse-gamification-service/internal/domain"
)

func TestLedgerDebitNeverOverdraws(t *testing.T) {
	ledger := domain.NewPointLedger(50)

	if _, err := ledger.Debit(60); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
	if ledger.Balance() != 50 {
		t.Fatalf("failed debit must not mutate balance, got %d", ledger.Balance())
	}

	balance, err := ledger.Debit(50)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if balance != 0 {
		t.Fatalf("expected balance 0, got %d", balance)
	}
	if _, err := ledger.Debit(1); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance at zero, got %v", err)
	}
}

func TestLedgerRejectsNonPositiveAmounts(t *testing.T) {
	ledger := domain.NewPointLedger(10)
	if _, err := ledger.Credit(0); !errors.Is(err, domain.ErrNonPositiveAmount) {
		t.Fatalf("expected non-positive error, got %v", err)
	}
	if _, err := ledger.Debit(-5); !errors.Is(err, domain.ErrNonPositiveAmount) {
		t.Fatalf("expected non-positive error, got %v", err)
	}
	if ledger.Balance() != 10 {
		t.Fatalf("balance must be unchanged, got %d", ledger.Balance())
	}
}

func TestLevelForCanonicalTable(t *testing.T) {
	table := domain.DefaultLevelTable()

	cases := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{999, 4},
		{1000, 5},
		{1250, 5},
		{9999, 9},
		{10000, 10},
		{50000, 10},
	}
	for _, tc := range cases {
		if got := table.LevelFor(tc.points); got != tc.level {
			t.Fatalf("LevelFor(%d) = %d, want %d", tc.points, got, tc.level)
		}
	}

	// Monotonic non-decreasing over a sweep.
	prev := table.LevelFor(0)
	for points := 1; points <= 11000; points += 13 {
		level := table.LevelFor(points)
		if level < prev {
			t.Fatalf("level decreased at %d points: %d -> %d", points, prev, level)
		}
		prev = level
	}
}

func TestLevelTableRejectsBadThresholds(t *testing.T) {
	if _, err := domain.NewLevelTable(map[int]int{1: 0, 2: 100, 3: 100}); err == nil {
		t.Fatalf("expected error for non-increasing thresholds")
	}
	if _, err := domain.NewLevelTable(map[int]int{1: 10, 2: 100}); err == nil {
		t.Fatalf("expected error for nonzero base threshold")
	}
	if _, err := domain.NewLevelTable(nil); err == nil {
		t.Fatalf("expected error for empty table")
	}
}

func TestBadgeAwardIdempotent(t *testing.T) {
	badges := domain.NewBadgeCollection([]string{"🎵"})

	if result := badges.Award("🏆"); result != domain.BadgeAwarded {
		t.Fatalf("expected awarded, got %s", result)
	}
	size := badges.Len()
	if result := badges.Award("🏆"); result != domain.BadgeAlreadyOwned {
		t.Fatalf("expected already owned, got %s", result)
	}
	if badges.Len() != size {
		t.Fatalf("re-award changed badge set size: %d -> %d", size, badges.Len())
	}
	if !badges.Has("🎵") || !badges.Has("🏆") {
		t.Fatalf("expected both badges present, got %v", badges.List())
	}
}

func TestCountersRejectUnknownNames(t *testing.T) {
	var counters domain.AchievementCounters
	if err := counters.Increment("followers"); !errors.Is(err, domain.ErrUnknownCounter) {
		t.Fatalf("expected unknown counter error, got %v", err)
	}
	for _, name := range []domain.Counter{domain.CounterPosts, domain.CounterChallengesWon, domain.CounterGamesWon} {
		if err := counters.Increment(name); err != nil {
			t.Fatalf("increment %s: %v", name, err)
		}
	}
	if counters.Posts != 1 || counters.ChallengesWon != 1 || counters.GamesWon != 1 {
		t.Fatalf("unexpected counters %+v", counters)
	}
}

func TestApplyPointDeltaRouting(t *testing.T) {
	profile := domain.NewProfile(domain.ProfileSeed{ID: "u1", Points: 100}, domain.DefaultLevelTable())

	if balance, err := profile.ApplyPointDelta(50); err != nil || balance != 150 {
		t.Fatalf("credit delta: balance=%d err=%v", balance, err)
	}
	if balance, err := profile.ApplyPointDelta(-150); err != nil || balance != 0 {
		t.Fatalf("debit delta: balance=%d err=%v", balance, err)
	}
	if _, err := profile.ApplyPointDelta(-1); !errors.Is(err, domain.ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}
	if balance, err := profile.ApplyPointDelta(0); err != nil || balance != 0 {
		t.Fatalf("zero delta: balance=%d err=%v", balance, err)
	}
}

func TestProfileLevelTracksBalance(t *testing.T) {
	table := domain.DefaultLevelTable()
	profile := domain.NewProfile(domain.ProfileSeed{ID: "u1"}, table)

	deltas := []int{10, 200, 300, 700, -150, 5000}
	for _, delta := range deltas {
		if _, err := profile.ApplyPointDelta(delta); err != nil {
			t.Fatalf("delta %d: %v", delta, err)
		}
		snap := profile.Snapshot()
		if snap.Level != table.LevelFor(snap.Points) {
			t.Fatalf("level %d out of sync with points %d", snap.Level, snap.Points)
		}
	}
}

func TestSnapshotMatchesSeed(t *testing.T) {
	seed := domain.DefaultProfileSeed()
	profile := domain.NewProfile(seed, domain.DefaultLevelTable())
	snap := profile.Snapshot()

	if snap.Points != 1250 || snap.Level != 5 {
		t.Fatalf("expected seed balance 1250 at level 5, got %d/%d", snap.Points, snap.Level)
	}
	if len(snap.Badges) != 3 {
		t.Fatalf("expected 3 seed badges, got %v", snap.Badges)
	}
	if snap.PostsCount != 42 || snap.ChallengesWon != 8 || snap.GamesWon != 15 {
		t.Fatalf("unexpected seed counters %+v", snap)
	}
}

func TestUpdateMetaKeepsUnsetFields(t *testing.T) {
	profile := domain.NewProfile(domain.DefaultProfileSeed(), domain.DefaultLevelTable())

	profile.UpdateMeta(domain.ProfileMeta{DisplayName: "Sam", FavoriteGroup: "TWICE"})
	meta := profile.Meta()
	if meta.DisplayName != "Sam" || meta.FavoriteGroup != "TWICE" {
		t.Fatalf("update not applied: %+v", meta)
	}
	if meta.Username != "kpop_lover_2024" {
		t.Fatalf("unset field overwritten: %+v", meta)
	}
}
