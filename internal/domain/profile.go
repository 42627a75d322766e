package domain

import (
	"fmt"
	"sort"
)

// LevelTable maps levels to their minimum cumulative point balance. Thresholds
// are strictly increasing, so levels are totally ordered by balance.
type LevelTable struct {
	levels     []int
	thresholds []int
}

// NewLevelTable builds a table from level -> minimum points. The lowest level
// must start at 0 and thresholds must strictly increase with level.
func NewLevelTable(minimums map[int]int) (LevelTable, error) {
	if len(minimums) == 0 {
		return LevelTable{}, fmt.Errorf("level table: empty")
	}
	levels := make([]int, 0, len(minimums))
	for level := range minimums {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	table := LevelTable{levels: levels, thresholds: make([]int, len(levels))}
	for i, level := range levels {
		table.thresholds[i] = minimums[level]
		if i == 0 {
			if minimums[level] != 0 {
				return LevelTable{}, fmt.Errorf("level table: lowest level %d must start at 0", level)
			}
			continue
		}
		if minimums[level] <= table.thresholds[i-1] {
			return LevelTable{}, fmt.Errorf("level table: threshold for level %d not strictly increasing", level)
		}
	}
	return table, nil
}

// DefaultLevelTable is the canonical ten-level table from the reference configuration.
func DefaultLevelTable() LevelTable {
	table, err := NewLevelTable(map[int]int{
		1: 0, 2: 100, 3: 250, 4: 500, 5: 1000,
		6: 2000, 7: 3500, 8: 5000, 9: 7500, 10: 10000,
	})
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return table
}

// LevelFor returns the highest level whose threshold does not exceed balance.
func (t LevelTable) LevelFor(balance int) int {
	level := t.levels[0]
	for i, min := range t.thresholds {
		if balance < min {
			break
		}
		level = t.levels[i]
	}
	return level
}

// PointLedger owns the authoritative point balance. The balance never goes
// negative: a debit that would overdraw fails and leaves it unchanged.
type PointLedger struct {
	balance int
}

func NewPointLedger(balance int) PointLedger {
	if balance < 0 {
		balance = 0
	}
	return PointLedger{balance: balance}
}

func (l *PointLedger) Balance() int { return l.balance }

// Credit adds amount to the balance and returns the new balance.
func (l *PointLedger) Credit(amount int) (int, error) {
	if amount <= 0 {
		return l.balance, ErrNonPositiveAmount
	}
	l.balance += amount
	return l.balance, nil
}

// Debit subtracts amount, all-or-nothing.
func (l *PointLedger) Debit(amount int) (int, error) {
	if amount <= 0 {
		return l.balance, ErrNonPositiveAmount
	}
	if l.balance < amount {
		return l.balance, ErrInsufficientBalance
	}
	l.balance -= amount
	return l.balance, nil
}

// AwardResult reports the outcome of a badge award.
type AwardResult string

const (
	BadgeAwarded      AwardResult = "awarded"
	BadgeAlreadyOwned AwardResult = "already_owned"
)

// BadgeCollection is the set of earned badges. Badges are permanent; there is
// no removal operation.
type BadgeCollection struct {
	order []string
	seen  map[string]struct{}
}

func NewBadgeCollection(badges []string) BadgeCollection {
	collection := BadgeCollection{seen: make(map[string]struct{}, len(badges))}
	for _, badge := range badges {
		collection.Award(badge)
	}
	return collection
}

// Award inserts the badge if absent. Re-awarding is a non-fatal no-op.
func (b *BadgeCollection) Award(badgeID string) AwardResult {
	if b.seen == nil {
		b.seen = make(map[string]struct{})
	}
	if _, ok := b.seen[badgeID]; ok {
		return BadgeAlreadyOwned
	}
	b.seen[badgeID] = struct{}{}
	b.order = append(b.order, badgeID)
	return BadgeAwarded
}

func (b *BadgeCollection) Has(badgeID string) bool {
	_, ok := b.seen[badgeID]
	return ok
}

// List returns badges in award order.
func (b *BadgeCollection) List() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

func (b *BadgeCollection) Len() int { return len(b.order) }

// Counter names the fixed achievement counters.
type Counter string

const (
	CounterPosts         Counter = "posts"
	CounterChallengesWon Counter = "challengesWon"
	CounterGamesWon      Counter = "gamesWon"
)

// AchievementCounters are monotonically increasing and never decremented.
type AchievementCounters struct {
	Posts         int
	ChallengesWon int
	GamesWon      int
}

// Increment bumps the named counter by 1.
func (c *AchievementCounters) Increment(name Counter) error {
	switch name {
	case CounterPosts:
		c.Posts++
	case CounterChallengesWon:
		c.ChallengesWon++
	case CounterGamesWon:
		c.GamesWon++
	default:
		return ErrUnknownCounter
	}
	return nil
}

// ProfileMeta holds the mutable identity fields, opaque to the gamification core.
type ProfileMeta struct {
	Username      string `json:"username"`
	DisplayName   string `json:"displayName"`
	Bio           string `json:"bio"`
	FavoriteGroup string `json:"favoriteGroup"`
	JoinedDate    string `json:"joinedDate"`
}

// ProfileSeed is the record a profile is created from and reset to on logout.
type ProfileSeed struct {
	ID       string
	Meta     ProfileMeta
	Points   int
	Badges   []string
	Counters AchievementCounters
}

// DefaultProfileSeed mirrors the reference seed record.
func DefaultProfileSeed() ProfileSeed {
	return ProfileSeed{
		ID: "1",
		Meta: ProfileMeta{
			Username:      "kpop_lover_2024",
			DisplayName:   "Alex",
			Bio:           "KPOP enthusiast | BTS ARMY 💜",
			FavoriteGroup: "BTS",
			JoinedDate:    "2024-01-15",
		},
		Points: 1250,
		Badges: []string{"🎵", "🏆", "⭐"},
		Counters: AchievementCounters{
			Posts:         42,
			ChallengesWon: 8,
			GamesWon:      15,
		},
	}
}

// Profile aggregates the point ledger, badge set, achievement counters, and
// identity metadata into one consistent record. The level is always derived
// from the balance, never stored on its own.
type Profile struct {
	id       string
	meta     ProfileMeta
	ledger   PointLedger
	badges   BadgeCollection
	counters AchievementCounters
	levels   LevelTable
}

func NewProfile(seed ProfileSeed, levels LevelTable) *Profile {
	return &Profile{
		id:       seed.ID,
		meta:     seed.Meta,
		ledger:   NewPointLedger(seed.Points),
		badges:   NewBadgeCollection(seed.Badges),
		counters: seed.Counters,
		levels:   levels,
	}
}

func (p *Profile) ID() string        { return p.id }
func (p *Profile) Balance() int      { return p.ledger.Balance() }
func (p *Profile) Level() int        { return p.levels.LevelFor(p.ledger.Balance()) }
func (p *Profile) Meta() ProfileMeta { return p.meta }

// Credit adds points to the ledger.
func (p *Profile) Credit(amount int) (int, error) {
	return p.ledger.Credit(amount)
}

// Debit removes points, failing without mutation when the balance is short.
func (p *Profile) Debit(amount int) (int, error) {
	return p.ledger.Debit(amount)
}

// ApplyPointDelta routes a signed delta through credit or debit. A zero delta
// leaves the balance unchanged.
func (p *Profile) ApplyPointDelta(delta int) (int, error) {
	switch {
	case delta > 0:
		return p.ledger.Credit(delta)
	case delta < 0:
		return p.ledger.Debit(-delta)
	default:
		return p.ledger.Balance(), nil
	}
}

func (p *Profile) GrantBadge(badgeID string) AwardResult {
	return p.badges.Award(badgeID)
}

func (p *Profile) HasBadge(badgeID string) bool { return p.badges.Has(badgeID) }

func (p *Profile) BumpCounter(name Counter) error {
	return p.counters.Increment(name)
}

// UpdateMeta applies a metadata update; empty fields keep their current value.
func (p *Profile) UpdateMeta(update ProfileMeta) {
	if update.Username != "" {
		p.meta.Username = update.Username
	}
	if update.DisplayName != "" {
		p.meta.DisplayName = update.DisplayName
	}
	if update.Bio != "" {
		p.meta.Bio = update.Bio
	}
	if update.FavoriteGroup != "" {
		p.meta.FavoriteGroup = update.FavoriteGroup
	}
	if update.JoinedDate != "" {
		p.meta.JoinedDate = update.JoinedDate
	}
}

// Snapshot returns a consistent read-only view with the derived level.
func (p *Profile) Snapshot() ProfileSnapshot {
	return ProfileSnapshot{
		ID:            p.id,
		Username:      p.meta.Username,
		DisplayName:   p.meta.DisplayName,
		Bio:           p.meta.Bio,
		FavoriteGroup: p.meta.FavoriteGroup,
		JoinedDate:    p.meta.JoinedDate,
		Points:        p.ledger.Balance(),
		Level:         p.levels.LevelFor(p.ledger.Balance()),
		Badges:        p.badges.List(),
		PostsCount:    p.counters.Posts,
		ChallengesWon: p.counters.ChallengesWon,
		GamesWon:      p.counters.GamesWon,
	}
}
