package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"kverse-gamification-service/internal/domain"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		TTL string `yaml:"ttl"`
	} `yaml:"catalog"`
	Gamification struct {
		Points struct {
			CreatePost          int `yaml:"createPost"`
			CreatePostWithMedia int `yaml:"createPostWithMedia"`
			LikePost            int `yaml:"likePost"`
			Comment             int `yaml:"comment"`
			ChallengeSubmission int `yaml:"challengeSubmission"`
			ChallengeWin        int `yaml:"challengeWin"`
			GameWin             int `yaml:"gameWin"`
			DailyLogin          int `yaml:"dailyLogin"`
			InviteFriend        int `yaml:"inviteFriend"`
		} `yaml:"points"`
		// Levels maps level -> minimum cumulative points.
		Levels map[int]int `yaml:"levels"`
	} `yaml:"gamification"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ActionPoints maps the configured point values onto the domain table,
// falling back to the reference defaults for unset fields.
func (c Config) ActionPoints() domain.ActionPoints {
	points := domain.DefaultActionPoints()
	configured := c.Gamification.Points
	if configured.CreatePost > 0 {
		points.CreatePost = configured.CreatePost
	}
	if configured.CreatePostWithMedia > 0 {
		points.CreatePostWithMedia = configured.CreatePostWithMedia
	}
	if configured.LikePost > 0 {
		points.LikePost = configured.LikePost
	}
	if configured.Comment > 0 {
		points.Comment = configured.Comment
	}
	if configured.ChallengeSubmission > 0 {
		points.ChallengeSubmission = configured.ChallengeSubmission
	}
	if configured.ChallengeWin > 0 {
		points.ChallengeWin = configured.ChallengeWin
	}
	if configured.GameWin > 0 {
		points.GameWin = configured.GameWin
	}
	if configured.DailyLogin > 0 {
		points.DailyLogin = configured.DailyLogin
	}
	if configured.InviteFriend > 0 {
		points.InviteFriend = configured.InviteFriend
	}
	return points
}

// LevelTable builds the configured level table, defaulting to the canonical one.
func (c Config) LevelTable() (domain.LevelTable, error) {
	if len(c.Gamification.Levels) == 0 {
		return domain.DefaultLevelTable(), nil
	}
	return domain.NewLevelTable(c.Gamification.Levels)
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
