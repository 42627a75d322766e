package cli

import "kverse-gamification-service/internal/domain"

// defaultQuizzes carries the shipped lyrics quiz; swap the static loader for
// the Postgres-backed one to serve editable catalogs.
func defaultQuizzes() map[string]domain.Quiz {
	return map[string]domain.Quiz{
		"lyrics": {
			ID:   "lyrics",
			Name: "Complete the Lyrics",
			Questions: []domain.Question{
				{
					ID:           "q1",
					Prompt:       "Cause I, I, I'm in the stars tonight, So watch me bring the ___ to life (Dynamite - BTS)",
					Options:      []string{"fire", "light", "night", "fight"},
					CorrectIndex: 0,
					Difficulty:   "Easy",
					Points:       30,
				},
				{
					ID:           "q2",
					Prompt:       "Now look at you, now look at me, Look at me, look at me now, ___ (How You Like That - BLACKPINK)",
					Options:      []string{"Hey!", "Yeah!", "Look!", "Go!"},
					CorrectIndex: 0,
					Difficulty:   "Medium",
					Points:       30,
				},
				{
					ID:           "q3",
					Prompt:       "Smooth like ___, like a criminal undercover (Butter - BTS)",
					Options:      []string{"sugar", "butter", "honey", "water"},
					CorrectIndex: 1,
					Difficulty:   "Easy",
					Points:       30,
				},
				{
					ID:           "q4",
					Prompt:       "Taste that pink venom, taste that pink venom, Get 'em, get 'em, ___ (Pink Venom - BLACKPINK)",
					Options:      []string{"go!", "yeah!", "get 'em!", "now!"},
					CorrectIndex: 2,
					Difficulty:   "Medium",
					Points:       30,
				},
				{
					ID:           "q5",
					Prompt:       "I said ___, you caught my eye (FANCY - TWICE)",
					Options:      []string{"fancy", "baby", "maybe", "lately"},
					CorrectIndex: 0,
					Difficulty:   "Easy",
					Points:       30,
				},
				{
					ID:           "q6",
					Prompt:       "Cookin' like a chef, I'm a 5-star ___ (God's Menu - Stray Kids)",
					Options:      []string{"chef", "Michelin", "master", "winner"},
					CorrectIndex: 1,
					Difficulty:   "Hard",
					Points:       30,
				},
				{
					ID:           "q7",
					Prompt:       "Narcissistic, my ___ likes me (Love Dive - IVE)",
					Options:      []string{"heart", "God", "soul", "mind"},
					CorrectIndex: 1,
					Difficulty:   "Medium",
					Points:       30,
				},
				{
					ID:           "q8",
					Prompt:       "I wanna be ___, I wanna be me (Wannabe - ITZY)",
					Options:      []string{"myself", "me", "free", "happy"},
					CorrectIndex: 1,
					Difficulty:   "Easy",
					Points:       30,
				},
			},
		},
	}
}

func defaultRewards() map[string]domain.Reward {
	return map[string]domain.Reward{
		"badge-dedicated-fan": {
			ID:          "badge-dedicated-fan",
			Name:        "Dedicated Fan Badge",
			Description: "Show everyone you never miss a comeback",
			Category:    "Badges",
			Type:        domain.RewardTypeBadge,
			BadgeToken:  "💜",
			Cost:        300,
		},
		"badge-trendsetter": {
			ID:          "badge-trendsetter",
			Name:        "Trendsetter Badge",
			Description: "For fans who set the trends, not follow them",
			Category:    "Badges",
			Type:        domain.RewardTypeBadge,
			BadgeToken:  "✨",
			Cost:        500,
		},
		"badge-music-lover": {
			ID:          "badge-music-lover",
			Name:        "Music Lover Badge",
			Description: "A badge for certified playlist curators",
			Category:    "Badges",
			Type:        domain.RewardTypeBadge,
			BadgeToken:  "🎵",
			Cost:        200,
		},
		"profile-frame-neon": {
			ID:          "profile-frame-neon",
			Name:        "Neon Profile Frame",
			Description: "A glowing frame for your profile picture",
			Category:    "Cosmetics",
			Type:        "cosmetic",
			Cost:        150,
		},
		"theme-midnight": {
			ID:          "theme-midnight",
			Name:        "Midnight Theme",
			Description: "Dark purple app theme",
			Category:    "Cosmetics",
			Type:        "cosmetic",
			Cost:        100,
		},
	}
}

func defaultChallenges() map[string]domain.Challenge {
	return map[string]domain.Challenge{
		"dance-cover-week": {
			ID:       "dance-cover-week",
			Title:    "Dance Cover of the Week",
			Category: "Dance",
			Emoji:    "💃",
			Prize:    150,
		},
		"fanart-showcase": {
			ID:       "fanart-showcase",
			Title:    "Fan Art Showcase",
			Category: "Art",
			Emoji:    "🎨",
			Prize:    150,
		},
		"vocal-challenge": {
			ID:       "vocal-challenge",
			Title:    "High Note Vocal Challenge",
			Category: "Vocal",
			Emoji:    "🎤",
			Prize:    150,
		},
		"stage-outfit-recreate": {
			ID:       "stage-outfit-recreate",
			Title:    "Recreate the Stage Outfit",
			Category: "Fashion",
			Emoji:    "👗",
			Prize:    150,
		},
	}
}
