package models

// LeaderboardEntry holds one name/score pair. Score is an elapsed
// completion time in seconds, so lower is better. Names are unique.
type LeaderboardEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// EndscreenStats is the percentile view of one attempt against the
// recorded leaderboard scores.
type EndscreenStats struct {
	ElapsedTime float64 `json:"elapsedTime"`
	Percentile  int     `json:"percentile"`
}
