package services

import (
	"math"
	"sort"
	"strings"

	"github.com/stzanetis/BureaucracySimulator-BE/models"
	"github.com/stzanetis/BureaucracySimulator-BE/utils"
)

// Leaderboard returns a copy of all entries sorted ascending by score.
// Lower scores (faster completion times) rank first; ties keep their
// insertion order.
func Leaderboard() []models.LeaderboardEntry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]models.LeaderboardEntry, len(leaderboard))
	copy(out, leaderboard)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

// UpsertLeaderboardEntry inserts or replaces the entry for name. An
// existing entry keeps its position and takes the new score; a new one
// is appended under the trimmed name.
func UpsertLeaderboardEntry(name string, score float64) (models.LeaderboardEntry, error) {
	if strings.TrimSpace(name) == "" {
		return models.LeaderboardEntry{}, utils.ValidationError("Name is required for leaderboard.")
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return models.LeaderboardEntry{}, utils.ValidationError("Score must be numeric.")
	}

	mu.Lock()
	defer mu.Unlock()
	for i := range leaderboard {
		if leaderboard[i].Name == name {
			leaderboard[i].Score = score
			return leaderboard[i], nil
		}
	}
	entry := models.LeaderboardEntry{Name: strings.TrimSpace(name), Score: score}
	leaderboard = append(leaderboard, entry)
	return entry, nil
}

// DeleteLeaderboardEntry removes the entry for name.
func DeleteLeaderboardEntry(name string) error {
	mu.Lock()
	defer mu.Unlock()
	for i := range leaderboard {
		if leaderboard[i].Name == name {
			leaderboard = append(leaderboard[:i], leaderboard[i+1:]...)
			return nil
		}
	}
	return utils.NotFoundError("Leaderboard entry not found.")
}

// EndscreenStats reports which fraction of recorded scores an elapsed
// time beats, under lower-is-better ordering. An empty leaderboard
// yields percentile 100: there is nothing to lose against.
func EndscreenStats(elapsedTime float64) models.EndscreenStats {
	mu.Lock()
	defer mu.Unlock()
	if len(leaderboard) == 0 {
		return models.EndscreenStats{ElapsedTime: elapsedTime, Percentile: 100}
	}
	better := 0
	for _, entry := range leaderboard {
		if entry.Score > elapsedTime {
			better++
		}
	}
	percentile := int(math.Round(float64(better) / float64(len(leaderboard)) * 100))
	return models.EndscreenStats{ElapsedTime: elapsedTime, Percentile: percentile}
}
