package ramadan

import (
	"sort"

	"github.com/google/uuid"
	"github.com/karam/musabaqa/pkg/entity"
)

// OverallLeaderboard aggregates every supplied log per user and ranks the
// totals. Logs are expected to carry the joined user display fields; the
// caller owns snapshot consistency.
func OverallLeaderboard(logs []entity.DailyLog, settings *entity.GroupSettings) []entity.LeaderboardEntry {
	byUser := make(map[uuid.UUID]*entity.LeaderboardEntry)
	order := make([]uuid.UUID, 0, len(logs))

	for _, log := range logs {
		e, seen := byUser[log.UserID]
		if !seen {
			e = &entity.LeaderboardEntry{
				UserID:    log.UserID,
				UserName:  log.UserName,
				AvatarURL: log.AvatarURL,
			}
			byUser[log.UserID] = e
			order = append(order, log.UserID)
		}
		e.TaraweehTotal += log.TaraweehRakaat
		e.TahajjudTotal += log.TahajjudRakaat
		e.QuranPagesTotal += log.QuranPages
		e.TotalPoints += ComputeScore(log.TaraweehRakaat, log.TahajjudRakaat, log.QuranPages, settings)
		e.DaysLogged++
		if e.LastUpdated == nil || log.UpdatedAt.After(*e.LastUpdated) {
			updated := log.UpdatedAt
			e.LastUpdated = &updated
		}
	}

	entries := make([]entity.LeaderboardEntry, 0, len(order))
	for _, uid := range order {
		entries = append(entries, *byUser[uid])
	}
	return rank(entries)
}

// DailyLeaderboard ranks a single day. Users without a log for that day are
// absent, so every entry has DaysLogged == 1.
func DailyLeaderboard(logs []entity.DailyLog, dayNumber int, settings *entity.GroupSettings) []entity.LeaderboardEntry {
	entries := make([]entity.LeaderboardEntry, 0, len(logs))
	for _, log := range logs {
		if log.DayNumber != dayNumber {
			continue
		}
		updated := log.UpdatedAt
		entries = append(entries, entity.LeaderboardEntry{
			UserID:          log.UserID,
			UserName:        log.UserName,
			AvatarURL:       log.AvatarURL,
			TaraweehTotal:   log.TaraweehRakaat,
			TahajjudTotal:   log.TahajjudRakaat,
			QuranPagesTotal: log.QuranPages,
			TotalPoints:     ComputeScore(log.TaraweehRakaat, log.TahajjudRakaat, log.QuranPages, settings),
			DaysLogged:      1,
			LastUpdated:     &updated,
		})
	}
	return rank(entries)
}

// rank orders entries by total points desc, then quran pages desc, then
// taraweeh desc, then earliest last update. Entries missing a timestamp on
// either side keep their relative order, hence the stable sort. Ranks are
// consecutive positions, never shared.
func rank(entries []entity.LeaderboardEntry) []entity.LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.QuranPagesTotal != b.QuranPagesTotal {
			return a.QuranPagesTotal > b.QuranPagesTotal
		}
		if a.TaraweehTotal != b.TaraweehTotal {
			return a.TaraweehTotal > b.TaraweehTotal
		}
		if a.LastUpdated != nil && b.LastUpdated != nil {
			return a.LastUpdated.Before(*b.LastUpdated)
		}
		return false
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
