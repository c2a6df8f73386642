package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/ramadan"
	"github.com/karam/musabaqa/internal/repository"
	"github.com/karam/musabaqa/pkg/entity"
)

// LeaderboardService feeds stored logs into the ranking engine. All the
// ordering rules live in the ramadan package; this layer only supplies a
// consistent snapshot.
type LeaderboardService struct {
	groupsRepo      repository.GroupsRepositoryI
	membershipsRepo repository.MembershipsRepositoryI
	logsRepo        repository.DailyLogsRepositoryI
}

func NewLeaderboardService(
	groupsRepo repository.GroupsRepositoryI,
	membershipsRepo repository.MembershipsRepositoryI,
	logsRepo repository.DailyLogsRepositoryI,
) *LeaderboardService {
	if groupsRepo == nil || membershipsRepo == nil || logsRepo == nil {
		log.Fatal("on leaderboard service provided nil repos")
	}
	return &LeaderboardService{
		groupsRepo:      groupsRepo,
		membershipsRepo: membershipsRepo,
		logsRepo:        logsRepo,
	}
}

func (lbs *LeaderboardService) Overall(ctx context.Context, slug string, userID uuid.UUID) ([]entity.LeaderboardEntry, error) {
	groupID, settings, err := lbs.memberSettings(ctx, slug, userID)
	if err != nil {
		return nil, err
	}
	logs, err := lbs.logsRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return ramadan.OverallLeaderboard(logs, settings), nil
}

func (lbs *LeaderboardService) Daily(ctx context.Context, slug string, userID uuid.UUID, dayNumber int) ([]entity.LeaderboardEntry, error) {
	groupID, settings, err := lbs.memberSettings(ctx, slug, userID)
	if err != nil {
		return nil, err
	}
	logs, err := lbs.logsRepo.ListByGroupAndDay(ctx, groupID, dayNumber)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	return ramadan.DailyLeaderboard(logs, dayNumber, settings), nil
}

func (lbs *LeaderboardService) memberSettings(ctx context.Context, slug string, userID uuid.UUID) (uuid.UUID, *entity.GroupSettings, error) {
	group, err := lbs.groupsRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			return uuid.UUID{}, nil, errorvalues.ErrGroupNotFound
		}
		return uuid.UUID{}, nil, errors.New("groups repository error: " + err.Error())
	}
	if _, err := lbs.membershipsRepo.Find(ctx, userID, group.ID); err != nil {
		if errors.Is(err, errorvalues.ErrNotMember) {
			return uuid.UUID{}, nil, errorvalues.ErrNotMember
		}
		return uuid.UUID{}, nil, errors.New("memberships repository error: " + err.Error())
	}
	settings, err := lbs.groupsRepo.GetSettings(ctx, group.ID)
	if err != nil {
		return uuid.UUID{}, nil, errors.New("groups repository error: " + err.Error())
	}
	return group.ID, settings, nil
}
