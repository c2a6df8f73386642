package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/karam/musabaqa/internal/error_values"
	"github.com/karam/musabaqa/internal/repository/mocks"
	"github.com/karam/musabaqa/internal/service"
	"github.com/karam/musabaqa/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestLeaderboardService(t *testing.T) {
	ctrl := gomock.NewController(t)
	groupsRepo := mocks.NewMockGroupsRepositoryI(ctrl)
	membershipsRepo := mocks.NewMockMembershipsRepositoryI(ctrl)
	logsRepo := mocks.NewMockDailyLogsRepositoryI(ctrl)
	lbs := service.NewLeaderboardService(groupsRepo, membershipsRepo, logsRepo)

	userID := uuid.New()
	aliceID := uuid.New()
	bilalID := uuid.New()
	groupID := uuid.New()
	group := &entity.Group{ID: groupID, Slug: "masjid-an-nour"}
	membership := &entity.Membership{UserID: userID, GroupID: groupID, Role: entity.RoleMember}
	settings := &entity.GroupSettings{
		GroupID:              groupID,
		NumDays:              30,
		TaraweehCap:          11,
		TahajjudCap:          11,
		QuranPagesCap:        20,
		PointsWeightTaraweeh: 1,
		PointsWeightTahajjud: 1,
		PointsWeightQuran:    1,
	}
	now := time.Now()
	logs := []entity.DailyLog{
		{UserID: aliceID, UserName: "Alice", DayNumber: 1, TaraweehRakaat: 11, QuranPages: 20, UpdatedAt: now},
		{UserID: bilalID, UserName: "Bilal", DayNumber: 1, TaraweehRakaat: 8, QuranPages: 10, UpdatedAt: now},
		{UserID: aliceID, UserName: "Alice", DayNumber: 2, TahajjudRakaat: 4, QuranPages: 15, UpdatedAt: now.Add(time.Hour)},
	}
	ctx := context.Background()

	t.Run("overall ranks by total points", func(t *testing.T) {
		groupsRepo.EXPECT().GetBySlug(gomock.Any(), group.Slug).Return(group, nil)
		membershipsRepo.EXPECT().Find(gomock.Any(), userID, groupID).Return(membership, nil)
		groupsRepo.EXPECT().GetSettings(gomock.Any(), groupID).Return(settings, nil)
		logsRepo.EXPECT().ListByGroup(gomock.Any(), groupID).Return(logs, nil)

		entries, err := lbs.Overall(ctx, group.Slug, userID)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, "Alice", entries[0].UserName)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, 50.0, entries[0].TotalPoints)
		assert.Equal(t, 2, entries[0].DaysLogged)
		assert.Equal(t, "Bilal", entries[1].UserName)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, 18.0, entries[1].TotalPoints)
	})
	t.Run("daily uses one day only", func(t *testing.T) {
		groupsRepo.EXPECT().GetBySlug(gomock.Any(), group.Slug).Return(group, nil)
		membershipsRepo.EXPECT().Find(gomock.Any(), userID, groupID).Return(membership, nil)
		groupsRepo.EXPECT().GetSettings(gomock.Any(), groupID).Return(settings, nil)
		logsRepo.EXPECT().ListByGroupAndDay(gomock.Any(), groupID, 1).Return(logs[:2], nil)

		entries, err := lbs.Daily(ctx, group.Slug, userID, 1)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, 31.0, entries[0].TotalPoints)
		assert.Equal(t, 1, entries[0].DaysLogged)
	})
	t.Run("membership required", func(t *testing.T) {
		groupsRepo.EXPECT().GetBySlug(gomock.Any(), group.Slug).Return(group, nil)
		membershipsRepo.EXPECT().Find(gomock.Any(), userID, groupID).Return(nil, errorvalues.ErrNotMember)

		_, err := lbs.Overall(ctx, group.Slug, userID)
		assert.ErrorIs(t, err, errorvalues.ErrNotMember)
	})
}
