package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/BatlZlat/gornostyle-sub004/internal/domain"
	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testGroups() []*domain.GroupTraining {
	return []*domain.GroupTraining{{
		ID:                  "g1",
		Date:                time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC),
		StartTime:           "10:00",
		EndTime:             "11:00",
		SportType:           domain.SportSki,
		MaxParticipants:     4,
		CurrentParticipants: 3,
		Status:              domain.GroupStatusOpen,
		PricePerPerson:      decimal.NewFromInt(1500),
	}}
}

func TestGroupCache_SetAndGet(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewGroupCache(rdb, time.Minute, newTestLogger(t))

	groups := testGroups()
	data, err := json.Marshal(groups)
	require.NoError(t, err)

	key := GroupsKey(nil)
	mock.ExpectSet(key, string(data), time.Minute).SetVal("OK")
	mock.ExpectSAdd(groupsIndexKey, key).SetVal(1)
	mock.ExpectGet(key).SetVal(string(data))

	c.SetGroups(context.Background(), key, groups)
	got, ok := c.GetGroups(context.Background(), key)

	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "g1", got[0].ID)
	assert.Equal(t, 1, got[0].FreeSeats())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupCache_Miss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewGroupCache(rdb, time.Minute, newTestLogger(t))

	mock.ExpectGet("groups:2026-01-17").RedisNil()

	date := time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC)
	_, ok := c.GetGroups(context.Background(), GroupsKey(&date))

	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupCache_ReadErrorIsMiss(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewGroupCache(rdb, time.Minute, newTestLogger(t))

	mock.ExpectGet("groups:all").SetErr(errors.New("connection refused"))

	_, ok := c.GetGroups(context.Background(), "groups:all")

	assert.False(t, ok)
}

func TestGroupCache_Invalidate(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c := NewGroupCache(rdb, time.Minute, newTestLogger(t))

	mock.ExpectSMembers(groupsIndexKey).SetVal([]string{"groups:all", "groups:2026-01-17"})
	mock.ExpectDel("groups:all", "groups:2026-01-17", groupsIndexKey).SetVal(3)

	c.InvalidateGroups(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupCache_Disabled(t *testing.T) {
	c := NewGroupCache(nil, time.Minute, newTestLogger(t))

	c.SetGroups(context.Background(), "groups:all", testGroups())
	_, ok := c.GetGroups(context.Background(), "groups:all")
	c.InvalidateGroups(context.Background())

	assert.False(t, ok)
}
