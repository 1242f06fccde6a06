package shared_test

import (
	"context"
	"errors"
	"flexwork/shared"
	"flexwork/shared/cache/mocks"
	"flexwork/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("b-1", "id", "bookings")

	assert.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorEq, Table: "bookings"}, filter)

	where, args := group.GetWhereClause()
	assert.Equal(t, "(bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		parts  []string
		want   string
	}{
		{name: "prefix only", prefix: "team:get", want: "team:get"},
		{name: "single part", prefix: "team:get", parts: []string{"t-1"}, want: "team:get:t-1"},
		{name: "several parts", prefix: "limiter", parts: []string{"10.0.0.1", "curl"}, want: "limiter:10.0.0.1:curl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "team:get:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "team:get")

	mockCache.EXPECT().Clear(gomock.Any(), "team:get:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "team:get")
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{name: "nil", values: nil, want: []string{}},
		{name: "no repeats", values: []string{"b", "a"}, want: []string{"b", "a"}},
		{name: "repeats keep first position", values: []string{"b-2", "b-1", "b-2", "b-1", "b-3"}, want: []string{"b-2", "b-1", "b-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.Unique(tt.values))
		})
	}
}
