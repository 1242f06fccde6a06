package dto_test

import (
	"flexwork/shared/constant"
	"flexwork/shared/dto"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		sortable       []string
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "date",
				"sort_dir": "asc",
			},
			defaultRequest: false,
			sortable:       []string{"date", "created_at"},
			expected:       dto.QueryParams{Page: 2, Limit: 20, SortBy: "date", SortDir: "ASC"},
		},
		{
			name:           "with unlisted sort column",
			queryParams:    map[string]string{"sort_by": "date; DROP TABLE bookings", "sort_dir": "desc"},
			defaultRequest: false,
			sortable:       []string{"date"},
			expected:       dto.QueryParams{SortDir: "DESC"},
		},
		{
			name:           "with no sortable columns",
			queryParams:    map[string]string{"sort_by": "date"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with invalid page and limit",
			queryParams:    map[string]string{"page": "-1", "limit": "abc"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with invalid sort direction",
			queryParams:    map[string]string{"sort_dir": "sideways"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			var params dto.QueryParams
			params.FromRequest(req, tt.defaultRequest, tt.sortable...)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "user_id", Operator: dto.FilterOperatorEq, Value: "u1", Table: "bookings"},
			wantWhere: "bookings.user_id = :user_id",
			wantArgs:  map[string]any{"user_id": "u1"},
		},
		{
			name:      "greater or equal with arg name",
			filter:    dto.Filter{ArgName: "start", Field: "date", Operator: dto.FilterOperatorGreaterEq, Value: "2024-03-01"},
			wantWhere: "date >= :start",
			wantArgs:  map[string]any{"start": "2024-03-01"},
		},
		{
			name:      "in slice",
			filter:    dto.Filter{Field: "id", Operator: dto.FilterOperatorIn, Value: []string{"a", "b"}},
			wantWhere: "id IN (:id_0, :id_1) ",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "not in slice",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorNotIn, Value: []string{"CANCELLED", "DECLINED"}},
			wantWhere: "status NOT IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "CANCELLED", "status_1": "DECLINED"},
		},
		{
			name:      "array contains",
			filter:    dto.Filter{Field: "member_ids", Operator: dto.FilterOperatorAny, Value: "u1", ArgName: "member"},
			wantWhere: ":member = ANY(member_ids)",
			wantArgs:  map[string]any{"member": "u1"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "processed_at", Operator: dto.FilterIsNull},
			wantWhere: "processed_at IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "team_id", Operator: dto.FilterOperatorEq, Value: "t1"},
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "PENDING"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(team_id = :team_id AND status = :status)", where)
	assert.Equal(t, map[string]any{"team_id": "t1", "status": "PENDING"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
