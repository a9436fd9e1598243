package items

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func filterFromQuery(t *testing.T, rawQuery string) (ItemFilter, []string) {
	t.Helper()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/items?"+rawQuery, nil)

	return ParseItemFilter(c)
}

func TestParseItemFilter_AllCriteria(t *testing.T) {
	filter, warnings := filterFromQuery(t,
		"query=vélo&category=cat-1&condition=good&condition=fair&min_price=10&max_price=50&location=Lyon&delivery_available=true&is_negotiable=true&sort_by=price_low")

	assert.Empty(t, warnings)
	assert.Equal(t, "vélo", filter.Query)
	assert.Equal(t, "cat-1", filter.CategoryID)
	assert.Equal(t, []models.ItemCondition{models.ConditionGood, models.ConditionFair}, filter.Conditions)
	assert.Equal(t, 10.0, *filter.MinPrice)
	assert.Equal(t, 50.0, *filter.MaxPrice)
	assert.Equal(t, "Lyon", filter.Location)
	assert.True(t, filter.DeliveryAvailable)
	assert.False(t, filter.PickupAvailable)
	assert.True(t, filter.IsNegotiable)
	assert.Equal(t, SortPriceLow, filter.SortBy)
}

func TestParseItemFilter_UnknownConditionIgnored(t *testing.T) {
	filter, warnings := filterFromQuery(t, "condition=good&condition=brand_new")

	assert.Equal(t, []models.ItemCondition{models.ConditionGood}, filter.Conditions)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "unknown condition ignored: brand_new")
}

func TestParseItemFilter_NegativePriceIgnored(t *testing.T) {
	filter, warnings := filterFromQuery(t, "min_price=-5")

	assert.Nil(t, filter.MinPrice)
	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "invalid min_price ignored: -5")
}

func TestParseItemFilter_BooleanOnlyFiltersWhenTrue(t *testing.T) {
	filter, warnings := filterFromQuery(t, "delivery_available=false&pickup_available=yes")

	assert.Empty(t, warnings)
	assert.False(t, filter.DeliveryAvailable)
	assert.False(t, filter.PickupAvailable)
}

func TestOrderClause(t *testing.T) {
	cases := []struct {
		sortBy string
		want   string
	}{
		{SortNewest, "created_at DESC, id DESC"},
		{SortOldest, "created_at ASC, id ASC"},
		{SortPriceLow, "price ASC, id DESC"},
		{SortPriceHigh, "price DESC, id DESC"},
		{SortMostViewed, "views DESC, id DESC"},
		{SortMostFavorited, "favorites DESC, id DESC"},
		{"", "created_at DESC, id DESC"},
		{"alphabetical", "created_at DESC, id DESC"},
	}

	for _, tc := range cases {
		filter := ItemFilter{SortBy: tc.sortBy}
		assert.Equal(t, tc.want, filter.OrderClause(), "sort_by=%q", tc.sortBy)
	}
}
