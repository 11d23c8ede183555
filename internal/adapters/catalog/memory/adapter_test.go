package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bebond/concierge-search/internal/domain/entities"
)

func TestListings_ScopesByOrgAndPostType(t *testing.T) {
	adapter := NewAdapter(Fixtures())
	ctx := context.Background()

	all, err := adapter.Listings(ctx, "BB_vrconcierge", "")
	require.NoError(t, err)
	assert.Len(t, all, len(Fixtures()))

	restaurants, err := adapter.Listings(ctx, "BB_vrconcierge", "restaurant")
	require.NoError(t, err)
	for _, l := range restaurants {
		assert.Equal(t, "restaurant", l.PostType)
	}
	assert.Less(t, len(restaurants), len(all))

	other, err := adapter.Listings(ctx, "BB_other_org", "")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestListings_ReturnsFreshSnapshot(t *testing.T) {
	adapter := NewAdapter(Fixtures())
	ctx := context.Background()

	first, err := adapter.Listings(ctx, "BB_vrconcierge", "")
	require.NoError(t, err)
	first[0].Title = "mutated"

	second, err := adapter.Listings(ctx, "BB_vrconcierge", "")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Title)
}

func TestHierarchy_CountsActiveListingsOnly(t *testing.T) {
	adapter := NewAdapter(Fixtures())

	h, err := adapter.Hierarchy(context.Background(), "BB_vrconcierge")
	require.NoError(t, err)

	us := h.Countries["United States"]
	require.NotNil(t, us)

	nj := us.Regions["New Jersey"]
	require.NotNil(t, nj)

	hoboken := nj.Cities["Hoboken"]
	require.NotNil(t, hoboken)
	// Corner Bistro is inactive and must not be counted anywhere.
	assert.Equal(t, 3, hoboken.Count)
	assert.Equal(t, 2, hoboken.Neighbourhoods["Uptown"])
	assert.Equal(t, 1, hoboken.Neighbourhoods["Waterfront"])

	italy := h.Countries["Italy"]
	require.NotNil(t, italy)
	assert.Equal(t, 1, italy.Count)
}

func TestHierarchy_UnknownOrgIsEmptyNotError(t *testing.T) {
	adapter := NewAdapter(Fixtures())

	h, err := adapter.Hierarchy(context.Background(), "BB_other_org")
	require.NoError(t, err)
	assert.Empty(t, h.Countries)
}

func TestNewAdapter_CopiesInput(t *testing.T) {
	src := []entities.Listing{{ID: "x", OrgKey: "o", IsActive: true}}
	adapter := NewAdapter(src)
	src[0].ID = "changed"

	got, err := adapter.Listings(context.Background(), "o", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "x", got[0].ID)
}
