package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bebond/concierge-search/pkg/errors"
)

func TestConfigService_DefaultsToRestaurant(t *testing.T) {
	cfg, err := NewConfigService().Get("")
	require.NoError(t, err)

	assert.Equal(t, "restaurant", cfg.PostType)
	require.NotEmpty(t, cfg.SortOptions)
	assert.Equal(t, "sort_rating", cfg.SortOptions[0].Field)
	assert.True(t, cfg.SortOptions[0].Default)

	distance := -1
	for i, opt := range cfg.SortOptions {
		if opt.Field == SortFieldDistance {
			distance = i
			break
		}
	}
	require.NotEqual(t, -1, distance, "restaurant config offers distance sort")
	assert.True(t, cfg.SortOptions[distance].RequiresLocation)
}

func TestConfigService_UnknownPostType(t *testing.T) {
	_, err := NewConfigService().Get("spaceport")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
}
