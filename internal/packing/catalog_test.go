package packing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/packlist/backend/internal/domain"
	"github.com/pkordes/packlist/backend/internal/packing"
)

func TestCatalog_EveryActivityHasTemplates(t *testing.T) {
	acts := packing.Activities()
	require.Len(t, acts, 20)

	for _, a := range acts {
		tpls, ok := packing.ActivityTemplates(a)
		assert.True(t, ok, "activity %q", a)
		assert.NotEmpty(t, tpls, "activity %q", a)
	}
}

func TestCatalog_WeatherBands(t *testing.T) {
	assert.Equal(t,
		[]domain.Weather{domain.WeatherHot, domain.WeatherMild, domain.WeatherCold},
		packing.WeatherBands())

	assert.True(t, packing.IsWeather(domain.WeatherCold))
	assert.False(t, packing.IsWeather("arctic"))

	_, ok := packing.WeatherTemplates("arctic")
	assert.False(t, ok)
}

func TestCatalog_UnknownActivity(t *testing.T) {
	tpls, ok := packing.ActivityTemplates("Underwater Basket Weaving")
	assert.False(t, ok)
	assert.Nil(t, tpls)
}

// TestCatalog_AccessorsReturnCopies guards the read-only tables: a caller
// scribbling on a returned slice must not change what Generate sees.
func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	ess := packing.EssentialTemplates()
	ess[0].Name = "Mutated"

	hot, _ := packing.WeatherTemplates(domain.WeatherHot)
	hot[0].Category = domain.CategoryClothing

	acts := packing.Activities()
	acts[0] = "Mutated"

	assert.Equal(t, "Passport", packing.EssentialTemplates()[0].Name)
	fresh, _ := packing.WeatherTemplates(domain.WeatherHot)
	assert.Equal(t, domain.CategoryPersonalCare, fresh[0].Category)
	assert.Equal(t, domain.ActivityBeach, packing.Activities()[0])
}
