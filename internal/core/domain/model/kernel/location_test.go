package kernel_test

import (
	"testing"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create location with valid coordinates", func(t *testing.T) {
		loc, err := kernel.NewLocation(41.314652, 69.240562)

		require.NoError(t, err)
		assert.NoError(t, loc.Validate())
		assert.InDelta(t, 41.314652, loc.Latitude(), 1e-9)
		assert.InDelta(t, 69.240562, loc.Longitude(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		boundaries := [][2]float64{
			{kernel.LatitudeMin, kernel.LongitudeMin},
			{kernel.LatitudeMax, kernel.LongitudeMax},
			{0, 0},
		}

		for _, b := range boundaries {
			_, err := kernel.NewLocation(b[0], b[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		_, err := kernel.NewLocation(90.5, 69.240562)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		_, err := kernel.NewLocation(41.314652, -180.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value location is invalid", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestLocation_String(t *testing.T) {
	t.Run("formats as latitude comma longitude", func(t *testing.T) {
		loc, err := kernel.NewLocation(41.314652, 69.240562)
		require.NoError(t, err)

		assert.Equal(t, "41.314652, 69.240562", loc.String())
	})

	t.Run("drops trailing zeros", func(t *testing.T) {
		loc, err := kernel.NewLocation(41.5, 69.0)
		require.NoError(t, err)

		assert.Equal(t, "41.5, 69", loc.String())
	})
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("equal coordinates are equal", func(t *testing.T) {
		loc1, _ := kernel.NewLocation(41.314652, 69.240562)
		loc2, _ := kernel.NewLocation(41.314652, 69.240562)

		equal, err := loc1.IsEqual(loc2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates are not equal", func(t *testing.T) {
		loc1, _ := kernel.NewLocation(41.314652, 69.240562)
		loc2, _ := kernel.NewLocation(41.326449, 69.228420)

		equal, err := loc1.IsEqual(loc2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		loc, _ := kernel.NewLocation(41.314652, 69.240562)
		var zero kernel.Location

		_, err := loc.IsEqual(zero)

		require.Error(t, err)
	})
}

func TestLocation_DistanceKmTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		loc, _ := kernel.NewLocation(41.314652, 69.240562)

		km, err := loc.DistanceKmTo(loc)

		require.NoError(t, err)
		assert.InDelta(t, 0, km, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		store, _ := kernel.NewLocation(41.314652, 69.240562)
		client, _ := kernel.NewLocation(41.326449, 69.228420)

		there, err := store.DistanceKmTo(client)
		require.NoError(t, err)
		back, err := client.DistanceKmTo(store)
		require.NoError(t, err)

		assert.InDelta(t, there, back, 1e-9)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a, _ := kernel.NewLocation(41.0, 69.0)
		b, _ := kernel.NewLocation(42.0, 69.0)

		km, err := a.DistanceKmTo(b)

		require.NoError(t, err)
		assert.InDelta(t, 111.19, km, 0.1)
	})

	t.Run("distance from zero value fails", func(t *testing.T) {
		var zero kernel.Location
		loc, _ := kernel.NewLocation(41.314652, 69.240562)

		_, err := zero.DistanceKmTo(loc)

		require.Error(t, err)
	})
}
