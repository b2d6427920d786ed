package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		TelegramBotToken:     "123:test-token",
		PaymentProviderToken: "test-provider-token",
		StaffChatID:          "-1001234567890",
		StoreLatitude:        "41.314652",
		StoreLongitude:       "69.240562",
		DeliveryRatePerKm:    "3800",
		StoreTimezone:        "Asia/Tashkent",
		ServiceOpenAt:        "06:00",
		ServiceCloseAt:       "01:00",
		PendingOrderTTL:      "15m",
		CourierPromptTTL:     "30m",
	}
}

func TestStoreClock_ReportsStoreLocalTime(t *testing.T) {
	tz := time.FixedZone("UTC+5", 5*60*60)

	now := storeClock(tz)()

	assert.Same(t, tz, now.Location())
	_, offset := now.Zone()
	assert.Equal(t, 5*60*60, offset)
}

func TestNewCompositionRoot_ClockUsesStoreTimezone(t *testing.T) {
	root, err := NewCompositionRoot(testConfig(), nil)

	require.NoError(t, err)
	assert.Equal(t, "Asia/Tashkent", root.clock().Location().String())
}

func TestNewCompositionRoot_RejectsUnknownStoreTimezone(t *testing.T) {
	config := testConfig()
	config.StoreTimezone = "Mars/Olympus"

	_, err := NewCompositionRoot(config, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_TIMEZONE")
}

func TestNewCompositionRoot_RejectsMalformedCourierPromptTTL(t *testing.T) {
	config := testConfig()
	config.CourierPromptTTL = "soon"

	_, err := NewCompositionRoot(config, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "COURIER_PROMPT_TTL")
}
