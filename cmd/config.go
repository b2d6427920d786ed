package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	TelegramBotToken     string
	PaymentProviderToken string
	StaffChatID          string
	StoreLatitude        string
	StoreLongitude       string
	DeliveryRatePerKm    string
	StoreTimezone        string
	ServiceOpenAt        string
	ServiceCloseAt       string
	PendingOrderTTL      string
	CourierPromptTTL     string
}
