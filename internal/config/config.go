package config

import "strconv"

// Config carries credentials and tunables for the external collaborators.
// It is built once in main and injected; nothing reads these from package
// state at call time.
type Config struct {
	SMSAPIURL   string
	SMSUser     string
	SMSPassword string
	SMSSenderID string

	// Key for sealing payment-method client secrets at rest.
	SecretKey string

	// Success probability of the simulated gateway, 0..1.
	GatewaySuccessRate float64

	ServerAddr string
}

// Load reads the application config from the environment. InitDB has
// already pulled in .env at this point.
func Load() Config {
	rate, err := strconv.ParseFloat(getEnv("GATEWAY_SUCCESS_RATE", "0.9"), 64)
	if err != nil || rate < 0 || rate > 1 {
		rate = 0.9
	}
	return Config{
		SMSAPIURL:          getEnv("SMS_API_URL", "https://smsvas.com/bulk/public/index.php/api/v1/sendsms"),
		SMSUser:            getEnv("SMS_API_USER", ""),
		SMSPassword:        getEnv("SMS_API_PASSWORD", ""),
		SMSSenderID:        getEnv("SMS_SENDER_ID", "Favour Express"),
		SecretKey:          getEnv("SECRET_KEY", ""),
		GatewaySuccessRate: rate,
		ServerAddr:         getEnv("SERVER_ADDR", "0.0.0.0:8080"),
	}
}
