package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration loaded from environment variables.
// It is built once in main and passed by reference to the components that
// need it; nothing reads the environment after startup.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiryHours    int

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPFromName string
	SMTPUsername string
	SMTPPassword string

	SNSRegion string

	GoogleClientID string

	StripeSecretKey  string
	StripeCurrency   string
	StripeSuccessURL string
	StripeCancelURL  string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users    string
	Otps     string
	Products string
	Orders   string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "7000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:    getEnv("DYNAMO_TABLE_USERS", "users"),
			Otps:     getEnv("DYNAMO_TABLE_OTPS", "otps"),
			Products: getEnv("DYNAMO_TABLE_PRODUCTS", "products"),
			Orders:   getEnv("DYNAMO_TABLE_ORDERS", "orders"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "ironic-product-images"),

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiryHours:    getEnvInt("JWT_EXPIRY_HOURS", 24),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@ironicstore.example"),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "IRONIC Store"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		SNSRegion: getEnv("SNS_REGION", "us-east-1"),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		StripeSecretKey:  getEnv("STRIPE_SECRET", ""),
		StripeCurrency:   getEnv("STRIPE_CURRENCY", "cad"),
		StripeSuccessURL: getEnv("STRIPE_SUCCESS_URL", "https://ironic-gym-frontend.vercel.app/success"),
		StripeCancelURL:  getEnv("STRIPE_CANCEL_URL", "https://ironic-gym-frontend.vercel.app/cancel"),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
