package config

import (
	"os"
	"strings"
)

// Storage backends.
const (
	StorageDisk  = "disk"
	StorageS3    = "s3"
	StorageMinio = "minio"
)

// Config holds everything the service reads from the environment,
// resolved once at startup. Nothing else reads env vars.
type Config struct {
	Port string

	// Database: postgres when DatabaseURL is set, sqlite otherwise.
	DatabaseURL string
	SQLitePath  string

	// Blob storage.
	StorageBackend string
	UploadDir      string

	S3AccountID       string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3BucketName      string
	S3Region          string

	MinioEndpoint        string
	MinioAccessKeyID     string
	MinioSecretAccessKey string
	MinioBucketName      string
	MinioUseSSL          bool

	// Session tokens for citizens; office shared secret for staff login.
	SessionSecret string
	OfficeSecret  string

	// Classifier wiring decision: path to a model weights file. Empty
	// means no model, and every report is categorized Unknown.
	ModelPath string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getEnv("SQLITE_PATH", "fixmycity.db"),

		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", StorageDisk)),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		S3AccountID:       os.Getenv("S3_ACCOUNT_ID"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3BucketName:      os.Getenv("S3_BUCKET_NAME"),
		S3Region:          getEnv("S3_REGION", "auto"),

		MinioEndpoint:        getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKeyID:     getEnv("MINIO_ACCESS_KEY_ID", "minioadmin"),
		MinioSecretAccessKey: getEnv("MINIO_SECRET_ACCESS_KEY", "minioadmin"),
		MinioBucketName:      getEnv("MINIO_BUCKET_NAME", "reports"),
		MinioUseSSL:          getEnv("MINIO_USE_SSL", "false") == "true",

		SessionSecret: getEnv("SESSION_SECRET", "fixmycity_secret"),
		OfficeSecret:  getEnv("OFFICE_SECRET", "office_secret"),

		ModelPath: os.Getenv("MODEL_PATH"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
