package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Env         Env
	Server      ServerConfig
	Upload      UploadDefaults
	Settings    SettingsConfig
	Attachments AttachmentsConfig
	Minio       MinioConfig
	HTTPClient  HTTPClientConfig
	NATS        NATSConfig
	Database    DatabaseConfig
}

type Env struct {
	Env string `envconfig:"ENV" default:"DEV"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"localhost"`
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

// UploadDefaults seeds the upload config used until the user saves settings
type UploadDefaults struct {
	Endpoint       string `envconfig:"UPLOAD_ENDPOINT" default:""`
	FileFieldName  string `envconfig:"UPLOAD_FILE_FIELD_NAME" default:"file"`
	ResponsePath   string `envconfig:"UPLOAD_RESPONSE_PATH" default:"url"`
	PdfDisposition string `envconfig:"UPLOAD_PDF_DISPOSITION" default:"save_locally"`
}

type SettingsConfig struct {
	Path string `envconfig:"SETTINGS_PATH" default:"settings.json"`
}

type AttachmentsConfig struct {
	Backend string `envconfig:"ATTACHMENTS_BACKEND" default:"local"`
	Dir     string `envconfig:"ATTACHMENTS_DIR" default:"attachments"`
}

type MinioConfig struct {
	Endpoint   string `envconfig:"MINIO_ENDPOINT" default:""`
	BucketName string `envconfig:"MINIO_BUCKET_NAME" default:"attachments"`
	AccessKey  string `envconfig:"MINIO_ACCESS_KEY" default:""`
	SecretKey  string `envconfig:"MINIO_SECRET_KEY" default:""`
	UseSSL     bool   `envconfig:"MINIO_USE_SSL" default:"false"`
}

type HTTPClientConfig struct {
	Timeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5m"`
}

type NATSConfig struct {
	Enabled      bool   `envconfig:"NATS_ENABLED" default:"false"`
	URL          string `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	StreamName   string `envconfig:"NATS_STREAM_NAME" default:"editor-events"`
	ConsumerName string `envconfig:"NATS_CONSUMER_NAME" default:"paste-upload"`
	Subject      string `envconfig:"NATS_SUBJECT" default:"editor.events.drop"`
	DeliverGroup string `envconfig:"NATS_DELIVER_GROUP" default:"paste-upload"`
}

type DatabaseConfig struct {
	Host           string        `envconfig:"DB_HOST" required:"true"`
	Port           int           `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	Name           string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSLMODE" default:"disable"`
	MaxOpenCons    int           `envconfig:"DB_MAX_OPEN_CONS" default:"25"`
	MaxIdleCons    int           `envconfig:"DB_MAX_IDLE_CONS" default:"5"`
	ConMaxLifeTime time.Duration `envconfig:"DB_CONMAX_LIFE_TIME" default:"5m"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
