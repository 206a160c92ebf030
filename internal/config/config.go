package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

const (
	StoreMemory = "memory"

	LLMProviderGemini     = "gemini"
	LLMProviderOpenAI     = "openai"
	LLMProviderVolcengine = "volcengine"
	LLMProviderNone       = "none"
)

type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// memory | sqlite | mysql | postgres
	DBType     string `env:"DBType" envDefault:"memory"`
	DSNURL     string `env:"DSN_URL" envDefault:""`
	DBUser     string `env:"DBUser" envDefault:""`
	DBPassword string `env:"DBPassword" envDefault:""`
	DBAddr     string `env:"DBAddr" envDefault:""`
	DBName     string `env:"DBName" envDefault:"promptvault"`
	DBPath     string `env:"DBPath" envDefault:"datas/promptvault.db"`
	DBPort     string `env:"DBPort" envDefault:"3306"`

	// 默认用户，未指定 userId 的提示词归属于该用户
	DefaultUsername string `env:"DEFAULT_USERNAME" envDefault:"John Doe"`
	DefaultPassword string `env:"DEFAULT_PASSWORD" envDefault:"password"`

	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	GeminiAPIKey  string `env:"GEMINI_API_KEY" envDefault:""`
	GeminiModel   string `env:"GEMINI_MODEL" envDefault:"gemini-pro"`
	GeminiBaseURL string `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`

	// OpenAI 兼容接口（OpenRouter、AiHubMix、DashScope 兼容模式均可）
	OpenAIAPIKey  string `env:"OPENAI_API_KEY" envDefault:""`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL" envDefault:""`

	VolcengineAPIKey string `env:"VOLCENGINE_API_KEY" envDefault:""`
	VolcengineModel  string `env:"VOLCENGINE_MODEL" envDefault:"doubao-seed-1-6-250615"`

	// local | s3 | r2 | oss | cos | none
	StorageType          string `env:"STORAGE_TYPE" envDefault:"local"`
	StorageLocalDir      string `env:"STORAGE_LOCAL_DIR" envDefault:"datas/exports"`
	StoragePublicBaseURL string `env:"STORAGE_PUBLIC_BASE_URL" envDefault:"/files"`

	// S3 兼容存储配置
	StorageS3Region          string `env:"STORAGE_S3_REGION"`
	StorageS3Bucket          string `env:"STORAGE_S3_BUCKET"`
	StorageS3Prefix          string `env:"STORAGE_S3_PREFIX"`
	StorageS3Endpoint        string `env:"STORAGE_S3_ENDPOINT"`
	StorageS3AccessKeyID     string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	StorageS3SecretAccessKey string `env:"STORAGE_S3_SECRET_ACCESS_KEY"`
	StorageS3SessionToken    string `env:"STORAGE_S3_SESSION_TOKEN"`
	StorageS3ForcePathStyle  bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`

	// 阿里云 OSS 存储配置
	StorageOSSEndpoint        string `env:"STORAGE_OSS_ENDPOINT"`
	StorageOSSBucket          string `env:"STORAGE_OSS_BUCKET"`
	StorageOSSPrefix          string `env:"STORAGE_OSS_PREFIX"`
	StorageOSSAccessKeyID     string `env:"STORAGE_OSS_ACCESS_KEY_ID"`
	StorageOSSAccessKeySecret string `env:"STORAGE_OSS_ACCESS_KEY_SECRET"`

	// 腾讯云 COS 存储配置
	StorageCOSBucketURL string `env:"STORAGE_COS_BUCKET_URL"`
	StorageCOSPrefix    string `env:"STORAGE_COS_PREFIX"`
	StorageCOSSecretID  string `env:"STORAGE_COS_SECRET_ID"`
	StorageCOSSecretKey string `env:"STORAGE_COS_SECRET_KEY"`

	// Cloudflare R2 存储配置
	StorageR2AccountID       string `env:"STORAGE_R2_ACCOUNT_ID"`
	StorageR2Endpoint        string `env:"STORAGE_R2_ENDPOINT"`
	StorageR2Region          string `env:"STORAGE_R2_REGION" envDefault:"auto"`
	StorageR2Bucket          string `env:"STORAGE_R2_BUCKET"`
	StorageR2Prefix          string `env:"STORAGE_R2_PREFIX"`
	StorageR2AccessKeyID     string `env:"STORAGE_R2_ACCESS_KEY_ID"`
	StorageR2SecretAccessKey string `env:"STORAGE_R2_SECRET_ACCESS_KEY"`
}

func ParseConfig() (Config, error) {
	var Conf Config
	err := env.Parse(&Conf)
	if err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return Config{}, err
	}
	logrus.WithFields(logrus.Fields{
		"db_type":      Conf.DBType,
		"llm_provider": Conf.LLMProvider,
		"storage_type": Conf.StorageType,
	}).Debug("config parsed")
	return Conf, nil
}
