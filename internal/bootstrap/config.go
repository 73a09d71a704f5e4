package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort       string `mapstructure:"SERVER_PORT"`
	GrpcPort         string `mapstructure:"GRPC_PORT"`
	RedisUrl         string `mapstructure:"REDIS_URL"`
	MongoUri         string `mapstructure:"MONGO_URI"`
	MongoDatabase    string `mapstructure:"MONGO_DB"`
	RecordTTLHours   int    `mapstructure:"RECORD_TTL_HOURS"`
	IsLocalCors      bool   `mapstructure:"LOCAL_CORS"`
	FeatureDenseOnly bool   `mapstructure:"FEATURE_DENSE_ONLY"`
	ImportDir        string `mapstructure:"IMPORT_DIR"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GRPC_PORT", "8082")
	v.SetDefault("REDIS_URL", "localhost:6379")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "goban")
	v.SetDefault("RECORD_TTL_HOURS", 24)
	v.SetDefault("LOCAL_CORS", false)
	v.SetDefault("FEATURE_DENSE_ONLY", false)
	v.SetDefault("IMPORT_DIR", "")
}

// Setup reads cfgPath (any format viper understands, typically .env);
// environment variables override file values.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(cfgPath)
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
