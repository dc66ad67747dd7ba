package config

type Config struct {
	Server                    ServerConfig          `mapstructure:"server"`
	DB                        DBConfig              `mapstructure:"database"`
	Redis                     RedisConfig           `mapstructure:"redis"`
	Mongo                     MongoConfig           `mapstructure:"mongo"`
	Elastic                   ElasticConfig         `mapstructure:"elastic"`
	Kafka                     KafkaConfig           `mapstructure:"kafka"`
	KafkaUserConsumer         KafkaConsumerBinding  `mapstructure:"kafka_user_consumer"`
	KafkaUserFollowsConsumer  KafkaConsumerBinding  `mapstructure:"kafka_user_follow_consumer"`
	KafkaActivityConsumer     KafkaConsumerBinding  `mapstructure:"kafka_activity_consumer"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type ElasticConfig struct {
	Address  string         `mapstructure:"address"`
	Username string         `mapstructure:"username"`
	Password string         `mapstructure:"password"`
	Indices  ElasticIndices `mapstructure:"indices"`
}

type ElasticIndices struct {
	UserIndex string `mapstructure:"user_index"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

// KafkaConsumerBinding binds one canal CDC topic to a consumer group.
type KafkaConsumerBinding struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}
