package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	confv1 "user-records-example/internal/conf/v1"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// EnvPrefix 环境变量前缀，例如 USERSVC_DATA_DRIVER 覆盖 data.driver
const EnvPrefix = "USERSVC"

// Module 提供 Fx 模块
var Module = fx.Module("config",
	fx.Provide(
		func() (*confv1.Bootstrap, error) {
			configPath := getConfigPath()

			conf, err := Init(configPath)
			if err != nil {
				return nil, err
			}
			fmt.Printf("Configuration loaded from: %s\n", configPath)
			return conf, nil
		},
	),
)

// Init 加载配置：默认值 <- 本地 YAML 文件 <- 环境变量
func Init(configPath string) (*confv1.Bootstrap, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", configPath, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file %s: %w", configPath, err)
		} else {
			// logger 尚未初始化，使用标准输出
			fmt.Printf("Warning: config file %s not found, using defaults\n", configPath)
		}
	}

	localConf := &confv1.Bootstrap{}

	// 获取 Viper 的所有配置为一个 map
	m := v.AllSettings()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata: nil,
		// 环境变量均为字符串，需要弱类型转换
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           localConf,
	})
	if err != nil {
		return nil, fmt.Errorf("create config decoder: %w", err)
	}

	if err := decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return localConf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http.addr", ":8000")
	v.SetDefault("server.http.read_timeout", 10)
	v.SetDefault("server.http.write_timeout", 10)
	v.SetDefault("server.http.idle_timeout", 30)

	v.SetDefault("data.driver", confv1.DriverMemory)
	v.SetDefault("data.seed", true)
	v.SetDefault("data.database.host", "127.0.0.1")
	v.SetDefault("data.database.port", 5432)
	v.SetDefault("data.database.user", "postgres")
	v.SetDefault("data.database.password", "")
	v.SetDefault("data.database.db_name", "users")
	v.SetDefault("data.database.ssl_mode", "disable")
	v.SetDefault("data.database.timezone", "UTC")
	v.SetDefault("data.redis.host", "127.0.0.1")
	v.SetDefault("data.redis.port", 6379)
	v.SetDefault("data.redis.username", "")
	v.SetDefault("data.redis.password", "")
	v.SetDefault("data.redis.db", 0)
	v.SetDefault("data.redis.dial_timeout", 5)
	v.SetDefault("data.redis.read_timeout", 3)
	v.SetDefault("data.redis.write_timeout", 3)
	v.SetDefault("data.redis.pool_size", 10)
	v.SetDefault("data.redis.min_idle_conns", 0)
	v.SetDefault("data.redis.key_prefix", "users")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.endpoint", "127.0.0.1:4318")
	v.SetDefault("trace.insecure", true)

	v.SetDefault("registry.consul.enabled", false)
	v.SetDefault("registry.consul.address", "127.0.0.1:8500")
	v.SetDefault("registry.consul.scheme", "http")
	v.SetDefault("registry.consul.token", "")
	v.SetDefault("registry.consul.service_address", "127.0.0.1")

	v.SetDefault("security.password_hash_cost", 0)
}

// getConfigPath 从环境变量获取配置路径
func getConfigPath() string {
	// 优先使用环境变量 CONFIG_PATH
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		return configPath
	}

	// 在Docker容器中，配置文件位于/app/configs/config.yaml
	if isRunningInContainer() {
		return "/app/configs/config.yaml"
	}

	return "configs/config.yaml"
}

// isRunningInContainer 检查是否在容器中运行
func isRunningInContainer() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	if cgroup, err := os.ReadFile("/proc/1/cgroup"); err == nil {
		if strings.Contains(string(cgroup), "docker") || strings.Contains(string(cgroup), "kubepods") {
			return true
		}
	}

	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" || os.Getenv("CONTAINER") != "" {
		return true
	}

	return false
}

// ValidateConfig 验证配置的完整性
func ValidateConfig(conf *confv1.Bootstrap) error {
	if conf == nil {
		return fmt.Errorf("configuration is nil")
	}

	if conf.Server == nil || conf.Server.Http == nil || conf.Server.Http.Addr == "" {
		return fmt.Errorf("server configuration is required")
	}

	if conf.Data == nil {
		return fmt.Errorf("data configuration is required")
	}

	switch conf.Data.Driver {
	case confv1.DriverMemory:
	case confv1.DriverRedis:
		if conf.Data.Redis == nil {
			return fmt.Errorf("redis configuration is required for driver %q", conf.Data.Driver)
		}
	case confv1.DriverPostgres:
		if conf.Data.Database == nil {
			return fmt.Errorf("database configuration is required for driver %q", conf.Data.Driver)
		}
	default:
		return fmt.Errorf("unknown data driver %q", conf.Data.Driver)
	}

	return nil
}
