package config

import (
	"os"
	"path/filepath"
	"testing"

	confv1 "user-records-example/internal/conf/v1"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const testYAML = `
server:
  http:
    addr: ":9090"
data:
  driver: redis
  seed: false
  redis:
    host: cache.local
    port: 6380
    key_prefix: test
log:
  level: debug
  format: console
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInit_FromFile(t *testing.T) {
	conf, err := Init(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, ":9090", conf.Server.Http.Addr)
	assert.Equal(t, int32(10), conf.Server.Http.ReadTimeout)
	assert.Equal(t, confv1.DriverRedis, conf.Data.Driver)
	assert.False(t, conf.Data.Seed)
	assert.Equal(t, "cache.local", conf.Data.Redis.Host)
	assert.Equal(t, int32(6380), conf.Data.Redis.Port)
	assert.Equal(t, "test", conf.Data.Redis.KeyPrefix)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.Equal(t, "console", conf.Log.Format)
	// 文件中未出现的键使用默认值
	assert.Equal(t, "users", conf.Data.Database.DbName)
	assert.False(t, conf.Registry.Consul.Enabled)
}

// 解码结果是完整的 protobuf 消息，可按 conf.proto 的字段名序列化
func TestInit_DecodesIntoProtoMessage(t *testing.T) {
	conf, err := Init(writeConfig(t, testYAML))
	require.NoError(t, err)

	out, err := protojson.Marshal(conf)
	require.NoError(t, err)

	var back confv1.Bootstrap
	require.NoError(t, protojson.Unmarshal(out, &back))
	assert.True(t, proto.Equal(conf, &back))
	assert.Equal(t, "test", back.GetData().GetRedis().GetKeyPrefix())
	assert.Equal(t, int32(10), back.GetServer().GetHttp().GetReadTimeout())
}

func TestInit_MissingFileUsesDefaults(t *testing.T) {
	conf, err := Init(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8000", conf.Server.Http.Addr)
	assert.Equal(t, confv1.DriverMemory, conf.Data.Driver)
	assert.True(t, conf.Data.Seed)
	assert.NoError(t, ValidateConfig(conf))
}

func TestInit_EnvOverridesFile(t *testing.T) {
	t.Setenv("USERSVC_SERVER_HTTP_ADDR", ":7070")
	t.Setenv("USERSVC_DATA_DRIVER", "memory")
	t.Setenv("USERSVC_DATA_SEED", "true")

	conf, err := Init(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, ":7070", conf.Server.Http.Addr)
	assert.Equal(t, confv1.DriverMemory, conf.Data.Driver)
	assert.True(t, conf.Data.Seed)
}

func TestInit_InvalidYAML(t *testing.T) {
	_, err := Init(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *confv1.Bootstrap {
		return &confv1.Bootstrap{
			Server: &confv1.Server{Http: &confv1.Server_HTTP{Addr: ":8000"}},
			Data:   &confv1.Data{Driver: confv1.DriverMemory},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *confv1.Bootstrap) *confv1.Bootstrap
		wantErr bool
	}{
		{"valid", func(c *confv1.Bootstrap) *confv1.Bootstrap { return c }, false},
		{"nil", func(*confv1.Bootstrap) *confv1.Bootstrap { return nil }, true},
		{"no server", func(c *confv1.Bootstrap) *confv1.Bootstrap { c.Server = nil; return c }, true},
		{"empty addr", func(c *confv1.Bootstrap) *confv1.Bootstrap { c.Server.Http.Addr = ""; return c }, true},
		{"no data", func(c *confv1.Bootstrap) *confv1.Bootstrap { c.Data = nil; return c }, true},
		{"unknown driver", func(c *confv1.Bootstrap) *confv1.Bootstrap { c.Data.Driver = "mongo"; return c }, true},
		{"redis without section", func(c *confv1.Bootstrap) *confv1.Bootstrap { c.Data.Driver = confv1.DriverRedis; return c }, true},
		{"postgres without section", func(c *confv1.Bootstrap) *confv1.Bootstrap { c.Data.Driver = confv1.DriverPostgres; return c }, true},
		{"postgres", func(c *confv1.Bootstrap) *confv1.Bootstrap {
			c.Data.Driver = confv1.DriverPostgres
			c.Data.Database = &confv1.Database{}
			return c
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.mutate(valid()))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
