package external

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auraweather.app/internal/config"
	"auraweather.app/pkg/errors"
)

func TestCacheProviderFactory_Memory(t *testing.T) {
	factory := NewCacheProviderFactory()

	provider, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryCacheProvider{}, provider)
}

func TestCacheProviderFactory_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	factory := NewCacheProviderFactory()

	provider, err := factory.CreateCacheProvider(&config.CacheConfig{
		Type: config.CacheTypeRedis,
		Redis: config.RedisConfig{
			Addr:         mr.Addr(),
			DialTimeout:  1,
			ReadTimeout:  1,
			WriteTimeout: 1,
		},
	})
	require.NoError(t, err)
	assert.IsType(t, &RedisCacheProvider{}, provider)
}

func TestCacheProviderFactory_UnsupportedType(t *testing.T) {
	factory := NewCacheProviderFactory()

	_, err := factory.CreateCacheProvider(&config.CacheConfig{Type: config.CacheTypeUnknown})
	assert.True(t, errors.IsConfigurationError(err))
}

func TestCacheProviderFactory_NilConfig(t *testing.T) {
	factory := NewCacheProviderFactory()

	_, err := factory.CreateCacheProvider(nil)
	assert.True(t, errors.IsConfigurationError(err))
}
