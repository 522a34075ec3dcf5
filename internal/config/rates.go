package config

import "time"

type RatesConfig struct {
	URL            string      `yaml:"base-url"`
	AccessKeyValue string      `yaml:"access-key"`
	TimeoutSeconds int         `yaml:"timeout-seconds"`
	Cache          CacheConfig `yaml:"cache"`
}

func (r *RatesConfig) BaseURL() string {
	return r.URL
}

func (r *RatesConfig) AccessKey() string {
	return r.AccessKeyValue
}

func (r *RatesConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

type CacheConfig struct {
	CacheDriver string   `yaml:"driver"`
	FilePath    string   `yaml:"path"`
	NodeHosts   []string `yaml:"hosts"`
	RedisAddr   string   `yaml:"addr"`
}

// Driver is one of "file", "memcached", "redis".
func (c *CacheConfig) Driver() string {
	return c.CacheDriver
}

func (c *CacheConfig) Path() string {
	return c.FilePath
}

func (c *CacheConfig) Hosts() []string {
	return c.NodeHosts
}

func (c *CacheConfig) Addr() string {
	return c.RedisAddr
}
