package config

type StorageConfig struct {
	StorageDriver string `yaml:"driver"`
	FilePath      string `yaml:"path"`
	Hostname      string `yaml:"host"`
	Db            string `yaml:"db"`
	User          string `yaml:"username"`
	Pswd          string `yaml:"password"`
}

// Driver is one of "sqlite3", "postgres", "memory".
func (s *StorageConfig) Driver() string {
	return s.StorageDriver
}

func (s *StorageConfig) Path() string {
	return s.FilePath
}

func (s *StorageConfig) Host() string {
	return s.Hostname
}

func (s *StorageConfig) Database() string {
	return s.Db
}

func (s *StorageConfig) Username() string {
	return s.User
}

func (s *StorageConfig) Password() string {
	return s.Pswd
}
