package config

import (
	"strings"
	"time"
)

type AppConfig struct {
	HomeCurrencyName  string   `yaml:"home-currency"`
	RecentCount       int      `yaml:"recent-count"`
	WeekStart         string   `yaml:"week-start"`
	DefaultCategories []string `yaml:"default-categories"`
}

func (s *AppConfig) HomeCurrency() string {
	return s.HomeCurrencyName
}

func (s *AppConfig) RecentLimit() int {
	return s.RecentCount
}

func (s *AppConfig) WeekStartDay() time.Weekday {
	if strings.EqualFold(s.WeekStart, "monday") {
		return time.Monday
	}
	return time.Sunday
}

func (s *AppConfig) SeedCategories() []string {
	return s.DefaultCategories
}
