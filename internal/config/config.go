package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	JwtTTL        time.Duration `yaml:"jwt_ttl"`
	SecureCookies bool          `yaml:"secure_cookies"`

	FeedPageSize  int `yaml:"feed_page_size"`  // posts per community feed page
	BoardPageSize int `yaml:"board_page_size"` // sparks per board page

	MediaRoot          string   `yaml:"media_root"`     // local object storage root
	MediaBaseURL       string   `yaml:"media_base_url"` // prefix for public media URLs
	MaxUploadSizeBytes int64    `yaml:"max_upload_size_bytes"`
	AllowedImageMimes  []string `yaml:"allowed_image_mime_types"`
	AllowedAudioMimes  []string `yaml:"allowed_audio_mime_types"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Public settings are safe to expose to clients, private ones are not.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
