package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	GroqAPIKey   string `env:"GROQ_API_KEY,required"`
	GroqBaseURL  string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	ChatModel    string `env:"CHAT_MODEL" envDefault:"llama-3.3-70b-versatile"`
	WhisperModel string `env:"WHISPER_MODEL" envDefault:"whisper-large-v3"`

	SupabaseURL   string `env:"SUPABASE_URL,required"`
	SupabaseKey   string `env:"SUPABASE_KEY,required"`
	StorageBucket string `env:"STORAGE_BUCKET" envDefault:"audio-files"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	RedisAddr               string `env:"REDIS_ADDR"`
	RedisPassword           string `env:"REDIS_PASSWORD"`
	RedisDB                 int    `env:"REDIS_DB" envDefault:"0"`
	TranslationCacheTTLMins int    `env:"TRANSLATION_CACHE_TTL_MINUTES" envDefault:"1440"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
