package main

type Config struct {
	DatabaseURL               string  `env:"DATABASE_URL,required=true"`
	JWTSecret                 string  `env:"JWT_SECRET,required=true"`
	Host                      string  `env:"HOST,default=localhost"`
	Port                      int     `env:"PORT,default=8080"`
	LogLevel                  string  `env:"LOG_LEVEL,default=info"`
	ConnectionBufferSize      int     `env:"CONNECTION_BUFFER_SIZE,default=64"`
	ChatHistoryLimit          int     `env:"CHAT_HISTORY_LIMIT,default=100"`
	CensoredWordsFile         string  `env:"CENSORED_WORDS_FILE"`
	ModerationCharReplacement string  `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
	DebugPort                 *int    `env:"DEBUG_PORT"`
}
