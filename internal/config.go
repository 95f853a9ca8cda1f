package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken          string        `env:"TELEGRAM_TOKEN,required=true"`
	BadgerFilepath         string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel               string        `env:"LOG_LEVEL,required=true"`
	NotificationBufferSize int           `env:"NOTIFICATION_BUFFER_SIZE,default=100"`
	BroadcastConcurrency   int           `env:"BROADCAST_CONCURRENCY,default=8"`
	SendTimeout            time.Duration `env:"SEND_TIMEOUT,default=10s"`
	SessionTTL             time.Duration `env:"SESSION_TTL,default=0s"`
	SweepInterval          time.Duration `env:"SWEEP_INTERVAL,default=1m"`
	HeartbeatInterval      time.Duration `env:"HEARTBEAT_INTERVAL,default=1m"`
	RestartInterval        time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	PollTimeout            int           `env:"POLL_TIMEOUT,default=60"`
	CensorCharacter        string        `env:"CENSOR_CHARACTER,default=*"`
	DebugPort              int           `env:"DEBUG_PORT,default=0"`
}

// LoadConfig reads the environment, a .env file in the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.NotificationBufferSize <= 0 || config.BroadcastConcurrency <= 0 {
		return Config{}, fmt.Errorf("config error: NOTIFICATION_BUFFER_SIZE and BROADCAST_CONCURRENCY must be positive")
	}
	return config, nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
