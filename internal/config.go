package internal

import (
	"call-lab/auth"
	"call-lab/domain"
	"call-lab/errors"
	goerrors "errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true" validate:"required"`

	CallingAppID          int           `env:"CALLING_APP_ID,required=true" validate:"min=1,max=4294967295"`
	CallingServerSecret   string        `env:"CALLING_SERVER_SECRET,required=true" validate:"required,min=16"`
	CallingConversationID string        `env:"CALLING_CONVERSATION_ID" validate:"omitempty,max=255"`
	CallingPlugin         string        `env:"CALLING_PLUGIN,default=signaling" validate:"required"`
	TokenDuration         time.Duration `env:"TOKEN_DURATION,default=24h" validate:"gt=0"`
	SessionRetryInterval  time.Duration `env:"SESSION_RETRY_INTERVAL,default=3s" validate:"gt=0"`
	InvitationTimeout     time.Duration `env:"INVITATION_TIMEOUT,default=60s" validate:"gt=0"`

	MediaBaseURL         string `env:"MEDIA_BASE_URL,required=true" validate:"required,url"`
	StrictSelfMatch      bool   `env:"STRICT_SELF_MATCH,default=false"`
	NotifyInBackground   bool   `env:"NOTIFY_IN_BACKGROUND,default=true"`
	IncomingRingtoneURL  string `env:"INCOMING_RINGTONE_URL" validate:"omitempty,url"`
	OutgoingRingtoneURL  string `env:"OUTGOING_RINGTONE_URL" validate:"omitempty,url"`
	MaxParallelLogWrites int    `env:"MAX_PARALLEL_LOG_WRITES,default=8" validate:"min=1"`

	MetricInterval time.Duration `env:"METRIC_INTERVAL,default=1m"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !goerrors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	if err := auth.ValidateStruct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return config, nil
}

// InvitationConfig is registered on every new calling session.
func (c Config) InvitationConfig() domain.InvitationConfig {
	return domain.InvitationConfig{
		NotifyWhenInBackground: c.NotifyInBackground,
		Ringtones: domain.Ringtones{
			IncomingCallURL: c.IncomingRingtoneURL,
			OutgoingCallURL: c.OutgoingRingtoneURL,
		},
		BeforeJoining: domain.DefaultRoomConfig(),
		AfterJoining:  domain.DefaultRoomConfig(),
	}
}
