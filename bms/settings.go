package bms

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings carries the tunable validation limits for the BMS entities. Values
// come from the environment with sensible defaults, so deployments can tighten
// or relax limits without a rebuild.
type Settings struct {
	NameMinLen    float64 `env:"BMS_NAME_MIN_LEN" envDefault:"2"`
	NameMaxLen    float64 `env:"BMS_NAME_MAX_LEN" envDefault:"100"`
	SubjectMaxLen float64 `env:"BMS_SUBJECT_MAX_LEN" envDefault:"200"`
	AddressMaxLen float64 `env:"BMS_ADDRESS_MAX_LEN" envDefault:"300"`
	NoteMaxLen    float64 `env:"BMS_NOTE_MAX_LEN" envDefault:"2000"`

	// Appointment duration bounds and default, in minutes.
	DurationMinMinutes     float64 `env:"BMS_DURATION_MIN_MINUTES" envDefault:"15"`
	DurationMaxMinutes     float64 `env:"BMS_DURATION_MAX_MINUTES" envDefault:"480"`
	DurationDefaultMinutes float64 `env:"BMS_DURATION_DEFAULT_MINUTES" envDefault:"60"`

	// How far into the future an appointment may be booked.
	ScheduleWindowDays float64 `env:"BMS_SCHEDULE_WINDOW_DAYS" envDefault:"365"`
}

var loadDotenv sync.Once

// LoadSettings reads settings from the environment, loading a .env file first
// if one is present.
func LoadSettings() (Settings, error) {
	loadDotenv.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return s, nil
}
