package timezone

import (
	"estetica/config"
	"time"

	"github.com/rs/zerolog/log"
)

var appLocation *time.Location

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'America/Sao_Paulo'")

		appLocation = time.UTC

		return
	}

	appLocation = loc

	log.Info().
		Str("timezone", name).
		Msg("Application timezone initialized")
}

func location() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(location())
}

// ToAppTime converts t to the application timezone.
func ToAppTime(t time.Time) time.Time {
	return t.In(location())
}

// GetLocation returns the application timezone location.
func GetLocation() *time.Location {
	return location()
}

// Parse interprets value in the application timezone when the layout carries
// no offset of its own.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, location())
}

// Format renders t in the application timezone.
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
