package echeance

import (
	"fmt"

	"github.com/tunlex/delais/internal/config"
)

// Mode selects the day-counting semantics of CalculerEcheance. The three
// values are the ones Tunisian procedure distinguishes; there is no other.
type Mode string

const (
	// ModeJoursCalendaires adds plain calendar days, then rolls the landing
	// date forward to the next working day if needed.
	ModeJoursCalendaires Mode = "jours_calendaires"

	// ModeJoursOuvrables counts working days only, starting the day after
	// the start date.
	ModeJoursOuvrables Mode = "jours_ouvrables"

	// ModeJoursFrancs counts like ModeJoursOuvrables, then returns the
	// calendar day following the last counted day (jours francs: the time
	// limit expires at the end of the Nth qualifying day).
	ModeJoursFrancs Mode = "jours_francs"
)

// ParseMode converts a wire/CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeJoursCalendaires, ModeJoursOuvrables, ModeJoursFrancs:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%s: %q", config.ErrModeInconnu, s)
	}
}

func (m Mode) String() string { return string(m) }
