// Package echeance computes Tunisian procedural deadlines (échéances) and
// everything derived from them: remaining days, urgency tiers, reminder
// schedules and an ICS feed.
//
// Every function is a pure computation over its arguments; "today" is always
// an explicit parameter (or injected through Clock for the feed generator),
// never a hidden wall-clock read.
package echeance

import (
	"errors"
	"fmt"
	"time"

	"github.com/tunlex/delais/internal/calendrier"
	"github.com/tunlex/delais/internal/config"
)

// CalculerEcheance computes the deadline date for a time limit starting at
// depart and lasting duree days, under the given counting mode.
//
// When exclureVacances is true (the usual case), days falling within the
// judicial recess do not count as working days; weekends and public holidays
// never count regardless.
//
// Per mode:
//
//   - ModeJoursCalendaires: depart + duree calendar days; if the landing date
//     is not a working day it is rolled forward to the next one. duree may be
//     zero (the deadline is depart itself, rolled if needed).
//   - ModeJoursOuvrables: starting the day after depart, each working day
//     increments a counter; the deadline is the day the counter reaches duree.
//   - ModeJoursFrancs: same count, but the returned date is the calendar day
//     following the Nth counted day, with no further adjustment even when it
//     lands on a weekend or holiday. The time limit expires at the end of the
//     Nth qualifying day; the next day is the first on which action is taken.
//
// A negative duree, a zero depart, or duree == 0 with a walked mode is
// rejected; the walked zero case is meaningless (no qualifying day would
// ever be counted).
func CalculerEcheance(depart time.Time, duree int, mode Mode, exclureVacances bool) (time.Time, error) {
	if depart.IsZero() {
		return time.Time{}, errors.New(config.ErrDateZero)
	}
	if duree < 0 {
		return time.Time{}, fmt.Errorf("%s: %d", config.ErrDureeNegative, duree)
	}

	jour := calendrier.Normaliser(depart)

	switch mode {
	case ModeJoursCalendaires:
		jour = jour.AddDate(0, 0, duree)
		for !calendrier.EstJourOuvrable(jour, exclureVacances) {
			jour = jour.AddDate(0, 0, 1)
		}
		return jour, nil

	case ModeJoursOuvrables, ModeJoursFrancs:
		if duree == 0 {
			return time.Time{}, errors.New(config.ErrDureeNulle)
		}
		comptes := 0
		for comptes < duree {
			jour = jour.AddDate(0, 0, 1)
			if calendrier.EstJourOuvrable(jour, exclureVacances) {
				comptes++
			}
		}
		if mode == ModeJoursFrancs {
			return jour.AddDate(0, 0, 1), nil
		}
		return jour, nil

	default:
		return time.Time{}, fmt.Errorf("%s: %q", config.ErrModeInconnu, mode)
	}
}
