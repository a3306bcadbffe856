package echeance

import (
	"fmt"
	"time"

	"github.com/samber/mo"

	"github.com/tunlex/delais/internal/calendrier"
)

// Niveau is a discrete urgency tier, ordered by decreasing safety margin.
type Niveau string

const (
	NiveauNormal   Niveau = "normal"
	NiveauProche   Niveau = "proche"
	NiveauUrgent   Niveau = "urgent"
	NiveauCritique Niveau = "critique"
	NiveauDepasse  Niveau = "depasse"
)

// Tier boundaries, inclusive on the lower tier.
const (
	seuilCritique = 3
	seuilUrgent   = 7
	seuilProche   = 15
)

func (n Niveau) String() string { return string(n) }

// JoursRestants returns the signed count of calendar days from aujourdhui to
// echeance: negative for a past deadline, zero when both fall on the same
// calendar date. Both arguments are normalized first, so time-of-day
// components never skew the whole-day difference.
func JoursRestants(echeance, aujourdhui time.Time) int {
	e := calendrier.Normaliser(echeance)
	a := calendrier.Normaliser(aujourdhui)
	return int(e.Sub(a) / (24 * time.Hour))
}

// NiveauUrgence classifies a deadline relative to aujourdhui: depasse below
// zero remaining days, critique up to 3, urgent up to 7, proche up to 15,
// normal beyond.
func NiveauUrgence(echeance, aujourdhui time.Time) Niveau {
	restants := JoursRestants(echeance, aujourdhui)
	switch {
	case restants < 0:
		return NiveauDepasse
	case restants <= seuilCritique:
		return NiveauCritique
	case restants <= seuilUrgent:
		return NiveauUrgent
	case restants <= seuilProche:
		return NiveauProche
	default:
		return NiveauNormal
	}
}

// rappelOffsets are the reminder checkpoints, in days before the deadline.
var rappelOffsets = [4]int{15, 7, 3, 1}

// Rappels holds the four reminder checkpoints of a deadline. A checkpoint is
// absent when its date is strictly before the reference date; a reminder
// falling on the reference date itself is still due and therefore present.
type Rappels struct {
	J15 mo.Option[time.Time]
	J7  mo.Option[time.Time]
	J3  mo.Option[time.Time]
	J1  mo.Option[time.Time]
}

// Rappel pairs a checkpoint offset with its (possibly absent) date, for
// callers that iterate the schedule.
type Rappel struct {
	Jours int
	Date  mo.Option[time.Time]
}

// DatesRappel computes the J-15/J-7/J-3/J-1 reminder dates of a deadline
// relative to aujourdhui.
func DatesRappel(echeance, aujourdhui time.Time) Rappels {
	e := calendrier.Normaliser(echeance)
	a := calendrier.Normaliser(aujourdhui)

	rappel := func(jours int) mo.Option[time.Time] {
		d := e.AddDate(0, 0, -jours)
		if d.Before(a) {
			return mo.None[time.Time]()
		}
		return mo.Some(d)
	}

	return Rappels{
		J15: rappel(rappelOffsets[0]),
		J7:  rappel(rappelOffsets[1]),
		J3:  rappel(rappelOffsets[2]),
		J1:  rappel(rappelOffsets[3]),
	}
}

// Tous returns the checkpoints in decreasing-offset order.
func (r Rappels) Tous() []Rappel {
	return []Rappel{
		{Jours: rappelOffsets[0], Date: r.J15},
		{Jours: rappelOffsets[1], Date: r.J7},
		{Jours: rappelOffsets[2], Date: r.J3},
		{Jours: rappelOffsets[3], Date: r.J1},
	}
}

// Canonical French labels of the product. These exact strings are relied on
// by downstream consumers and are not subject to localization; the CLI
// localizes around them, never instead of them.
const (
	libelleAujourdhui = "Aujourd'hui"
	libelleUnJour     = "1 jour"
	libelleJours      = "%d jours"
	libelleDepasseUn  = "Dépassé de 1 jour"
	libelleDepasseFmt = "Dépassé de %d jours"
)

// FormatterDelai renders a remaining-day count as the product's standard
// French label.
func FormatterDelai(jours int) string {
	switch {
	case jours == 0:
		return libelleAujourdhui
	case jours == 1:
		return libelleUnJour
	case jours > 1:
		return fmt.Sprintf(libelleJours, jours)
	case jours == -1:
		return libelleDepasseUn
	default:
		return fmt.Sprintf(libelleDepasseFmt, -jours)
	}
}
