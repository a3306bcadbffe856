package echeance

import "time"

// Echeance is a computed deadline record, ready for display or feed export.
type Echeance struct {
	// Titre is the caller-supplied label of the time limit (e.g. "Appel
	// jugement n°1234").
	Titre string

	// Depart is the normalized start date of the time limit.
	Depart time.Time

	// Duree is the duration in days that was counted.
	Duree int

	// Mode is the counting semantics that produced Date.
	Mode Mode

	// ExclureVacances records whether the judicial recess suspended counting.
	ExclureVacances bool

	// Date is the computed deadline date (midnight UTC).
	Date time.Time
}

// NewEcheance computes the deadline for the given parameters and wraps it
// with its inputs.
func NewEcheance(titre string, depart time.Time, duree int, mode Mode, exclureVacances bool) (Echeance, error) {
	date, err := CalculerEcheance(depart, duree, mode, exclureVacances)
	if err != nil {
		return Echeance{}, err
	}
	return Echeance{
		Titre:           titre,
		Depart:          depart,
		Duree:           duree,
		Mode:            mode,
		ExclureVacances: exclureVacances,
		Date:            date,
	}, nil
}
