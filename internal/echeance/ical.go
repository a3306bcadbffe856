package echeance

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tunlex/delais/internal/config"
)

// Generator renders a set of échéances to an iCalendar feed: one all-day
// event per deadline, with DISPLAY alarms at the reminder checkpoints that
// are still pending relative to the Clock.
type Generator struct {
	Clock Clock // Interface for time mocking.

	// FormatSummary allows the caller to inject localized event titles.
	FormatSummary func(titre string) string

	// FormatReminder builds the alarm description for a J-offset reminder.
	FormatReminder func(titre string, jours int) string
}

// Generate builds the ICS feed. It returns the encoded calendar, the number
// of deadlines due today or already past, and any encoding error.
func (g *Generator) Generate(echeances []Echeance) ([]byte, int, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986: suggest a refresh interval to feed clients.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	echues := 0
	for _, e := range echeances {
		event := g.createEvent(e, now)
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)

		if JoursRestants(e.Date, now) <= 0 {
			echues++
		}
	}

	// A VCALENDAR with no component is invalid; serve the constant stub so
	// clients never flag an empty feed.
	if len(cal.Children) == 0 {
		g.logSuccess(0, 0)
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(len(echeances), echues)
	return buf.Bytes(), echues, nil
}

// createEvent builds the VEVENT for one deadline, alarms included.
func (g *Generator) createEvent(e Echeance, now time.Time) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uidPour(e))

	summary := e.Titre
	if g.FormatSummary != nil {
		summary = g.FormatSummary(e.Titre)
	}
	event.Props.SetText(config.PropSummary, summary)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(e.Date)
	event.Props.Set(dtStartProp)

	for _, r := range DatesRappel(e.Date, now).Tous() {
		if r.Date.IsAbsent() {
			continue
		}
		description := summary
		if g.FormatReminder != nil {
			description = g.FormatReminder(e.Titre, r.Jours)
		}
		addAlarm(event, fmt.Sprintf(config.FormatTriggerJours, r.Jours), description)
	}

	return event
}

// uidPour derives a deterministic UID so feed refreshes never duplicate
// events in subscribed clients.
func uidPour(e Echeance) string {
	input := fmt.Sprintf(config.FormatHashInput,
		e.Titre,
		e.Date.Format(config.DateFormatISO),
		config.UIDSalt,
	)
	hash := sha256.Sum256([]byte(input))
	base := fmt.Sprintf("%x", hash[:config.UIDHashLength])
	return fmt.Sprintf(config.FormatUID, base, config.ICalDomain)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid a "VALUE=TEXT" param on the duration.
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

func (g *Generator) logSuccess(total, echues int) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEcheance,
		config.LogKeyCount, total,
		config.LogKeyUrgence, echues,
	)
}
