package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Délais TN"
	AppID             = "com.github.tunlex.delais"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion    = "version"
	FlagDebug      = "debug"
	FlagDate       = "date"
	FlagDuree      = "duree"
	FlagMode       = "mode"
	FlagVacances   = "vacances"
	FlagAujourdhui = "aujourdhui"
	FlagTitre      = "titre"
	FlagLang       = "lang"
	FlagFeries     = "feries"
	FlagServe      = "serve"
	FlagPort       = "port"

	FlagDescVersion    = "Show application version and exit"
	FlagDescDebug      = "Enable debug logging to stdout"
	FlagDescDate       = "Start date of the procedural time limit (YYYY-MM-DD)"
	FlagDescDuree      = "Duration of the time limit in days"
	FlagDescMode       = "Counting mode: jours_calendaires, jours_ouvrables or jours_francs"
	FlagDescVacances   = "Suspend counting during the judicial recess (Aug 1 - Sep 15)"
	FlagDescAujourdhui = "Override the reference date used for urgency and reminders (YYYY-MM-DD)"
	FlagDescTitre      = "Title of the deadline, used in reports and in the ICS feed"
	FlagDescLang       = "Output language (fr, en)"
	FlagDescFeries     = "Path to a YAML file extending the moveable holiday table"
	FlagDescServe      = "Serve the computed deadline as an ICS feed until interrupted"
	FlagDescPort       = "TCP port for the ICS feed server"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18090"
	DefaultLanguage = "fr"
	DefaultTitre    = "Échéance"
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"fr", "en"}

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatISO is the layout accepted on the CLI and in YAML holiday files.
	DateFormatISO = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyEcheance    = "echeance"
	TKeyDepart      = "depart"
	TKeyModeLabel   = "mode_label"
	TKeyRestant     = "restant"
	TKeyUrgence     = "urgence"
	TKeyRappels     = "rappels"
	TKeyRappelPasse = "rappel_passe"
	TKeyUrgNormal   = "urg_normal"
	TKeyUrgProche   = "urg_proche"
	TKeyUrgUrgent   = "urg_urgent"
	TKeyUrgCritique = "urg_critique"
	TKeyUrgDepasse  = "urg_depasse"
	TKeyEvtSummary  = "event_summary"  // Requires Titre
	TKeyEvtReminder = "event_reminder" // Requires Titre, Jours
	TKeyFeedServing = "feed_serving"   // Requires URL
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Delais TN//Echeancier//FR"
	ICalCalName   = "Échéances"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "delais-tn"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// Échéances move rarely; half a day keeps feed clients fresh without polling hard.
	DefaultICalRefresh = 12 * time.Hour

	// UID Generation
	UIDSalt         = "delais-tn-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"

	// FormatTriggerJours renders a negative ISO8601 day period for VALARM triggers.
	FormatTriggerJours = "-P%dD"

	// StubVCalendar is the minimal valid iCalendar object used when no deadlines exist.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	RouteRoot          = "/"
	AddrSeparator      = ":"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDureeNegative  = "invalid time limit: duration must not be negative"
	ErrDureeNulle     = "invalid time limit: walked counting modes require a duration of at least one day"
	ErrModeInconnu    = "unknown counting mode"
	ErrDateZero       = "invalid date: zero value"
	ErrDateParse      = "unable to parse date"
	ErrFeriesDecode   = "failed to decode moveable holiday file"
	ErrFeriesPlage    = "invalid moveable holiday range"
	ErrFeriesAnnee    = "moveable holiday entry outside its declared year"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgEcheanceOK    = "Deadline computed"
	MsgFeriesLoaded  = "Moveable holiday table extended"
	MsgGenSuccess    = "Feed generation successful"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Feed cache updated"
	MsgCtxCancel     = "Context cancelled, shutting down"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation"
	MsgLogWarning    = "warning: %s (%s): %v\n"
)

// -----------------------------------------------------------------------------
// Log Keys (Structured Logging)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyDate      = "date"
	LogKeyDuree     = "duration_days"
	LogKeyMode      = "mode"
	LogKeyEcheance  = "due_date"
	LogKeyUrgence   = "urgency"
	LogKeyPort      = "port"
	LogKeyLang      = "lang"
	LogKeyFile      = "file"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyAnnees    = "years"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
)

// Log Keys reserved for startup diagnostics.
const (
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// Log Components
const (
	CompMain       = "main"
	CompCalendrier = "calendrier"
	CompEcheance   = "echeance"
	CompServer     = "server"
	CompI18n       = "i18n"
)
