package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/tunlex/delais/internal/calendrier"
	"github.com/tunlex/delais/internal/config"
	"github.com/tunlex/delais/internal/echeance"
	"github.com/tunlex/delais/internal/locale"
	"github.com/tunlex/delais/internal/server"
)

// options collects the parsed CLI flags for one invocation.
type options struct {
	depart     string
	duree      int
	mode       string
	vacances   bool
	aujourdhui string
	titre      string
	lang       string
	feries     string
	serve      bool
	port       string
}

// main delegates to runMain so deferred calls (like closing the log file)
// run before the process exits; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
func runMain() int {
	showVersion := flag.Bool(config.FlagVersion, false, config.FlagDescVersion)
	debugMode := flag.Bool(config.FlagDebug, false, config.FlagDescDebug)

	var opts options
	flag.StringVar(&opts.depart, config.FlagDate, "", config.FlagDescDate)
	flag.IntVar(&opts.duree, config.FlagDuree, 0, config.FlagDescDuree)
	flag.StringVar(&opts.mode, config.FlagMode, string(echeance.ModeJoursCalendaires), config.FlagDescMode)
	flag.BoolVar(&opts.vacances, config.FlagVacances, true, config.FlagDescVacances)
	flag.StringVar(&opts.aujourdhui, config.FlagAujourdhui, "", config.FlagDescAujourdhui)
	flag.StringVar(&opts.titre, config.FlagTitre, config.DefaultTitre, config.FlagDescTitre)
	flag.StringVar(&opts.lang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	flag.StringVar(&opts.feries, config.FlagFeries, "", config.FlagDescFeries)
	flag.BoolVar(&opts.serve, config.FlagServe, false, config.FlagDescServe)
	flag.StringVar(&opts.port, config.FlagPort, config.DefaultPort, config.FlagDescPort)
	flag.Parse()

	if *showVersion {
		printVersion()
		return config.ExitCodeSuccess
	}

	logCloser := setupLogging(*debugMode)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	if err := run(ctx, opts); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run computes the requested échéance, prints the localized report, and
// optionally serves the ICS feed until the context is cancelled.
func run(ctx context.Context, opts options) error {
	clock := echeance.RealClock{}

	if opts.feries != "" {
		f, err := os.Open(opts.feries)
		if err != nil {
			return err
		}
		err = calendrier.ChargerFeriesMobiles(f)
		_ = f.Close()
		if err != nil {
			return err
		}
	}

	depart, err := time.Parse(config.DateFormatISO, opts.depart)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}

	aujourdhui := clock.Now()
	if opts.aujourdhui != "" {
		aujourdhui, err = time.Parse(config.DateFormatISO, opts.aujourdhui)
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrDateParse, err)
		}
	}

	mode, err := echeance.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	ech, err := echeance.NewEcheance(opts.titre, depart, opts.duree, mode, opts.vacances)
	if err != nil {
		return err
	}

	slog.Info(config.MsgEcheanceOK,
		config.LogKeyComponent, config.CompEcheance,
		config.LogKeyDate, ech.Depart.Format(config.DateFormatISO),
		config.LogKeyDuree, ech.Duree,
		config.LogKeyMode, ech.Mode.String(),
		config.LogKeyEcheance, ech.Date.Format(config.DateFormatISO),
		config.LogKeyUrgence, echeance.NiveauUrgence(ech.Date, aujourdhui).String(),
	)

	tr := locale.New(opts.lang)
	printReport(tr, ech, aujourdhui)

	if !opts.serve {
		return nil
	}
	return serveFeed(ctx, tr, ech, clock, opts.port)
}

// printReport writes the human-readable result to stdout.
func printReport(tr *locale.Translator, ech echeance.Echeance, aujourdhui time.Time) {
	restants := echeance.JoursRestants(ech.Date, aujourdhui)

	fmt.Printf("%s: %s\n", tr.Msg(config.TKeyDepart), ech.Depart.Format(config.DateFormatISO))
	fmt.Printf("%s: %s\n", tr.Msg(config.TKeyModeLabel), ech.Mode)
	fmt.Printf("%s: %s\n", tr.Msg(config.TKeyEcheance), ech.Date.Format(config.DateFormatISO))
	fmt.Printf("%s: %s\n", tr.Msg(config.TKeyRestant), echeance.FormatterDelai(restants))
	fmt.Printf("%s: %s\n", tr.Msg(config.TKeyUrgence), niveauLabel(tr, echeance.NiveauUrgence(ech.Date, aujourdhui)))

	fmt.Printf("%s:\n", tr.Msg(config.TKeyRappels))
	for _, r := range echeance.DatesRappel(ech.Date, aujourdhui).Tous() {
		if d, ok := r.Date.Get(); ok {
			fmt.Printf("  J-%d: %s\n", r.Jours, d.Format(config.DateFormatISO))
		} else {
			fmt.Printf("  J-%d: %s\n", r.Jours, tr.Msg(config.TKeyRappelPasse))
		}
	}
}

// niveauLabel maps an urgency tier to its localized display label.
func niveauLabel(tr *locale.Translator, n echeance.Niveau) string {
	keys := map[echeance.Niveau]string{
		echeance.NiveauNormal:   config.TKeyUrgNormal,
		echeance.NiveauProche:   config.TKeyUrgProche,
		echeance.NiveauUrgent:   config.TKeyUrgUrgent,
		echeance.NiveauCritique: config.TKeyUrgCritique,
		echeance.NiveauDepasse:  config.TKeyUrgDepasse,
	}
	return tr.Msg(keys[n])
}

// serveFeed renders the ICS feed for the computed échéance and serves it
// until the context is cancelled.
func serveFeed(ctx context.Context, tr *locale.Translator, ech echeance.Echeance, clock echeance.Clock, port string) error {
	gen := &echeance.Generator{
		Clock: clock,
		FormatSummary: func(titre string) string {
			return tr.MsgData(config.TKeyEvtSummary, map[string]any{"Titre": titre})
		},
		FormatReminder: func(titre string, jours int) string {
			return tr.MsgData(config.TKeyEvtReminder, map[string]any{"Titre": titre, "Jours": jours})
		},
	}

	feed, _, err := gen.Generate([]echeance.Echeance{ech})
	if err != nil {
		return err
	}

	srv := server.NewFeedServer(port)
	srv.Update(feed)

	url := "http://" + config.LocalhostBindAddr + config.AddrSeparator + port + config.RouteRoot
	fmt.Println(tr.MsgData(config.TKeyFeedServing, map[string]any{"URL": url}))

	return srv.Start(ctx)
}

// printVersion outputs the build information to stdout and exits.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	// Logs go to stderr so the report on stdout stays machine-readable.
	writers = append(writers, os.Stderr)

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
