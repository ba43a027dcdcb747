package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	arabicdate "github.com/goliatone/go-arabic-date"
)

type cliConfig struct {
	configPath     string
	envPrefix      string
	locale         string
	acceptLanguage string
	mode           string
	format         string
	verbose        bool
	supported      localeFlag
	value          string
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

var modes = []string{"default", "custom", "weekday", "datetime", "numerals", "gate"}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		reportError(err)
	}

	logger := newLogger(os.Stderr, cfg.verbose)
	if err := run(cfg, os.Stdout, logger, time.Now); err != nil {
		logger.Error("arabicdate failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "arabicdate: %v\n", err)
	os.Exit(1)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	var cfg cliConfig

	fs.StringVar(&cfg.configPath, "config", "", "path to a json, yaml or toml config file")
	fs.StringVar(&cfg.envPrefix, "env-prefix", "ARABIC_DATE_", "prefix for environment overrides")
	fs.StringVar(&cfg.locale, "locale", "ar", "locale used by the gate")
	fs.StringVar(&cfg.acceptLanguage, "accept-language", "", "pick the locale from an Accept-Language header instead of -locale")
	fs.StringVar(&cfg.mode, "mode", "default", "one of "+strings.Join(modes, ", "))
	fs.StringVar(&cfg.format, "format", "", "PHP date() format, empty for the configured one")
	fs.BoolVar(&cfg.verbose, "verbose", false, "log debug records")
	fs.Var(&cfg.supported, "supported", "supported locales, comma separated. Repeat flag to add more.")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.value = fs.Arg(0)
	default:
		return cliConfig{}, errors.New("expected at most one date argument")
	}

	valid := false
	for _, mode := range modes {
		if cfg.mode == mode {
			valid = true
			break
		}
	}
	if !valid {
		return cliConfig{}, fmt.Errorf("unknown mode %q", cfg.mode)
	}

	return cfg, nil
}

func run(cfg cliConfig, out io.Writer, logger *slog.Logger, now func() time.Time) error {
	opts := []arabicdate.ConfigOption{}
	if cfg.configPath != "" {
		opts = append(opts, arabicdate.WithConfigFile(cfg.configPath))
	}
	if cfg.envPrefix != "" {
		opts = append(opts, arabicdate.WithEnv(cfg.envPrefix))
	}
	if len(cfg.supported.items) > 0 {
		opts = append(opts, arabicdate.WithSupportedLocales(cfg.supported.items...))
	}

	conversion, err := arabicdate.LoadConfig(opts...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config loaded",
		slog.String("default_format", conversion.ResolvedDefaultFormat()),
		slog.Any("supported", conversion.ResolvedLocales()),
	)

	formatter := arabicdate.NewFormatter(
		arabicdate.WithConfig(conversion),
		arabicdate.WithLogger(logger),
		arabicdate.WithClock(now),
		arabicdate.WithLocation(time.Local),
	)

	if cfg.mode == "numerals" {
		text := cfg.value
		if text == "" {
			return errors.New("numerals mode needs a value")
		}
		_, err := fmt.Fprintln(out, formatter.ToArabicNumerals(text))
		return err
	}

	var date *arabicdate.ArabicDate
	if cfg.value == "" {
		date = formatter.Now(cfg.locale)
	} else {
		date, err = formatter.Parse(cfg.value, cfg.locale)
		if err != nil {
			return err
		}
	}

	locale := cfg.locale
	if cfg.acceptLanguage != "" {
		matched, ok := conversion.MatchLocale(cfg.acceptLanguage)
		if !ok {
			logger.Debug("no supported locale in header", slog.String("accept_language", cfg.acceptLanguage))
			matched = ""
		}
		locale = matched
	}

	var result string
	switch cfg.mode {
	case "default":
		result = date.ToArabicFormat(cfg.format)
	case "custom":
		result = formatter.FormatCustom(date.Original(), cfg.format)
	case "weekday":
		result = date.ToArabicWithDay()
	case "datetime":
		result = date.ToArabicWithTime()
	case "gate":
		result = formatter.FormatForLocale(locale, date.Original(), cfg.format)
	}

	_, err = fmt.Fprintln(out, result)
	return err
}
