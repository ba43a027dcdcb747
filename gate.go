package arabicdate

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

type contextKey string

func (c contextKey) String() string {
	return "arabicdate/" + string(c)
}

const ctxKeyLocale = contextKey("locale")

// ContextWithLocale stores the active locale on ctx.
func ContextWithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, normalizeLocale(locale))
}

// LocaleFromContext returns the locale stored by ContextWithLocale, or "".
func LocaleFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	locale, _ := ctx.Value(ctxKeyLocale).(string)
	return locale
}

// Supports reports whether conversion runs for locale. Regional variants are
// accepted through their parents, so "ar-SA" passes when "ar" is listed.
func (c ConversionConfig) Supports(locale string) bool {
	supported := c.ResolvedLocales()
	if len(supported) == 0 {
		return false
	}

	for _, candidate := range localeChain(locale) {
		if slices.ContainsFunc(supported, func(code string) bool {
			return strings.EqualFold(code, candidate)
		}) {
			return true
		}
	}
	return false
}

// MatchLocale picks the best supported locale for an Accept-Language header.
func (c ConversionConfig) MatchLocale(acceptLanguage string) (string, bool) {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	supported := c.ResolvedLocales()
	codes := make([]string, 0, len(supported))
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return "", false
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No || index < 0 || index >= len(codes) {
		return "", false
	}
	return codes[index], true
}

// localeChain returns the normalized locale followed by its parents, most
// specific first: "ar-Arab-EG" -> ar-Arab-EG, ar-Arab, ar.
func localeChain(locale string) []string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil
	}

	chain := []string{normalized}
	seen := map[string]struct{}{strings.ToLower(normalized): {}}
	add := func(code string) {
		key := strings.ToLower(code)
		if code == "" || key == "und" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		chain = append(chain, code)
	}

	if tag, err := language.Parse(normalized); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			add(parent.String())
		}
		if base, confidence := tag.Base(); confidence != language.No {
			add(base.String())
		}
	}

	for current := normalized; ; {
		idx := strings.LastIndex(current, "-")
		if idx <= 0 {
			break
		}
		current = current[:idx]
		add(current)
	}

	return chain
}

// normalizeLocale trims the code and swaps "_" for "-" (ar_SA -> ar-SA).
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// normalizeLocales normalizes, de-duplicates and sorts codes. Blank codes
// are dropped; nil is returned when nothing remains.
func normalizeLocales(locales []string) []string {
	if len(locales) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locales))
	result := make([]string, 0, len(locales))
	for _, locale := range locales {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	if len(result) == 0 {
		return nil
	}

	slices.Sort(result)
	return result
}
