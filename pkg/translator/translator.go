package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var (
	supported = []language.Tag{language.English, language.French}
	matcher   = language.NewMatcher(supported)
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if len(cfg.SupportedLanguages) > 0 {
		setSupportedLanguages(cfg.SupportedLanguages)
	}

	files, err := translationFiles(cfg)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, file := range files {
		if _, err := Translator.LoadMessageFile(file); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", file), zap.Error(err))
		}
	}
}

// Match negotiates an Accept-Language header against the supported languages
// and returns the base language code, English when nothing matches.
func Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}

	base, _ := supported[index].Base()
	return base.String()
}

// translationFiles returns one <lang>.toml per supported language, or every
// file of the folder when no language list is configured.
func translationFiles(cfg Config) ([]string, error) {
	if len(cfg.SupportedLanguages) > 0 {
		files := make([]string, 0, len(cfg.SupportedLanguages))
		for _, lang := range cfg.SupportedLanguages {
			file := filepath.Join(cfg.TranslationFolder, lang+".toml")
			if _, err := os.Stat(file); err != nil {
				zap.L().Warn("missing translation file", zap.String("file", file))
				continue
			}
			files = append(files, file)
		}
		return files, nil
	}

	entries, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(cfg.TranslationFolder, entry.Name()))
	}
	return files, nil
}

func setSupportedLanguages(languages []string) {
	tags := make([]language.Tag, 0, len(languages))
	for _, lang := range languages {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring unsupported language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return
	}

	supported = tags
	matcher = language.NewMatcher(tags)
}
