package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"

	"riskprofiler/internal/models"
	"riskprofiler/internal/util"
)

// OCREngine turns an image into text
type OCREngine interface {
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}

var (
	fieldLinePattern = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z _/-]*?)\s*[:=]\s*(.*?)\s*$`)
	integerPattern   = regexp.MustCompile(`\d{1,3}`)
)

// fieldAliases maps normalized survey labels to answer keys
var fieldAliases = map[string]string{
	"age":               util.FieldAge,
	"age_years":         util.FieldAge,
	"smoker":            util.FieldSmoker,
	"smoking":           util.FieldSmoker,
	"smokes":            util.FieldSmoker,
	"exercise":          util.FieldExercise,
	"activity":          util.FieldExercise,
	"physical_activity": util.FieldExercise,
	"diet":              util.FieldDiet,
	"eating_habits":     util.FieldDiet,
	"alcohol":           util.FieldAlcohol,
	"alcohol_intake":    util.FieldAlcohol,
	"drinking":          util.FieldAlcohol,
	"sleep":             util.FieldSleep,
	"sleep_hours":       util.FieldSleep,
}

// OCRService extracts survey answers from images and raw text
type OCRService struct {
	engine OCREngine
	cache  *bigcache.BigCache
	logger *util.Logger
}

// NewOCRService creates a new OCR service. A zero cacheTTL disables caching.
func NewOCRService(engine OCREngine, cacheTTL time.Duration) (*OCRService, error) {
	s := &OCRService{
		engine: engine,
		logger: util.NewLogger("OCRService"),
	}

	if cacheTTL > 0 {
		cacheCfg := bigcache.DefaultConfig(cacheTTL)
		cacheCfg.Shards = 64
		cacheCfg.MaxEntriesInWindow = 1024
		cacheCfg.MaxEntrySize = 4096
		cacheCfg.HardMaxCacheSize = 64 // MB
		cacheCfg.CleanWindow = cacheTTL
		cache, err := bigcache.New(context.Background(), cacheCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create ocr cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Close releases the cache
func (s *OCRService) Close() error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Close()
}

// ExtractText runs OCR on the image, reusing cached text for identical images
func (s *OCRService) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	sum := sha256.Sum256(image)
	key := hex.EncodeToString(sum[:])

	if s.cache != nil {
		if cached, err := s.cache.Get(key); err == nil {
			s.logger.KeyValue("OCR cache hit", "key", key[:12])
			return string(cached), nil
		} else if !errors.Is(err, bigcache.ErrEntryNotFound) {
			s.logger.Warn("OCR cache lookup failed", err)
		}
	}

	text, err := s.engine.ExtractText(ctx, image, mimeType)
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}

	if s.cache != nil && text != "" {
		if err := s.cache.Set(key, []byte(text)); err != nil {
			s.logger.Warn("Failed to cache OCR result", err)
		}
	}

	return text, nil
}

// ParseAnswersFromText reads "Label: value" pairs from survey text. Pairs may
// be separated by newlines, commas or semicolons. Values that cannot be
// interpreted are left out.
func (s *OCRService) ParseAnswersFromText(ctx context.Context, text string) (models.Answers, error) {
	answers := models.Answers{}

	segments := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == ';'
	})

	for _, segment := range segments {
		match := fieldLinePattern.FindStringSubmatch(segment)
		if match == nil {
			continue
		}

		label := strings.ToLower(strings.TrimSpace(match[1]))
		label = strings.NewReplacer(" ", "_", "-", "_", "/", "_").Replace(label)
		field, ok := fieldAliases[label]
		if !ok {
			continue
		}
		if _, seen := answers[field]; seen {
			continue
		}

		if value, ok := parseFieldValue(field, match[2]); ok {
			answers[field] = value
		}
	}

	return answers, nil
}

func parseFieldValue(field, raw string) (interface{}, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	switch field {
	case util.FieldAge:
		digits := integerPattern.FindString(raw)
		if digits == "" {
			return nil, false
		}
		age, err := strconv.Atoi(digits)
		if err != nil || age <= 0 || age > 130 {
			return nil, false
		}
		return age, true
	case util.FieldSmoker:
		smoker, ok := util.ParseYesNo(raw)
		if !ok {
			return nil, false
		}
		return smoker, true
	default:
		return strings.ToLower(raw), true
	}
}
