package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/razzzeeev/astro/internal/cache"
	"github.com/razzzeeev/astro/internal/llm"
	"github.com/razzzeeev/astro/internal/metrics"
	"github.com/razzzeeev/astro/internal/translate"
	"github.com/razzzeeev/astro/internal/vectorstore"
	"github.com/razzzeeev/astro/internal/zodiac"
)

// Context texts pulled straight from the corpus when similarity search
// yields nothing.
const contextFallbackLimit = 3

// Produce runs the insight pipeline for one request. The sequence is
// strictly ordered: validate language, resolve sign, read profile,
// cache lookup, generate on miss, translate per-request, record the
// interaction. The cache always holds the default-language text; the
// returned error is limited to invalid input (date or language).
func (s *Service) Produce(ctx context.Context, req Request, lang string) (Result, error) {
	ctx, span := s.tracer.StartSpan(ctx, "produce-insight")
	defer span.End()

	if lang == "" {
		lang = translate.DefaultLanguage
	}
	if !translate.Supported(lang) {
		err := fmt.Errorf("%w: %q", translate.ErrUnsupportedLanguage, lang)
		s.tracer.RecordErrorOnSpan(span, err)
		return Result{}, err
	}

	birth, err := zodiac.ParseBirthDate(req.BirthDate)
	if err != nil {
		s.tracer.RecordErrorOnSpan(span, err)
		return Result{}, err
	}
	sign := zodiac.ResolveDate(birth)
	s.tracer.SetAttributes(span, map[string]interface{}{
		"zodiac":   string(sign),
		"language": lang,
	})

	var profile *cache.Profile
	if req.UserID != "" {
		if p, ok := s.cache.GetProfile(req.UserID); ok {
			profile = &p
		}
	}

	var english, source string
	entry, cacheHit := s.cache.GetDailyInsight(sign)
	if cacheHit {
		english = entry.Text
		source = entry.Source
		s.metrics.IncrementCacheEvent(metrics.EventHit)
		s.log.Info("daily insight cache hit", nil, map[string]interface{}{
			"zodiac": string(sign),
		})
	} else {
		s.metrics.IncrementCacheEvent(metrics.EventMiss)
		generated := s.generate(ctx, req.Name, sign, profile)
		english = generated.Text
		source = generated.Source
		s.cache.SetDailyInsight(sign, english, translate.DefaultLanguage, source)
	}

	// The cached entry stays in the default language; non-default
	// requests are translated here, every time.
	text := english
	if lang != translate.DefaultLanguage {
		text = s.translateInsight(ctx, english, lang)
	}

	var userScore *float64
	if req.UserID != "" {
		score := s.cache.RecordInteraction(req.UserID, sign, english, &cache.BirthSnapshot{
			Name:       req.Name,
			BirthDate:  req.BirthDate,
			BirthTime:  req.BirthTime,
			BirthPlace: req.BirthPlace,
			Latitude:   req.Latitude,
			Longitude:  req.Longitude,
		})
		userScore = &score
	}

	s.tracer.SetAttributes(span, map[string]interface{}{
		"cache_hit": cacheHit,
		"source":    source,
	})

	return Result{
		Zodiac:    sign,
		Insight:   text,
		Language:  lang,
		CacheHit:  cacheHit,
		UserScore: userScore,
		UserID:    req.UserID,
		Source:    source,
	}, nil
}

// generate builds the context and calls the generator. Search problems
// degrade to corpus texts for the sign; generation itself never fails.
func (s *Service) generate(ctx context.Context, name string, sign zodiac.Sign, profile *cache.Profile) llm.Generation {
	ctx, span := s.tracer.StartSpan(ctx, "generate-insight")
	defer span.End()

	query := deriveQuery(sign, profile)
	matches, err := s.searcher.Search(ctx, query, sign, 0)
	if err != nil {
		s.metrics.IncrementFallback(metrics.StageVectorSearch)
		s.log.Warn("vector search failed, continuing without retrieved context", err, map[string]interface{}{
			"zodiac": string(sign),
		})
		matches = nil
	}
	if len(matches) == 0 {
		for _, text := range s.corpus.BySign(sign, contextFallbackLimit) {
			matches = append(matches, vectorstore.Match{Text: text, Zodiac: string(sign)})
		}
	}

	out := s.generator.Generate(ctx, llm.GenerateInput{
		Name:    name,
		Sign:    sign,
		Context: matches,
		Profile: profile,
	})
	if out.Source == llm.SourceTemplate {
		s.metrics.IncrementFallback(metrics.StageGeneration)
	}

	s.tracer.SetAttributes(span, map[string]interface{}{
		"query":        query,
		"context_size": len(matches),
		"source":       out.Source,
	})
	return out
}

// translateInsight applies per-request translation, counting outcomes.
// The insight survives any translation degradation untranslated.
func (s *Service) translateInsight(ctx context.Context, english, lang string) string {
	ctx, span := s.tracer.StartSpan(ctx, "translate-insight")
	defer span.End()
	s.tracer.SetAttributes(span, map[string]interface{}{"language": lang})

	translation, err := s.translator.Translate(ctx, english, lang)
	if err != nil {
		// Supported() was checked up front, so this is unreachable in
		// the request path; degrade the same way regardless.
		s.metrics.IncrementTranslation(lang, metrics.OutcomeFailed)
		return english
	}
	if !translation.Applied {
		s.metrics.IncrementTranslation(lang, metrics.OutcomePassthrough)
		s.metrics.IncrementFallback(metrics.StageTranslation)
		return translation.Text
	}
	s.metrics.IncrementTranslation(lang, metrics.OutcomeApplied)
	return translation.Text
}

// themeKeywords maps interest themes to the trigger words scanned for in
// the user's most recent insight, in fixed priority order.
var themeKeywords = []struct {
	theme string
	words []string
}{
	{"career", []string{"career", "work", "job", "professional"}},
	{"love", []string{"love", "relationship", "partner", "romance"}},
	{"health", []string{"health", "wellness", "energy", "body"}},
	{"finance", []string{"finance", "money", "financial", "wealth"}},
}

// deriveQuery builds the similarity query. New users get the plain sign
// query; returning users get a theme-focused one when their last insight
// hints at interests, or a generic personalized one otherwise.
func deriveQuery(sign zodiac.Sign, profile *cache.Profile) string {
	if profile == nil || len(profile.History) == 0 {
		return fmt.Sprintf("%s daily horoscope insight", sign)
	}

	recent := strings.ToLower(profile.LastInsightText())
	var themes []string
	for _, tk := range themeKeywords {
		for _, w := range tk.words {
			if strings.Contains(recent, w) {
				themes = append(themes, tk.theme)
				break
			}
		}
	}

	if len(themes) == 0 {
		return fmt.Sprintf("%s personalized daily horoscope insight", sign)
	}
	return fmt.Sprintf("%s %s daily horoscope insight", sign, strings.Join(themes, " "))
}
