package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"sync"

	"tripweaver/internal/config"
	"tripweaver/internal/models/request_models"
	"tripweaver/internal/providers"
	"tripweaver/pkg/cache"
	"tripweaver/pkg/utils"
)

type RecommendationServiceInterface interface {
	// AggregateCandidates returns one ranked candidate list for the trip and
	// whether the venue data came from the static fallback tier. An empty
	// list is a valid outcome; the scheduler then fills every slot from the
	// fallback catalog.
	AggregateCandidates(ctx context.Context, criteria request_models.SearchCriteria, trip request_models.TripContext) ([]request_models.Candidate, bool)
}

type RecommendationService struct {
	venues   *providers.VenueChain
	mentions providers.MentionProvider
	enricher utils.EnrichmentClientInterface
	store    cache.Store
	ttl      config.CacheTTLs
	cfg      config.AggregatorConfig
}

func NewRecommendationService(
	venues *providers.VenueChain,
	mentions providers.MentionProvider,
	enricher utils.EnrichmentClientInterface,
	store cache.Store,
	ttl config.CacheTTLs,
	cfg config.AggregatorConfig,
) RecommendationServiceInterface {
	return &RecommendationService{
		venues:   venues,
		mentions: mentions,
		enricher: enricher,
		store:    store,
		ttl:      ttl,
		cfg:      cfg,
	}
}

type cachedVenues struct {
	Candidates []request_models.Candidate `json:"candidates"`
	Fallback   bool                       `json:"fallback"`
}

func criteriaParams(criteria request_models.SearchCriteria) map[string]any {
	return map[string]any{
		"destination": criteria.Destination,
		"start":       criteria.StartDate.Format("2006-01-02"),
		"end":         criteria.EndDate.Format("2006-01-02"),
		"travelers":   criteria.TravelerCount,
		"interests":   criteria.Interests,
	}
}

func (s *RecommendationService) AggregateCandidates(ctx context.Context, criteria request_models.SearchCriteria, trip request_models.TripContext) ([]request_models.Candidate, bool) {
	var (
		wg            sync.WaitGroup
		venueList     []request_models.Candidate
		venueFallback bool
		mentionList   []request_models.Candidate
	)

	// Venue and mention searches are independent; a failure in one branch
	// must not cancel the other. Each degrades on its own.
	wg.Add(1)
	go func() {
		defer wg.Done()
		venueList, venueFallback = s.searchVenues(ctx, criteria)
	}()

	if s.mentions != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mentionList = s.searchMentions(ctx, criteria)
		}()
	}
	wg.Wait()

	merged := mergeCandidates(venueList, mentionList)
	if s.cfg.MaxCandidates > 0 && len(merged) > s.cfg.MaxCandidates {
		merged = merged[:s.cfg.MaxCandidates]
	}

	return s.enrich(ctx, merged, trip), venueFallback
}

func (s *RecommendationService) searchVenues(ctx context.Context, criteria request_models.SearchCriteria) ([]request_models.Candidate, bool) {
	key := cache.BuildKey(cache.KindVenues, criteriaParams(criteria))
	if s.store != nil {
		if raw, ok := s.store.Get(ctx, key); ok {
			var cached cachedVenues
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached.Candidates, cached.Fallback
			}
		}
	}

	candidates, fallback := s.venues.Search(ctx, criteria)

	if s.store != nil {
		if raw, err := json.Marshal(cachedVenues{Candidates: candidates, Fallback: fallback}); err == nil {
			s.store.Set(ctx, key, raw, s.ttl.Venues)
		}
	}
	return candidates, fallback
}

func (s *RecommendationService) searchMentions(ctx context.Context, criteria request_models.SearchCriteria) []request_models.Candidate {
	key := cache.BuildKey(cache.KindMentions, criteriaParams(criteria))
	if s.store != nil {
		if raw, ok := s.store.Get(ctx, key); ok {
			var cached []request_models.Candidate
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached
			}
		}
	}

	mentions, err := s.mentions.SearchMentions(ctx, criteria)
	if err != nil {
		log.Printf("mention mining failed, continuing without community data: %v", err)
		return nil
	}

	if s.store != nil {
		if raw, err := json.Marshal(mentions); err == nil {
			s.store.Set(ctx, key, raw, s.ttl.Mentions)
		}
	}
	return mentions
}

// mergeCandidates concatenates both sources into one ranked list. Duplicates
// collapse onto the first occurrence, keeping the higher confidence and the
// union of source tags so mention frequency survives for prioritization.
func mergeCandidates(venues, mentions []request_models.Candidate) []request_models.Candidate {
	merged := make([]request_models.Candidate, 0, len(venues)+len(mentions))
	index := make(map[string]int)

	for _, c := range append(append([]request_models.Candidate{}, venues...), mentions...) {
		key := normalizeName(c.Name)
		if at, seen := index[key]; seen {
			if c.Confidence > merged[at].Confidence {
				merged[at].Confidence = c.Confidence
			}
			merged[at].SourceTags = appendMissingTags(merged[at].SourceTags, c.SourceTags)
			continue
		}
		index[key] = len(merged)
		merged = append(merged, c)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Confidence > merged[j].Confidence
	})
	return merged
}

func appendMissingTags(tags, extra []string) []string {
	for _, tag := range extra {
		found := false
		for _, existing := range tags {
			if existing == tag {
				found = true
				break
			}
		}
		if !found {
			tags = append(tags, tag)
		}
	}
	return tags
}

// enrich runs the optional text-enrichment pass. The only trusted signal of
// a broken enrichment call is a length mismatch, so the check lives here
// regardless of what the client implementation promises. Timeouts and errors
// keep the original list untouched.
func (s *RecommendationService) enrich(ctx context.Context, candidates []request_models.Candidate, trip request_models.TripContext) []request_models.Candidate {
	if s.cfg.EnrichmentBackend == config.EnrichmentOff || s.enricher == nil || len(candidates) == 0 {
		return candidates
	}

	enrichCtx := ctx
	if s.cfg.EnrichmentTimeout > 0 {
		var cancel context.CancelFunc
		enrichCtx, cancel = context.WithTimeout(ctx, s.cfg.EnrichmentTimeout)
		defer cancel()
	}

	enhanced, err := s.enricher.EnhanceCandidates(enrichCtx, candidates, trip)
	if err != nil {
		log.Printf("enrichment failed, keeping original candidates: %v", err)
		return candidates
	}
	if len(enhanced) != len(candidates) {
		log.Printf("enrichment returned %d candidates for %d inputs, discarding", len(enhanced), len(candidates))
		return candidates
	}
	return enhanced
}
