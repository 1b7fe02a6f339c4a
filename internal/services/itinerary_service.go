package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"safar/internal/models/db_models"
	"safar/internal/models/response_models"
	"safar/internal/repositories"
	"safar/pkg/memcache"
	"safar/pkg/utils"
)

const (
	generatedPackagesTTL = 30 * time.Minute
	// An abandoned completion frees the in-flight guard on its own.
	completionTimeout = 60 * time.Second
)

// ItineraryService runs the generation pipeline and manages the selected
// package. Generate always ends with three packages: the completion path is
// best-effort and every failure in it drops through to the local generator.
type ItineraryService interface {
	Generate(ctx context.Context, submissionID string, seed int64) ([]response_models.ItineraryPackage, error)
	GetGenerated(ctx context.Context, submissionID string) ([]response_models.ItineraryPackage, error)
	SelectPackage(ctx context.Context, submissionID, packageID string) (*response_models.SavedItineraryResponse, error)
	GetSaved(ctx context.Context, submissionID string) (*response_models.SavedItineraryResponse, error)
}

type itineraryService struct {
	submissionRepo repositories.SubmissionRepository
	attractionRepo repositories.AttractionRepository
	hotelRepo      repositories.HotelRepository
	transportRepo  repositories.TransportRepository
	itineraryRepo  repositories.ItineraryRepository

	textClient utils.TextClientInterface
	cache      memcache.ItineraryCache

	prompts   PromptBuilder
	assembler Assembler
	fallback  FallbackGenerator
}

func NewItineraryService(
	submissionRepo repositories.SubmissionRepository,
	attractionRepo repositories.AttractionRepository,
	hotelRepo repositories.HotelRepository,
	transportRepo repositories.TransportRepository,
	itineraryRepo repositories.ItineraryRepository,
	textClient utils.TextClientInterface,
	cache memcache.ItineraryCache,
) ItineraryService {
	return &itineraryService{
		submissionRepo: submissionRepo,
		attractionRepo: attractionRepo,
		hotelRepo:      hotelRepo,
		transportRepo:  transportRepo,
		itineraryRepo:  itineraryRepo,
		textClient:     textClient,
		cache:          cache,
		prompts:        NewPromptBuilder(),
		assembler:      NewAssembler(),
		fallback:       NewFallbackGenerator(),
	}
}

func (s *itineraryService) Generate(ctx context.Context, submissionID string, seed int64) ([]response_models.ItineraryPackage, error) {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubmissionNotFound
	}

	if !s.cache.StartGeneration(submissionID) {
		return nil, utils.ErrGenerationInFlight
	}
	defer s.cache.FinishGeneration(submissionID)

	attractions, hotels, transports := s.fetchRows(ctx, sub)

	packages := s.tryCompletion(ctx, sub, attractions, hotels, transports, seed)
	if len(packages) == 0 {
		packages = s.fallback.Generate(sub, attractions, hotels, transports, seed)
		idx := NewResourceIndex(hotels, transports)
		for i := range packages {
			RecomputePackage(&packages[i], idx)
		}
	}

	s.cache.Put(submissionID, packages, generatedPackagesTTL)
	return packages, nil
}

// fetchRows loads the resource tables for the submission's emirates. Fetch
// failures degrade to empty sets; the fallback generator covers empty data
// with its embedded table.
func (s *itineraryService) fetchRows(ctx context.Context, sub *db_models.Submission) ([]db_models.Attraction, []db_models.Hotel, []db_models.Transport) {
	attractions, err := s.attractionRepo.ListByEmirates(ctx, emirateFilter(sub.Emirates))
	if err != nil {
		log.Printf("itinerary: attraction fetch failed, continuing with empty set: %v", err)
		attractions = nil
	}

	hotels, err := s.hotelRepo.List(ctx)
	if err != nil {
		log.Printf("itinerary: hotel fetch failed, continuing with empty set: %v", err)
		hotels = nil
	}

	transports, err := s.transportRepo.List(ctx)
	if err != nil {
		log.Printf("itinerary: transport fetch failed, continuing with empty set: %v", err)
		transports = nil
	}

	return attractions, hotels, transports
}

// emirateFilter maps the stored list to a repository filter; the "all"
// sentinel means no filter.
func emirateFilter(emirates []string) []string {
	filter := make([]string, 0, len(emirates))
	for _, e := range emirates {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "all" {
			return nil
		}
		if e != "" {
			filter = append(filter, e)
		}
	}
	return filter
}

// tryCompletion runs prompt → completion → repair → assemble. Any failure
// returns nil, which the caller treats as the cue to generate locally.
func (s *itineraryService) tryCompletion(ctx context.Context, sub *db_models.Submission, attractions []db_models.Attraction, hotels []db_models.Hotel, transports []db_models.Transport, seed int64) []response_models.ItineraryPackage {
	prompt := s.prompts.Build(sub, attractions, hotels, transports)

	ctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	completion, err := s.textClient.CompleteItinerary(ctx, prompt)
	if err != nil {
		log.Printf("itinerary: completion failed for submission %s: %v", sub.ID, err)
		return nil
	}

	rawItems, err := utils.RepairToArray(completion)
	if err != nil {
		log.Printf("itinerary: unparsable completion for submission %s: %v", sub.ID, err)
		return nil
	}

	raws := make([]rawPackage, 0, len(rawItems))
	for _, item := range rawItems {
		var pkg rawPackage
		if err := json.Unmarshal(item, &pkg); err != nil {
			continue
		}
		if len(pkg.Days) == 0 && len(pkg.Weeks) == 0 {
			continue
		}
		raws = append(raws, pkg)
	}
	if len(raws) == 0 {
		return nil
	}

	return s.assembler.Assemble(raws, sub.Nights, attractions, hotels, transports, seed)
}

func (s *itineraryService) GetGenerated(ctx context.Context, submissionID string) ([]response_models.ItineraryPackage, error) {
	packages, ok := s.cache.Get(submissionID)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}
	return packages, nil
}

// SelectPackage persists one of the cached packages as the submission's saved
// itinerary, overwriting any previous selection.
func (s *itineraryService) SelectPackage(ctx context.Context, submissionID, packageID string) (*response_models.SavedItineraryResponse, error) {
	sub, err := s.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubmissionNotFound
	}

	packages, ok := s.cache.Get(submissionID)
	if !ok {
		return nil, utils.ErrItineraryNotFound
	}

	var selected *response_models.ItineraryPackage
	for i := range packages {
		if packages[i].ID == packageID {
			selected = &packages[i]
			break
		}
	}
	if selected == nil {
		return nil, utils.ErrItineraryNotFound
	}

	payload, err := json.Marshal(selected)
	if err != nil {
		return nil, err
	}

	saved := &db_models.SavedItinerary{
		SubmissionID: sub.ID,
		Method:       selected.Method,
		PackageJSON:  string(payload),
	}
	if err := s.itineraryRepo.Upsert(ctx, saved); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SavedItineraryResponse{
		SubmissionID: submissionID,
		Method:       selected.Method,
		Package:      *selected,
	}, nil
}

// GetSaved returns the selected package with costs recomputed against the
// current resource rows, so admin price edits show up in the summary.
func (s *itineraryService) GetSaved(ctx context.Context, submissionID string) (*response_models.SavedItineraryResponse, error) {
	saved, err := s.itineraryRepo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if saved == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var pkg response_models.ItineraryPackage
	if err := json.Unmarshal([]byte(saved.PackageJSON), &pkg); err != nil {
		log.Printf("itinerary: corrupt saved package for submission %s: %v", submissionID, err)
		return nil, utils.ErrItineraryNotFound
	}

	hotels, _ := s.hotelRepo.List(ctx)
	transports, _ := s.transportRepo.List(ctx)
	RecomputePackage(&pkg, NewResourceIndex(hotels, transports))

	return &response_models.SavedItineraryResponse{
		SubmissionID: submissionID,
		Method:       saved.Method,
		Package:      pkg,
	}, nil
}
