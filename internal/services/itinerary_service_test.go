package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"safar/internal/models/db_models"
	"safar/internal/repositories"
	"safar/pkg/memcache"
	"safar/pkg/utils"

	"github.com/google/uuid"
)

// ---------- fakes ----------

type fakeSubmissionRepo struct {
	subs map[string]*db_models.Submission
}

func (f *fakeSubmissionRepo) Create(_ context.Context, sub *db_models.Submission) (uuid.UUID, error) {
	return sub.ID, nil
}

func (f *fakeSubmissionRepo) GetByID(_ context.Context, id string) (*db_models.Submission, error) {
	return f.subs[id], nil
}

func (f *fakeSubmissionRepo) List(_ context.Context, _, _ int) ([]db_models.Submission, error) {
	return nil, nil
}

type fakeAttractionRepo struct {
	rows []db_models.Attraction
	err  error
}

func (f *fakeAttractionRepo) Create(_ context.Context, _ *db_models.Attraction) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (f *fakeAttractionRepo) Update(_ context.Context, _ *db_models.Attraction) error { return nil }
func (f *fakeAttractionRepo) Delete(_ context.Context, _ uuid.UUID) error             { return nil }
func (f *fakeAttractionRepo) GetByID(_ context.Context, _ string) (*db_models.Attraction, error) {
	return nil, nil
}
func (f *fakeAttractionRepo) List(_ context.Context, _, _ int) ([]db_models.Attraction, error) {
	return f.rows, f.err
}
func (f *fakeAttractionRepo) ListByEmirates(_ context.Context, _ []string) ([]db_models.Attraction, error) {
	return f.rows, f.err
}
func (f *fakeAttractionRepo) SearchByName(_ context.Context, _ string, _, _ int) ([]db_models.Attraction, error) {
	return f.rows, f.err
}

type fakeHotelRepo struct {
	rows []db_models.Hotel
}

func (f *fakeHotelRepo) Create(_ context.Context, _ *db_models.Hotel) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (f *fakeHotelRepo) Update(_ context.Context, _ *db_models.Hotel) error { return nil }
func (f *fakeHotelRepo) Delete(_ context.Context, _ uuid.UUID) error        { return nil }
func (f *fakeHotelRepo) GetByID(_ context.Context, _ string) (*db_models.Hotel, error) {
	return nil, nil
}
func (f *fakeHotelRepo) GetByName(_ context.Context, name string) (*db_models.Hotel, error) {
	for i := range f.rows {
		if f.rows[i].Name == name {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}
func (f *fakeHotelRepo) List(_ context.Context) ([]db_models.Hotel, error) { return f.rows, nil }

type fakeTransportRepo struct {
	rows []db_models.Transport
}

func (f *fakeTransportRepo) Create(_ context.Context, _ *db_models.Transport) (uuid.UUID, error) {
	return uuid.Nil, nil
}
func (f *fakeTransportRepo) Update(_ context.Context, _ *db_models.Transport) error { return nil }
func (f *fakeTransportRepo) Delete(_ context.Context, _ uuid.UUID) error            { return nil }
func (f *fakeTransportRepo) GetByID(_ context.Context, _ string) (*db_models.Transport, error) {
	return nil, nil
}
func (f *fakeTransportRepo) GetByName(_ context.Context, name string) (*db_models.Transport, error) {
	for i := range f.rows {
		if f.rows[i].Name == name {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}
func (f *fakeTransportRepo) List(_ context.Context) ([]db_models.Transport, error) {
	return f.rows, nil
}

type fakeItineraryRepo struct {
	saved map[string]*db_models.SavedItinerary
}

func (f *fakeItineraryRepo) Upsert(_ context.Context, it *db_models.SavedItinerary) error {
	if f.saved == nil {
		f.saved = make(map[string]*db_models.SavedItinerary)
	}
	f.saved[it.SubmissionID.String()] = it
	return nil
}

func (f *fakeItineraryRepo) GetBySubmissionID(_ context.Context, id string) (*db_models.SavedItinerary, error) {
	return f.saved[id], nil
}

type fakeTextClient struct {
	completion string
	err        error
	calls      int
}

func (f *fakeTextClient) CompleteItinerary(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.completion, f.err
}

func (f *fakeTextClient) Close() error { return nil }

var (
	_ repositories.SubmissionRepository = (*fakeSubmissionRepo)(nil)
	_ repositories.AttractionRepository = (*fakeAttractionRepo)(nil)
	_ repositories.HotelRepository      = (*fakeHotelRepo)(nil)
	_ repositories.TransportRepository  = (*fakeTransportRepo)(nil)
	_ repositories.ItineraryRepository  = (*fakeItineraryRepo)(nil)
	_ utils.TextClientInterface         = (*fakeTextClient)(nil)
)

// ---------- fixtures ----------

func pipelineFixture(client *fakeTextClient) (ItineraryService, *db_models.Submission, *fakeItineraryRepo) {
	sub := &db_models.Submission{
		Adults:   2,
		Nights:   3,
		Emirates: []string{"dubai"},
	}
	sub.ID = uuid.New()

	attractions, hotels, transports := assemblerFixtures()

	itineraryRepo := &fakeItineraryRepo{}
	svc := NewItineraryService(
		&fakeSubmissionRepo{subs: map[string]*db_models.Submission{sub.ID.String(): sub}},
		&fakeAttractionRepo{rows: attractions},
		&fakeHotelRepo{rows: hotels},
		&fakeTransportRepo{rows: transports},
		itineraryRepo,
		client,
		memcache.NewItineraryCache(),
	)
	return svc, sub, itineraryRepo
}

const goodCompletion = "```json\n" + `[
  {"id": "p1", "title": "City Break", "theme": "urban", "days": [
    {"day": 1, "title": "Day One", "attractions": [{"name": "Burj Khalifa"}], "hotel": "Hotel A", "transport": "Metro"},
    {"day": 2, "title": "Day Two", "attractions": ["Louvre Abu Dhabi"]},
    {"day": 3, "title": "Day Three"}
  ]},
  {"id": "p2", "title": "Second", "theme": "beach", "days": [{"day": 1}]},
  {"id": "p3", "title": "Third", "theme": "desert", "days": [{"day": 1}]}
]` + "\n```"

// ---------- tests ----------

func TestGenerateAIPath(t *testing.T) {
	client := &fakeTextClient{completion: goodCompletion}
	svc, sub, _ := pipelineFixture(client)

	packages, err := svc.Generate(context.Background(), sub.ID.String(), 13)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(packages))
	}
	if client.calls != 1 {
		t.Errorf("completion called %d times, want 1", client.calls)
	}

	first := packages[0]
	if first.Method != "AI" {
		t.Errorf("method = %q, want AI", first.Method)
	}
	if len(first.Days) != 3 {
		t.Fatalf("first package has %d days, want 3", len(first.Days))
	}
	// Day 1 keeps its stated hotel; days 2 and 3 are backfilled.
	if first.Days[0].Hotel != "Hotel A" {
		t.Errorf("day 1 hotel = %q", first.Days[0].Hotel)
	}
	if first.Days[1].Hotel == "" || first.Days[2].Transport == "" {
		t.Error("missing slots were not backfilled")
	}
	// String-form attraction decoded and reconciled.
	if first.Days[1].Attractions[0].Name != "Louvre Abu Dhabi" || first.Days[1].Attractions[0].Price != 65 {
		t.Errorf("day 2 attraction not reconciled: %+v", first.Days[1].Attractions[0])
	}
	// Short packages are padded to the trip length.
	if len(packages[1].Days) != 3 {
		t.Errorf("second package padded to %d days, want 3", len(packages[1].Days))
	}
	if first.TotalCost <= 0 {
		t.Error("total cost not recomputed")
	}
}

func TestGenerateFallsBackOnCompletionError(t *testing.T) {
	client := &fakeTextClient{err: errors.New("upstream 500")}
	svc, sub, _ := pipelineFixture(client)

	packages, err := svc.Generate(context.Background(), sub.ID.String(), 13)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("expected 3 fallback packages, got %d", len(packages))
	}
	for _, pkg := range packages {
		if pkg.Method != "Random" {
			t.Errorf("method = %q, want Random", pkg.Method)
		}
		if len(pkg.Days) != 3 {
			t.Errorf("package %q has %d days, want 3", pkg.Title, len(pkg.Days))
		}
		if pkg.TotalCost <= 0 {
			t.Error("fallback package costs not computed")
		}
	}
}

func TestGenerateFallsBackOnGarbageCompletion(t *testing.T) {
	client := &fakeTextClient{completion: "I cannot help with that."}
	svc, sub, _ := pipelineFixture(client)

	packages, err := svc.Generate(context.Background(), sub.ID.String(), 4)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(packages))
	}
	if packages[0].Method != "Random" {
		t.Errorf("method = %q, want Random", packages[0].Method)
	}
}

func TestGenerateUnknownSubmission(t *testing.T) {
	client := &fakeTextClient{completion: goodCompletion}
	svc, _, _ := pipelineFixture(client)

	_, err := svc.Generate(context.Background(), uuid.NewString(), 1)
	if !errors.Is(err, utils.ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
	if client.calls != 0 {
		t.Error("completion should not run for an unknown submission")
	}
}

func TestGenerateInFlightGuard(t *testing.T) {
	client := &fakeTextClient{completion: goodCompletion}
	sub := &db_models.Submission{Adults: 2, Nights: 2, Emirates: []string{"dubai"}}
	sub.ID = uuid.New()

	cache := memcache.NewItineraryCache()
	svc := NewItineraryService(
		&fakeSubmissionRepo{subs: map[string]*db_models.Submission{sub.ID.String(): sub}},
		&fakeAttractionRepo{},
		&fakeHotelRepo{},
		&fakeTransportRepo{},
		&fakeItineraryRepo{},
		client,
		cache,
	)

	// Simulate a generation already running for this submission.
	cache.StartGeneration(sub.ID.String())

	_, err := svc.Generate(context.Background(), sub.ID.String(), 1)
	if !errors.Is(err, utils.ErrGenerationInFlight) {
		t.Fatalf("expected ErrGenerationInFlight, got %v", err)
	}

	// Once the first cycle finishes, generation is allowed again.
	cache.FinishGeneration(sub.ID.String())
	if _, err := svc.Generate(context.Background(), sub.ID.String(), 1); err != nil {
		t.Fatalf("Generate after release returned error: %v", err)
	}
}

func TestGenerateSurvivesFetchFailure(t *testing.T) {
	client := &fakeTextClient{err: errors.New("down")}
	sub := &db_models.Submission{Adults: 2, Nights: 2, Emirates: []string{"dubai"}}
	sub.ID = uuid.New()

	svc := NewItineraryService(
		&fakeSubmissionRepo{subs: map[string]*db_models.Submission{sub.ID.String(): sub}},
		&fakeAttractionRepo{err: errors.New("db down")},
		&fakeHotelRepo{},
		&fakeTransportRepo{},
		&fakeItineraryRepo{},
		client,
		memcache.NewItineraryCache(),
	)

	packages, err := svc.Generate(context.Background(), sub.ID.String(), 6)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(packages) != 3 {
		t.Fatalf("expected 3 packages from embedded data, got %d", len(packages))
	}
	for _, pkg := range packages {
		for _, day := range pkg.Days {
			if len(day.Attractions) == 0 {
				t.Error("embedded table did not cover an empty fetch")
			}
		}
	}
}

func TestSelectPackageAndGetSaved(t *testing.T) {
	client := &fakeTextClient{completion: goodCompletion}
	svc, sub, repo := pipelineFixture(client)

	packages, err := svc.Generate(context.Background(), sub.ID.String(), 13)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	saved, err := svc.SelectPackage(context.Background(), sub.ID.String(), packages[0].ID)
	if err != nil {
		t.Fatalf("SelectPackage returned error: %v", err)
	}
	if saved.Package.ID != packages[0].ID {
		t.Errorf("saved package id = %q, want %q", saved.Package.ID, packages[0].ID)
	}

	row := repo.saved[sub.ID.String()]
	if row == nil {
		t.Fatal("selection was not persisted")
	}
	if !json.Valid([]byte(row.PackageJSON)) {
		t.Error("persisted package blob is not valid JSON")
	}

	got, err := svc.GetSaved(context.Background(), sub.ID.String())
	if err != nil {
		t.Fatalf("GetSaved returned error: %v", err)
	}
	if got.Package.ID != packages[0].ID {
		t.Errorf("loaded package id = %q, want %q", got.Package.ID, packages[0].ID)
	}
	if got.Package.TotalCost != saved.Package.TotalCost {
		t.Errorf("recomputed total %v != selected total %v", got.Package.TotalCost, saved.Package.TotalCost)
	}
}

func TestSelectPackageMissingState(t *testing.T) {
	client := &fakeTextClient{completion: goodCompletion}
	svc, sub, _ := pipelineFixture(client)

	// Nothing generated yet: the cache is empty.
	_, err := svc.SelectPackage(context.Background(), sub.ID.String(), "nope")
	if !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("expected ErrItineraryNotFound, got %v", err)
	}

	_, err = svc.GetSaved(context.Background(), sub.ID.String())
	if !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("expected ErrItineraryNotFound, got %v", err)
	}
}
