package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"selfchart/domain/chart"
	"selfchart/domain/core"
	"selfchart/models"
)

// memRepo is an in-memory ReadingRepository for service tests.
type memRepo struct {
	mu         sync.Mutex
	readings   map[string]*models.Reading
	failCreate bool
}

func newMemRepo() *memRepo {
	return &memRepo{readings: make(map[string]*models.Reading)}
}

func (r *memRepo) Create(_ context.Context, reading *models.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return errors.New("store unavailable")
	}
	r.readings[reading.PublicID] = reading
	return nil
}

func (r *memRepo) Fetch(_ context.Context, publicID core.PublicID, secret core.Secret) (*models.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reading, ok := r.readings[publicID.String()]
	if !ok || !core.Secret(reading.Secret).Matches(secret) {
		return nil, core.ErrNotFoundOrUnauthorized
	}
	return reading, nil
}

func (r *memRepo) MarkPurchased(ctx context.Context, publicID core.PublicID, secret core.Secret) error {
	reading, err := r.Fetch(ctx, publicID, secret)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	reading.Purchased = true
	return nil
}

func (r *memRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.readings)
}

func allThrees() []int {
	raw := make([]int, 100)
	for i := range raw {
		raw[i] = 3
	}
	return raw
}

func referenceInput() SubmitInput {
	return SubmitInput{
		Responses: allThrees(),
		Birth:     chart.BirthRecord{Date: "1990-06-15", Time: "08:30", Place: "Lisbon"},
	}
}

func TestSubmit_EndToEndDeterminism(t *testing.T) {
	svc := NewReadingService(newMemRepo(), 4, nil)

	first, err := svc.Submit(context.Background(), referenceInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	second, err := svc.Submit(context.Background(), referenceInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	svc.Drain()

	if first.Fingerprint != second.Fingerprint {
		t.Errorf("identical input must produce identical triples: %s vs %s", first.Fingerprint, second.Fingerprint)
	}
	if first.PublicID == second.PublicID {
		t.Error("each submission gets its own public id")
	}
	if first.Secret == second.Secret {
		t.Error("each submission gets its own secret")
	}
	if len(first.Insights) < 4 || len(first.Insights) > 5 {
		t.Errorf("insight report must have 4 or 5 entries, got %d", len(first.Insights))
	}
}

func TestSubmit_PersistsInBackground(t *testing.T) {
	repo := newMemRepo()
	svc := NewReadingService(repo, 4, nil)

	result, err := svc.Submit(context.Background(), referenceInput())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	svc.Drain()

	if repo.count() != 1 {
		t.Fatalf("expected 1 persisted reading, got %d", repo.count())
	}

	stored, err := svc.Fetch(context.Background(), result.PublicID, result.Secret)
	if err != nil {
		t.Fatalf("fetch with correct secret failed: %v", err)
	}
	if stored.Fingerprint != result.Fingerprint.String() {
		t.Error("stored fingerprint must match the returned result")
	}
	if stored.Purchased {
		t.Error("readings start unpurchased")
	}
}

func TestSubmit_ValidationFailsBeforeDerivation(t *testing.T) {
	repo := newMemRepo()
	svc := NewReadingService(repo, 4, nil)

	input := referenceInput()
	input.Responses = input.Responses[:99]
	if _, err := svc.Submit(context.Background(), input); !core.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}

	input = referenceInput()
	input.Birth.Date = "not-a-date"
	if _, err := svc.Submit(context.Background(), input); !core.IsParseError(err) {
		t.Errorf("expected parse error, got %v", err)
	}

	svc.Drain()
	if repo.count() != 0 {
		t.Error("failed submissions must not persist anything")
	}
}

func TestSubmit_PersistenceFailureIsSwallowed(t *testing.T) {
	repo := newMemRepo()
	repo.failCreate = true
	svc := NewReadingService(repo, 4, nil)

	result, err := svc.Submit(context.Background(), referenceInput())
	if err != nil {
		t.Fatalf("persistence failure must not surface to the caller: %v", err)
	}
	svc.Drain()

	if result == nil || result.Trait.Type == "" {
		t.Error("caller still gets the locally derived result")
	}
}

func TestMarkPurchased_RequiresSecret(t *testing.T) {
	repo := newMemRepo()
	svc := NewReadingService(repo, 4, nil)

	result, err := svc.Submit(context.Background(), referenceInput())
	if err != nil {
		t.Fatal(err)
	}
	svc.Drain()

	if err := svc.MarkPurchased(context.Background(), result.PublicID, "wrong"); !core.IsNotFoundOrUnauthorized(err) {
		t.Errorf("wrong secret must be opaque, got %v", err)
	}
	if err := svc.MarkPurchased(context.Background(), result.PublicID, result.Secret); err != nil {
		t.Fatalf("purchase with correct secret failed: %v", err)
	}

	stored, err := svc.Fetch(context.Background(), result.PublicID, result.Secret)
	if err != nil {
		t.Fatal(err)
	}
	if !stored.Purchased {
		t.Error("purchase flag should be set")
	}
}
