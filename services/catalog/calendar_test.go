package catalog

import (
	"testing"

	"expertbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCatalogRepo is an in-memory CatalogRepository; only the read paths the
// calendar view touches are populated.
type fakeCatalogRepo struct {
	plans map[primitive.ObjectID]models.Plan
	slots map[primitive.ObjectID]models.Slot
	dates []models.DateEntry
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		plans: map[primitive.ObjectID]models.Plan{},
		slots: map[primitive.ObjectID]models.Slot{},
	}
}

func (f *fakeCatalogRepo) CreatePlan(p *models.Plan) (*models.Plan, error) {
	stored := *p
	stored.ID = primitive.NewObjectID()
	f.plans[stored.ID] = stored
	return &stored, nil
}

func (f *fakeCatalogRepo) GetPlan(id primitive.ObjectID) (*models.Plan, error) {
	if p, ok := f.plans[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepo) ListPlans() ([]models.Plan, error) { return nil, nil }

func (f *fakeCatalogRepo) PlansByExpert(expertID primitive.ObjectID) ([]models.Plan, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) UpdatePlan(id primitive.ObjectID, fields bson.M) (*models.Plan, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) DeletePlan(id primitive.ObjectID) (bool, error) { return false, nil }

func (f *fakeCatalogRepo) CreateSlot(s *models.Slot) (*models.Slot, error) {
	stored := *s
	stored.ID = primitive.NewObjectID()
	f.slots[stored.ID] = stored
	return &stored, nil
}

func (f *fakeCatalogRepo) ListSlots() ([]models.Slot, error) { return nil, nil }

func (f *fakeCatalogRepo) SlotsByExpert(expertID primitive.ObjectID) ([]models.Slot, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) SlotsByIDs(ids []primitive.ObjectID) ([]models.Slot, error) {
	var out []models.Slot
	for _, id := range ids {
		if s, ok := f.slots[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) UpdateSlot(id primitive.ObjectID, fields bson.M) (*models.Slot, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) DeleteSlot(id primitive.ObjectID) (bool, error) { return false, nil }

func (f *fakeCatalogRepo) CreateDate(d *models.DateEntry) (*models.DateEntry, error) {
	stored := *d
	stored.ID = primitive.NewObjectID()
	f.dates = append(f.dates, stored)
	return &stored, nil
}

func (f *fakeCatalogRepo) ListDates() ([]models.DateEntry, error) { return nil, nil }

func (f *fakeCatalogRepo) DatesByExpert(expertID primitive.ObjectID) ([]models.DateEntry, error) {
	var out []models.DateEntry
	for _, d := range f.dates {
		if d.ExpertID == expertID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) UpdateDate(id primitive.ObjectID, fields bson.M) (*models.DateEntry, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) DeleteDate(id primitive.ObjectID) (bool, error) { return false, nil }

type fakeExpertRepo struct {
	experts map[primitive.ObjectID]models.Expert
}

func newFakeExpertRepo() *fakeExpertRepo {
	return &fakeExpertRepo{experts: map[primitive.ObjectID]models.Expert{}}
}

func (f *fakeExpertRepo) Create(e *models.Expert) (*models.Expert, error) {
	stored := *e
	stored.ID = primitive.NewObjectID()
	f.experts[stored.ID] = stored
	return &stored, nil
}

func (f *fakeExpertRepo) List() ([]models.Expert, error) { return nil, nil }

func (f *fakeExpertRepo) GetByID(id primitive.ObjectID) (*models.Expert, error) {
	if e, ok := f.experts[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (f *fakeExpertRepo) Update(id primitive.ObjectID, fields bson.M) (*models.Expert, error) {
	return nil, nil
}

func (f *fakeExpertRepo) DeleteByID(id primitive.ObjectID) (bool, error) { return false, nil }

func TestCalendarBuildsFullView(t *testing.T) {
	repo := newFakeCatalogRepo()
	experts := newFakeExpertRepo()
	svc := &DefaultCatalogService{Repo: repo, ExpertRepo: experts}

	expert, err := experts.Create(&models.Expert{
		Fullname:  "Dr. Meera Shah",
		Expertise: []string{"career counselling"},
	})
	require.NoError(t, err)

	plan, err := repo.CreatePlan(&models.Plan{
		Name:     "Evening consult",
		Channel:  "video",
		Duration: 30,
		Price:    "1500",
		ExpertID: expert.ID,
	})
	require.NoError(t, err)

	slot, err := repo.CreateSlot(&models.Slot{
		Availability: "available",
		Timing:       "6:30",
		Period:       "PM",
		PlanID:       plan.ID,
		ExpertID:     expert.ID,
	})
	require.NoError(t, err)

	_, err = repo.CreateDate(&models.DateEntry{
		Date:         "14/09/2026",
		Availability: models.DateAvailable,
		ExpertID:     expert.ID,
		SlotIDs:      []primitive.ObjectID{slot.ID},
	})
	require.NoError(t, err)

	view, err := svc.Calendar(plan.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, plan.ID, view.Plan.ID)
	assert.Equal(t, "Evening consult", view.Plan.Name)
	assert.Equal(t, "Dr. Meera Shah", view.Expert.Fullname)
	require.Len(t, view.Dates, 1)
	assert.Equal(t, "14/09/2026", view.Dates[0].Date)
	require.Len(t, view.Dates[0].Slots, 1)
	assert.Equal(t, slot.ID, view.Dates[0].Slots[0].ID)
	assert.Equal(t, "6:30", view.Dates[0].Slots[0].Timing)
	assert.Equal(t, plan.ID, view.Dates[0].Slots[0].PlanID)
}

func TestCalendarDateWithoutSlotsYieldsEmptyList(t *testing.T) {
	repo := newFakeCatalogRepo()
	experts := newFakeExpertRepo()
	svc := &DefaultCatalogService{Repo: repo, ExpertRepo: experts}

	expert, err := experts.Create(&models.Expert{Fullname: "Dr. Meera Shah"})
	require.NoError(t, err)
	plan, err := repo.CreatePlan(&models.Plan{Name: "Consult", ExpertID: expert.ID})
	require.NoError(t, err)
	_, err = repo.CreateDate(&models.DateEntry{
		Date:         "15/09/2026",
		Availability: models.DateHoliday,
		ExpertID:     expert.ID,
	})
	require.NoError(t, err)

	view, err := svc.Calendar(plan.ID.Hex())
	require.NoError(t, err)
	require.Len(t, view.Dates, 1)
	assert.Empty(t, view.Dates[0].Slots)
	assert.NotNil(t, view.Dates[0].Slots)
}

func TestCalendarMissingPlan(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo(), ExpertRepo: newFakeExpertRepo()}

	_, err := svc.Calendar(primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestCalendarMissingExpert(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo, ExpertRepo: newFakeExpertRepo()}

	plan, err := repo.CreatePlan(&models.Plan{Name: "Orphan", ExpertID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = svc.Calendar(plan.ID.Hex())
	assert.ErrorIs(t, err, ErrExpertNotFound)
}

func TestCalendarMalformedReference(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo(), ExpertRepo: newFakeExpertRepo()}

	_, err := svc.Calendar("not-a-plan")
	var refErr InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "plan_id", refErr.Field)
}
