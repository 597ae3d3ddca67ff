package catalog

import (
	"errors"
	"fmt"

	catalogRepo "expertbook/database/repository/catalog"
	expertRepo "expertbook/database/repository/expert"
	"expertbook/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors for the calendar view.
var (
	ErrPlanNotFound   = errors.New("plan not found")
	ErrExpertNotFound = errors.New("expert not found")
)

// InvalidReferenceError indicates a malformed entity reference in the input.
type InvalidReferenceError struct {
	Field string
}

func (e InvalidReferenceError) Error() string {
	return fmt.Sprintf("%s is not a valid entity reference", e.Field)
}

// CalendarSlot is one bookable slot in the calendar view.
type CalendarSlot struct {
	ID           primitive.ObjectID `json:"id"`
	Availability string             `json:"availability"`
	Timing       string             `json:"timing"`
	Period       string             `json:"period"`
	ExpertID     primitive.ObjectID `json:"expertId"`
	PlanID       primitive.ObjectID `json:"planId"`
}

// CalendarDate is one calendar day with its slots expanded inline.
type CalendarDate struct {
	ID           primitive.ObjectID      `json:"id"`
	Date         string                  `json:"date"`
	Availability models.DateAvailability `json:"availability"`
	Slots        []CalendarSlot          `json:"slots"`
}

// CalendarPlan is the plan summary embedded in the calendar view.
type CalendarPlan struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Channel     string             `json:"channel"`
	Duration    int                `json:"duration"`
	Price       string             `json:"price"`
	BookingType string             `json:"bookingType"`
	ExpertID    primitive.ObjectID `json:"expertId"`
	IsDedicated bool               `json:"isDedicated"`
}

// CalendarExpert is the expert summary embedded in the calendar view.
type CalendarExpert struct {
	ID        primitive.ObjectID `json:"id"`
	Fullname  string             `json:"fullname"`
	Expertise []string           `json:"expertise"`
}

// CalendarView is the guest-facing availability picture for one plan: the
// plan, its expert, and the expert's calendar days with slots expanded.
type CalendarView struct {
	Plan   CalendarPlan   `json:"plan"`
	Expert CalendarExpert `json:"expert"`
	Dates  []CalendarDate `json:"dates"`
}

// CatalogService covers read models assembled across the catalog entities.
type CatalogService interface {
	Calendar(planID string) (*CalendarView, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo       catalogRepo.CatalogRepository
	ExpertRepo expertRepo.ExpertRepository
}

// Calendar builds the availability view for a plan: plan lookup, then the
// owning expert, then the expert's dates with each date's slot references
// resolved to full slot documents.
func (s *DefaultCatalogService) Calendar(planID string) (*CalendarView, error) {
	id, err := primitive.ObjectIDFromHex(planID)
	if err != nil {
		return nil, InvalidReferenceError{Field: "plan_id"}
	}

	plan, err := s.Repo.GetPlan(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	expert, err := s.ExpertRepo.GetByID(plan.ExpertID)
	if err != nil {
		return nil, err
	}
	if expert == nil {
		return nil, ErrExpertNotFound
	}

	dates, err := s.Repo.DatesByExpert(plan.ExpertID)
	if err != nil {
		return nil, err
	}

	view := &CalendarView{
		Plan: CalendarPlan{
			ID:          plan.ID,
			Name:        plan.Name,
			Channel:     plan.Channel,
			Duration:    plan.Duration,
			Price:       plan.Price,
			BookingType: plan.BookingType,
			ExpertID:    plan.ExpertID,
			IsDedicated: plan.IsDedicated,
		},
		Expert: CalendarExpert{
			ID:        expert.ID,
			Fullname:  expert.Fullname,
			Expertise: expert.Expertise,
		},
		Dates: make([]CalendarDate, 0, len(dates)),
	}

	for _, date := range dates {
		slots, err := s.Repo.SlotsByIDs(date.SlotIDs)
		if err != nil {
			return nil, err
		}
		day := CalendarDate{
			ID:           date.ID,
			Date:         date.Date,
			Availability: date.Availability,
			Slots:        make([]CalendarSlot, 0, len(slots)),
		}
		for _, slot := range slots {
			day.Slots = append(day.Slots, CalendarSlot{
				ID:           slot.ID,
				Availability: slot.Availability,
				Timing:       slot.Timing,
				Period:       slot.Period,
				ExpertID:     slot.ExpertID,
				PlanID:       slot.PlanID,
			})
		}
		view.Dates = append(view.Dates, day)
	}
	return view, nil
}
