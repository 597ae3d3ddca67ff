package reschedule

import "expertbook/models"

func summarize(requests []models.ReschedulingRequest, expertName string) []RequestSummary {
	summaries := make([]RequestSummary, 0, len(requests))
	for _, req := range requests {
		summary := RequestSummary{
			CurrentBookingID: req.CurrentBookingID.Hex(),
			RequestedBy:      string(req.RequestedBy),
			ExpertName:       expertName,
		}
		if !req.RequestedDateID.IsZero() {
			summary.RequestedDateID = req.RequestedDateID.Hex()
		}
		if !req.RequestedSlotID.IsZero() {
			summary.RequestedSlotID = req.RequestedSlotID.Hex()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// ListRequests returns every pending reschedule request as a reference-only
// summary.
func (s *DefaultRescheduleService) ListRequests() ([]RequestSummary, error) {
	requests, err := s.Repo.ListRequests()
	if err != nil {
		return nil, err
	}
	return summarize(requests, ""), nil
}

// ListRequestsByExpert returns pending requests whose bookings belong to the
// given expert. The expert must exist; an empty result is reported as
// ErrNoRequests.
func (s *DefaultRescheduleService) ListRequestsByExpert(expertID string) ([]RequestSummary, error) {
	id, err := parseRef("expertId", expertID)
	if err != nil {
		return nil, err
	}

	expert, err := s.ExpertRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expert == nil {
		return nil, ErrExpertNotFound
	}

	bookingIDs, err := s.BookingRepo.IDsByExpert(id)
	if err != nil {
		return nil, err
	}
	requests, err := s.Repo.ListRequestsForBookings(bookingIDs)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, ErrNoRequests
	}
	return summarize(requests, expert.Username), nil
}
