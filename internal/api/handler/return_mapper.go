package handler

import (
	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// --- Domain → HTTP response ---

func toReturnResponse(r *domain.ReturnRequest) returnResponse {
	timeline := make([]timelineEntryResponse, len(r.Timeline))
	for i, entry := range r.Timeline {
		timeline[i] = timelineEntryResponse{
			Status: string(entry.Status),
			Label:  entry.Status.Label(),
			Date:   entry.Date.UTC(),
		}
	}

	return returnResponse{
		ID:           r.ID,
		OrderID:      r.OrderID,
		ClientEmail:  r.ClientEmail,
		RequestDate:  r.RequestDate.UTC(),
		Reason:       string(r.Reason),
		ReasonLabel:  r.Reason.Label(),
		ReturnMode:   string(r.ReturnMode),
		ModeLabel:    r.ReturnMode.Label(),
		Description:  r.Description,
		ProofImage:   r.ProofImage,
		Status:       string(r.Status),
		StatusLabel:  r.Status.Label(),
		Progress:     r.Progress,
		Satisfaction: r.Satisfaction,
		Timeline:     timeline,
		Links:        toReturnLinks(r.ID),
	}
}

func toSummaryResponse(r *domain.ReturnRequest) returnSummaryResponse {
	return returnSummaryResponse{
		ID:          r.ID,
		OrderID:     r.OrderID,
		ClientEmail: r.ClientEmail,
		RequestDate: r.RequestDate.UTC(),
		Reason:      string(r.Reason),
		ReasonLabel: r.Reason.Label(),
		ReturnMode:  string(r.ReturnMode),
		Status:      string(r.Status),
		StatusLabel: r.Status.Label(),
		Progress:    r.Progress,
		Links:       toReturnLinks(r.ID),
	}
}

func toListResponse(items []*domain.ReturnRequest) listReturnsResponse {
	data := make([]returnSummaryResponse, len(items))
	for i, r := range items {
		data[i] = toSummaryResponse(r)
	}
	return listReturnsResponse{Data: data, Count: len(data)}
}

func toStatsResponse(s *ports.DashboardStats) dashboardStatsResponse {
	breakdown := make(map[string]int, len(s.ReasonBreakdown))
	for reason, count := range s.ReasonBreakdown {
		breakdown[string(reason)] = count
	}
	return dashboardStatsResponse{
		Pending:             s.Pending,
		Processed:           s.Processed,
		AverageSatisfaction: s.AverageSatisfaction,
		ReasonBreakdown:     breakdown,
	}
}

func toReturnLinks(id string) returnLinks {
	return returnLinks{
		Self:   "/v1/returns/" + id,
		Events: "/v1/events/" + id,
	}
}
