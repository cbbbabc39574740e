package models

import "time"

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Review is customer feedback on a provider. Only approved reviews are public.
type Review struct {
	ID           string       `json:"id"`
	ProviderID   string       `json:"providerId"`
	ReviewerName string       `json:"reviewerName"`
	Rating       int          `json:"rating"` // 1..5
	Comment      string       `json:"comment"`
	CreatedAt    time.Time    `json:"createdAt"`
	Status       ReviewStatus `json:"status"`
}

func (r Review) GetID() string { return r.ID }

// ReviewInput is what the review form submits.
type ReviewInput struct {
	ReviewerName string `json:"reviewerName" validate:"required"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
}
