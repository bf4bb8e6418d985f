package model

import "time"

type ApplicationStatus string

const (
	ApplicationApplied      ApplicationStatus = "Applied"
	ApplicationInterviewing ApplicationStatus = "Interviewing"
	ApplicationOffer        ApplicationStatus = "Offer"
	ApplicationRejected     ApplicationStatus = "Rejected"
)

type Application struct {
	ApplicationID string            `firestore:"applicationid,omitempty"`
	DashboardID   string            `firestore:"dashboardid,omitempty"`
	Company       string            `firestore:"company,omitempty"`
	Position      string            `firestore:"position,omitempty"`
	Status        ApplicationStatus `firestore:"status,omitempty"`
	AppliedDate   string            `firestore:"applieddate,omitempty"`
	PostingURL    string            `firestore:"postingurl,omitempty"`
	Notes         string            `firestore:"notes,omitempty"`
	CreatedBy     string            `firestore:"createdby,omitempty"`
	UpdatedAt     time.Time         `firestore:"updatedat,omitempty"`
}
