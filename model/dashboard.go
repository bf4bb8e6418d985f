package model

import "time"

type Dashboard struct {
	DashboardID string    `firestore:"dashboardid,omitempty"`
	Name        string    `firestore:"name,omitempty"`
	Company     string    `firestore:"company,omitempty"`
	Description string    `firestore:"description,omitempty"`
	CreatedBy   string    `firestore:"createdby,omitempty"`
	CreatedAt   time.Time `firestore:"createdat,omitempty"`
	UpdatedAt   time.Time `firestore:"updatedat,omitempty"`
}
