package services

import (
	"context"
	"sort"
	"time"

	"taskly/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// GetGoalsByUser returns a user's goals, optionally narrowed to one
// period, newest end date first.
func GetGoalsByUser(ctx context.Context, firestoreClient *firestore.Client, userID string, period model.GoalPeriod) ([]model.Goal, error) {
	query := firestoreClient.Collection("Goals").Where("createdby", "==", userID)
	if period != "" {
		query = query.Where("period", "==", string(period))
	}

	iter := query.Documents(ctx)
	var goals []model.Goal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var g model.Goal
		if err := doc.DataTo(&g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}

	sort.SliceStable(goals, func(i, j int) bool {
		return goals[i].EndDate > goals[j].EndDate
	})

	return goals, nil
}

// UpdateGoalProgress persists a recomputed current value. Only
// currentvalue and lastupdated are touched; everything else on the
// goal stays client-owned.
func UpdateGoalProgress(ctx context.Context, firestoreClient *firestore.Client, goalID string, currentValue int, now time.Time) error {
	_, err := firestoreClient.Collection("Goals").Doc(goalID).Update(ctx, []firestore.Update{
		{Path: "currentvalue", Value: currentValue},
		{Path: "lastupdated", Value: now},
	})
	return err
}
