package services

import (
	"context"
	"sort"
	"strings"

	"taskly/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// GetTasksByUser returns every task owned by a user, ordered by
// completion date descending (tasks without a completion date sort
// last). Search and difficulty filtering happen in memory: the task
// sets here are tens to low-hundreds of records and Firestore has no
// substring matching.
func GetTasksByUser(ctx context.Context, firestoreClient *firestore.Client, userID string) ([]model.Task, error) {
	iter := firestoreClient.Collection("Tasks").
		Where("createdby", "==", userID).
		Documents(ctx)

	var tasks []model.Task
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var t model.Task
		if err := doc.DataTo(&t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DateCompleted > tasks[j].DateCompleted
	})

	return tasks, nil
}

// FilterTasks narrows a task list by free-text search (title or skills,
// case-insensitive) and exact difficulty. Empty filters pass everything
// through. The input slice is not mutated.
func FilterTasks(tasks []model.Task, search string, difficulty model.Difficulty) []model.Task {
	if search == "" && difficulty == "" {
		return tasks
	}

	needle := strings.ToLower(search)
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if difficulty != "" && t.Difficulty != difficulty {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.SkillsAcquired), needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}
