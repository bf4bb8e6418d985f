package stats

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"taskly/dto"
	"taskly/metrics"
	"taskly/middleware"
	"taskly/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const defaultWindowDays = 7

// Clients refetch stats on every realtime change notification. Two
// notifications landing close together would otherwise run two
// overlapping evaluate-and-write cycles for the same user; the
// singleflight group keyed by user id collapses them into one.
var evalGroup singleflight.Group

func StatsController(router *gin.Engine, firestoreClient *firestore.Client) {
	routes := router.Group("/stats", middleware.AccessTokenMiddleware())
	{
		routes.GET("/overview", func(c *gin.Context) {
			Overview(c, firestoreClient)
		})
		routes.GET("/charts", func(c *gin.Context) {
			Charts(c, firestoreClient)
		})
		routes.GET("/insights", func(c *gin.Context) {
			InsightsHandler(c, firestoreClient)
		})
	}
}

// Overview fetches the user's tasks, re-evaluates every active weekly
// goal against them, persists the values that changed, and returns the
// goals with their clamped progress. A persistence failure on one goal
// never blocks the others.
func Overview(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)
	ctx := context.Background()

	result, err, _ := evalGroup.Do(userId, func() (interface{}, error) {
		return refreshGoals(ctx, firestoreClient, userId, time.Now())
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh stats"})
		return
	}

	c.JSON(http.StatusOK, result.(dto.OverviewResponse))
}

func refreshGoals(ctx context.Context, firestoreClient *firestore.Client, userId string, now time.Time) (dto.OverviewResponse, error) {
	tasks, err := services.GetTasksByUser(ctx, firestoreClient, userId)
	if err != nil {
		return dto.OverviewResponse{}, err
	}
	goals, err := services.GetGoalsByUser(ctx, firestoreClient, userId, "")
	if err != nil {
		return dto.OverviewResponse{}, err
	}

	responses := make([]dto.GoalProgressResponse, 0, len(goals))
	for _, g := range goals {
		value, write := metrics.EvaluateGoal(g, tasks, now)
		if write {
			if err := services.UpdateGoalProgress(ctx, firestoreClient, g.GoalID, value, now); err != nil {
				// Keep evaluating the remaining goals; the stale cached
				// value is corrected on the next cycle.
				logrus.WithFields(logrus.Fields{
					"goalId": g.GoalID,
					"userId": userId,
				}).WithError(err).Error("failed to persist goal progress")
			} else {
				g.CurrentValue = value
				g.LastUpdated = now
			}
		}
		responses = append(responses, dto.NewGoalProgressResponse(g))
	}

	return dto.OverviewResponse{
		TaskCount: len(tasks),
		Goals:     responses,
	}, nil
}

func Charts(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	windowDays := defaultWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
			return
		}
		windowDays = parsed
	}

	ctx := context.Background()
	tasks, err := services.GetTasksByUser(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, dto.ChartsResponse{
		DifficultyDistribution: metrics.DifficultyDistribution(tasks),
		TopSkills:              metrics.SkillFrequency(tasks, 5),
		HoursTimeSeries:        metrics.TimeSeries(tasks, windowDays, time.Now()),
	})
}

func InsightsHandler(c *gin.Context, firestoreClient *firestore.Client) {
	userId := c.MustGet("userId").(string)

	ctx := context.Background()
	tasks, err := services.GetTasksByUser(ctx, firestoreClient, userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, metrics.MonthlyInsights(tasks, time.Now()))
}
