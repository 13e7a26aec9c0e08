package services

import (
	"context"

	"alumni-portal/models"
	"alumni-portal/storage"
)

// recentActivityLimit matches what the dashboards display.
const recentActivityLimit = 5

type ActivityService struct {
	store storage.ActivityStore
}

func NewActivityService(store storage.ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// Recent returns the newest feed entries, most recent first.
func (s *ActivityService) Recent(ctx context.Context) ([]models.Activity, error) {
	return s.store.RecentActivities(ctx, recentActivityLimit)
}
