package api

import (
	"context"

	"github.com/slatehq/slate/internal/domain"
)

// DashboardClient covers the landing view aggregates.
type DashboardClient struct {
	c *Client
}

func NewDashboardClient(c *Client) *DashboardClient {
	return &DashboardClient{c: c}
}

func (d *DashboardClient) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := d.c.Get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *DashboardClient) RecentActivity(ctx context.Context) (*domain.RecentActivity, error) {
	var out domain.RecentActivity
	if err := d.c.Get(ctx, "/dashboard/recent-activity", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *DashboardClient) MyTasks(ctx context.Context) ([]domain.MyTask, error) {
	var out []domain.MyTask
	if err := d.c.Get(ctx, "/dashboard/my-tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
