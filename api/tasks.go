package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/worklane/worklane-go/models"
)

// TaskService manages marketplace task listings.
type TaskService struct {
	client *Client
}

// List fetches all tasks visible to the caller.
func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	if err := s.client.do(ctx, http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return out, nil
}

// Get fetches a single task by ID.
func (s *TaskService) Get(ctx context.Context, id string) (models.Task, error) {
	var out models.Task
	if err := s.client.do(ctx, http.MethodGet, "/tasks/"+id, nil, &out); err != nil {
		return models.Task{}, fmt.Errorf("failed to fetch task: %w", err)
	}
	return out, nil
}

// Create posts a new task.
func (s *TaskService) Create(ctx context.Context, task models.TaskCreate) (models.Task, error) {
	var out models.Task
	if err := s.client.do(ctx, http.MethodPost, "/tasks", task, &out); err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return out, nil
}

// Update patches an existing task.
func (s *TaskService) Update(ctx context.Context, id string, task models.TaskCreate) (models.Task, error) {
	var out models.Task
	if err := s.client.do(ctx, http.MethodPatch, "/tasks/"+id, task, &out); err != nil {
		return models.Task{}, fmt.Errorf("failed to update task: %w", err)
	}
	return out, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
