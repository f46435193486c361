// Package mcp exposes the week over the Model Context Protocol so assistants
// can read and plan tasks alongside the other surfaces.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/weekly/pkg/app"
	"tableflip.dev/weekly/pkg/day"
	"tableflip.dev/weekly/pkg/task"
	"tableflip.dev/weekly/pkg/week"
)

// ErrTaskNotFound is returned when a task id is not on the given day.
var ErrTaskNotFound = errors.New("task not found")

// Service runs task store operations on behalf of the MCP tools.
type Service struct {
	Store *app.Store
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	Text        string `json:"text"`
	Completed   bool   `json:"completed"`
	CreatedISO  string `json:"created,omitempty"`
	CreatedUnix int64  `json:"createdUnix,omitempty"`
}

// DayDTO is one column of the week.
type DayDTO struct {
	Day       string    `json:"day"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`
	Today     bool      `json:"today"`
	Tasks     []TaskDTO `json:"tasks"`
	OpenCount int       `json:"openCount"`
}

// WeekDTO is the whole week with totals.
type WeekDTO struct {
	WeekOf    string   `json:"weekOf"`
	Days      []DayDTO `json:"days"`
	Total     int      `json:"total"`
	Completed int      `json:"completed"`
}

// NewService builds a service over the task store.
func NewService(s *app.Store) *Service {
	return &Service{Store: s}
}

func (s *Service) ready() error {
	if s.Store == nil {
		return errors.New("task store is not configured")
	}
	return nil
}

// ParseDay resolves a day name, three letter alias or "today".
func (s *Service) ParseDay(name string) (day.Key, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return day.Parse(name, s.Store.Now())
}

// Week returns every day of the current week.
func (s *Service) Week(ctx context.Context) (WeekDTO, error) {
	if err := s.ready(); err != nil {
		return WeekDTO{}, err
	}
	now := s.Store.Now()
	wk := s.Store.Snapshot()
	dates := week.Current(now)

	out := WeekDTO{
		WeekOf: dates.Monday().Format("2006-01-02"),
		Days:   make([]DayDTO, 0, 7),
	}
	for _, d := range day.All() {
		dto := dayDTO(d, dates.Date(d), now, wk[d])
		out.Total += len(dto.Tasks)
		out.Completed += len(dto.Tasks) - dto.OpenCount
		out.Days = append(out.Days, dto)
	}
	return out, nil
}

// Day returns the tasks of one day.
func (s *Service) Day(ctx context.Context, d day.Key) (DayDTO, error) {
	if err := s.ready(); err != nil {
		return DayDTO{}, err
	}
	if !d.Valid() {
		return DayDTO{}, fmt.Errorf("unknown day %q", d)
	}
	now := s.Store.Now()
	return dayDTO(d, week.Current(now).Date(d), now, s.Store.Tasks(d)), nil
}

// AddTask appends a task to d.
func (s *Service) AddTask(ctx context.Context, d day.Key, text string) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	if strings.TrimSpace(text) == "" {
		return TaskDTO{}, errors.New("task text is required")
	}
	t, _ := s.Store.Add(d, text)
	if t == nil {
		return TaskDTO{}, fmt.Errorf("unknown day %q", d)
	}
	return toDTO(d, t), nil
}

// ToggleTask flips the completed flag.
func (s *Service) ToggleTask(ctx context.Context, d day.Key, id string) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	if s.Store.Toggle(d, id) == nil {
		return TaskDTO{}, notFound(d, id)
	}
	return s.taskOn(d, id)
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, d day.Key, id string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if s.Store.Delete(d, id) == nil {
		return notFound(d, id)
	}
	return nil
}

// RenameTask replaces the text of a task.
func (s *Service) RenameTask(ctx context.Context, d day.Key, id, text string) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	if strings.TrimSpace(text) == "" {
		return TaskDTO{}, errors.New("task text is required")
	}
	if !s.Store.Rename(d, id, text) {
		return TaskDTO{}, notFound(d, id)
	}
	return s.taskOn(d, id)
}

// MoveTask moves a task to the end of another day.
func (s *Service) MoveTask(ctx context.Context, from, to day.Key, id string) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	if from == to {
		return TaskDTO{}, fmt.Errorf("task is already on %s", to)
	}
	if s.Store.Move(from, to, id) == nil {
		return TaskDTO{}, notFound(from, id)
	}
	return s.taskOn(to, id)
}

// ClearCompleted drops every completed task and reports how many went.
func (s *Service) ClearCompleted(ctx context.Context) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	before := s.Store.Count()
	s.Store.ClearCompleted()
	return before - s.Store.Count(), nil
}

func (s *Service) taskOn(d day.Key, id string) (TaskDTO, error) {
	for _, t := range s.Store.Tasks(d) {
		if t.ID == id {
			return toDTO(d, t), nil
		}
	}
	return TaskDTO{}, notFound(d, id)
}

func notFound(d day.Key, id string) error {
	return fmt.Errorf("%w: %q on %s", ErrTaskNotFound, id, d)
}

func dayDTO(d day.Key, date, now time.Time, tasks []*task.Task) DayDTO {
	out := DayDTO{
		Day:   string(d),
		Title: d.Title(),
		Date:  date.Format("2006-01-02"),
		Today: week.IsToday(date, now),
		Tasks: make([]TaskDTO, 0, len(tasks)),
	}
	for _, t := range tasks {
		if !t.Completed {
			out.OpenCount++
		}
		out.Tasks = append(out.Tasks, toDTO(d, t))
	}
	return out
}

func toDTO(d day.Key, t *task.Task) TaskDTO {
	dto := TaskDTO{
		ID:        t.ID,
		Day:       string(d),
		Text:      t.Text,
		Completed: t.Completed,
	}
	if !t.CreatedAt.IsZero() {
		dto.CreatedISO = t.CreatedAt.String()
		dto.CreatedUnix = t.CreatedAt.Unix()
	}
	return dto
}
