package service

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
)

type mockUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[int64]*domain.User{}}
}

func (m *mockUserRepo) add(user *domain.User) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == 0 {
		m.nextID++
		user.ID = m.nextID
	} else if user.ID > m.nextID {
		m.nextID = user.ID
	}
	m.users[user.ID] = user
	return user
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.add(user)
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type mockJobRepo struct {
	mu     sync.Mutex
	nextID int64
	jobs   map[int64]*domain.Job
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{jobs: map[int64]*domain.Job{}}
}

func (m *mockJobRepo) add(job *domain.Job) *domain.Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	if job.ID == 0 {
		m.nextID++
		job.ID = m.nextID
	} else if job.ID > m.nextID {
		m.nextID = job.ID
	}
	m.jobs[job.ID] = job
	return job
}

func (m *mockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	m.add(job)
	return nil
}

func (m *mockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[job.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.jobs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.jobs, id)
	return nil
}

func (m *mockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *job
	return &copied, nil
}

func (m *mockJobRepo) ListWithFilter(ctx context.Context, filter repository.JobFilter) ([]domain.Job, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []domain.Job
	for _, job := range m.jobs {
		if filter.ActiveOnly && !job.IsActive {
			continue
		}
		if filter.FeaturedOnly && !job.IsFeatured {
			continue
		}
		matched = append(matched, *job)
	}
	return matched, int64(len(matched)), nil
}

func (m *mockJobRepo) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []domain.Job
	for _, job := range m.jobs {
		if job.CreatedBy == creatorID {
			matched = append(matched, *job)
		}
	}
	return matched, nil
}

func (m *mockJobRepo) IncrementViews(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return pgx.ErrNoRows
	}
	job.Views++
	return nil
}

type mockApplicationRepo struct {
	mu     sync.Mutex
	nextID int64
	apps   map[int64]*domain.Application
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{apps: map[int64]*domain.Application{}}
}

func (m *mockApplicationRepo) add(app *domain.Application) *domain.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	if app.ID == 0 {
		m.nextID++
		app.ID = m.nextID
	} else if app.ID > m.nextID {
		m.nextID = app.ID
	}
	m.apps[app.ID] = app
	return app
}

func (m *mockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	m.add(app)
	return nil
}

func (m *mockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.apps[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *app
	return &copied, nil
}

func (m *mockApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, app := range m.apps {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			copied := *app
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockApplicationRepo) ListByJob(ctx context.Context, jobID int64, status *domain.ApplicationStatus) ([]domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []domain.Application
	for _, app := range m.apps {
		if app.JobID != jobID {
			continue
		}
		if status != nil && app.Status != *status {
			continue
		}
		matched = append(matched, *app)
	}
	return matched, nil
}

func (m *mockApplicationRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []domain.Application
	for _, app := range m.apps {
		if app.ApplicantID == applicantID {
			matched = append(matched, *app)
		}
	}
	return matched, nil
}

func (m *mockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	app, ok := m.apps[id]
	if !ok {
		return pgx.ErrNoRows
	}
	app.Status = status
	return nil
}

func (m *mockApplicationRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.apps[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.apps, id)
	return nil
}

func (m *mockApplicationRepo) StatsForCreator(ctx context.Context, creatorID int64) (*domain.ApplicationStats, error) {
	return &domain.ApplicationStats{}, nil
}

type mockSavedJobRepo struct {
	mu     sync.Mutex
	nextID int64
	saved  map[int64]*domain.SavedJob
}

func newMockSavedJobRepo() *mockSavedJobRepo {
	return &mockSavedJobRepo{saved: map[int64]*domain.SavedJob{}}
}

func (m *mockSavedJobRepo) Create(ctx context.Context, saved *domain.SavedJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	saved.ID = m.nextID
	m.saved[saved.ID] = saved
	return nil
}

func (m *mockSavedJobRepo) GetByID(ctx context.Context, id int64) (*domain.SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved, ok := m.saved[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *saved
	return &copied, nil
}

func (m *mockSavedJobRepo) FindByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, saved := range m.saved {
		if saved.UserID == userID && saved.JobID == jobID {
			copied := *saved
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockSavedJobRepo) ListByUser(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []domain.SavedJob
	for _, saved := range m.saved {
		if saved.UserID == userID {
			matched = append(matched, *saved)
		}
	}
	return matched, nil
}

func (m *mockSavedJobRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.saved[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.saved, id)
	return nil
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event(nil), d.events...)
}
