package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yigit/coursereg/internal/app/models"
	"github.com/yigit/coursereg/internal/pkg/apperrors"
)

// memoryGateway is an in-memory Gateway with the same uniqueness rule as the
// registrations table.
type memoryGateway struct {
	mu       sync.Mutex
	students map[string]*models.Student
	courses  map[int64]*models.Course
	regs     map[int64]models.Registration
	nextID   int64
	saves    int
	deletes  int
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{
		students: map[string]*models.Student{},
		courses:  map[int64]*models.Course{},
		regs:     map[int64]models.Registration{},
	}
}

func (g *memoryGateway) addStudent(s *models.Student) { g.students[s.Email] = s }
func (g *memoryGateway) addCourse(c *models.Course) { g.courses[c.ID] = c }

func (g *memoryGateway) FindStudentByEmail(_ context.Context, email string) (*models.Student, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.students[email]; ok {
		return s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (g *memoryGateway) FindCourseByID(_ context.Context, id int64) (*models.Course, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.courses[id]; ok {
		return c, nil
	}
	return nil, apperrors.ErrCourseNotFound
}

func (g *memoryGateway) list(studentID int64, keep func(models.Registration) bool) []models.Registration {
	var out []models.Registration
	for _, r := range g.regs {
		if r.StudentID == studentID && keep(r) {
			r.Course = g.courses[r.CourseID]
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (g *memoryGateway) FindRegistrationsByStudentID(_ context.Context, studentID int64) ([]models.Registration, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.list(studentID, func(models.Registration) bool { return true }), nil
}

func (g *memoryGateway) FindUpcomingRegistrations(_ context.Context, studentID int64, after time.Time) ([]models.Registration, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := g.list(studentID, func(r models.Registration) bool { return g.courses[r.CourseID].StartTime.After(after) })
	sort.SliceStable(out, func(i, j int) bool { return out[i].Course.StartTime.Before(out[j].Course.StartTime) })
	return out, nil
}

func (g *memoryGateway) SaveRegistration(_ context.Context, reg *models.Registration) (*models.Registration, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, r := range g.regs {
		if r.StudentID == reg.StudentID && r.CourseID == reg.CourseID {
			return nil, apperrors.ErrAlreadyRegistered
		}
	}
	g.nextID++
	saved := *reg
	saved.ID = g.nextID
	saved.Course = nil
	g.regs[saved.ID] = saved
	g.saves++
	return &saved, nil
}

func (g *memoryGateway) DeleteRegistration(_ context.Context, reg *models.Registration) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.regs[reg.ID]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	delete(g.regs, reg.ID)
	g.deletes++
	return nil
}
