package repotest

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

type teacherRepo struct{ s *Store }

// withStudents returns a copy of t carrying its student ids. Callers hold the lock.
func (s *Store) withStudents(t models.Teacher) *models.Teacher {
	ids := []int64{}
	for _, st := range s.students {
		if st.TeacherID != nil && *st.TeacherID == t.ID {
			ids = append(ids, st.ID)
		}
	}
	slices.Sort(ids)
	t.StudentIDs = ids
	return &t
}

func (r *teacherRepo) Create(_ context.Context, teacher *models.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teachers {
		if t.Email == teacher.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	teacher.ID = r.s.newID()
	teacher.CreatedAt = time.Now()
	teacher.UpdatedAt = teacher.CreatedAt
	teacher.StudentIDs = []int64{}
	r.s.teachers[teacher.ID] = *teacher
	return nil
}

func (r *teacherRepo) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.teachers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.s.withStudents(t), nil
}

func (r *teacherRepo) GetByEmail(_ context.Context, email string) (*models.Teacher, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teachers {
		if t.Email == email {
			return r.s.withStudents(t), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *teacherRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, t := range r.s.teachers {
		if t.Email == email && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *teacherRepo) Update(_ context.Context, teacher *models.Teacher) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teachers[teacher.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, t := range r.s.teachers {
		if t.Email == teacher.Email && t.ID != teacher.ID {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	teacher.UpdatedAt = time.Now()
	r.s.teachers[teacher.ID] = *teacher
	return nil
}

// Delete removes the teacher and clears it from its students, like ON DELETE SET NULL.
func (r *teacherRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.teachers[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.teachers, id)

	for sid, st := range r.s.students {
		if st.TeacherID != nil && *st.TeacherID == id {
			st.TeacherID = nil
			r.s.students[sid] = st
		}
	}
	return nil
}

func (r *teacherRepo) List(_ context.Context, query models.PageQuery) ([]*models.Teacher, int64, error) {
	return r.find(func(models.Teacher) bool { return true }, query)
}

func (r *teacherRepo) SearchByName(_ context.Context, name string, query models.PageQuery) ([]*models.Teacher, int64, error) {
	return r.find(func(t models.Teacher) bool { return containsFold(t.Name, name) }, query)
}

func (r *teacherRepo) find(match func(models.Teacher) bool, query models.PageQuery) ([]*models.Teacher, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []models.Teacher
	for _, t := range r.s.teachers {
		if match(t) {
			items = append(items, t)
		}
	}
	out, total := page(items, query, func(a, b models.Teacher) int {
		switch query.Sort.Field {
		case "id":
			return cmp.Compare(a.ID, b.ID)
		case "name":
			return cmp.Compare(a.Name, b.Name)
		case "email":
			return cmp.Compare(a.Email, b.Email)
		case "subject":
			return cmp.Compare(a.Subject, b.Subject)
		case "department":
			return cmp.Compare(a.Department, b.Department)
		case "age":
			return compareNullable(a.Age, b.Age)
		}
		return 0
	}, func(x models.Teacher) int64 { return x.ID })

	for i, t := range out {
		out[i] = r.s.withStudents(*t)
	}
	return out, total, nil
}
