package repotest

import (
	"cmp"
	"context"
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

type studentRepo struct{ s *Store }

// withTeacher returns a copy of st carrying its teacher's name. Callers hold the lock.
func (s *Store) withTeacher(st models.Student) *models.Student {
	st.Teacher = nil
	if st.TeacherID != nil {
		if t, ok := s.teachers[*st.TeacherID]; ok {
			st.Teacher = &models.Teacher{ID: t.ID, Name: t.Name}
		}
	}
	return &st
}

// checkStudent enforces the unique and foreign key constraints. Callers hold the lock.
func (s *Store) checkStudent(student *models.Student) error {
	for _, st := range s.students {
		if st.ID == student.ID {
			continue
		}
		if st.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if st.StudentID == student.StudentID {
			return apperrors.ErrStudentIDExists
		}
	}
	if student.TeacherID != nil {
		if _, ok := s.teachers[*student.TeacherID]; !ok {
			return apperrors.ErrTeacherNotFound
		}
	}
	return nil
}

func (r *studentRepo) Create(_ context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.checkStudent(student); err != nil {
		return err
	}
	student.ID = r.s.newID()
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt

	stored := *student
	stored.Teacher = nil
	r.s.students[student.ID] = stored
	return nil
}

func (r *studentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st, ok := r.s.students[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return r.s.withTeacher(st), nil
}

func (r *studentRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, st := range r.s.students {
		if st.Email == email && st.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *studentRepo) ExistsByStudentID(_ context.Context, studentID string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, st := range r.s.students {
		if st.StudentID == studentID && st.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *studentRepo) Update(_ context.Context, student *models.Student) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[student.ID]; !ok {
		return repositories.ErrNotFound
	}
	if err := r.s.checkStudent(student); err != nil {
		return err
	}
	student.UpdatedAt = time.Now()

	stored := *student
	stored.Teacher = nil
	r.s.students[student.ID] = stored
	return nil
}

func (r *studentRepo) SetTeacher(_ context.Context, studentID int64, teacherID *int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	st, ok := r.s.students[studentID]
	if !ok {
		return repositories.ErrNotFound
	}
	if teacherID != nil {
		if _, ok := r.s.teachers[*teacherID]; !ok {
			return apperrors.ErrTeacherNotFound
		}
		id := *teacherID
		teacherID = &id
	}
	st.TeacherID = teacherID
	st.UpdatedAt = time.Now()
	r.s.students[studentID] = st
	return nil
}

func (r *studentRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.students[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.students, id)
	return nil
}

func (r *studentRepo) List(_ context.Context, query models.PageQuery) ([]*models.Student, int64, error) {
	return r.find(func(models.Student) bool { return true }, query)
}

func (r *studentRepo) SearchByName(_ context.Context, name string, query models.PageQuery) ([]*models.Student, int64, error) {
	return r.find(func(st models.Student) bool { return containsFold(st.Name, name) }, query)
}

func (r *studentRepo) find(match func(models.Student) bool, query models.PageQuery) ([]*models.Student, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []models.Student
	for _, st := range r.s.students {
		if match(st) {
			items = append(items, st)
		}
	}
	out, total := page(items, query, func(a, b models.Student) int {
		switch query.Sort.Field {
		case "id":
			return cmp.Compare(a.ID, b.ID)
		case "name":
			return cmp.Compare(a.Name, b.Name)
		case "email":
			return cmp.Compare(a.Email, b.Email)
		case "studentId":
			return cmp.Compare(a.StudentID, b.StudentID)
		case "department":
			return cmp.Compare(a.Department, b.Department)
		case "grade":
			return cmp.Compare(a.Grade, b.Grade)
		case "age":
			return compareNullable(a.Age, b.Age)
		case "enrollmentDate":
			return compareDates(a.EnrollmentDate, b.EnrollmentDate)
		}
		return 0
	}, func(x models.Student) int64 { return x.ID })

	for i, st := range out {
		out[i] = r.s.withTeacher(*st)
	}
	return out, total, nil
}
