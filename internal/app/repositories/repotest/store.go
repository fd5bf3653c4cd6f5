// Package repotest provides in-memory repositories for tests. They enforce the
// same unique and foreign key rules as the PostgreSQL schema.
package repotest

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/yigit/schoolhub/internal/app/models"
	"github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// Store holds admins, teachers and students and hands out repositories over them.
type Store struct {
	mu       sync.Mutex
	nextID   int64
	admins   map[int64]models.Admin
	teachers map[int64]models.Teacher
	students map[int64]models.Student
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		admins:   make(map[int64]models.Admin),
		teachers: make(map[int64]models.Teacher),
		students: make(map[int64]models.Student),
	}
}

// Admins returns an admin repository backed by the store
func (s *Store) Admins() repositories.IAdminRepository { return &adminRepo{s} }

// Teachers returns a teacher repository backed by the store
func (s *Store) Teachers() repositories.ITeacherRepository { return &teacherRepo{s} }

// Students returns a student repository backed by the store
func (s *Store) Students() repositories.IStudentRepository { return &studentRepo{s} }

func (s *Store) newID() int64 {
	s.nextID++
	return s.nextID
}

// page orders items by the sort field, then by ascending id, and returns the
// requested slice together with the total.
func page[T any](items []T, query models.PageQuery, byField func(a, b T) int, id func(T) int64) ([]*T, int64) {
	slices.SortFunc(items, func(a, b T) int {
		c := byField(a, b)
		if query.Sort.Desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(id(a), id(b))
		}
		return c
	})

	total := int64(len(items))
	start := len(items)
	if offset := query.Offset(); offset < uint64(len(items)) {
		start = int(offset)
	}
	end := start + query.Size
	if end > len(items) {
		end = len(items)
	}

	out := make([]*T, 0, end-start)
	for i := start; i < end; i++ {
		item := items[i]
		out = append(out, &item)
	}
	return out, total
}

func containsFold(value, part string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(part))
}

// compareNullable orders nil after every value, as PostgreSQL does for ASC.
func compareNullable[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

type adminRepo struct{ s *Store }

func (r *adminRepo) Create(_ context.Context, admin *models.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.Email == admin.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	admin.ID = r.s.newID()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	r.s.admins[admin.ID] = *admin
	return nil
}

func (r *adminRepo) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.admins[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

func (r *adminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *adminRepo) ExistsByEmail(_ context.Context, email string, excludeID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.admins {
		if a.Email == email && a.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *adminRepo) Update(_ context.Context, admin *models.Admin) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.admins[admin.ID]; !ok {
		return repositories.ErrNotFound
	}
	for _, a := range r.s.admins {
		if a.Email == admin.Email && a.ID != admin.ID {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	admin.UpdatedAt = time.Now()
	r.s.admins[admin.ID] = *admin
	return nil
}

func (r *adminRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.admins[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.s.admins, id)
	return nil
}

func (r *adminRepo) List(ctx context.Context, query models.PageQuery) ([]*models.Admin, int64, error) {
	return r.find(func(models.Admin) bool { return true }, query)
}

func (r *adminRepo) SearchByName(_ context.Context, name string, query models.PageQuery) ([]*models.Admin, int64, error) {
	return r.find(func(a models.Admin) bool { return containsFold(a.Name, name) }, query)
}

func (r *adminRepo) Count(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.admins)), nil
}

func (r *adminRepo) find(match func(models.Admin) bool, query models.PageQuery) ([]*models.Admin, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []models.Admin
	for _, a := range r.s.admins {
		if match(a) {
			items = append(items, a)
		}
	}
	out, total := page(items, query, func(a, b models.Admin) int {
		switch query.Sort.Field {
		case "id":
			return cmp.Compare(a.ID, b.ID)
		case "name":
			return cmp.Compare(a.Name, b.Name)
		case "email":
			return cmp.Compare(a.Email, b.Email)
		}
		return 0
	}, func(x models.Admin) int64 { return x.ID })
	return out, total, nil
}
