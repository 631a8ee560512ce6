package db

import (
	"context"
	"errors"
	"fmt"

	"planroster/commands"
	"planroster/models"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

type changeKind int

const (
	changeAdd changeKind = iota
	changeRemove
)

type change struct {
	kind  changeKind
	value interface{}
}

// Store reads straight from the database and buffers writes until
// SaveChanges. It is not safe for concurrent use; build one per request.
type Store struct {
	db      *gorm.DB
	pending []change
}

func NewStore(database *gorm.DB) *Store {
	return &Store{db: database}
}

func first(query *gorm.DB, out interface{}) (bool, error) {
	if err := query.First(out).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *Store) FindUser(userID int64) (models.User, bool, error) {
	var user models.User
	found, err := first(s.db.Where("id = ?", userID), &user)
	return user, found, err
}

func (s *Store) FindPlan(planID int64) (models.Plan, bool, error) {
	var plan models.Plan
	found, err := first(s.db.Where("id = ?", planID), &plan)
	return plan, found, err
}

func (s *Store) FindProcedure(procedureID int64) (models.Procedure, bool, error) {
	var procedure models.Procedure
	found, err := first(s.db.Where("id = ?", procedureID), &procedure)
	return procedure, found, err
}

func (s *Store) FindPlanProcedure(planID, procedureID int64) (models.PlanProcedure, bool, error) {
	var link models.PlanProcedure
	found, err := first(s.db.Where("plan_id = ? AND procedure_id = ?", planID, procedureID), &link)
	return link, found, err
}

func (s *Store) FindAssignedUser(userID, planID, procedureID int64) (models.AssignedUser, bool, error) {
	var row models.AssignedUser
	found, err := first(s.db.
		Where("user_id = ? AND plan_id = ? AND procedure_id = ?", userID, planID, procedureID), &row)
	return row, found, err
}

func (s *Store) FindAssignedUsers(planID, procedureID int64) ([]models.AssignedUser, error) {
	rows := []models.AssignedUser{}
	if err := s.db.
		Where("plan_id = ? AND procedure_id = ?", planID, procedureID).
		Order("user_id asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) ListProcedures() ([]models.Procedure, error) {
	procedures := []models.Procedure{}
	if err := s.db.Order("id asc").Find(&procedures).Error; err != nil {
		return nil, err
	}
	return procedures, nil
}

func (s *Store) ListPlanProcedures(planID int64) ([]models.PlanProcedure, error) {
	links := []models.PlanProcedure{}
	if err := s.db.Where("plan_id = ?", planID).Order("procedure_id asc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (s *Store) FindUsersByIDs(ids []int64) ([]models.User, error) {
	users := []models.User{}
	if len(ids) == 0 {
		return users, nil
	}
	if err := s.db.Where("id in (?)", ids).Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) FindProceduresByIDs(ids []int64) ([]models.Procedure, error) {
	procedures := []models.Procedure{}
	if len(ids) == 0 {
		return procedures, nil
	}
	if err := s.db.Where("id in (?)", ids).Order("id asc").Find(&procedures).Error; err != nil {
		return nil, err
	}
	return procedures, nil
}

func (s *Store) Add(value interface{}) {
	s.pending = append(s.pending, change{kind: changeAdd, value: value})
}

func (s *Store) Remove(value interface{}) {
	s.pending = append(s.pending, change{kind: changeRemove, value: value})
}

func (s *Store) RemoveRange(values ...interface{}) {
	for _, v := range values {
		s.Remove(v)
	}
}

// SaveChanges applies the queued changes in one transaction and clears the
// queue whatever the outcome. A cancelled ctx is honoured up to the commit.
// Unique key violations come back wrapped in commands.ErrConflict.
func (s *Store) SaveChanges(ctx context.Context) error {
	pending := s.pending
	s.pending = nil

	if err := ctx.Err(); err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	for _, ch := range pending {
		if err := apply(tx, ch); err != nil {
			tx.Rollback()
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %v", commands.ErrConflict, err)
			}
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}
	return nil
}

func apply(tx *gorm.DB, ch change) error {
	switch ch.kind {
	case changeAdd:
		return tx.Create(ch.value).Error
	case changeRemove:
		// gorm deletes the whole table when the primary key is blank.
		if tx.NewScope(ch.value).PrimaryKeyZero() {
			return errors.New("remove: value has no primary key")
		}
		return tx.Delete(ch.value).Error
	default:
		return fmt.Errorf("unknown change kind %d", ch.kind)
	}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
