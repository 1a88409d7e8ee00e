package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/restaurant-booking/internal/domain/booking"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Booking (resolver)
// --------------------------------------------------

func (r *BookingGormRepository) FindByUserAndDateForUpdate(
	ctx context.Context,
	userID uint,
	date string,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND reservation_date = ?", userID, date).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) Create(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Booking (consulta / remoção)
// --------------------------------------------------

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("reservation_date ASC, reservation_slot ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

func (r *BookingGormRepository) ListAll(
	ctx context.Context,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("reservation_date ASC, reservation_slot ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

func (r *BookingGormRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bs []models.Booking
	if err := r.db.WithContext(ctx).
		Where("reservation_date = ?", date).
		Order("reservation_slot ASC").
		Find(&bs).Error; err != nil {
		return nil, err
	}

	return bs, nil
}

func (r *BookingGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
