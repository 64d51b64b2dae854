package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/models"
)

const (
	reservationsKey = "booking:reservations"
	defaultTTL      = 30 * time.Second
)

// CachedRepository decorates the booking repository with a short-lived
// redis snapshot of the full reservation list. The booking view is
// refetched on every page load, the underlying rows change rarely.
// Every write invalidates the snapshot; cache failures fall through to
// the database.
type CachedRepository struct {
	domain.Repository

	rdb *redis.Client
	ttl time.Duration
}

func NewCachedRepository(inner domain.Repository, rdb *redis.Client) *CachedRepository {
	return &CachedRepository{
		Repository: inner,
		rdb:        rdb,
		ttl:        defaultTTL,
	}
}

func (c *CachedRepository) ListReservations(
	ctx context.Context,
) ([]models.Reservation, error) {

	raw, err := c.rdb.Get(ctx, reservationsKey).Bytes()
	if err == nil {
		var cached []models.Reservation
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Println("reservation cache read failed:", err)
	}

	reservations, err := c.Repository.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	if raw, jsonErr := json.Marshal(reservations); jsonErr == nil {
		if setErr := c.rdb.Set(ctx, reservationsKey, raw, c.ttl).Err(); setErr != nil {
			log.Println("reservation cache write failed:", setErr)
		}
	}

	return reservations, nil
}

func (c *CachedRepository) CreateReservation(
	ctx context.Context,
	reservation *models.Reservation,
) error {
	if err := c.Repository.CreateReservation(ctx, reservation); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepository) UpdateReservation(
	ctx context.Context,
	reservation *models.Reservation,
) error {
	if err := c.Repository.UpdateReservation(ctx, reservation); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepository) DeleteReservation(
	ctx context.Context,
	id uuid.UUID,
) error {
	if err := c.Repository.DeleteReservation(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepository) DeletePastReservations(
	ctx context.Context,
	customerID uuid.UUID,
	before time.Time,
) error {
	if err := c.Repository.DeletePastReservations(ctx, customerID, before); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepository) invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, reservationsKey).Err(); err != nil {
		log.Println("reservation cache invalidation failed:", err)
	}
}

var _ domain.Repository = (*CachedRepository)(nil)
