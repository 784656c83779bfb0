// services/refresher.go
package services

import (
	"fmt"
	"log"
	"time"

	"hotel-management/models"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

// AvailabilityRefresher keeps the Room.IsAvailable display cache roughly in
// sync with reality: on a fixed interval it marks a room unavailable while a
// reservation covers today. The flag is never used for conflict detection;
// the booking flow queries reservations directly.
type AvailabilityRefresher struct {
	DB        *gorm.DB
	Interval  time.Duration
	scheduler gocron.Scheduler
}

func NewAvailabilityRefresher(db *gorm.DB, interval time.Duration) *AvailabilityRefresher {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &AvailabilityRefresher{DB: db, Interval: interval}
}

// Start schedules the recurring refresh, running one pass immediately.
func (r *AvailabilityRefresher) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(r.Interval),
		gocron.NewTask(r.tick),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule availability refresh: %w", err)
	}
	r.scheduler = sched
	sched.Start()
	log.Printf("room availability refresher started (every %s)", r.Interval)
	return nil
}

// Shutdown stops the scheduler; called from the process shutdown path.
func (r *AvailabilityRefresher) Shutdown() error {
	if r.scheduler == nil {
		return nil
	}
	return r.scheduler.Shutdown()
}

// tick is the scheduled entry point. A failed pass is logged and swallowed so
// one bad tick never stops the schedule.
func (r *AvailabilityRefresher) tick() {
	if err := r.RefreshOnce(); err != nil {
		log.Printf("⚠️  room availability refresh failed: %v", err)
	}
}

// RefreshOnce recomputes IsAvailable for every room: unavailable while some
// reservation has check_in <= today <= check_out. Only rooms whose stored
// value differs are written, so repeated passes are idempotent. Also invoked
// ad hoc after room/reservation CRUD writes.
func (r *AvailabilityRefresher) RefreshOnce() error {
	today := DateOnly(time.Now())

	var reservations []models.Reservation
	if err := r.DB.Find(&reservations).Error; err != nil {
		return fmt.Errorf("failed to load reservations: %w", err)
	}
	var rooms []models.Room
	if err := r.DB.Find(&rooms).Error; err != nil {
		return fmt.Errorf("failed to load rooms: %w", err)
	}

	occupied := make(map[uint]bool)
	for _, res := range reservations {
		if !DateOnly(res.CheckInDate).After(today) && !DateOnly(res.CheckOutDate).Before(today) {
			occupied[res.RoomID] = true
		}
	}

	for i := range rooms {
		want := !occupied[rooms[i].ID]
		if rooms[i].IsAvailable == want {
			continue
		}
		if err := r.DB.Model(&models.Room{}).
			Where("id = ?", rooms[i].ID).
			Update("is_available", want).Error; err != nil {
			return fmt.Errorf("failed to update room %d availability: %w", rooms[i].ID, err)
		}
	}
	return nil
}
