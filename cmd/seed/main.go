package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/luiisca/cal.com/internal/database"
	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/pkg/recurring"
	"github.com/luiisca/cal.com/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "cal.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM event_types")
	db.Exec("DELETE FROM avatars")
	db.Exec("DELETE FROM teams")
	db.Exec("DELETE FROM users")

	ctx := context.Background()

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	eventTypeRepo := repository.NewEventTypeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	hash, _ := bcrypt.GenerateFromPassword([]byte("pro123456"), bcrypt.DefaultCost)
	pro := &domain.User{
		Email:               "pro@example.com",
		PasswordHash:        string(hash),
		Username:            "pro",
		Name:                "Pro Example",
		Bio:                 "I help teams ship faster.",
		BrandColor:          "#292929",
		DarkBrandColor:      "#fafafa",
		CompletedOnboarding: true,
	}
	if err := userRepo.Create(ctx, pro); err != nil {
		log.Fatal("create user failed:", err)
	}
	log.Println("User created: pro@example.com / pro123456")

	hash, _ = bcrypt.GenerateFromPassword([]byte("free123456"), bcrypt.DefaultCost)
	free := &domain.User{
		Email:        "free@example.com",
		PasswordHash: string(hash),
		Username:     "free",
		Name:         "Free Example",
	}
	if err := userRepo.Create(ctx, free); err != nil {
		log.Fatal("create user failed:", err)
	}
	log.Println("User created: free@example.com / free123456 (onboarding pending)")

	// ================== TEAM ==================
	team := &domain.Team{Name: "Seeded Team", Slug: "seeded-team"}
	if err := teamRepo.Create(ctx, team); err != nil {
		log.Fatal("create team failed:", err)
	}

	// ================== EVENT TYPES ==================
	log.Println("Creating event types...")

	quick := &domain.EventType{
		UserID: pro.ID,
		Title:  "30 Min Meeting",
		Slug:   "30min",
		Length: 30,
	}
	if err := eventTypeRepo.Create(ctx, quick); err != nil {
		log.Fatal("create event type failed:", err)
	}

	// Weekly series, six occurrences.
	recurringPayload := json.RawMessage(`{"freq":2,"count":6,"interval":1}`)
	weekly := &domain.EventType{
		UserID:         pro.ID,
		Title:          "Weekly Sync",
		Slug:           "weekly-sync",
		Length:         45,
		RecurringEvent: recurringPayload,
	}
	if err := eventTypeRepo.Create(ctx, weekly); err != nil {
		log.Fatal("create event type failed:", err)
	}

	teamEvent := &domain.EventType{
		UserID: pro.ID,
		TeamID: &team.ID,
		Title:  "Team Intro",
		Slug:   "team-intro",
		Length: 30,
	}
	if err := eventTypeRepo.Create(ctx, teamEvent); err != nil {
		log.Fatal("create event type failed:", err)
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	oneOff := &domain.Booking{
		UID:         uuid.NewString(),
		Title:       "30 Min Meeting between Pro Example and Alice",
		StartTime:   start,
		EndTime:     start.Add(30 * time.Minute),
		Status:      domain.BookingAccepted,
		UserID:      pro.ID,
		EventTypeID: quick.ID,
	}
	if err := bookingRepo.Create(ctx, oneOff); err != nil {
		log.Fatal("create booking failed:", err)
	}
	log.Println("One-off booking:", oneOff.UID)

	// A past booking the owner can still cancel but visitors cannot.
	pastStart := time.Now().Add(-72 * time.Hour).Truncate(time.Hour)
	past := &domain.Booking{
		UID:         uuid.NewString(),
		Title:       "30 Min Meeting between Pro Example and Bob",
		StartTime:   pastStart,
		EndTime:     pastStart.Add(30 * time.Minute),
		Status:      domain.BookingAccepted,
		UserID:      pro.ID,
		EventTypeID: quick.ID,
	}
	if err := bookingRepo.Create(ctx, past); err != nil {
		log.Fatal("create booking failed:", err)
	}
	log.Println("Past booking:", past.UID)

	// Materialize the weekly series from its recurrence rule.
	ev := recurring.Parse(weekly.RecurringEvent)
	if ev == nil {
		log.Fatal("seed recurrence payload did not parse")
	}
	seriesStart := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	starts, err := recurring.Occurrences(ev, seriesStart)
	if err != nil {
		log.Fatal("expanding recurrence failed:", err)
	}

	seriesID := uuid.NewString()
	for i, s := range starts {
		instance := &domain.Booking{
			UID:              uuid.NewString(),
			Title:            "Weekly Sync between Pro Example and Carol",
			StartTime:        s,
			EndTime:          s.Add(time.Duration(weekly.Length) * time.Minute),
			Status:           domain.BookingAccepted,
			UserID:           pro.ID,
			EventTypeID:      weekly.ID,
			RecurringEventID: seriesID,
		}
		if err := bookingRepo.Create(ctx, instance); err != nil {
			log.Fatal("create booking failed:", err)
		}
		if i == 0 {
			log.Println("Recurring series head:", instance.UID)
		}
	}
	log.Printf("Recurring series %s: %d instances", seriesID, len(starts))

	log.Println("Seed complete.")
}
