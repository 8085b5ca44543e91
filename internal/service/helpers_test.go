package service

import (
	"testing"
	"time"

	"hotel_booking/internal/db"
	"hotel_booking/internal/domain"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func seedRoom(t *testing.T, gdb *gorm.DB, name string, price float64, capacity int, bed string) domain.Room {
	t.Helper()
	room := domain.Room{Name: name, PricePerNight: price, Capacity: capacity}
	if bed != "" {
		room.BedType = &bed
	}
	if err := gdb.Create(&room).Error; err != nil {
		t.Fatalf("seed room %s: %v", name, err)
	}
	return room
}

func countBookings(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(&domain.Booking{}).Count(&n).Error; err != nil {
		t.Fatalf("count bookings: %v", err)
	}
	return n
}
