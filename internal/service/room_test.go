package service

import (
	"context"
	"testing"

	"hotel_booking/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func roomIDs(rooms []domain.Room) []uint {
	ids := make([]uint, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}

func sameIDs(got []uint, want ...uint) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSearchRoomsPriceRangeIsInclusive(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewRoomService(gdb)
	seedRoom(t, gdb, "Cheap", 99.99, 2, "")
	low := seedRoom(t, gdb, "Low", 100, 2, "")
	mid := seedRoom(t, gdb, "Mid", 150, 2, "")
	high := seedRoom(t, gdb, "High", 200, 2, "")
	seedRoom(t, gdb, "Luxury", 200.01, 2, "")

	rooms, err := svc.SearchRooms(context.Background(), RoomFilter{PriceMin: ptr(100.0), PriceMax: ptr(200.0)}, 0, 100)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !sameIDs(roomIDs(rooms), low.ID, mid.ID, high.ID) {
		t.Fatalf("unexpected rooms %v", roomIDs(rooms))
	}
	for _, r := range rooms {
		if r.PricePerNight < 100 || r.PricePerNight > 200 {
			t.Fatalf("room %d priced %v outside [100,200]", r.ID, r.PricePerNight)
		}
	}
}

func TestSearchRoomsCapacityAndBedType(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewRoomService(gdb)
	seedRoom(t, gdb, "Single", 50, 1, "Single")
	king := seedRoom(t, gdb, "Kingsize", 120, 2, "King Size")
	family := seedRoom(t, gdb, "Family", 180, 4, "two QUEEN beds")
	seedRoom(t, gdb, "Percent", 60, 3, "100% cotton")

	rooms, err := svc.SearchRooms(context.Background(), RoomFilter{CapacityMin: ptr(2)}, 0, 100)
	if err != nil {
		t.Fatalf("search capacity: %v", err)
	}
	if len(rooms) != 3 || rooms[0].ID != king.ID {
		t.Fatalf("unexpected capacity result %v", roomIDs(rooms))
	}

	rooms, err = svc.SearchRooms(context.Background(), RoomFilter{BedType: "queen"}, 0, 100)
	if err != nil {
		t.Fatalf("search bed: %v", err)
	}
	if !sameIDs(roomIDs(rooms), family.ID) {
		t.Fatalf("bed type match should be case-insensitive substring, got %v", roomIDs(rooms))
	}

	// wildcards in the input are literal
	rooms, err = svc.SearchRooms(context.Background(), RoomFilter{BedType: "%"}, 0, 100)
	if err != nil {
		t.Fatalf("search wildcard: %v", err)
	}
	if len(rooms) != 1 || rooms[0].Name != "Percent" {
		t.Fatalf("expected only the literal %% match, got %v", roomIDs(rooms))
	}

	rooms, err = svc.SearchRooms(context.Background(), RoomFilter{BedType: "size", CapacityMin: ptr(3)}, 0, 100)
	if err != nil {
		t.Fatalf("combined search: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("filters must be ANDed, got %v", roomIDs(rooms))
	}
}

func TestSearchRoomsAvailabilityWindow(t *testing.T) {
	gdb := newTestDB(t)
	rooms := NewRoomService(gdb)
	bookings := NewBookingService(gdb)
	busy := seedRoom(t, gdb, "Busy", 100, 2, "")
	free := seedRoom(t, gdb, "Free", 100, 2, "")

	if _, err := bookings.CreateBooking(context.Background(), bookingInput(t, busy.ID, "2024-06-01", "2024-06-05", 1, 0)); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	cases := []struct {
		in, out string
		want    []uint
	}{
		{"2024-06-04", "2024-06-06", []uint{free.ID}},
		{"2024-05-28", "2024-06-02", []uint{free.ID}},
		{"2024-06-05", "2024-06-07", []uint{busy.ID, free.ID}},
		{"2024-05-30", "2024-06-01", []uint{busy.ID, free.ID}},
	}
	for _, tc := range cases {
		in, out := mustDate(t, tc.in), mustDate(t, tc.out)
		got, err := rooms.SearchRooms(context.Background(), RoomFilter{CheckIn: &in, CheckOut: &out}, 0, 100)
		if err != nil {
			t.Fatalf("%s..%s: %v", tc.in, tc.out, err)
		}
		if !sameIDs(roomIDs(got), tc.want...) {
			t.Fatalf("%s..%s: got %v, want %v", tc.in, tc.out, roomIDs(got), tc.want)
		}
	}
}

func TestSearchRoomsWindowValidation(t *testing.T) {
	svc := NewRoomService(newTestDB(t))
	in, out := mustDate(t, "2024-06-05"), mustDate(t, "2024-06-01")

	if _, err := svc.SearchRooms(context.Background(), RoomFilter{CheckIn: &in}, 0, 100); !domain.IsValidation(err) {
		t.Fatalf("check-in alone should be invalid input, got %v", err)
	}
	if _, err := svc.SearchRooms(context.Background(), RoomFilter{CheckOut: &out}, 0, 100); !domain.IsValidation(err) {
		t.Fatalf("check-out alone should be invalid input, got %v", err)
	}
	if _, err := svc.SearchRooms(context.Background(), RoomFilter{CheckIn: &in, CheckOut: &out}, 0, 100); !domain.IsConflict(err) {
		t.Fatalf("inverted window should be a date conflict, got %v", err)
	}
	if _, err := svc.SearchRooms(context.Background(), RoomFilter{CheckIn: &in, CheckOut: &in}, 0, 100); !domain.IsConflict(err) {
		t.Fatalf("empty window should be a date conflict, got %v", err)
	}
	if _, err := svc.SearchRooms(context.Background(), RoomFilter{PriceMin: ptr(-1.0)}, 0, 100); !domain.IsValidation(err) {
		t.Fatalf("negative price_min should be invalid, got %v", err)
	}
	if _, err := svc.SearchRooms(context.Background(), RoomFilter{CapacityMin: ptr(0)}, 0, 100); !domain.IsValidation(err) {
		t.Fatalf("capacity_min 0 should be invalid, got %v", err)
	}
}

func TestSearchRoomsPaginationAndImages(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewRoomService(gdb)
	var ids []uint
	for _, name := range []string{"A", "B", "C", "D"} {
		ids = append(ids, seedRoom(t, gdb, name, 100, 2, "").ID)
	}
	if _, err := svc.AddRoomImage(context.Background(), ids[2], ImageInput{ImageURL: "https://img.example/c.jpg"}); err != nil {
		t.Fatalf("add image: %v", err)
	}

	page, err := svc.SearchRooms(context.Background(), RoomFilter{}, 1, 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !sameIDs(roomIDs(page), ids[1], ids[2]) {
		t.Fatalf("unexpected page %v", roomIDs(page))
	}
	if len(page[0].Images) != 0 || len(page[1].Images) != 1 {
		t.Fatalf("images not preloaded per room: %d, %d", len(page[0].Images), len(page[1].Images))
	}
}

func TestRoomImageRoundTrip(t *testing.T) {
	svc := NewRoomService(newTestDB(t))

	room, err := svc.CreateRoom(context.Background(), RoomInput{Name: "Garden", PricePerNight: 110, Capacity: 2, BedType: ptr("double")})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}
	if room.ID == 0 || room.Images == nil || len(room.Images) != 0 {
		t.Fatalf("new room should have an id and an empty image list: %+v", room)
	}

	img, err := svc.AddRoomImage(context.Background(), room.ID, ImageInput{ImageURL: "https://img.example/garden.jpg", Caption: ptr("view")})
	if err != nil {
		t.Fatalf("add image: %v", err)
	}

	got, err := svc.GetRoom(context.Background(), room.ID)
	if err != nil {
		t.Fatalf("get room: %v", err)
	}
	if len(got.Images) != 1 || got.Images[0].ID != img.ID || got.Images[0].ImageURL != "https://img.example/garden.jpg" {
		t.Fatalf("image missing from room: %+v", got.Images)
	}

	if _, err := svc.AddRoomImage(context.Background(), room.ID+50, ImageInput{ImageURL: "x"}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for image on missing room, got %v", err)
	}
	if _, err := svc.GetRoom(context.Background(), room.ID+50); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateRoomRejectsNonPositiveValues(t *testing.T) {
	svc := NewRoomService(newTestDB(t))
	if _, err := svc.CreateRoom(context.Background(), RoomInput{Name: "Bad", PricePerNight: 0, Capacity: 1}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for price, got %v", err)
	}
	if _, err := svc.CreateRoom(context.Background(), RoomInput{Name: "Bad", PricePerNight: 10, Capacity: 0}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for capacity, got %v", err)
	}
}

func TestDeleteRoomCascadesImagesAndRestrictsBookings(t *testing.T) {
	gdb := newTestDB(t)
	rooms := NewRoomService(gdb)
	bookings := NewBookingService(gdb)

	empty := seedRoom(t, gdb, "Empty", 100, 2, "")
	if _, err := rooms.AddRoomImage(context.Background(), empty.ID, ImageInput{ImageURL: "a.jpg"}); err != nil {
		t.Fatalf("add image: %v", err)
	}
	booked := seedRoom(t, gdb, "Booked", 100, 2, "")
	if _, err := bookings.CreateBooking(context.Background(), bookingInput(t, booked.ID, "2024-06-01", "2024-06-02", 1, 0)); err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	if err := rooms.DeleteRoom(context.Background(), empty.ID); err != nil {
		t.Fatalf("delete empty room: %v", err)
	}
	var images int64
	gdb.Model(&domain.RoomImage{}).Where("room_id = ?", empty.ID).Count(&images)
	if images != 0 {
		t.Fatalf("images should be deleted with the room, %d left", images)
	}

	if err := rooms.DeleteRoom(context.Background(), booked.ID); !domain.IsConflict(err) {
		t.Fatalf("room with bookings must not be deleted, got %v", err)
	}
	if _, err := rooms.GetRoom(context.Background(), booked.ID); err != nil {
		t.Fatalf("booked room should still exist: %v", err)
	}
	if err := rooms.DeleteRoom(context.Background(), 999); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRoomForeignKeysAtStorageLevel(t *testing.T) {
	gdb := newTestDB(t)
	rooms := NewRoomService(gdb)
	bookings := NewBookingService(gdb)

	withImage := seedRoom(t, gdb, "Img", 100, 2, "")
	if _, err := rooms.AddRoomImage(context.Background(), withImage.ID, ImageInput{ImageURL: "a.jpg"}); err != nil {
		t.Fatalf("add image: %v", err)
	}
	// bypass the service: the cascade comes from the foreign key
	if err := gdb.Delete(&domain.Room{}, withImage.ID).Error; err != nil {
		t.Fatalf("raw delete: %v", err)
	}
	var images int64
	gdb.Model(&domain.RoomImage{}).Count(&images)
	if images != 0 {
		t.Fatalf("ON DELETE CASCADE should remove images, %d left", images)
	}

	withBooking := seedRoom(t, gdb, "Bk", 100, 2, "")
	if _, err := bookings.CreateBooking(context.Background(), bookingInput(t, withBooking.ID, "2024-06-01", "2024-06-02", 1, 0)); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	if err := gdb.Delete(&domain.Room{}, withBooking.ID).Error; err == nil {
		t.Fatalf("ON DELETE RESTRICT should reject deleting a booked room")
	}
}
