package mockapi

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"voltswap_client/internal/models"
)

// Seed loads the fixture data local development runs against.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, _ := bcrypt.GenerateFromPassword([]byte("driver123"), bcrypt.DefaultCost)
	now := s.now()

	s.accounts = append(s.accounts,
		&models.Account{
			ID: "acc-0001", Email: "an.nguyen@example.com", Phone: "0912345678",
			Fullname: "Nguyễn Văn An", Password: string(hash),
			Role: models.RoleDriver, Status: models.AccountActive,
			CreatedAt: now, UpdatedAt: now,
		},
		&models.Account{
			ID: "acc-0002", Email: "binh.tran@example.com", Phone: "0987654321",
			Fullname: "Trần Thị Bình", Password: string(hash),
			Role: models.RoleDriver, Status: models.AccountActive,
			CreatedAt: now, UpdatedAt: now,
		},
	)

	s.vehicleModels = []models.VehicleModel{
		{ID: "vm-theon", Name: "Theon S", Brand: "VoltSwap", BatteryTypeID: "bt-ln48", BatterySlots: 2, AvgEnergyUsage: 2.9},
		{ID: "vm-feliz", Name: "Feliz Neo", Brand: "VoltSwap", BatteryTypeID: "bt-ln48", BatterySlots: 1, AvgEnergyUsage: 2.3},
		{ID: "vm-vento", Name: "Vento X", Brand: "VoltSwap", BatteryTypeID: "bt-ln60", BatterySlots: 2, AvgEnergyUsage: 3.1},
	}

	s.vehicles = append(s.vehicles,
		&models.Vehicle{
			ID: "veh-0001", AccountID: "acc-0001", VIN: "1HGBH41JXMN109186",
			ModelID: "vm-theon", LicensePlate: "29A-12345", BatterySoH: 96.5,
			CreatedAt: now, UpdatedAt: now,
		},
		&models.Vehicle{
			ID: "veh-0002", AccountID: "acc-0002", VIN: "JH4KA7561PC008269",
			ModelID: "vm-feliz", LicensePlate: "30F-5678", BatterySoH: 88.0,
			CreatedAt: now, UpdatedAt: now,
		},
	)

	s.stations = []models.Station{
		{ID: "st-0001", Name: "Trạm Cầu Giấy", Address: "144 Xuân Thủy, Cầu Giấy, Hà Nội", Latitude: 21.0369, Longitude: 105.7827, Status: models.StationOperational},
		{ID: "st-0002", Name: "Trạm Hoàn Kiếm", Address: "2 Lê Thái Tổ, Hoàn Kiếm, Hà Nội", Latitude: 21.0302, Longitude: 105.8520, Status: models.StationOperational},
		{ID: "st-0003", Name: "Trạm Hà Đông", Address: "89 Quang Trung, Hà Đông, Hà Nội", Latitude: 20.9714, Longitude: 105.7788, Status: models.StationMaintenance},
	}

	end := now.Add(2 * time.Hour)
	s.bookings = append(s.bookings,
		&models.Booking{
			ID: "bk-0001", StationID: "st-0001", StationName: "Trạm Cầu Giấy",
			AccountID: "acc-0001", VehicleID: "veh-0001", BatteryCount: 2,
			ScheduledStart: now, ScheduledEnd: &end, Status: models.BookingPending,
		},
		&models.Booking{
			ID: "bk-0002", StationID: "st-0002", StationName: "Trạm Hoàn Kiếm",
			AccountID: "acc-0002", VehicleID: "veh-0002", BatteryCount: 1,
			ScheduledStart: now, ScheduledEnd: &end, Status: models.BookingCompleted,
		},
	)
}
