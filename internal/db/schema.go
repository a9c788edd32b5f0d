package db

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the app owns when they do not exist yet.
// Reference data (stations, trains, seats) is normally seeded through the
// admin endpoints; the DDL here only guarantees the shape.
func EnsureSchema(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("db not available")
	}

	ddl := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			full_name VARCHAR(255) NOT NULL,
			username VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(30) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_username (username),
			UNIQUE KEY uniq_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS stations (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			code VARCHAR(10) NOT NULL,
			city VARCHAR(100) NOT NULL,
			state VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_code (code)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS trains (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			number VARCHAR(20) NOT NULL,
			name VARCHAR(255) NOT NULL,
			from_station_id BIGINT NOT NULL,
			to_station_id BIGINT NOT NULL,
			departure_time VARCHAR(10) NOT NULL,
			arrival_time VARCHAR(10) NOT NULL,
			duration VARCHAR(20) NOT NULL DEFAULT '',
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			total_seats INT NOT NULL DEFAULT 0,
			operating_days TEXT,
			class_prices TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_number (number),
			KEY idx_route (from_station_id, to_station_id),
			CONSTRAINT fk_trains_from FOREIGN KEY (from_station_id) REFERENCES stations(id),
			CONSTRAINT fk_trains_to FOREIGN KEY (to_station_id) REFERENCES stations(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS seats (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			train_id BIGINT NOT NULL,
			coach VARCHAR(10) NOT NULL,
			seat_number VARCHAR(20) NOT NULL,
			class VARCHAR(50) NOT NULL,
			is_available TINYINT(1) NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_train_coach_seat (train_id, coach, seat_number),
			KEY idx_train_coach (train_id, coach),
			CONSTRAINT fk_seats_train FOREIGN KEY (train_id) REFERENCES trains(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_id VARCHAR(30) NOT NULL,
			user_id BIGINT NOT NULL,
			train_id BIGINT NOT NULL,
			passenger_name VARCHAR(255) NOT NULL,
			passenger_age INT NOT NULL,
			passenger_gender VARCHAR(20) NOT NULL,
			journey_date VARCHAR(10) NOT NULL,
			seat_numbers TEXT NOT NULL,
			coach VARCHAR(10) NOT NULL,
			class VARCHAR(50) NOT NULL,
			class_price DECIMAL(10,2) NOT NULL DEFAULT 0,
			total_amount DECIMAL(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(30) NOT NULL DEFAULT 'confirmed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_booking_id (booking_id),
			KEY idx_user (user_id),
			CONSTRAINT fk_bookings_train FOREIGN KEY (train_id) REFERENCES trains(id),
			CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS driver_profiles (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT NOT NULL,
			vehicle_number VARCHAR(50) NOT NULL DEFAULT '',
			vehicle_type VARCHAR(50) NOT NULL DEFAULT '',
			license_number VARCHAR(50) NOT NULL DEFAULT '',
			is_available TINYINT(1) NOT NULL DEFAULT 0,
			rating DECIMAL(3,2) NOT NULL DEFAULT 5.00,
			total_rides INT NOT NULL DEFAULT 0,
			total_earnings DECIMAL(12,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_user (user_id),
			CONSTRAINT fk_driver_user FOREIGN KEY (user_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS cab_bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_id VARCHAR(30) NOT NULL,
			user_id BIGINT NOT NULL,
			driver_id BIGINT NULL,
			pickup_location VARCHAR(255) NOT NULL,
			drop_location VARCHAR(255) NOT NULL,
			vehicle_type VARCHAR(50) NOT NULL,
			price DECIMAL(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(30) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_cab_booking_id (booking_id),
			KEY idx_cab_user (user_id),
			KEY idx_cab_status (status),
			CONSTRAINT fk_cab_user FOREIGN KEY (user_id) REFERENCES users(id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
