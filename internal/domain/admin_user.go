package domain

import "time"

// AdminUser Model
type AdminUser struct {
	ID             uint      `gorm:"primaryKey"`                    // Primary key
	Username       string    `gorm:"size:100;uniqueIndex;not null"` // Unique username
	HashedPassword string    `gorm:"size:255;not null"`             // bcrypt hash
	CreatedAt      time.Time `gorm:"autoCreateTime"`                // Creation timestamp
}
