package models

import "time"

// User represents the canonical identity and profile entity. Email and
// nickname are each unique across all users; the store enforces both.
type User struct {
	ID               int64      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Email            string     `gorm:"column:email;type:text;not null;uniqueIndex" json:"email"`
	Nickname         string     `gorm:"column:nickname;type:text;not null;uniqueIndex" json:"nickname"`
	PasswordHash     string     `gorm:"column:password_hash;not null" json:"-"`
	FirstName        string     `gorm:"column:first_name;not null" json:"first_name"`
	LastName         string     `gorm:"column:last_name;not null" json:"last_name"`
	Phone            *string    `gorm:"column:phone" json:"phone"`
	Gender           *string    `gorm:"column:gender" json:"gender"`
	ProfileImageURL  *string    `gorm:"column:profile_image_url" json:"profile_image_url"`
	Weight           *float64   `gorm:"column:weight" json:"current_weight"`
	GoalWeight       *float64   `gorm:"column:goal_weight" json:"goal_weight"`
	Height           *float64   `gorm:"column:height" json:"height"`
	ActivityLevel    *string    `gorm:"column:activity_level" json:"activity_level"`
	DailyCalorieGoal *int       `gorm:"column:daily_calorie_goal" json:"daily_calorie_goal"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }
