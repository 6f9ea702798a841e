package users

import (
	"github.com/nutriapp/nutriapp-backend/pkg/db/models"
)

// ProfileDTO is the transport shape for a user profile. The weight column is
// exposed as current_weight; the password hash is never included.
type ProfileDTO struct {
	UserID           int64    `json:"user_id"`
	Email            string   `json:"email"`
	Nickname         string   `json:"nickname"`
	FirstName        string   `json:"first_name"`
	LastName         string   `json:"last_name"`
	Phone            *string  `json:"phone"`
	Gender           *string  `json:"gender"`
	ProfileImageURL  *string  `json:"profile_image_url"`
	CurrentWeight    *float64 `json:"current_weight"`
	GoalWeight       *float64 `json:"goal_weight"`
	Height           *float64 `json:"height"`
	ActivityLevel    *string  `json:"activity_level"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Nickname     string
	FirstName    string
	LastName     string
	Phone        *string
	Gender       *string
}

// UpdateProfileDTO carries a partial profile update; nil fields are left
// untouched.
type UpdateProfileDTO struct {
	FirstName        *string  `json:"first_name"`
	LastName         *string  `json:"last_name"`
	Email            *string  `json:"email"`
	Nickname         *string  `json:"nickname"`
	Phone            *string  `json:"phone"`
	Gender           *string  `json:"gender"`
	ProfileImageURL  *string  `json:"profile_image_url"`
	CurrentWeight    *float64 `json:"current_weight"`
	GoalWeight       *float64 `json:"goal_weight"`
	Height           *float64 `json:"height"`
	ActivityLevel    *string  `json:"activity_level"`
	DailyCalorieGoal *int     `json:"daily_calorie_goal"`
}

func FromModel(u *models.User) *ProfileDTO {
	if u == nil {
		return nil
	}

	return &ProfileDTO{
		UserID:           u.ID,
		Email:            u.Email,
		Nickname:         u.Nickname,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Phone:            u.Phone,
		Gender:           u.Gender,
		ProfileImageURL:  u.ProfileImageURL,
		CurrentWeight:    u.Weight,
		GoalWeight:       u.GoalWeight,
		Height:           u.Height,
		ActivityLevel:    u.ActivityLevel,
		DailyCalorieGoal: u.DailyCalorieGoal,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Nickname:     c.Nickname,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Phone:        c.Phone,
		Gender:       c.Gender,
	}
}

// columns maps the non-nil fields onto their column names for a partial
// UPDATE. The weight column backs the current_weight field.
func (u UpdateProfileDTO) columns() map[string]any {
	cols := map[string]any{}
	if u.FirstName != nil {
		cols["first_name"] = *u.FirstName
	}
	if u.LastName != nil {
		cols["last_name"] = *u.LastName
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Nickname != nil {
		cols["nickname"] = *u.Nickname
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	if u.Gender != nil {
		cols["gender"] = *u.Gender
	}
	if u.ProfileImageURL != nil {
		cols["profile_image_url"] = *u.ProfileImageURL
	}
	if u.CurrentWeight != nil {
		cols["weight"] = *u.CurrentWeight
	}
	if u.GoalWeight != nil {
		cols["goal_weight"] = *u.GoalWeight
	}
	if u.Height != nil {
		cols["height"] = *u.Height
	}
	if u.ActivityLevel != nil {
		cols["activity_level"] = *u.ActivityLevel
	}
	if u.DailyCalorieGoal != nil {
		cols["daily_calorie_goal"] = *u.DailyCalorieGoal
	}
	return cols
}
