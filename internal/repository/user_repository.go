package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"taskzen-go/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository handles user persistence.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The duplicate-email check happens here, at the
// application layer, before the insert.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate is the set of free-form profile fields merged by
// UpdateProfile. Empty ImageURL means "keep the current image".
type ProfileUpdate struct {
	Phone    string
	DOB      string
	Gender   string
	City     string
	State    string
	Country  string
	Address  string
	Bio      string
	ImageURL string
}

// UpdateProfile merges the supplied profile fields into the user record.
func (r *UserRepository) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) error {
	values := map[string]interface{}{
		"phone":   upd.Phone,
		"dob":     upd.DOB,
		"gender":  upd.Gender,
		"city":    upd.City,
		"state":   upd.State,
		"country": upd.Country,
		"address": upd.Address,
		"bio":     upd.Bio,
	}
	if upd.ImageURL != "" {
		values["image_url"] = upd.ImageURL
	}
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Updates(values).Error; err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// EnsureSettings materializes default settings for the user if none exist
// yet, then returns the user with settings populated.
func (r *UserRepository) EnsureSettings(ctx context.Context, email string) (*models.User, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.SettingsReady {
		return user, nil
	}

	user.Settings = models.DefaultSettings()
	user.SettingsReady = true
	if err := r.db.WithContext(ctx).Model(user).Updates(map[string]interface{}{
		"settings_theme":               user.Settings.Theme,
		"settings_email_notifications": user.Settings.EmailNotifications,
		"settings_task_reminders":      user.Settings.TaskReminders,
		"settings_default_priority":    user.Settings.DefaultPriority,
		"settings_timezone":            user.Settings.Timezone,
		"settings_ready":               true,
	}).Error; err != nil {
		return nil, fmt.Errorf("materialize settings: %w", err)
	}
	return user, nil
}

// AccountUpdate carries the settings-page fields merged by UpdateAccount.
type AccountUpdate struct {
	Name     string
	Email    string
	Settings models.Settings
}

// UpdateAccount merges name, email and settings into the user record. An
// email change is refused if another account already owns the new address;
// on success it also rewrites task and chat ownership keys so existing
// records follow the account.
func (r *UserRepository) UpdateAccount(ctx context.Context, currentEmail string, upd AccountUpdate) error {
	if upd.Email != currentEmail {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.User{}).
			Where("email = ?", upd.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("email = ?", currentEmail).Updates(map[string]interface{}{
			"name":                         upd.Name,
			"email":                        upd.Email,
			"settings_theme":               upd.Settings.Theme,
			"settings_email_notifications": upd.Settings.EmailNotifications,
			"settings_task_reminders":      upd.Settings.TaskReminders,
			"settings_default_priority":    upd.Settings.DefaultPriority,
			"settings_timezone":            upd.Settings.Timezone,
			"settings_ready":               true,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		if upd.Email != currentEmail {
			if err := tx.Model(&models.Task{}).Where("user_email = ?", currentEmail).
				Update("user_email", upd.Email).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.ChatTurn{}).Where("user_email = ?", currentEmail).
				Update("user_email", upd.Email).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// UpdatePassword rotates the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", email).Update("password_hash", passwordHash).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ListReminderUsers returns users who opted in to task reminders.
func (r *UserRepository) ListReminderUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("settings_task_reminders = ?", true).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list reminder users: %w", err)
	}
	return users, nil
}
