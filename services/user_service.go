package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/laundry-app/metrics"
	"github.com/yeremiapane/laundry-app/models"
	"github.com/yeremiapane/laundry-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	msgBadCredentials    = "Kredensial salah"
	msgCredentialsNeeded = "Email/No HP dan password diperlukan"
	msgDuplicateLogin    = "Email/No HP sudah terdaftar"
)

// UserService is the identity store: lookups, registration and staff accounts.
type UserService struct {
	DB                   *gorm.DB
	StaffDefaultPassword string
}

func NewUserService(db *gorm.DB, staffDefaultPassword string) *UserService {
	return &UserService{DB: db, StaffDefaultPassword: staffDefaultPassword}
}

// UserSummary is what login endpoints return.
type UserSummary struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	EmailOrPhone string `json:"email_or_phone"`
	Role         string `json:"role"`
}

type StaffView struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func Summarize(u models.User) UserSummary {
	role := u.Role
	if role == "" {
		role = models.RoleCustomer
	}
	return UserSummary{ID: u.ID, Name: u.Name, EmailOrPhone: u.EmailOrPhone, Role: role}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Register creates a customer account and returns its id.
func (s *UserService) Register(ctx context.Context, name, login, password string) (uint, error) {
	name, login = strings.TrimSpace(name), strings.TrimSpace(login)
	if name == "" || login == "" || password == "" {
		return 0, validationError("Nama, email/No HP dan password diperlukan")
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return 0, internal("Error server", err)
	}

	user := models.User{Name: name, EmailOrPhone: login, Password: hashed, Role: models.RoleCustomer}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, conflict(msgDuplicateLogin, err)
		}
		utils.ErrorLogger.WithField("login", login).Errorf("register: %v", err)
		return 0, internal("Error saat registrasi", err)
	}

	utils.InfoLogger.WithField("user_id", user.ID).Info("new customer registered")
	return user.ID, nil
}

// FindByLogin looks a user up by email or phone. Missing users yield ErrNotFound.
func (s *UserService) FindByLogin(ctx context.Context, login string) (models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email_or_phone = ?", strings.TrimSpace(login)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, notFound("User tidak ditemukan")
		}
		return models.User{}, internal("Error saat login", err)
	}
	return user, nil
}

// Authenticate checks credentials for any role.
func (s *UserService) Authenticate(ctx context.Context, login, password string) (models.User, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return models.User{}, validationError(msgCredentialsNeeded)
	}

	user, err := s.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, unauthorized(msgBadCredentials)
		}
		utils.ErrorLogger.Errorf("Database error in login: %v", err)
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, unauthorized(msgBadCredentials)
	}
	return user, nil
}

// AuthenticateOwner is Authenticate restricted to owner and admin accounts.
// The role is checked before the password.
func (s *UserService) AuthenticateOwner(ctx context.Context, login, password string) (models.User, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return models.User{}, validationError(msgCredentialsNeeded)
	}

	user, err := s.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.User{}, unauthorized(msgBadCredentials)
		}
		return models.User{}, err
	}
	if !user.IsOwner() {
		return models.User{}, forbidden("Akses Ditolak. Area khusus Owner.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, unauthorized(msgBadCredentials)
	}
	return user, nil
}

// ResolveCustomer returns the id of the user with this login, creating a
// customer with the placeholder password when none exists.
func (s *UserService) ResolveCustomer(ctx context.Context, login, name, placeholder string) (uint, error) {
	login = strings.TrimSpace(login)

	user, err := s.FindByLogin(ctx, login)
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		utils.ErrorLogger.WithField("login", login).Errorf("check user: %v", err)
		return 0, internal("Error checking user", err)
	}

	hashed, err := hashPassword(placeholder)
	if err != nil {
		return 0, internal("Error hashing password", err)
	}

	created := models.User{
		Name:         strings.TrimSpace(name),
		EmailOrPhone: login,
		Password:     hashed,
		Role:         models.RoleCustomer,
	}
	if err := s.DB.WithContext(ctx).Create(&created).Error; err != nil {
		utils.ErrorLogger.WithField("login", login).Errorf("provision customer: %v", err)
		return 0, internal("Error creating user", err)
	}

	metrics.CustomersProvisioned.Inc()
	utils.InfoLogger.WithFields(logrus.Fields{"user_id": created.ID, "login": login}).
		Warn("customer provisioned with placeholder password")
	return created.ID, nil
}

func (s *UserService) ListStaff(ctx context.Context) ([]StaffView, error) {
	var users []models.User
	err := s.DB.WithContext(ctx).
		Where("role = ?", models.RoleStaff).
		Order("created_at DESC, id DESC").
		Find(&users).Error
	if err != nil {
		utils.ErrorLogger.Errorf("list employees: %v", err)
		return nil, internal("Error fetching employees", err)
	}

	staff := make([]StaffView, 0, len(users))
	for _, u := range users {
		staff = append(staff, StaffView{
			ID:        u.ID,
			Name:      u.Name,
			Phone:     u.EmailOrPhone,
			Role:      u.Role,
			CreatedAt: utils.FormatDateTime(u.CreatedAt),
		})
	}
	return staff, nil
}

// CreateStaff adds an employee. An empty password falls back to the default.
func (s *UserService) CreateStaff(ctx context.Context, name, phone, password string) (uint, error) {
	name, phone = strings.TrimSpace(name), strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return 0, validationError("Nama dan No HP pegawai diperlukan")
	}
	if password == "" {
		password = s.StaffDefaultPassword
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return 0, internal("Server error", err)
	}

	user := models.User{Name: name, EmailOrPhone: phone, Password: hashed, Role: models.RoleStaff}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, conflict(msgDuplicateLogin, err)
		}
		utils.ErrorLogger.Errorf("add employee: %v", err)
		return 0, internal("Error adding employee", err)
	}
	return user.ID, nil
}

// DeleteStaff removes an employee account; other roles are never touched.
func (s *UserService) DeleteStaff(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND role = ?", id, models.RoleStaff).Delete(&models.User{})
	if res.Error != nil {
		utils.ErrorLogger.WithField("user_id", id).Errorf("delete employee: %v", res.Error)
		return internal("Error deleting employee", res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound("Pegawai tidak ditemukan")
	}
	return nil
}

// SeedOwner makes sure an owner account exists. It reports whether one was created.
func (s *UserService) SeedOwner(ctx context.Context, login, password string) (bool, error) {
	if _, err := s.FindByLogin(ctx, login); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return false, internal("Error hashing password", err)
	}
	owner := models.User{
		Name:         "Owner",
		EmailOrPhone: strings.TrimSpace(login),
		Password:     hashed,
		Role:         models.RoleOwner,
	}
	if err := s.DB.WithContext(ctx).Create(&owner).Error; err != nil {
		return false, internal("Error creating owner", err)
	}
	return true, nil
}
