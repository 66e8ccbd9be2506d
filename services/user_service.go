package services

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lodging-backend/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidRole        = errors.New("invalid role")
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Authenticate checks a username/password pair against the stored
// hash. Unknown user and wrong password are indistinguishable to the
// caller.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// Create adds a user with a hashed password. The role must be in the
// closed enum; a taken username fails without touching the table.
func (s *UserService) Create(username, password string, role models.Role) (*models.User, error) {
	log.Printf("➡️ UserService.Create username=%q role=%q", username, role)

	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := s.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		log.Printf("⬅️ UserService.Create error: %v", err)
		// The unique index backs up the pre-check under concurrent inserts;
		// anything else is a storage failure, not a duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	log.Printf("⬅️ UserService.Create ok: id=%d", user.ID)
	return &user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	err := s.DB.Order("id ASC").Find(&users).Error
	return users, err
}
