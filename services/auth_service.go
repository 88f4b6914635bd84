package services

import (
	"errors"
	"strings"
	"time"

	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/repository"
	"github.com/TanthaiP001/spprosupply/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService จัดการ business logic ของการ login/register/session
type AuthService struct {
	userRepo         *repository.UserRepository
	jwtSecret        string
	jwtRefreshSecret string
	accessTTL        time.Duration
	refreshTTL       time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret, refreshSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:         repo,
		jwtSecret:        secret,
		jwtRefreshSecret: refreshSecret,
		accessTTL:        accessTTL,
		refreshTTL:       refreshTTL,
	}
}

type RegisterRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Register สร้าง user ใหม่ ถ้า email ซ้ำจะ error
func (s *AuthService) Register(req RegisterRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Role:      "user",
	}

	if err := s.userRepo.Create(user); err != nil {
		// แพ้ race กับ unique index บน email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ credentials + ออก token ทั้งคู่
func (s *AuthService) Login(email, password string) (*entity.User, *utils.TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := utils.GenerateTokenPair(
		utils.TokenPayload{UserID: user.ID, Email: user.Email, Role: user.Role},
		s.jwtSecret, s.jwtRefreshSecret, s.accessTTL, s.refreshTTL,
	)
	if err != nil {
		return nil, nil, errors.New("cannot generate token")
	}

	return user, pair, nil
}

// Refresh ตรวจ refresh token → ยืนยันว่า user ยังอยู่ → ออก access token ใหม่
// (refresh token ตัวเดิมใช้ต่อได้จนหมดอายุ ไม่ rotate)
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	payload := utils.VerifyRefreshToken(refreshToken, s.jwtRefreshSecret)
	if payload == nil {
		return "", ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByID(payload.UserID)
	if err != nil {
		return "", ErrUserNotFound
	}

	return utils.GenerateAccessToken(
		utils.TokenPayload{UserID: user.ID, Email: user.Email, Role: user.Role},
		s.jwtSecret, s.accessTTL,
	)
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfileRequest ใช้ pointer field, nil คือไม่แตะ field นั้น
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	District   *string `json:"district"`
	Province   *string `json:"province"`
	PostalCode *string `json:"postalCode"`
}

func (s *AuthService) UpdateProfile(userID uint, req UpdateProfileRequest) (*entity.User, error) {
	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.District != nil {
		updates["district"] = *req.District
	}
	if req.Province != nil {
		updates["province"] = *req.Province
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(userID)
}

// CreateAdmin สร้างหรือ promote admin (ใช้โดย endpoint ที่ล็อกด้วย ADMIN_CREATE_SECRET)
func (s *AuthService) CreateAdmin(req RegisterRequest) (*entity.User, bool, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, errors.New("hash password failed")
	}

	if existing, err := s.userRepo.FindByEmail(email); err == nil {
		updates := map[string]any{
			"role":       "admin",
			"password":   string(hashed),
			"first_name": req.FirstName,
			"last_name":  req.LastName,
			"phone":      req.Phone,
		}
		if err := s.userRepo.Update(existing.ID, updates); err != nil {
			return nil, false, err
		}
		user, err := s.userRepo.FindByID(existing.ID)
		return user, false, err
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      "admin",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
