package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ekarimov/restoran/internal/hash"
	"github.com/ekarimov/restoran/internal/logging"
	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/repo"
	"github.com/ekarimov/restoran/internal/tokens"
	"github.com/ekarimov/restoran/internal/transport"
)

const accessTokenTTL = 15 * time.Minute

type AdminService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// Login checks the operator's id card and password and issues a short-lived
// access token with the admin role.
func (s *AdminService) Login(ctx context.Context, req transport.LoginRequest) (string, time.Time, *models.Admin, error) {
	admin, err := s.Repo.GetAdminByIDCard(ctx, req.IDCard)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, nil, fmt.Errorf("%w: invalid id card or password", ErrCredentials)
		}
		return "", time.Time{}, nil, err
	}

	if !hash.CheckPassword(admin.PasswordHash, req.Password) {
		return "", time.Time{}, nil, fmt.Errorf("%w: invalid id card or password", ErrCredentials)
	}

	exp := time.Now().Add(accessTokenTTL)
	token, err := tokens.SignAccess(s.JWTSecret, fmt.Sprint(admin.ID), "admin", exp)
	if err != nil {
		return "", time.Time{}, nil, err
	}
	return token, exp, admin, nil
}

func (s *AdminService) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.Repo.GetAdmin(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: admin %d", ErrNotFound, id)
		}
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.Repo.ListAdmins(ctx)
}

func (s *AdminService) CreateAdmin(ctx context.Context, req transport.CreateAdminRequest) (*models.Admin, error) {
	if req.FullName == "" || req.IDCard == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: full_name, id_card and password required", ErrValidation)
	}

	if _, err := s.Repo.GetAdminByIDCard(ctx, req.IDCard); err == nil {
		return nil, fmt.Errorf("%w: admin with this id card already exists", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := models.Admin{
		FullName:     req.FullName,
		IDCard:       req.IDCard,
		PasswordHash: passwordHash,
	}
	if err := s.Repo.CreateAdmin(ctx, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) PatchAdmin(ctx context.Context, id uint, req transport.PatchAdminRequest) (*models.Admin, error) {
	admin, err := s.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		admin.FullName = *req.FullName
	}
	if req.IDCard != nil {
		if *req.IDCard == "" {
			return nil, fmt.Errorf("%w: id_card required", ErrValidation)
		}
		admin.IDCard = *req.IDCard
	}
	if req.Password != nil {
		passwordHash, err := hash.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = passwordHash
	}

	if err := s.Repo.SaveAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteAdmin(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: admin %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// EnsureSeedAdmin creates the bootstrap operator from the environment when
// the directory is empty, so a fresh deployment has a way in.
func (s *AdminService) EnsureSeedAdmin(ctx context.Context, fullName, idCard, password string) error {
	if idCard == "" || password == "" {
		return nil
	}

	total, err := s.Repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	if fullName == "" {
		fullName = "Administrator"
	}
	_, err = s.CreateAdmin(ctx, transport.CreateAdminRequest{
		FullName: fullName,
		IDCard:   idCard,
		Password: password,
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info("seed_admin_created", "id_card", idCard)
	return nil
}
