package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/triomphant75/Gestion-Absence/internal/dto"
	"github.com/triomphant75/Gestion-Absence/internal/model"
	"github.com/triomphant75/Gestion-Absence/internal/repository"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrMissingStudentFields = errors.New("student accounts need numero_etudiant and formation_id")
	ErrMissingStaffFields   = errors.New("staff accounts need numero_enseignant and departement_id")
)

// UserService manages accounts.
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the account service.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	role := model.Role(req.Role)

	switch role {
	case model.RoleEtudiant:
		if req.NumeroEtudiant == "" || req.FormationID == "" {
			return nil, ErrMissingStudentFields
		}
	case model.RoleEnseignant, model.RoleChefDepartement:
		if req.NumeroEnseignant == "" || req.DepartementID == "" {
			return nil, ErrMissingStaffFields
		}
	}

	taken, err := s.repo.User.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if req.FormationID != "" {
		if _, err := s.repo.Formation.GetByID(ctx, req.FormationID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrFormationNotFound
			}
			return nil, err
		}
	}
	if req.DepartementID != "" {
		if _, err := s.repo.Departement.GetByID(ctx, req.DepartementID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartementNotFound
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Nom:              req.Nom,
		Prenom:           req.Prenom,
		Email:            req.Email,
		Telephone:        req.Telephone,
		MotDePasse:       string(hash),
		Role:             role,
		Actif:            true,
		NumeroEtudiant:   req.NumeroEtudiant,
		FormationID:      req.FormationID,
		NumeroEnseignant: req.NumeroEnseignant,
		DepartementID:    req.DepartementID,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.UserID),
		zap.String("role", string(user.Role)))

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.User.List(ctx)
}

func (s *userService) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	return s.repo.User.ListByRole(ctx, role)
}

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.repo.User.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Nom != nil {
		user.Nom = *req.Nom
	}
	if req.Prenom != nil {
		user.Prenom = *req.Prenom
	}
	if req.Telephone != nil {
		user.Telephone = *req.Telephone
	}
	if req.MotDePasse != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.MotDePasse), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.MotDePasse = string(hash)
	}
	if req.FormationID != nil {
		user.FormationID = *req.FormationID
	}
	if req.DepartementID != nil {
		user.DepartementID = *req.DepartementID
	}
	if req.Actif != nil {
		user.Actif = *req.Actif
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.repo.User.Delete(ctx, id)
}
