package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lifeflow/internal/error_values"
	"github.com/limbo/lifeflow/internal/repository"
	"github.com/limbo/lifeflow/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

// Onboarder prepares everything a freshly registered user owns.
type Onboarder interface {
	Onboard(ctx context.Context, user *entity.User) error
}

type UserService struct {
	repo      repository.UsersRepositoryI
	onboarder Onboarder
}

func NewUserService(usersRepo repository.UsersRepositoryI, onboarder Onboarder) *UserService {
	if usersRepo == nil || onboarder == nil {
		log.Fatal("on user service provided nil dependencies")
	}
	return &UserService{
		repo:      usersRepo,
		onboarder: onboarder,
	}
}

// Hash bcrypts a password with the default cost.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user, err := us.repo.Create(ctx, req.Name, passwordHash)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	// A user without a profile can't earn anything, so the row goes too
	if err = us.onboarder.Onboard(ctx, user); err != nil {
		err = errors.New("onboarding error: " + err.Error())
		if delErr := us.repo.Delete(ctx, user.ID); delErr != nil {
			return nil, errors.Join(err, errors.New("rollback error: "+delErr.Error()))
		}
		return nil, err
	}
	return user, nil
}

// lookup passes ErrUserNotFound through untouched and wraps everything else.
func lookup(user *entity.User, err error) (*entity.User, error) {
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

// Login hides whether the name or the password was wrong.
func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := lookup(us.repo.FindByName(ctx, name))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, err
	}
	if err = checkPassword(user, password); err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return lookup(us.repo.FindByID(ctx, id))
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	return lookup(us.repo.FindByName(ctx, name))
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err = checkPassword(user, password); err != nil {
		return err
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func checkPassword(user *entity.User, password string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return errorvalues.ErrWrongCredentials
	}
	return nil
}
