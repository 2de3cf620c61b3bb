package auth

import (
	"context"
	"sync"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	CreateFunc        func(ctx context.Context, email, passwordHash string, role domain.UserRole) (*domain.User, error)

	calls struct {
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		ExistsByEmail []struct {
			Ctx   context.Context
			Email string
		}
		Create []struct {
			Ctx          context.Context
			Email        string
			PasswordHash string
			Role         domain.UserRole
		}
	}
	lockGetByEmail    sync.RWMutex
	lockExistsByEmail sync.RWMutex
	lockCreate        sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if mock.ExistsByEmailFunc == nil {
		panic("userRepoMock.ExistsByEmailFunc: method is nil but userRepo.ExistsByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockExistsByEmail.Lock()
	mock.calls.ExistsByEmail = append(mock.calls.ExistsByEmail, callInfo)
	mock.lockExistsByEmail.Unlock()
	return mock.ExistsByEmailFunc(ctx, email)
}

func (mock *userRepoMock) ExistsByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockExistsByEmail.RLock()
	calls := mock.calls.ExistsByEmail
	mock.lockExistsByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, email, passwordHash string, role domain.UserRole) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		Email        string
		PasswordHash string
		Role         domain.UserRole
	}{Ctx: ctx, Email: email, PasswordHash: passwordHash, Role: role}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, email, passwordHash, role)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx          context.Context
	Email        string
	PasswordHash string
	Role         domain.UserRole
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
