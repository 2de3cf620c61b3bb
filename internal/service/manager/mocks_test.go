package manager

import (
	"context"
	"sync"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	GetWithUserFunc func(ctx context.Context, id int64) (*domain.TodoWithUser, error)

	calls struct {
		GetWithUser []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetWithUser sync.RWMutex
}

func (mock *todoRepoMock) GetWithUser(ctx context.Context, id int64) (*domain.TodoWithUser, error) {
	if mock.GetWithUserFunc == nil {
		panic("todoRepoMock.GetWithUserFunc: method is nil but todoRepo.GetWithUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetWithUser.Lock()
	mock.calls.GetWithUser = append(mock.calls.GetWithUser, callInfo)
	mock.lockGetWithUser.Unlock()
	return mock.GetWithUserFunc(ctx, id)
}

func (mock *todoRepoMock) GetWithUserCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetWithUser.RLock()
	calls := mock.calls.GetWithUser
	mock.lockGetWithUser.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ managerRepo = &managerRepoMock{}

type managerRepoMock struct {
	CreateFunc             func(ctx context.Context, userID, todoID int64) (*domain.Manager, error)
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.Manager, error)
	ListByTodoWithUserFunc func(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error)
	DeleteFunc             func(ctx context.Context, id int64) error

	calls struct {
		Create []struct {
			Ctx    context.Context
			UserID int64
			TodoID int64
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		ListByTodoWithUser []struct {
			Ctx    context.Context
			TodoID int64
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockListByTodoWithUser sync.RWMutex
	lockDelete             sync.RWMutex
}

func (mock *managerRepoMock) Create(ctx context.Context, userID, todoID int64) (*domain.Manager, error) {
	if mock.CreateFunc == nil {
		panic("managerRepoMock.CreateFunc: method is nil but managerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		TodoID int64
	}{Ctx: ctx, UserID: userID, TodoID: todoID}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, todoID)
}

func (mock *managerRepoMock) CreateCalls() []struct {
	Ctx    context.Context
	UserID int64
	TodoID int64
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *managerRepoMock) GetByID(ctx context.Context, id int64) (*domain.Manager, error) {
	if mock.GetByIDFunc == nil {
		panic("managerRepoMock.GetByIDFunc: method is nil but managerRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *managerRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *managerRepoMock) ListByTodoWithUser(ctx context.Context, todoID int64) ([]domain.ManagerWithUser, error) {
	if mock.ListByTodoWithUserFunc == nil {
		panic("managerRepoMock.ListByTodoWithUserFunc: method is nil but managerRepo.ListByTodoWithUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TodoID int64
	}{Ctx: ctx, TodoID: todoID}
	mock.lockListByTodoWithUser.Lock()
	mock.calls.ListByTodoWithUser = append(mock.calls.ListByTodoWithUser, callInfo)
	mock.lockListByTodoWithUser.Unlock()
	return mock.ListByTodoWithUserFunc(ctx, todoID)
}

func (mock *managerRepoMock) ListByTodoWithUserCalls() []struct {
	Ctx    context.Context
	TodoID int64
} {
	mock.lockListByTodoWithUser.RLock()
	calls := mock.calls.ListByTodoWithUser
	mock.lockListByTodoWithUser.RUnlock()
	return calls
}

func (mock *managerRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("managerRepoMock.DeleteFunc: method is nil but managerRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *managerRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
