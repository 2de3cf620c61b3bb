package comment

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

var _ managerRepo = &managerRepoMock{}

type managerRepoMock struct {
	ExistsByTodoAndUserFunc func(ctx context.Context, todoID, userID int64) (bool, error)

	calls struct {
		ExistsByTodoAndUser []struct {
			Ctx    context.Context
			TodoID int64
			UserID int64
		}
	}
	lockExistsByTodoAndUser sync.RWMutex
}

func (mock *managerRepoMock) ExistsByTodoAndUser(ctx context.Context, todoID, userID int64) (bool, error) {
	if mock.ExistsByTodoAndUserFunc == nil {
		panic("managerRepoMock.ExistsByTodoAndUserFunc: method is nil but managerRepo.ExistsByTodoAndUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TodoID int64
		UserID int64
	}{Ctx: ctx, TodoID: todoID, UserID: userID}
	mock.lockExistsByTodoAndUser.Lock()
	mock.calls.ExistsByTodoAndUser = append(mock.calls.ExistsByTodoAndUser, callInfo)
	mock.lockExistsByTodoAndUser.Unlock()
	return mock.ExistsByTodoAndUserFunc(ctx, todoID, userID)
}

func (mock *managerRepoMock) ExistsByTodoAndUserCalls() []struct {
	Ctx    context.Context
	TodoID int64
	UserID int64
} {
	mock.lockExistsByTodoAndUser.RLock()
	calls := mock.calls.ExistsByTodoAndUser
	mock.lockExistsByTodoAndUser.RUnlock()
	return calls
}

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc             func(ctx context.Context, userID, todoID int64, contents string) (*domain.Comment, error)
	ListByTodoWithUserFunc func(ctx context.Context, todoID int64) ([]domain.CommentWithUser, error)
	DeleteByIDFunc         func(ctx context.Context, id int64) (bool, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			UserID   int64
			TodoID   int64
			Contents string
		}
		ListByTodoWithUser []struct {
			Ctx    context.Context
			TodoID int64
		}
		DeleteByID []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockCreate             sync.RWMutex
	lockListByTodoWithUser sync.RWMutex
	lockDeleteByID         sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, userID, todoID int64, contents string) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		TodoID   int64
		Contents string
	}{Ctx: ctx, UserID: userID, TodoID: todoID, Contents: contents}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, todoID, contents)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	UserID   int64
	TodoID   int64
	Contents string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByTodoWithUser(ctx context.Context, todoID int64) ([]domain.CommentWithUser, error) {
	if mock.ListByTodoWithUserFunc == nil {
		panic("commentRepoMock.ListByTodoWithUserFunc: method is nil but commentRepo.ListByTodoWithUser was just called")
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

func (mock *commentRepoMock) ListByTodoWithUserCalls() []struct {
	Ctx    context.Context
	TodoID int64
} {
	mock.lockListByTodoWithUser.RLock()
	calls := mock.calls.ListByTodoWithUser
	mock.lockListByTodoWithUser.RUnlock()
	return calls
}

func (mock *commentRepoMock) DeleteByID(ctx context.Context, id int64) (bool, error) {
	if mock.DeleteByIDFunc == nil {
		panic("commentRepoMock.DeleteByIDFunc: method is nil but commentRepo.DeleteByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, id)
}

func (mock *commentRepoMock) DeleteByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}
