package todo

import (
	"context"
	"sync"

	"github.com/taskmate/taskmate-backend/internal/domain"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	CreateFunc       func(ctx context.Context, userID int64, title, contents, weather string) (*domain.Todo, error)
	GetWithUserFunc  func(ctx context.Context, id int64) (*domain.TodoWithUser, error)
	ListWithUserFunc func(ctx context.Context, limit, offset int) ([]domain.TodoWithUser, error)
	CountFunc        func(ctx context.Context) (int64, error)

	calls struct {
		Create []struct {
			Ctx      context.Context
			UserID   int64
			Title    string
			Contents string
			Weather  string
		}
		GetWithUser []struct {
			Ctx context.Context
			ID  int64
		}
		ListWithUser []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		Count []struct {
			Ctx context.Context
		}
	}
	lockCreate       sync.RWMutex
	lockGetWithUser  sync.RWMutex
	lockListWithUser sync.RWMutex
	lockCount        sync.RWMutex
}

func (mock *todoRepoMock) Create(ctx context.Context, userID int64, title, contents, weather string) (*domain.Todo, error) {
	if mock.CreateFunc == nil {
		panic("todoRepoMock.CreateFunc: method is nil but todoRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   int64
		Title    string
		Contents string
		Weather  string
	}{Ctx: ctx, UserID: userID, Title: title, Contents: contents, Weather: weather}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, title, contents, weather)
}

func (mock *todoRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	UserID   int64
	Title    string
	Contents string
	Weather  string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *todoRepoMock) ListWithUser(ctx context.Context, limit, offset int) ([]domain.TodoWithUser, error) {
	if mock.ListWithUserFunc == nil {
		panic("todoRepoMock.ListWithUserFunc: method is nil but todoRepo.ListWithUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListWithUser.Lock()
	mock.calls.ListWithUser = append(mock.calls.ListWithUser, callInfo)
	mock.lockListWithUser.Unlock()
	return mock.ListWithUserFunc(ctx, limit, offset)
}

func (mock *todoRepoMock) ListWithUserCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListWithUser.RLock()
	calls := mock.calls.ListWithUser
	mock.lockListWithUser.RUnlock()
	return calls
}

func (mock *todoRepoMock) Count(ctx context.Context) (int64, error) {
	if mock.CountFunc == nil {
		panic("todoRepoMock.CountFunc: method is nil but todoRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *todoRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}
