package todo

import (
	"context"
	"sync"
)

var _ weatherClient = &weatherClientMock{}

type weatherClientMock struct {
	TodayWeatherFunc func(ctx context.Context) (string, error)

	calls struct {
		TodayWeather []struct {
			Ctx context.Context
		}
	}
	lockTodayWeather sync.RWMutex
}

func (mock *weatherClientMock) TodayWeather(ctx context.Context) (string, error) {
	if mock.TodayWeatherFunc == nil {
		panic("weatherClientMock.TodayWeatherFunc: method is nil but weatherClient.TodayWeather was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockTodayWeather.Lock()
	mock.calls.TodayWeather = append(mock.calls.TodayWeather, callInfo)
	mock.lockTodayWeather.Unlock()
	return mock.TodayWeatherFunc(ctx)
}

func (mock *weatherClientMock) TodayWeatherCalls() []struct {
	Ctx context.Context
} {
	mock.lockTodayWeather.RLock()
	calls := mock.calls.TodayWeather
	mock.lockTodayWeather.RUnlock()
	return calls
}
