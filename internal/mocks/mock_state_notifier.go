package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"article-workflow/internal/domain"
)

// MockStateNotifier is a mock type for the StateNotifier type
type MockStateNotifier struct {
	mock.Mock
}

type MockStateNotifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStateNotifier) EXPECT() *MockStateNotifier_Expecter {
	return &MockStateNotifier_Expecter{mock: &_m.Mock}
}

// Notify provides a mock function with given fields: ctx, article, oldState, newState, message
func (_m *MockStateNotifier) Notify(ctx context.Context, article domain.Article, oldState domain.State, newState domain.State, message string) error {
	ret := _m.Called(ctx, article, oldState, newState, message)

	if len(ret) == 0 {
		panic("no return value specified for Notify")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Article, domain.State, domain.State, string) error); ok {
		r0 = rf(ctx, article, oldState, newState, message)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStateNotifier_Notify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Notify'
type MockStateNotifier_Notify_Call struct {
	*mock.Call
}

// Notify is a helper method to define mock.On call
//   - ctx context.Context
//   - article domain.Article
//   - oldState domain.State
//   - newState domain.State
//   - message string
func (_e *MockStateNotifier_Expecter) Notify(ctx interface{}, article interface{}, oldState interface{}, newState interface{}, message interface{}) *MockStateNotifier_Notify_Call {
	return &MockStateNotifier_Notify_Call{Call: _e.mock.On("Notify", ctx, article, oldState, newState, message)}
}

func (_c *MockStateNotifier_Notify_Call) Run(run func(ctx context.Context, article domain.Article, oldState domain.State, newState domain.State, message string)) *MockStateNotifier_Notify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Article), args[2].(domain.State), args[3].(domain.State), args[4].(string))
	})
	return _c
}

func (_c *MockStateNotifier_Notify_Call) Return(_a0 error) *MockStateNotifier_Notify_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStateNotifier_Notify_Call) RunAndReturn(run func(context.Context, domain.Article, domain.State, domain.State, string) error) *MockStateNotifier_Notify_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStateNotifier creates a new instance of MockStateNotifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStateNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStateNotifier {
	mock := &MockStateNotifier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
