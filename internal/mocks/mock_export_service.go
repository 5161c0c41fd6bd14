package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"article-workflow/internal/domain"
	"article-workflow/internal/service"
)

// MockExportServiceInterface is a mock type for the ExportServiceInterface type
type MockExportServiceInterface struct {
	mock.Mock
}

type MockExportServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockExportServiceInterface) EXPECT() *MockExportServiceInterface_Expecter {
	return &MockExportServiceInterface_Expecter{mock: &_m.Mock}
}

// StreamArticles provides a mock function with given fields: ctx, filter, format, writer
func (_m *MockExportServiceInterface) StreamArticles(ctx context.Context, filter domain.ArticleFilter, format string, writer service.StreamWriter) (int, error) {
	ret := _m.Called(ctx, filter, format, writer)

	if len(ret) == 0 {
		panic("no return value specified for StreamArticles")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ArticleFilter, string, service.StreamWriter) (int, error)); ok {
		return rf(ctx, filter, format, writer)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.ArticleFilter, string, service.StreamWriter) int); ok {
		r0 = rf(ctx, filter, format, writer)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.ArticleFilter, string, service.StreamWriter) error); ok {
		r1 = rf(ctx, filter, format, writer)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockExportServiceInterface_StreamArticles_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StreamArticles'
type MockExportServiceInterface_StreamArticles_Call struct {
	*mock.Call
}

// StreamArticles is a helper method to define mock.On call
//   - ctx context.Context
//   - filter domain.ArticleFilter
//   - format string
//   - writer service.StreamWriter
func (_e *MockExportServiceInterface_Expecter) StreamArticles(ctx interface{}, filter interface{}, format interface{}, writer interface{}) *MockExportServiceInterface_StreamArticles_Call {
	return &MockExportServiceInterface_StreamArticles_Call{Call: _e.mock.On("StreamArticles", ctx, filter, format, writer)}
}

func (_c *MockExportServiceInterface_StreamArticles_Call) Run(run func(ctx context.Context, filter domain.ArticleFilter, format string, writer service.StreamWriter)) *MockExportServiceInterface_StreamArticles_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ArticleFilter), args[2].(string), args[3].(service.StreamWriter))
	})
	return _c
}

func (_c *MockExportServiceInterface_StreamArticles_Call) Return(_a0 int, _a1 error) *MockExportServiceInterface_StreamArticles_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockExportServiceInterface_StreamArticles_Call) RunAndReturn(run func(context.Context, domain.ArticleFilter, string, service.StreamWriter) (int, error)) *MockExportServiceInterface_StreamArticles_Call {
	_c.Call.Return(run)
	return _c
}

// StreamHistory provides a mock function with given fields: ctx, articleID, format, writer
func (_m *MockExportServiceInterface) StreamHistory(ctx context.Context, articleID string, format string, writer service.StreamWriter) (int, error) {
	ret := _m.Called(ctx, articleID, format, writer)

	if len(ret) == 0 {
		panic("no return value specified for StreamHistory")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, service.StreamWriter) (int, error)); ok {
		return rf(ctx, articleID, format, writer)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, service.StreamWriter) int); ok {
		r0 = rf(ctx, articleID, format, writer)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, service.StreamWriter) error); ok {
		r1 = rf(ctx, articleID, format, writer)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockExportServiceInterface_StreamHistory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'StreamHistory'
type MockExportServiceInterface_StreamHistory_Call struct {
	*mock.Call
}

// StreamHistory is a helper method to define mock.On call
//   - ctx context.Context
//   - articleID string
//   - format string
//   - writer service.StreamWriter
func (_e *MockExportServiceInterface_Expecter) StreamHistory(ctx interface{}, articleID interface{}, format interface{}, writer interface{}) *MockExportServiceInterface_StreamHistory_Call {
	return &MockExportServiceInterface_StreamHistory_Call{Call: _e.mock.On("StreamHistory", ctx, articleID, format, writer)}
}

func (_c *MockExportServiceInterface_StreamHistory_Call) Run(run func(ctx context.Context, articleID string, format string, writer service.StreamWriter)) *MockExportServiceInterface_StreamHistory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(service.StreamWriter))
	})
	return _c
}

func (_c *MockExportServiceInterface_StreamHistory_Call) Return(_a0 int, _a1 error) *MockExportServiceInterface_StreamHistory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockExportServiceInterface_StreamHistory_Call) RunAndReturn(run func(context.Context, string, string, service.StreamWriter) (int, error)) *MockExportServiceInterface_StreamHistory_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockExportServiceInterface creates a new instance of MockExportServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockExportServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExportServiceInterface {
	mock := &MockExportServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
