package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"article-workflow/internal/domain"
)

// MockArticleServiceInterface is a mock type for the ArticleServiceInterface type
type MockArticleServiceInterface struct {
	mock.Mock
}

type MockArticleServiceInterface_Expecter struct {
	mock *mock.Mock
}

func (_m *MockArticleServiceInterface) EXPECT() *MockArticleServiceInterface_Expecter {
	return &MockArticleServiceInterface_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, authorID, in
func (_m *MockArticleServiceInterface) Create(ctx context.Context, authorID string, in domain.ArticleInput) (*domain.Article, error) {
	ret := _m.Called(ctx, authorID, in)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ArticleInput) (*domain.Article, error)); ok {
		return rf(ctx, authorID, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ArticleInput) *domain.Article); ok {
		r0 = rf(ctx, authorID, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, domain.ArticleInput) error); ok {
		r1 = rf(ctx, authorID, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockArticleServiceInterface_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - authorID string
//   - in domain.ArticleInput
func (_e *MockArticleServiceInterface_Expecter) Create(ctx interface{}, authorID interface{}, in interface{}) *MockArticleServiceInterface_Create_Call {
	return &MockArticleServiceInterface_Create_Call{Call: _e.mock.On("Create", ctx, authorID, in)}
}

func (_c *MockArticleServiceInterface_Create_Call) Run(run func(ctx context.Context, authorID string, in domain.ArticleInput)) *MockArticleServiceInterface_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(domain.ArticleInput))
	})
	return _c
}

func (_c *MockArticleServiceInterface_Create_Call) Return(_a0 *domain.Article, _a1 error) *MockArticleServiceInterface_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_Create_Call) RunAndReturn(run func(context.Context, string, domain.ArticleInput) (*domain.Article, error)) *MockArticleServiceInterface_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockArticleServiceInterface) Get(ctx context.Context, id string) (*domain.Article, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*domain.Article, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Article); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockArticleServiceInterface_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
func (_e *MockArticleServiceInterface_Expecter) Get(ctx interface{}, id interface{}) *MockArticleServiceInterface_Get_Call {
	return &MockArticleServiceInterface_Get_Call{Call: _e.mock.On("Get", ctx, id)}
}

func (_c *MockArticleServiceInterface_Get_Call) Run(run func(ctx context.Context, id string)) *MockArticleServiceInterface_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockArticleServiceInterface_Get_Call) Return(_a0 *domain.Article, _a1 error) *MockArticleServiceInterface_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_Get_Call) RunAndReturn(run func(context.Context, string) (*domain.Article, error)) *MockArticleServiceInterface_Get_Call {
	_c.Call.Return(run)
	return _c
}

// ListPublished provides a mock function with given fields: ctx
func (_m *MockArticleServiceInterface) ListPublished(ctx context.Context) ([]domain.Article, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListPublished")
	}

	var r0 []domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Article, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Article); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_ListPublished_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListPublished'
type MockArticleServiceInterface_ListPublished_Call struct {
	*mock.Call
}

// ListPublished is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockArticleServiceInterface_Expecter) ListPublished(ctx interface{}) *MockArticleServiceInterface_ListPublished_Call {
	return &MockArticleServiceInterface_ListPublished_Call{Call: _e.mock.On("ListPublished", ctx)}
}

func (_c *MockArticleServiceInterface_ListPublished_Call) Run(run func(ctx context.Context)) *MockArticleServiceInterface_ListPublished_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockArticleServiceInterface_ListPublished_Call) Return(_a0 []domain.Article, _a1 error) *MockArticleServiceInterface_ListPublished_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_ListPublished_Call) RunAndReturn(run func(context.Context) ([]domain.Article, error)) *MockArticleServiceInterface_ListPublished_Call {
	_c.Call.Return(run)
	return _c
}

// ListPending provides a mock function with given fields: ctx
func (_m *MockArticleServiceInterface) ListPending(ctx context.Context) ([]domain.Article, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListPending")
	}

	var r0 []domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Article, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Article); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_ListPending_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListPending'
type MockArticleServiceInterface_ListPending_Call struct {
	*mock.Call
}

// ListPending is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockArticleServiceInterface_Expecter) ListPending(ctx interface{}) *MockArticleServiceInterface_ListPending_Call {
	return &MockArticleServiceInterface_ListPending_Call{Call: _e.mock.On("ListPending", ctx)}
}

func (_c *MockArticleServiceInterface_ListPending_Call) Run(run func(ctx context.Context)) *MockArticleServiceInterface_ListPending_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockArticleServiceInterface_ListPending_Call) Return(_a0 []domain.Article, _a1 error) *MockArticleServiceInterface_ListPending_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_ListPending_Call) RunAndReturn(run func(context.Context) ([]domain.Article, error)) *MockArticleServiceInterface_ListPending_Call {
	_c.Call.Return(run)
	return _c
}

// ListByAuthor provides a mock function with given fields: ctx, authorID
func (_m *MockArticleServiceInterface) ListByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	ret := _m.Called(ctx, authorID)

	if len(ret) == 0 {
		panic("no return value specified for ListByAuthor")
	}

	var r0 []domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]domain.Article, error)); ok {
		return rf(ctx, authorID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Article); ok {
		r0 = rf(ctx, authorID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, authorID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_ListByAuthor_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByAuthor'
type MockArticleServiceInterface_ListByAuthor_Call struct {
	*mock.Call
}

// ListByAuthor is a helper method to define mock.On call
//   - ctx context.Context
//   - authorID string
func (_e *MockArticleServiceInterface_Expecter) ListByAuthor(ctx interface{}, authorID interface{}) *MockArticleServiceInterface_ListByAuthor_Call {
	return &MockArticleServiceInterface_ListByAuthor_Call{Call: _e.mock.On("ListByAuthor", ctx, authorID)}
}

func (_c *MockArticleServiceInterface_ListByAuthor_Call) Run(run func(ctx context.Context, authorID string)) *MockArticleServiceInterface_ListByAuthor_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockArticleServiceInterface_ListByAuthor_Call) Return(_a0 []domain.Article, _a1 error) *MockArticleServiceInterface_ListByAuthor_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_ListByAuthor_Call) RunAndReturn(run func(context.Context, string) ([]domain.Article, error)) *MockArticleServiceInterface_ListByAuthor_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockArticleServiceInterface) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.ArticleFilter) ([]domain.Article, error)); ok {
		return rf(ctx, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, domain.ArticleFilter) []domain.Article); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, domain.ArticleFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockArticleServiceInterface_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - filter domain.ArticleFilter
func (_e *MockArticleServiceInterface_Expecter) List(ctx interface{}, filter interface{}) *MockArticleServiceInterface_List_Call {
	return &MockArticleServiceInterface_List_Call{Call: _e.mock.On("List", ctx, filter)}
}

func (_c *MockArticleServiceInterface_List_Call) Run(run func(ctx context.Context, filter domain.ArticleFilter)) *MockArticleServiceInterface_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.ArticleFilter))
	})
	return _c
}

func (_c *MockArticleServiceInterface_List_Call) Return(_a0 []domain.Article, _a1 error) *MockArticleServiceInterface_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_List_Call) RunAndReturn(run func(context.Context, domain.ArticleFilter) ([]domain.Article, error)) *MockArticleServiceInterface_List_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, id, actorID, in
func (_m *MockArticleServiceInterface) Update(ctx context.Context, id string, actorID string, in domain.ArticleInput) (*domain.Article, error) {
	ret := _m.Called(ctx, id, actorID, in)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, domain.ArticleInput) (*domain.Article, error)); ok {
		return rf(ctx, id, actorID, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, domain.ArticleInput) *domain.Article); ok {
		r0 = rf(ctx, id, actorID, in)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, domain.ArticleInput) error); ok {
		r1 = rf(ctx, id, actorID, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockArticleServiceInterface_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
//   - actorID string
//   - in domain.ArticleInput
func (_e *MockArticleServiceInterface_Expecter) Update(ctx interface{}, id interface{}, actorID interface{}, in interface{}) *MockArticleServiceInterface_Update_Call {
	return &MockArticleServiceInterface_Update_Call{Call: _e.mock.On("Update", ctx, id, actorID, in)}
}

func (_c *MockArticleServiceInterface_Update_Call) Run(run func(ctx context.Context, id string, actorID string, in domain.ArticleInput)) *MockArticleServiceInterface_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(domain.ArticleInput))
	})
	return _c
}

func (_c *MockArticleServiceInterface_Update_Call) Return(_a0 *domain.Article, _a1 error) *MockArticleServiceInterface_Update_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_Update_Call) RunAndReturn(run func(context.Context, string, string, domain.ArticleInput) (*domain.Article, error)) *MockArticleServiceInterface_Update_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id, actorID
func (_m *MockArticleServiceInterface) Delete(ctx context.Context, id string, actorID string) error {
	ret := _m.Called(ctx, id, actorID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, id, actorID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockArticleServiceInterface_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockArticleServiceInterface_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
//   - actorID string
func (_e *MockArticleServiceInterface_Expecter) Delete(ctx interface{}, id interface{}, actorID interface{}) *MockArticleServiceInterface_Delete_Call {
	return &MockArticleServiceInterface_Delete_Call{Call: _e.mock.On("Delete", ctx, id, actorID)}
}

func (_c *MockArticleServiceInterface_Delete_Call) Run(run func(ctx context.Context, id string, actorID string)) *MockArticleServiceInterface_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockArticleServiceInterface_Delete_Call) Return(_a0 error) *MockArticleServiceInterface_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockArticleServiceInterface_Delete_Call) RunAndReturn(run func(context.Context, string, string) error) *MockArticleServiceInterface_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// SendToReview provides a mock function with given fields: ctx, id, actorID
func (_m *MockArticleServiceInterface) SendToReview(ctx context.Context, id string, actorID string) (*domain.Article, error) {
	ret := _m.Called(ctx, id, actorID)

	if len(ret) == 0 {
		panic("no return value specified for SendToReview")
	}

	var r0 *domain.Article
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*domain.Article, error)); ok {
		return rf(ctx, id, actorID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.Article); ok {
		r0 = rf(ctx, id, actorID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Article)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, id, actorID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockArticleServiceInterface_SendToReview_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SendToReview'
type MockArticleServiceInterface_SendToReview_Call struct {
	*mock.Call
}

// SendToReview is a helper method to define mock.On call
//   - ctx context.Context
//   - id string
//   - actorID string
func (_e *MockArticleServiceInterface_Expecter) SendToReview(ctx interface{}, id interface{}, actorID interface{}) *MockArticleServiceInterface_SendToReview_Call {
	return &MockArticleServiceInterface_SendToReview_Call{Call: _e.mock.On("SendToReview", ctx, id, actorID)}
}

func (_c *MockArticleServiceInterface_SendToReview_Call) Run(run func(ctx context.Context, id string, actorID string)) *MockArticleServiceInterface_SendToReview_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockArticleServiceInterface_SendToReview_Call) Return(_a0 *domain.Article, _a1 error) *MockArticleServiceInterface_SendToReview_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockArticleServiceInterface_SendToReview_Call) RunAndReturn(run func(context.Context, string, string) (*domain.Article, error)) *MockArticleServiceInterface_SendToReview_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockArticleServiceInterface creates a new instance of MockArticleServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockArticleServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArticleServiceInterface {
	mock := &MockArticleServiceInterface{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
