// Package mocks provides function-field mocks of the service interfaces for
// handler and middleware tests.
//
// Each mock has one Fn field per method. When the field is nil, the method
// returns the mock's default values instead:
//
//	svc := &mocks.MockTaskService{
//	    ListTasksFn: func(ctx context.Context) ([]*domain.Task, error) {
//	        return nil, errors.New("boom")
//	    },
//	}
package mocks
