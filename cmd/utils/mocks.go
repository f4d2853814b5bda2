package utils

import "github.com/stretchr/testify/mock"

type MockPasswordPrompter struct {
	mock.Mock
}

var _ PasswordPrompter = (*MockPasswordPrompter)(nil)

func (m *MockPasswordPrompter) Run() ([]byte, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
