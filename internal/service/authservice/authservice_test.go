package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		role          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Guest registers successfully",
			login:    "juan",
			password: "password123",
			role:     domain.RoleGuest,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "juan").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&domain.User{ID: 1, Login: "juan", Role: domain.RoleGuest}, nil)
			},
			expectedUser: &domain.User{ID: 1, Login: "juan", Role: domain.RoleGuest},
		},
		{
			name:     "Host registers successfully",
			login:    "maria",
			password: "password123",
			role:     domain.RoleHost,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "maria").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(&domain.User{ID: 2, Login: "maria", Role: domain.RoleHost}, nil)
			},
			expectedUser: &domain.User{ID: 2, Login: "maria", Role: domain.RoleHost},
		},
		{
			name:          "Unknown role is rejected",
			login:         "juan",
			password:      "password123",
			role:          "admin",
			expectedError: ErrInvalidRole,
		},
		{
			name:     "Login already taken",
			login:    "juan",
			password: "password123",
			role:     domain.RoleGuest,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "juan").
					Return(&domain.User{ID: 1, Login: "juan"}, nil)
			},
			expectedError: ErrLoginTaken,
		},
		{
			name:     "Cannot hash password",
			login:    "juan",
			password: "password123",
			role:     domain.RoleGuest,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "juan").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("", errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name:     "Cannot create user",
			login:    "juan",
			password: "password123",
			role:     domain.RoleGuest,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "juan").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashedPassword", nil)
				userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Register(context.Background(), tt.login, tt.password, tt.role)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, hashService, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "juan").
					Return(&domain.User{ID: 1, Login: "juan", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "password123").Return(true)
			},
			expectedUser: &domain.User{ID: 1, Login: "juan", PasswordHash: "hashedPassword"},
		},
		{
			name: "Unknown login",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "juan").Return(nil, nil)
			},
			expectedError: errors.New("invalid credentials"),
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(gomock.Any(), "juan").
					Return(&domain.User{ID: 1, Login: "juan", PasswordHash: "hashedPassword"}, nil)
				hashService.EXPECT().ComparePassword("hashedPassword", "password123").Return(false)
			},
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Authenticate(context.Background(), "juan", "password123")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	jwtService.EXPECT().GenerateJWT(1, domain.RoleHost, gomock.Any()).Return("token", nil)
	token, err := service.GenerateToken(1, domain.RoleHost)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)

	jwtService.EXPECT().GenerateJWT(1, domain.RoleHost, gomock.Any()).Return("", errors.New("some error"))
	token, err = service.GenerateToken(1, domain.RoleHost)
	assert.Error(t, err)
	assert.Empty(t, token)
}
