package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"estetica/config"
	"estetica/infras/otel/mocks"
	apptMocks "estetica/internal/domains/appointment/mocks"
	clientMocks "estetica/internal/domains/client/mocks"
	"estetica/internal/domains/client/model"
	"estetica/internal/domains/client/model/dto"
	"estetica/internal/domains/client/service"
	cacheMocks "estetica/shared/cache/mocks"
	"estetica/shared/constant"
	"estetica/shared/failure"
	"estetica/shared/timezone"
)

type clientTestMocks struct {
	repo     *clientMocks.MockClient
	apptRepo *apptMocks.MockAppointment
	cache    *cacheMocks.MockRedisCache
}

func setupService(t *testing.T) (service.Client, clientTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := clientTestMocks{
		repo:     clientMocks.NewMockClient(ctrl),
		apptRepo: apptMocks.NewMockAppointment(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.apptRepo, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestClientService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateClientRequest
		setupMock func(m clientTestMocks)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful creation",
			req: dto.CreateClientRequest{
				Name:  "Maria Souza",
				CPF:   "12345678901",
				Phone: "+55 11 99999-0000",
			},
			setupMock: func(m clientTestMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate cpf",
			req: dto.CreateClientRequest{
				Name: "Maria Souza",
				CPF:  "12345678901",
			},
			setupMock: func(m clientTestMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "no cpf skips the duplicate check",
			req: dto.CreateClientRequest{
				Name: "Maria Souza",
			},
			setupMock: func(m clientTestMocks) {
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "malformed birth date",
			req: dto.CreateClientRequest{
				Name:      "Maria Souza",
				BirthDate: "15/03/1990",
			},
			setupMock: func(m clientTestMocks) {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			res, err := svc.Create(testContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, model.StatusActive, res.Status)
		})
	}
}

func TestClientService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m clientTestMocks)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "client without active appointments is deleted",
			setupMock: func(m clientTestMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.apptRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "client with live appointments cannot be deleted",
			setupMock: func(m clientTestMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				m.apptRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "missing client",
			setupMock: func(m clientTestMocks) {
				m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			err := svc.Delete(testContext(), "client-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestClientService_Update(t *testing.T) {
	t.Run("empty update is rejected", func(t *testing.T) {
		svc, _ := setupService(t)

		err := svc.Update(testContext(), dto.UpdateClientRequest{}, "client-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Update(testContext(), dto.UpdateClientRequest{Name: "Maria de Souza"}, "client-1"))
	})
}

func TestClientService_RecordVisit(t *testing.T) {
	svc, m := setupService(t)

	visitedAt := timezone.Now().Add(-2 * time.Hour)

	m.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, visitedAt, fields[model.FieldLastVisit])

			return nil
		})

	assert.NoError(t, svc.RecordVisit(testContext(), "client-1", visitedAt))
}
