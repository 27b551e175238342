package services_test

import (
	"errors"
	"net/http"
	"testing"

	"catalog/internal/apperr"
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMerchantService() (*services.MerchantService, *MockMerchantRepository, *MockItemRepository, *MockEventPublisher) {
	merchants := new(MockMerchantRepository)
	items := new(MockItemRepository)
	events := new(MockEventPublisher)
	return services.NewMerchantService(merchants, items, events, zerolog.Nop()), merchants, items, events
}

func TestMerchantService_GetAllMerchants(t *testing.T) {
	service, merchants, _, _ := newMerchantService()

	expected := []models.Merchant{{ID: 1, Name: "Harry Potter"}, {ID: 2, Name: "Severus Snape"}}
	merchants.On("GetAll").Return(expected, nil).Once()

	got, err := service.GetAllMerchants()
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
	merchants.AssertExpectations(t)
}

func TestMerchantService_GetMerchantByID(t *testing.T) {
	service, merchants, _, _ := newMerchantService()

	merchants.On("GetByID", uint(1)).Return(&models.Merchant{ID: 1, Name: "Harry Potter"}, nil).Once()
	merchant, err := service.GetMerchantByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter", merchant.Name)

	merchants.On("GetByID", uint(42)).Return(nil, notFound("merchant", 42)).Once()
	_, err = service.GetMerchantByID(42)
	appErr := requireAppErr(t, err, apperr.NotFound)
	assert.Equal(t, "Merchant with id 42 does not exist", appErr.Message)

	merchants.On("GetByID", uint(7)).Return(nil, errors.New("connection reset")).Once()
	_, err = service.GetMerchantByID(7)
	requireAppErr(t, err, apperr.Internal)

	merchants.AssertExpectations(t)
}

func TestMerchantService_CreateMerchant(t *testing.T) {
	service, merchants, _, events := newMerchantService()

	merchants.On("Create", mock.AnythingOfType("*models.Merchant")).Return(nil).Once()
	events.On("PublishEvent", services.EventMerchantCreated, mock.AnythingOfType("*models.Merchant")).Return(nil).Once()

	merchant, err := service.CreateMerchant(models.MerchantParams{Name: strPtr("Hermione Granger")})
	require.NoError(t, err)
	assert.Equal(t, "Hermione Granger", merchant.Name)

	_, err = service.CreateMerchant(models.MerchantParams{})
	appErr := requireAppErr(t, err, apperr.ValidationFailed)
	assert.Equal(t, "merchant could not be created", appErr.Message)

	merchants.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestMerchantService_UpdateMerchant(t *testing.T) {
	service, merchants, _, events := newMerchantService()

	existing := &models.Merchant{ID: 3, Name: "Ronald"}
	merchants.On("GetByID", uint(3)).Return(existing, nil).Twice()
	merchants.On("Update", existing).Return(nil).Once()
	events.On("PublishEvent", services.EventMerchantUpdated, existing).Return(nil).Once()

	merchant, err := service.UpdateMerchant(3, models.MerchantParams{Name: strPtr("Ronald Weasley")})
	require.NoError(t, err)
	assert.Equal(t, "Ronald Weasley", merchant.Name)

	_, err = service.UpdateMerchant(3, models.MerchantParams{Name: strPtr("  ")})
	appErr := requireAppErr(t, err, apperr.ValidationFailed)
	assert.Equal(t, http.StatusNotFound, appErr.Status(true))
	assert.Equal(t, http.StatusBadRequest, appErr.Status(false))

	merchants.On("GetByID", uint(9)).Return(nil, notFound("merchant", 9)).Once()
	_, err = service.UpdateMerchant(9, models.MerchantParams{Name: strPtr("x")})
	requireAppErr(t, err, apperr.NotFound)

	merchants.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestMerchantService_DeleteMerchant(t *testing.T) {
	service, merchants, _, events := newMerchantService()

	merchants.On("Delete", uint(1)).Return(nil).Once()
	events.On("PublishEvent", services.EventMerchantDeleted, mock.Anything).Return(nil).Once()
	assert.NoError(t, service.DeleteMerchant(1))

	merchants.On("Delete", uint(2)).Return(notFound("merchant", 2)).Once()
	requireAppErr(t, service.DeleteMerchant(2), apperr.NotFound)

	merchants.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestMerchantService_GetMerchantItems(t *testing.T) {
	service, merchants, items, _ := newMerchantService()

	expected := []models.Item{{ID: 1, MerchantID: 5}}
	merchants.On("Exists", uint(5)).Return(true, nil).Once()
	items.On("GetByMerchant", uint(5)).Return(expected, nil).Once()

	got, err := service.GetMerchantItems(5)
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	merchants.On("Exists", uint(1)).Return(false, nil).Once()
	_, err = service.GetMerchantItems(1)
	appErr := requireAppErr(t, err, apperr.NotFound)
	assert.Equal(t, apperr.OriginStore, appErr.Origin)
	assert.Equal(t, "Couldn't find Merchant with 'id'=1", appErr.Message)
	items.AssertNotCalled(t, "GetByMerchant", uint(1))

	merchants.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestMerchantService_FindMerchants(t *testing.T) {
	service, merchants, _, _ := newMerchantService()

	expected := []models.Merchant{{ID: 1, Name: "Harry Potter"}}
	merchants.On("FindAllByName", "er").Return(expected, nil).Once()
	merchants.On("FindAllByName", "boom").Return(nil, errors.New("db down")).Once()

	got, err := service.FindMerchants("er")
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	_, err = service.FindMerchants("boom")
	requireAppErr(t, err, apperr.Internal)
	merchants.AssertExpectations(t)
}
