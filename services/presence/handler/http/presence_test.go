package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/services/presence/mocks"
)

func newTestContext(e *echo.Echo, target, driverID string) (echo.Context, *httptest.ResponseRecorder) {
	request := httptest.NewRequest(http.MethodGet, target, nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("driverID")
	c.SetParamValues(driverID)
	return c, recorder
}

func TestPresenceHandler_GetPresence_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockUC)

	mockUC.EXPECT().
		GetPresence(gomock.Any(), "driver-1").
		Return(&models.DriverPresence{
			DriverID: "driver-1",
			Region:   "jakarta",
			Online:   true,
		}, nil)

	e := echo.New()
	c, rec := newTestContext(e, "/drivers/driver-1/presence", "driver-1")

	err := handler.GetPresence(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.DriverPresence
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "driver-1", got.DriverID)
	assert.True(t, got.Online)
}

func TestPresenceHandler_GetPresence_UnknownDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPresenceUC(ctrl)
	handler := NewPresenceHandler(mockUC)

	mockUC.EXPECT().
		GetPresence(gomock.Any(), "driver-missing").
		Return(nil, nil)

	e := echo.New()
	c, rec := newTestContext(e, "/drivers/driver-missing/presence", "driver-missing")

	err := handler.GetPresence(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
