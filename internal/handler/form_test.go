package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"address-autocomplete/internal/form"
	"address-autocomplete/internal/models"
	"address-autocomplete/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "6f1c2a7e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"

// MockFormService is a mock implementation of the FormService interface
type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) View(ctx context.Context, session string) (form.View, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(form.View), args.Error(1)
}

func (m *MockFormService) SelectPlace(ctx context.Context, session string, place models.Place) (form.View, error) {
	args := m.Called(ctx, session, place)
	return args.Get(0).(form.View), args.Error(1)
}

func (m *MockFormService) UpdateField(ctx context.Context, session string, field models.Field, value string) (form.View, error) {
	args := m.Called(ctx, session, field, value)
	return args.Get(0).(form.View), args.Error(1)
}

func (m *MockFormService) TouchField(ctx context.Context, session string, field models.Field) (form.View, error) {
	args := m.Called(ctx, session, field)
	return args.Get(0).(form.View), args.Error(1)
}

func (m *MockFormService) Submit(ctx context.Context, session string) (models.AddressRecord, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(models.AddressRecord), args.Error(1)
}

func torontoRecord() models.AddressRecord {
	return models.AddressRecord{
		AddressLine1: "123 Main St",
		City:         "Toronto",
		State:        "ON",
		Postcode:     "M5V 2T6",
		Country:      "Canada",
	}
}

func torontoView() form.View {
	return form.View{
		Values:        torontoRecord(),
		Touched:       map[models.Field]bool{},
		Errors:        map[models.Field]string{},
		VisibleErrors: map[models.Field]string{},
	}
}

// toJSON round-trips v so expectations compare against decoded bodies.
func toJSON(t *testing.T, v any) any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func newFormRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: testSession})
	return req
}

func TestFormHandler_SelectPlace(t *testing.T) {
	gin.SetMode(gin.TestMode)

	place := models.Place{
		AddressComponents: []models.PlaceComponent{
			{LongName: "Toronto", ShortName: "Toronto", Types: []string{"locality"}},
		},
		FormattedAddress: "Toronto, ON, Canada",
	}

	tests := []struct {
		name           string
		body           string
		mockView       form.View
		mockError      error
		callsService   bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "malformed body",
			body:           `{"address_components": "nope"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "invalid place payload"},
		},
		{
			name:           "place applied",
			body:           `{"address_components":[{"long_name":"Toronto","short_name":"Toronto","types":["locality"]}],"formatted_address":"Toronto, ON, Canada"}`,
			mockView:       torontoView(),
			callsService:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   torontoView(),
		},
		{
			name:           "place without address data",
			body:           `{"address_components":[{"long_name":"Toronto","short_name":"Toronto","types":["locality"]}],"formatted_address":"Toronto, ON, Canada"}`,
			mockError:      service.ErrInvalidPlace,
			callsService:   true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "place has no address data"},
		},
		{
			name:           "service error",
			body:           `{"address_components":[{"long_name":"Toronto","short_name":"Toronto","types":["locality"]}],"formatted_address":"Toronto, ON, Canada"}`,
			mockError:      assert.AnError,
			callsService:   true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockFormService)
			handler := NewFormHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("SelectPlace", mock.Anything, testSession, place).Return(tt.mockView, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = newFormRequest(http.MethodPost, "/form/place", tt.body)

			handler.SelectPlace(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, toJSON(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestFormHandler_UpdateField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	edited := torontoView()
	edited.Values.City = ""
	edited.Touched[models.FieldCity] = true
	edited.Errors[models.FieldCity] = "City is required"
	edited.VisibleErrors[models.FieldCity] = "City is required"

	tests := []struct {
		name           string
		field          string
		body           string
		value          string
		mockView       form.View
		mockError      error
		callsService   bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing value",
			field:          "city",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "missing required body field 'value'"},
		},
		{
			name:           "empty value is an edit",
			field:          "city",
			body:           `{"value":""}`,
			value:          "",
			mockView:       edited,
			callsService:   true,
			expectedStatus: http.StatusOK,
			expectedBody:   edited,
		},
		{
			name:           "unknown field",
			field:          "zip",
			body:           `{"value":"12345"}`,
			value:          "12345",
			mockError:      form.ErrUnknownField,
			callsService:   true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   gin.H{"error": "unknown field 'zip'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockFormService)
			handler := NewFormHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("UpdateField", mock.Anything, testSession, models.Field(tt.field), tt.value).Return(tt.mockView, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = newFormRequest(http.MethodPatch, "/form/fields/"+tt.field, tt.body)
			c.Params = gin.Params{{Key: "field", Value: tt.field}}

			handler.UpdateField(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, toJSON(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestFormHandler_TouchField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockFormService)
	handler := NewFormHandler(mockSvc)
	mockSvc.On("TouchField", mock.Anything, testSession, models.FieldCountry).Return(torontoView(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = newFormRequest(http.MethodPost, "/form/fields/country/touch", "")
	c.Params = gin.Params{{Key: "field", Value: "country"}}

	handler.TouchField(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestFormHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockRecord     models.AddressRecord
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "submitted",
			mockRecord:     torontoRecord(),
			expectedStatus: http.StatusOK,
			expectedBody:   gin.H{"address": torontoRecord()},
		},
		{
			name: "validation failed",
			mockError: &form.ValidationError{Errors: map[models.Field]string{
				models.FieldCity: "City is required",
			}},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   gin.H{"errors": gin.H{"city": "City is required"}},
		},
		{
			name:           "submitter failed",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   gin.H{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockFormService)
			handler := NewFormHandler(mockSvc)
			mockSvc.On("Submit", mock.Anything, testSession).Return(tt.mockRecord, tt.mockError)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = newFormRequest(http.MethodPost, "/form/submit", "")

			handler.Submit(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, toJSON(t, tt.expectedBody), actualBody)

			mockSvc.AssertExpectations(t)
		})
	}
}

func TestFormHandler_IssuesSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockFormService)
	handler := NewFormHandler(mockSvc)
	mockSvc.On("View", mock.Anything, mock.AnythingOfType("string")).Return(torontoView(), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/form", nil)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})

	handler.View(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.NotEqual(t, "not-a-uuid", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	mockSvc.AssertCalled(t, "View", mock.Anything, cookies[0].Value)
}
