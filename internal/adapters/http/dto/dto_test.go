package dto

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestNewErrorResponse tests creating a basic error response.
func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
		want    *ErrorResponse
	}{
		{
			name:    "basic error response",
			code:    ErrorCodeNotFound,
			message: "resource not found",
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeNotFound,
					Message: "resource not found",
				},
			},
		},
		{
			name:    "validation error response",
			code:    ErrorCodeValidation,
			message: "invalid input",
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeValidation,
					Message: "invalid input",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewErrorResponse(tt.code, tt.message)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNewErrorResponseWithDetails tests creating an error response with details.
func TestNewErrorResponseWithDetails(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		message string
		details map[string]string
		want    *ErrorResponse
	}{
		{
			name:    "error with details",
			code:    ErrorCodeValidation,
			message: "validation failed",
			details: map[string]string{
				"operation": "this field is required",
			},
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeValidation,
					Message: "validation failed",
					Details: map[string]string{
						"operation": "this field is required",
					},
				},
			},
		},
		{
			name:    "error with empty details",
			code:    ErrorCodeBadRequest,
			message: "bad request",
			details: map[string]string{},
			want: &ErrorResponse{
				Error: ErrorDetail{
					Code:    ErrorCodeBadRequest,
					Message: "bad request",
					Details: map[string]string{},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewErrorResponseWithDetails(tt.code, tt.message, tt.details)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestWithTraceID tests adding trace ID to error response.
func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		response *ErrorResponse
		traceID  string
		want     string
	}{
		{
			name:     "add trace ID",
			response: NewErrorResponse(ErrorCodeInternal, "internal error"),
			traceID:  "trace-123",
			want:     "trace-123",
		},
		{
			name:     "empty trace ID",
			response: NewErrorResponse(ErrorCodeNotFound, "not found"),
			traceID:  "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.response.WithTraceID(tt.traceID)
			assert.Equal(t, tt.want, got.TraceID)
			assert.Same(t, tt.response, got) // Should return same instance
		})
	}
}

// TestHTTPStatusFromCode tests mapping error codes to HTTP status codes.
func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{
			name: "not found",
			code: ErrorCodeNotFound,
			want: http.StatusNotFound,
		},
		{
			name: "validation error",
			code: ErrorCodeValidation,
			want: http.StatusBadRequest,
		},
		{
			name: "bad request",
			code: ErrorCodeBadRequest,
			want: http.StatusBadRequest,
		},
		{
			name: "unavailable",
			code: ErrorCodeUnavailable,
			want: http.StatusServiceUnavailable,
		},
		{
			name: "timeout",
			code: ErrorCodeTimeout,
			want: http.StatusGatewayTimeout,
		},
		{
			name: "internal error",
			code: ErrorCodeInternal,
			want: http.StatusInternalServerError,
		},
		{
			name: "unknown code defaults to internal error",
			code: "UNKNOWN_CODE",
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HTTPStatusFromCode(tt.code)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestGetTraceID tests extracting the trace ID from a gin context.
func TestGetTraceID(t *testing.T) {
	t.Run("no active span returns empty string", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		got := GetTraceID(c)
		assert.Empty(t, got)
	})
}

// TestCalculationRequestBinding tests that operands bind as raw text.
func TestCalculationRequestBinding(t *testing.T) {
	tests := []struct {
		name string
		body string
		want CalculationRequest
	}{
		{
			name: "all fields present",
			body: `{"a":"3","b":"4","operation":"add"}`,
			want: CalculationRequest{A: "3", B: "4", Operation: "add"},
		},
		{
			name: "missing keys bind as empty strings",
			body: `{"operation":"divide"}`,
			want: CalculationRequest{Operation: "divide"},
		},
		{
			name: "garbage operands survive binding untouched",
			body: `{"a":"5abc","b":"  -0x10","operation":"mod"}`,
			want: CalculationRequest{A: "5abc", B: "  -0x10", Operation: "mod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req CalculationRequest
			err := c.ShouldBindJSON(&req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}
}

// TestCalculationResponseJSON tests the response wire shape.
func TestCalculationResponseJSON(t *testing.T) {
	resp := CalculationResponse{
		A:         "10",
		B:         "2",
		Operation: "divide",
		Display:   "Result: 5",
		Cached:    true,
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Result: 5", decoded["display"])
	assert.Equal(t, "divide", decoded["operation"])
	assert.Equal(t, true, decoded["cached"])
}

// TestValidator tests validator singleton.
func TestValidator(t *testing.T) {
	v1 := Validator()
	v2 := Validator()

	assert.NotNil(t, v1)
	assert.Same(t, v1, v2) // Should be same instance (singleton)
}

// TestValidate tests struct validation.
func TestValidate(t *testing.T) {
	type testStruct struct {
		Name  string `validate:"required"`
		Email string `validate:"email"`
		Age   int    `validate:"gte=0,lte=120"`
	}

	tests := []struct {
		name    string
		input   any
		wantErr bool
	}{
		{
			name: "valid struct",
			input: &testStruct{
				Name:  "John",
				Email: "john@example.com",
				Age:   30,
			},
			wantErr: false,
		},
		{
			name: "missing required field",
			input: &testStruct{
				Name:  "",
				Email: "john@example.com",
				Age:   30,
			},
			wantErr: true,
		},
		{
			name: "invalid email",
			input: &testStruct{
				Name:  "John",
				Email: "not-an-email",
				Age:   30,
			},
			wantErr: true,
		},
		{
			name: "age out of range",
			input: &testStruct{
				Name:  "John",
				Email: "john@example.com",
				Age:   150,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestBindAndValidate tests JSON binding and validation.
func TestBindAndValidate(t *testing.T) {
	type testStruct struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"email"`
	}

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     bool
		errType     error
	}{
		{
			name:        "valid JSON",
			body:        `{"name":"John","email":"john@example.com"}`,
			contentType: "application/json",
			wantErr:     false,
		},
		{
			name:        "invalid JSON",
			body:        `{invalid}`,
			contentType: "application/json",
			wantErr:     true,
			errType:     ErrBinding,
		},
		{
			name:        "validation fails",
			body:        `{"name":"","email":"john@example.com"}`,
			contentType: "application/json",
			wantErr:     true,
			errType:     ErrValidation,
		},
		{
			name:        "invalid email",
			body:        `{"name":"John","email":"not-an-email"}`,
			contentType: "application/json",
			wantErr:     true,
			errType:     ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", tt.contentType)

			var input testStruct
			err := BindAndValidate(c, &input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					require.ErrorIs(t, err, tt.errType)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "John", input.Name)
				assert.Equal(t, "john@example.com", input.Email)
			}
		})
	}
}

// TestBindQueryAndValidate tests query binding and validation.
func TestBindQueryAndValidate(t *testing.T) {
	type queryStruct struct {
		Limit  int    `form:"limit" validate:"omitempty,gte=1,lte=100"`
		Cursor string `form:"cursor"`
	}

	tests := []struct {
		name    string
		query   string
		wantErr bool
		errType error
	}{
		{
			name:    "valid query",
			query:   "?limit=10&cursor=abc",
			wantErr: false,
		},
		{
			name:    "empty query",
			query:   "",
			wantErr: false,
		},
		{
			name:    "limit out of range",
			query:   "?limit=150",
			wantErr: true,
			errType: ErrValidation,
		},
		{
			name:    "negative limit",
			query:   "?limit=-1",
			wantErr: true,
			errType: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/path"+tt.query, nil)

			var input queryStruct
			err := BindQueryAndValidate(c, &input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					require.ErrorIs(t, err, tt.errType)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestValidationErrors tests extracting field errors.
func TestValidationErrors(t *testing.T) {
	type testStruct struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"email"`
		Age   int    `json:"age" validate:"gte=0,lte=120"`
	}

	tests := []struct {
		name      string
		input     *testStruct
		wantCount int
		wantKeys  []string
	}{
		{
			name: "multiple validation errors",
			input: &testStruct{
				Name:  "",
				Email: "not-an-email",
				Age:   150,
			},
			wantCount: 3,
			wantKeys:  []string{"name", "email", "age"},
		},
		{
			name: "single validation error",
			input: &testStruct{
				Name:  "",
				Email: "john@example.com",
				Age:   30,
			},
			wantCount: 1,
			wantKeys:  []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			require.Error(t, err)

			got := ValidationErrors(err)
			assert.Len(t, got, tt.wantCount)

			for _, key := range tt.wantKeys {
				assert.Contains(t, got, key)
				assert.NotEmpty(t, got[key])
			}
		})
	}

	t.Run("non-validation error returns empty map", func(t *testing.T) {
		err := errors.New("some error")
		got := ValidationErrors(err)
		assert.Empty(t, got)
	})
}

// TestIsValidationError tests validation error detection.
func TestIsValidationError(t *testing.T) {
	type testStruct struct {
		Name string `validate:"required"`
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "validation error",
			err: func() error {
				input := &testStruct{Name: ""}
				return Validate(input)
			}(),
			want: true,
		},
		{
			name: "non-validation error",
			err:  errors.New("some error"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsValidationError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestValidationMessage tests validation message generation.
func TestValidationMessage(t *testing.T) {
	type testStruct struct {
		Name     string `validate:"required"`
		Email    string `validate:"email"`
		UUID     string `validate:"uuid"`
		Count    int    `validate:"min=1,max=10"`
		Role     string `validate:"oneof=admin user"`
		Text     string `validate:"min=5,max=100"`
		Age      int    `validate:"gte=0,lte=120"`
		Score    int    `validate:"gt=0,lt=100"`
		URL      string `validate:"url"`
		Username string `validate:"notempty"`
	}

	// Create a struct that will fail all validations
	input := &testStruct{
		Name:     "",
		Email:    "not-an-email",
		UUID:     "not-a-uuid",
		Count:    20,
		Role:     "invalid",
		Text:     "abc",
		Age:      150,
		Score:    150,
		URL:      "not-a-url",
		Username: "  ",
	}

	err := Validator().Struct(input)
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	// Map expected messages for each field
	expectedMessages := map[string]string{
		"name":     "this field is required",
		"email":    "must be a valid email address",
		"uuid":     "must be a valid UUID",
		"count":    "must be at most 10",
		"role":     "must be one of: admin user",
		"text":     "must be at least 5 characters",
		"age":      "must be less than or equal to 120",
		"score":    "must be less than 100",
		"url":      "must be a valid URL",
		"username": "must not be empty",
	}

	for _, fe := range validationErrs {
		fieldName := fe.Field()
		message := validationMessage(fe)

		expectedMsg, ok := expectedMessages[fieldName]
		if ok {
			assert.Equal(t, expectedMsg, message, "field: %s", fieldName)
		}
	}
}

// TestMinMaxMessage tests min/max message generation.
func TestMinMaxMessage(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		param string
		kind  reflect.Kind
		want  string
	}{
		{
			name:  "min for string",
			tag:   "min",
			param: "5",
			kind:  reflect.String,
			want:  "must be at least 5 characters",
		},
		{
			name:  "max for string",
			tag:   "max",
			param: "100",
			kind:  reflect.String,
			want:  "must be at most 100 characters",
		},
		{
			name:  "min for int",
			tag:   "min",
			param: "1",
			kind:  reflect.Int,
			want:  "must be at least 1",
		},
		{
			name:  "max for int",
			tag:   "max",
			param: "10",
			kind:  reflect.Int,
			want:  "must be at most 10",
		},
		{
			name:  "min for float",
			tag:   "min",
			param: "0.5",
			kind:  reflect.Float64,
			want:  "must be at least 0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := minMaxMessage(tt.tag, tt.param, tt.kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestValidateUUID tests UUID validation.
func TestValidateUUID(t *testing.T) {
	type testStruct struct {
		ID string `validate:"uuid"`
	}

	tests := []struct {
		name    string
		uuid    string
		wantErr bool
	}{
		{
			name:    "valid UUID",
			uuid:    "123e4567-e89b-12d3-a456-426614174000",
			wantErr: false,
		},
		{
			name:    "invalid UUID",
			uuid:    "not-a-uuid",
			wantErr: true,
		},
		{
			name:    "empty UUID is valid",
			uuid:    "",
			wantErr: false,
		},
		{
			name:    "UUID without hyphens is valid",
			uuid:    "123e4567e89b12d3a456426614174000",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &testStruct{ID: tt.uuid}
			err := Validator().Struct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateNotEmpty tests not empty validation.
func TestValidateNotEmpty(t *testing.T) {
	type testStruct struct {
		Name string `validate:"notempty"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{
			name:    "non-empty string",
			value:   "hello",
			wantErr: false,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			value:   "   ",
			wantErr: true,
		},
		{
			name:    "tabs and spaces",
			value:   "\t  \n",
			wantErr: true,
		},
		{
			name:    "string with spaces but also content",
			value:   "  hello  ",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &testStruct{Name: tt.value}
			err := Validator().Struct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// validatableTestStruct is a test struct that implements Validatable.
type validatableTestStruct struct {
	Name string `validate:"required"`
}

func (v *validatableTestStruct) Validate() error {
	if v.Name == "forbidden" {
		return errors.New("name cannot be forbidden")
	}
	return nil
}

// TestValidateAll tests combined struct and custom validation.
func TestValidateAll(t *testing.T) {
	// Verify it implements Validatable
	var _ Validatable = (*validatableTestStruct)(nil)

	tests := []struct {
		name    string
		input   *validatableTestStruct
		wantErr bool
		errType error
	}{
		{
			name: "valid input",
			input: &validatableTestStruct{
				Name: "valid",
			},
			wantErr: false,
		},
		{
			name: "struct validation fails",
			input: &validatableTestStruct{
				Name: "",
			},
			wantErr: true,
			errType: ErrValidation,
		},
		{
			name: "custom validation fails",
			input: &validatableTestStruct{
				Name: "forbidden",
			},
			wantErr: true,
			errType: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAll(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					require.ErrorIs(t, err, tt.errType)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}

	// Test with non-validatable struct
	t.Run("non-validatable struct", func(t *testing.T) {
		type simpleStruct struct {
			Name string `validate:"required"`
		}

		input := &simpleStruct{Name: "test"}
		err := ValidateAll(input)
		assert.NoError(t, err)
	})
}

// TestValidationMessageUnknownTag tests fallback message for unknown tags.
func TestValidationMessageUnknownTag(t *testing.T) {
	// Create a mock field error for an unknown tag
	type testStruct struct {
		Field string `validate:"customtag"`
	}

	// Register a custom validator that will fail
	v := Validator()
	_ = v.RegisterValidation("customtag", func(fl validator.FieldLevel) bool {
		return false
	})

	input := &testStruct{Field: "value"}
	err := v.Struct(input)
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	for _, fe := range validationErrs {
		msg := validationMessage(fe)
		assert.Equal(t, "failed validation: customtag", msg)
	}
}
