package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/general-configurator/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("cost[0].name", "is not recognized: mithril")
	ve.AddFieldErrorf("pieces", "must be at least %d", 2)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "cost[0].name: is not recognized: mithril")
	s.Assert().Contains(ve.Error(), "pieces: must be at least 2")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be %d or %d", 6, 7).
		RequiredField("set")

	s.Assert().True(vb.HasErrors())
	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidationErrorIsDeterministic() {
	ve := errors.NewValidationError()
	ve.AddFieldError("set", "is required")
	ve.AddFieldError("attributes[0].value", "is 0")
	ve.AddFieldError("name", "is required")

	s.Assert().Equal(
		"validation failed: attributes[0].value: is 0; name: is required; set: is required",
		ve.Error())
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("pieces", 7, 2, 6, vb)
	errors.ValidateRange("level", 6, 6, 7, vb)
	errors.ValidateRange("capacity", 0, 1, 10, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["pieces"][0], "must be between 2 and 6")
	s.Assert().Contains(validationErrors["capacity"][0], "must be between 1 and 10")
	s.Assert().NotContains(validationErrors, "level")
}

func (s *ValidationTestSuite) TestValidateNonZero() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonZero("value", 0, vb)
	errors.ValidateNonZero("rate", -1, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"is 0"}, validationErrors["value"])
	s.Assert().NotContains(validationErrors, "rate")
}
