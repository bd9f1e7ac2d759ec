package builds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/general-configurator/internal/errors"
	"github.com/KirkDiggler/general-configurator/internal/repositories/builds"
)

func TestNewPostgresValidation(t *testing.T) {
	_, err := builds.NewPostgres(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = builds.NewPostgres(&builds.PostgresConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}
