package server_test

import (
	"errors"
	"testing"

	"lintang/flightpath/pkg/server"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("index 5 out of range")
	err := server.WrapErrorf(orig, server.ErrBadParamInput, "waypoint %d: %v", 5, orig)

	assert.Equal(t, "waypoint 5: index 5 out of range", err.Error())
	assert.ErrorIs(t, err, orig)

	var serr *server.Error
	assert.ErrorAs(t, err, &serr)
	assert.Equal(t, server.ErrBadParamInput, serr.Code())
}
