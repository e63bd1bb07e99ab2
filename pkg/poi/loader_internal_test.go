package poi

import (
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
)

func TestDescribeNode(t *testing.T) {
	tags := osm.Tags{
		{Key: "name", Value: "George Airport"},
		{Key: "aeroway", Value: "aerodrome"},
		{Key: "icao", Value: "FAGG"},
	}
	assert.True(t, hasAnyTag(tags, []string{"navaid", "aeroway"}))
	assert.False(t, hasAnyTag(tags, []string{"amenity"}))
	assert.Equal(t, "George Airport aeroway=aerodrome FAGG", describeNode(tags, "George Airport", []string{"aeroway"}))
}
