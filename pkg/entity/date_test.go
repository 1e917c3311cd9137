package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/taskstars/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateArithmetic(t *testing.T) {
	d := entity.Date{Year: 2025, Month: time.February, Day: 28}
	assert.Equal(t, entity.Date{Year: 2025, Month: time.March, Day: 1}, d.AddDays(1))
	assert.Equal(t, entity.Date{Year: 2024, Month: time.December, Day: 31}, entity.Date{Year: 2025, Month: time.January, Day: 1}.AddDays(-1))
	assert.Equal(t, 2, d.AddDays(2).DaysSince(d))
	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.Before(d))
	assert.True(t, entity.Date{}.IsZero())
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	ts := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, entity.Date{Year: 2025, Month: 3, Day: 10}, entity.DateOf(ts))
	assert.Equal(t, entity.Date{Year: 2025, Month: 3, Day: 11}, entity.DateOf(ts.In(loc)))
}

func TestDateJSON(t *testing.T) {
	d := entity.Date{Year: 2025, Month: 3, Day: 9}
	data, err := sonic.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-09"`, string(data))

	var parsed entity.Date
	require.NoError(t, sonic.Unmarshal(data, &parsed))
	assert.Equal(t, d, parsed)

	assert.Error(t, sonic.Unmarshal([]byte(`20250309`), &parsed))
	assert.Error(t, sonic.Unmarshal([]byte(`"09.03.2025"`), &parsed))
}
