package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

func TestBuildInsertVehicleQuery(t *testing.T) {
	v := models.NewVehicle("b 1234 ab", models.TypeCar)

	query, args, err := buildInsertVehicleQuery(v)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into vehicles")
	require.Contains(t, q, "plate")
	require.Contains(t, q, "type")

	// squirrel generates positional ? placeholders.
	assert.Equal(t, 3, strings.Count(query, "?"))

	require.Len(t, args, 3)
	assert.Equal(t, v.ID, args[0])
	assert.Equal(t, "B 1234 AB", args[1])
	assert.Equal(t, "Car", args[2])
}

func TestBuildInsertEntryQuery(t *testing.T) {
	created := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	e := models.NewEntry("Oil", "synthetic 5W-30", created)
	e.Photo = []byte{0xFF, 0xD8}

	query, args, err := buildInsertEntryQuery("veh-1", e)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into entries")
	require.Contains(t, q, "vehicle_id")
	require.Contains(t, q, "photo")

	require.Len(t, args, 6)
	assert.Equal(t, e.ID, args[0])
	assert.Equal(t, "veh-1", args[1])
	assert.Equal(t, "Oil", args[2])
	assert.Equal(t, "synthetic 5W-30", args[3])
	assert.Equal(t, []byte{0xFF, 0xD8}, args[4])
	assert.Equal(t, created, args[5])
}

func TestBuildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteEntryQuery("entry-1")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "delete from entries")
	assert.Equal(t, []any{"entry-1"}, args)

	query, args, err = buildDeleteVehicleQuery("veh-1")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "delete from vehicles")
	assert.Equal(t, []any{"veh-1"}, args)
}

func TestBuildUpdateVehicleQuery(t *testing.T) {
	query, args, err := buildUpdateVehicleQuery("veh-1", "B 9999 ZZ", "Bike")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update vehicles")
	require.Contains(t, q, "set plate")
	require.Contains(t, q, "where id")

	require.Len(t, args, 3)
	assert.Equal(t, "B 9999 ZZ", args[0])
	assert.Equal(t, "Bike", args[1])
	assert.Equal(t, "veh-1", args[2])
}
