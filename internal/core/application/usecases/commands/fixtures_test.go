package commands_test

import (
	"testing"
	"time"

	"delivery/internal/core/domain/model/assignment"
	"delivery/internal/core/domain/model/kernel"
	"delivery/internal/core/domain/model/parcel"
	"delivery/internal/core/domain/model/routing"
	"delivery/internal/core/domain/model/session"

	"github.com/stretchr/testify/require"
)

var testShiftStart = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

func testGeoPoint(t *testing.T) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(10.7769, 106.7009)
	require.NoError(t, err)
	return point
}

func testParcel(t *testing.T, addressID kernel.UUID, zoneID string, priority int) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), "PCL-001", testGeoPoint(t), addressID, kernel.NewUUID(), priority, zoneID)
	require.NoError(t, err)
	return p
}

func testOnRouteParcel(t *testing.T, addressID, assignmentID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), "PCL-002", testGeoPoint(t), addressID, kernel.NewUUID(), 1, "z1",
		parcel.OnRoute, &assignmentID)
	require.NoError(t, err)
	return p
}

func testShipper(t *testing.T, capacity int, zones ...string) routing.Shipper {
	t.Helper()
	return routing.Shipper{
		ID:             kernel.NewUUID(),
		Location:       testGeoPoint(t),
		ShiftStart:     testShiftStart,
		MaxSessionTime: 8 * time.Hour,
		Capacity:       capacity,
		WorkingZones:   zones,
	}
}

func testPendingAssignment(t *testing.T, shipperID kernel.UUID, parcelIDs []kernel.UUID) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(kernel.NewUUID(), shipperID, kernel.NewUUID(), parcelIDs, 0)
	require.NoError(t, err)
	return a
}

func testInProgressAssignment(
	t *testing.T,
	shipperID, sessionID kernel.UUID,
	parcelIDs []kernel.UUID,
) *assignment.Assignment {
	t.Helper()
	a, err := assignment.RestoreAssignment(
		kernel.NewUUID(), shipperID, kernel.NewUUID(), parcelIDs, 0,
		assignment.InProgress, &sessionID, nil, nil, "", 1)
	require.NoError(t, err)
	return a
}

func testInProgressSession(t *testing.T, id, shipperID kernel.UUID, counters session.Counters) *session.Session {
	t.Helper()
	s, err := session.RestoreSession(
		id, shipperID, session.InProgress, testShiftStart, nil, counters, "", 1)
	require.NoError(t, err)
	return s
}
