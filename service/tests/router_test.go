package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zlnvch/deltaroom/models"
	"github.com/zlnvch/deltaroom/service"
	"github.com/zlnvch/deltaroom/service/mocks"
	storemocks "github.com/zlnvch/deltaroom/store/mocks"
)

// These tests pin the service's store contract: which registry operations
// run, in what shape, for each lifecycle step.

func setupMockedService(t *testing.T) (*service.Service, *storemocks.MockStore, *mocks.RecordingBroadcaster) {
	t.Helper()
	mockStore := new(storemocks.MockStore)
	hub := mocks.NewRecordingBroadcaster()
	return service.NewService(mockStore, hub), mockStore, hub
}

func TestCreateRoom_RegistersCreatorAsSoleMember(t *testing.T) {
	svc, mockStore, hub := setupMockedService(t)

	mockStore.On("CreateRoom").Return("ab12cd34ef")
	mockStore.On("JoinRoom", "ab12cd34ef", "conn-a").Return([]string{}, nil)
	mockStore.On("Members", "ab12cd34ef").Return([]string{"conn-a"})

	svc.CreateRoom("conn-a")

	mockStore.AssertExpectations(t)

	events := eventsFor(t, hub, "conn-a")
	require.Len(t, events, 1)
	assert.Equal(t, service.EventRoomCreated, events[0].Type)
}

func TestJoinRoom_DoesNotTouchCanvasHistory(t *testing.T) {
	svc, mockStore, hub := setupMockedService(t)

	mockStore.On("JoinRoom", "ab12cd34ef", "conn-b").Return([]string{"conn-a"}, nil)
	mockStore.On("CurrentSnapshot", "ab12cd34ef").Return("", false)
	mockStore.On("Members", "ab12cd34ef").Return([]string{"conn-a", "conn-b"})

	svc.JoinRoom("conn-b", "ab12cd34ef")

	mockStore.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "RecordSnapshot")
	mockStore.AssertNotCalled(t, "SetCanonical")

	joinerEvents := eventsFor(t, hub, "conn-b")
	require.Len(t, joinerEvents, 2, "no canvas-state resync for a blank canvas")
	assert.Equal(t, service.EventJoinedRoom, joinerEvents[0].Type)
	assert.Equal(t, service.EventRoomMembers, joinerEvents[1].Type)
}

func TestDraw_WithoutSnapshotLeavesHistoryAlone(t *testing.T) {
	svc, mockStore, _ := setupMockedService(t)

	mockStore.On("Members", "ab12cd34ef").Return([]string{"conn-a", "conn-b"})

	svc.Draw("conn-a", models.DrawOp{Room: "ab12cd34ef", Tool: models.ToolBrush})

	mockStore.AssertNotCalled(t, "RecordSnapshot")
	mockStore.AssertNotCalled(t, "SetCanonical")
}

func TestChat_ChecksMembershipBeforeRouting(t *testing.T) {
	svc, mockStore, hub := setupMockedService(t)

	mockStore.On("Members", "ab12cd34ef").Return([]string{"conn-b"})

	svc.Chat("conn-a", models.ChatMessage{Room: "ab12cd34ef", Msg: "hi"})

	mockStore.AssertCalled(t, "Members", "ab12cd34ef")
	assert.Empty(t, hub.Sent())
}
