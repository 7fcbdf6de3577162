package platform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-dashboard/models"
	"hotel-dashboard/session"
)

func testSession() session.Session {
	return session.Session{Token: "tok-123", ServiceProviderID: "sp-1"}
}

func TestListBookingsSendsBearerAndDecodesEnvelope(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		assert.Equal(t, "/api/providers/sp-1/bookings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":"b1","status":"pending"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	bookings, err := c.ListBookings(context.Background(), testSession())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, models.StatusPending, bookings[0].Status)
}

func TestListDecodesBareCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"r1","name":"Deluxe 101","status":"available"}]`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	rooms, err := c.ListRooms(context.Background(), testSession())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, models.RoomAvailable, rooms[0].Status)
}

func TestTransitionBookingPostsActionAndReason(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.Write([]byte(`{"success":true,"data":{"id":"b1","status":"cancelled","cancellationReason":"guest request"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	b, err := c.TransitionBooking(context.Background(), testSession(), "b1", models.ActionCancel, &TransitionPayload{Reason: "guest request"})
	require.NoError(t, err)

	assert.Equal(t, "/api/bookings/b1/cancel", gotPath)
	assert.JSONEq(t, `{"reason":"guest request"}`, gotBody)
	assert.Equal(t, models.StatusCancelled, b.Status)
	assert.Equal(t, "guest request", b.CancellationReason)
}

func TestErrorClassification(t *testing.T) {
	cases := []struct {
		status int
		body   string
		want   error
	}{
		{http.StatusNotFound, `{"success":false,"error":"no such booking"}`, models.ErrNotFound},
		{http.StatusConflict, `{"success":false,"error":"already confirmed"}`, models.ErrIllegalTransition},
		{http.StatusUnprocessableEntity, `cannot cancel`, models.ErrIllegalTransition},
		{http.StatusUnauthorized, `token expired`, models.ErrUnauthenticated},
		{http.StatusInternalServerError, `boom`, models.ErrTransport},
		{http.StatusBadGateway, ``, models.ErrTransport},
	}

	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(tc.body))
		}))

		c := NewClient(Config{BaseURL: srv.URL})
		_, err := c.TransitionBooking(context.Background(), testSession(), "b1", models.ActionConfirm, nil)
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		srv.Close()
	}
}

func TestEmptySessionNeverHitsTheNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.ListBookings(context.Background(), session.Session{})
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	assert.False(t, called)
}

func TestUnreachableHostIsTransportError(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
	_, err := c.ListBookings(context.Background(), testSession())
	assert.ErrorIs(t, err, models.ErrTransport)
}
