package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func TestParseState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    model.State
		wantErr bool
	}{
		{in: "", want: model.StateAll},
		{in: "ALL", want: model.StateAll},
		{in: "current", want: model.StateCurrent},
		{in: "Past", want: model.StatePast},
		{in: "FUTURE", want: model.StateFuture},
		{in: "waiting", want: model.StateWaiting},
		{in: "REJECTED", want: model.StateRejected},
		{in: "SOMEDAY", wantErr: true},
		{in: "APPROVED", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run("state "+tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := model.ParseState(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrUnknownState)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBookingView(t *testing.T) {
	t.Parallel()

	b := model.Booking{
		ID:       1,
		Start:    time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC),
		Status:   model.StatusWaiting,
		ItemID:   2,
		ItemName: "drill",
		OwnerID:  7,
		BookerID: 3,
	}
	v := b.View()
	require.Equal(t, model.ItemShort{ID: 2, Name: "drill"}, v.Item)
	require.Equal(t, model.UserShort{ID: 3}, v.Booker)
	require.Equal(t, b.Status, v.Status)
}
