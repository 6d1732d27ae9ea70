package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/utils"
)

// bookingResponse is the wire shape of a booking: calendar dates as
// yyyy-mm-dd strings and the price both in cents and formatted.
type bookingResponse struct {
	ID                int32                `json:"id"`
	UserID            int32                `json:"user_id"`
	VehicleID         int32                `json:"vehicle_id"`
	PickupLocationID  *int32               `json:"pickup_location_id,omitempty"`
	DropoffLocationID *int32               `json:"dropoff_location_id,omitempty"`
	StartDate         string               `json:"start_date"`
	EndDate           string               `json:"end_date"`
	TotalPriceCents   int32                `json:"total_price_cents"`
	TotalPrice        string               `json:"total_price"`
	Status            domain.BookingStatus `json:"status"`
	CreatedOn         string               `json:"created_on"`
	VehicleName       string               `json:"vehicle_name,omitempty"`
	VehicleImage      string               `json:"vehicle_image,omitempty"`
	DailyRateCents    int32                `json:"daily_rate_cents,omitempty"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:                b.ID,
		UserID:            b.UserID,
		VehicleID:         b.VehicleID,
		PickupLocationID:  b.PickupLocationID,
		DropoffLocationID: b.DropoffLocationID,
		StartDate:         b.StartDate.Format(utils.DateLayout),
		EndDate:           b.EndDate.Format(utils.DateLayout),
		TotalPriceCents:   b.TotalPriceCents,
		TotalPrice:        utils.FormatCents(b.TotalPriceCents),
		Status:            b.Status,
		CreatedOn:         b.CreatedOn.Format(time.RFC3339),
		VehicleName:       b.VehicleName,
		VehicleImage:      b.VehicleImage,
		DailyRateCents:    b.DailyRateCents,
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

// pathID extracts the {id} route variable as an int32.
func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError("id", "invalid resource id")
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, key string) int32 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 32)
	if err != nil {
		return 0
	}
	return int32(v)
}
